package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CartService struct {
	carts        ports.CartRepo
	reservations ports.ReservationRepo
	holds        ports.ReservationManager
	items        ports.ItemRepo
	users        ports.UserRepo
	tx           ports.Transactor
	notifier     ports.ReservationNotifier
	logger       logger.Logger
	defaultTier  domain.Tier
}

func NewCartService(
	carts ports.CartRepo,
	reservations ports.ReservationRepo,
	holds ports.ReservationManager,
	items ports.ItemRepo,
	users ports.UserRepo,
	tx ports.Transactor,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
	defaultTier domain.Tier,
) *CartService {
	return &CartService{
		carts:        carts,
		reservations: reservations,
		holds:        holds,
		items:        items,
		users:        users,
		tx:           tx,
		notifier:     notifier,
		logger:       logger,
		defaultTier:  defaultTier,
	}
}

var heldOnly = []domain.ReservationStatus{domain.ReservationStatusHeld}

// resolveTier picks the requested tier, else the user's tier, else the configured default.
func (s *CartService) resolveTier(ctx context.Context, userID string, requested domain.Tier) (domain.Tier, error) {
	if requested != "" {
		if !requested.Valid() {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidTier, requested)
		}
		return requested, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	switch {
	case err == nil && user.Tier.Valid():
		return user.Tier, nil
	case err == nil, errors.Is(err, domain.ErrUserNotFound):
		return s.defaultTier, nil
	default:
		return "", fmt.Errorf("get user: %w", err)
	}
}

// AddItem places a hold on the slot for the user's cart, creating the cart on first use.
func (s *CartService) AddItem(ctx context.Context, userID string, in domain.AddCartItemInput) (*domain.CartItemView, error) {
	tier, err := s.resolveTier(ctx, userID, in.Tier)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	r, err := s.holds.Reserve(ctx, domain.ReserveInput{
		CartID:   cart.ID,
		UserID:   userID,
		ItemID:   item.ID,
		Date:     in.Date,
		Time:     in.Time,
		Quantity: in.Quantity,
		Tier:     tier,
	})
	if err != nil {
		return nil, err
	}

	view, err := newCartItemView(r, item)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveItem releases one Held reservation of the user's cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID string) error {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return domain.ErrCartItemNotFound
		}
		return fmt.Errorf("get cart: %w", err)
	}

	r, err := s.reservations.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}
	if r.CartID != cart.ID {
		return domain.ErrCartItemNotFound
	}

	_, err = s.holds.Release(ctx, r.ID)
	return err
}

// ListItems returns the Held items of the user's cart with their prices.
func (s *CartService) ListItems(ctx context.Context, userID string) ([]domain.CartItemView, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return []domain.CartItemView{}, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	held, err := s.reservations.ListByCart(ctx, cart.ID, heldOnly)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	return s.views(ctx, held)
}

// Checkout confirms every Held reservation of the user's cart in one transaction.
func (s *CartService) Checkout(ctx context.Context, userID string) ([]domain.CartItemView, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil, fmt.Errorf("%w: cart is empty", domain.ErrValidation)
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var confirmed []*domain.Reservation
	txCtx, events := withAfterCommit(ctx)
	err = s.tx.WithinTx(txCtx, func(ctx context.Context) error {
		held, err := s.reservations.ListByCart(ctx, cart.ID, heldOnly)
		if err != nil {
			return fmt.Errorf("list cart: %w", err)
		}
		if len(held) == 0 {
			return fmt.Errorf("%w: cart is empty", domain.ErrValidation)
		}

		for _, r := range held {
			c, err := s.holds.Confirm(ctx, r.ID)
			if err != nil {
				return err
			}
			confirmed = append(confirmed, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	events.run()

	views, err := s.views(ctx, confirmed)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, v := range views {
		total += v.Total
	}
	s.logger.LogAttrs(ctx, logger.InfoLevel, "cart checked out",
		logger.String("user_id", userID),
		logger.String("cart_id", cart.ID),
		logger.Int("items", len(views)),
		logger.Int64("total", total),
	)

	user, err := s.users.GetByID(ctx, userID)
	if err == nil {
		go s.notifier.NotifyCheckoutConfirmed(context.WithoutCancel(ctx), user, views)
	}

	return views, nil
}

// Clear releases every Held reservation of the user's cart and returns how many were released.
func (s *CartService) Clear(ctx context.Context, userID string) (int, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get cart: %w", err)
	}

	held, err := s.reservations.ListByCart(ctx, cart.ID, heldOnly)
	if err != nil {
		return 0, fmt.Errorf("list cart: %w", err)
	}

	released := 0
	for _, r := range held {
		_, err := s.holds.Release(ctx, r.ID)
		switch {
		case err == nil, errors.Is(err, domain.ErrConsistency):
			released++
		case errors.Is(err, domain.ErrInvalidStateTransition):
		default:
			return released, err
		}
	}

	return released, nil
}

func (s *CartService) views(ctx context.Context, rs []*domain.Reservation) ([]domain.CartItemView, error) {
	items := make(map[string]*domain.BookableItem)
	views := make([]domain.CartItemView, 0, len(rs))
	for _, r := range rs {
		item, ok := items[r.ItemID]
		if !ok {
			var err error
			if item, err = s.items.GetByID(ctx, r.ItemID); err != nil {
				return nil, fmt.Errorf("get item %s: %w", r.ItemID, err)
			}
			items[r.ItemID] = item
		}

		v, err := newCartItemView(r, item)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func newCartItemView(r *domain.Reservation, item *domain.BookableItem) (domain.CartItemView, error) {
	price, err := item.Prices.For(r.Tier)
	if err != nil {
		return domain.CartItemView{}, err
	}

	return domain.CartItemView{
		ID:        r.ID,
		ItemID:    item.ID,
		ItemKind:  item.Kind,
		ItemName:  item.Name,
		Date:      r.Date,
		Time:      r.Time,
		Quantity:  r.Quantity,
		Tier:      r.Tier,
		UnitPrice: price,
		Total:     price * int64(r.Quantity),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}, nil
}
