package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/service/ports"
	"github.com/stpnv0/TourBooker/internal/slots"
	"github.com/wb-go/wbf/logger"
)

type ItemConfig struct {
	IntervalMinutes int
	// MaxRangeDays caps the number of days a seed, regenerate or availability call may span.
	MaxRangeDays int
}

type ItemService struct {
	items        ports.ItemRepo
	ledger       ports.LedgerRepo
	reservations ports.ReservationRepo
	tx           ports.Transactor
	publisher    ports.EventPublisher
	logger       logger.Logger
	cfg          ItemConfig
}

func NewItemService(
	items ports.ItemRepo,
	ledger ports.LedgerRepo,
	reservations ports.ReservationRepo,
	tx ports.Transactor,
	publisher ports.EventPublisher,
	logger logger.Logger,
	cfg ItemConfig,
) *ItemService {
	return &ItemService{
		items:        items,
		ledger:       ledger,
		reservations: reservations,
		tx:           tx,
		publisher:    publisher,
		logger:       logger,
		cfg:          cfg,
	}
}

func (s *ItemService) validateItem(input domain.CreateItemInput) error {
	if !input.Kind.Valid() {
		return fmt.Errorf("%w: unknown item kind %q", domain.ErrValidation, input.Kind)
	}
	if err := validateDetails(domain.UpdateItemInput{
		Name:      input.Name,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Capacity:  input.Capacity,
		Prices:    input.Prices,
	}); err != nil {
		return err
	}
	if input.Availability != nil {
		return s.validateRange(input.Availability.From, input.Availability.To)
	}
	return nil
}

func validateDetails(input domain.UpdateItemInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if !input.StartTime.Valid() || !input.EndTime.Valid() {
		return fmt.Errorf("%w: operating hours out of range", domain.ErrValidation)
	}
	if input.Prices.A < 0 || input.Prices.B < 0 || input.Prices.C < 0 {
		return fmt.Errorf("%w: prices must not be negative", domain.ErrValidation)
	}
	return nil
}

func (s *ItemService) validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: date range is required", domain.ErrValidation)
	}
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return fmt.Errorf("%w: range ends before it starts", domain.ErrValidation)
	}
	if s.cfg.MaxRangeDays > 0 && to.Sub(from) >= time.Duration(s.cfg.MaxRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: range spans more than %d days", domain.ErrValidation, s.cfg.MaxRangeDays)
	}
	return nil
}

// Create stores the item and, when an availability window is given, seeds its ledger
// in the same transaction.
func (s *ItemService) Create(ctx context.Context, input domain.CreateItemInput) (*domain.BookableItem, error) {
	if err := s.validateItem(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.BookableItem{
		ID:          uuid.New().String(),
		Kind:        input.Kind,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Capacity:    input.Capacity,
		Prices:      input.Prices,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.items.Create(ctx, item); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if input.Availability == nil {
			return nil
		}
		_, err := s.seed(ctx, item, input.Availability.From, input.Availability.To)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "item created",
		logger.String("item_id", item.ID),
		logger.String("kind", string(item.Kind)),
		logger.Int("capacity", item.Capacity),
	)

	return item, nil
}

func (s *ItemService) GetByID(ctx context.Context, id string) (*domain.BookableItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context) ([]*domain.BookableItem, error) {
	return s.items.List(ctx)
}

// Update replaces the item's name, description, hours, capacity and prices.
func (s *ItemService) Update(ctx context.Context, id string, input domain.UpdateItemInput) (*domain.BookableItem, error) {
	if err := validateDetails(input); err != nil {
		return nil, err
	}

	var item *domain.BookableItem
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if item, err = s.items.GetByID(ctx, id); err != nil {
			return err
		}

		item.Name = strings.TrimSpace(input.Name)
		item.Description = input.Description
		item.StartTime = input.StartTime
		item.EndTime = input.EndTime
		item.Capacity = input.Capacity
		item.Prices = input.Prices
		item.UpdatedAt = time.Now().UTC()

		if err = s.items.Update(ctx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "item updated",
		logger.String("item_id", item.ID),
		logger.Int("capacity", item.Capacity),
		logger.String("hours", item.StartTime.String()+"-"+item.EndTime.String()),
	)

	return item, nil
}

// SeedLedger creates ledger entries for every slot of the item in [from, to].
// Existing entries are kept as they are. It returns the number of created entries.
func (s *ItemService) SeedLedger(ctx context.Context, itemID string, from, to time.Time) (int, error) {
	if err := s.validateRange(from, to); err != nil {
		return 0, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}

	return s.seed(ctx, item, from, to)
}

func (s *ItemService) seed(ctx context.Context, item *domain.BookableItem, from, to time.Time) (int, error) {
	seq, err := slots.Generate(item, from, to, s.cfg.IntervalMinutes)
	if err != nil {
		return 0, err
	}

	entries := slots.Entries(item, seq, time.Now().UTC())
	if len(entries) == 0 {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "no slots generated",
			logger.String("item_id", item.ID),
			logger.String("start_time", item.StartTime.String()),
			logger.String("end_time", item.EndTime.String()),
		)
		return 0, nil
	}

	created, err := s.ledger.Seed(ctx, entries)
	if err != nil {
		return 0, fmt.Errorf("seed ledger: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "ledger seeded",
		logger.String("item_id", item.ID),
		logger.String("from", from.Format(time.DateOnly)),
		logger.String("to", to.Format(time.DateOnly)),
		logger.Int("slots", len(entries)),
		logger.Int("created", created),
	)

	return created, nil
}

// RegenerateAvailability rebuilds the ledger of [from, to] from the item's current
// hours and capacity. Held reservations in the range are force-released.
func (s *ItemService) RegenerateAvailability(
	ctx context.Context,
	itemID string,
	from, to time.Time,
) (*domain.AvailabilityChange, error) {
	if err := s.validateRange(from, to); err != nil {
		return nil, err
	}

	var (
		change   domain.AvailabilityChange
		released []*domain.Reservation
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}

		// ledger before holds: a racing reserve either commits first or finds no slot
		if change.Purged, err = s.ledger.DeleteRange(ctx, itemID, from, to); err != nil {
			return fmt.Errorf("purge ledger: %w", err)
		}
		if released, err = s.reservations.ReleaseHeld(ctx, itemID, &domain.DateRange{From: from, To: to}); err != nil {
			return fmt.Errorf("release holds: %w", err)
		}
		change.Released = len(released)

		if change.Seeded, err = s.seed(ctx, item, from, to); err != nil {
			return err
		}
		return s.reapplyConfirmed(ctx, itemID, from, to)
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "availability regenerated",
		logger.String("item_id", itemID),
		logger.Int("released", change.Released),
		logger.Int("purged", change.Purged),
		logger.Int("seeded", change.Seeded),
	)
	s.publishReleased(ctx, released)

	return &change, nil
}

// reapplyConfirmed deducts confirmed bookings from freshly seeded entries so the
// rebuilt ledger still accounts for them.
func (s *ItemService) reapplyConfirmed(ctx context.Context, itemID string, from, to time.Time) error {
	confirmed, err := s.reservations.ListByItem(ctx, itemID, &domain.DateRange{From: from, To: to},
		[]domain.ReservationStatus{domain.ReservationStatusConfirmed})
	if err != nil {
		return fmt.Errorf("list confirmed: %w", err)
	}

	for _, r := range confirmed {
		_, err = s.ledger.TryDecrement(ctx, r.Key(), r.Quantity)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrSlotNotFound):
			s.logger.LogAttrs(ctx, logger.WarnLevel, "confirmed booking outside new schedule",
				logger.String("reservation_id", r.ID),
				logger.String("date", r.Date.Format(time.DateOnly)),
				logger.String("time", r.Time.String()),
			)
		case errors.Is(err, domain.ErrInsufficientCapacity):
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "confirmed bookings exceed new capacity",
				logger.String("reservation_id", r.ID),
				logger.String("date", r.Date.Format(time.DateOnly)),
				logger.String("time", r.Time.String()),
				logger.Int("quantity", r.Quantity),
			)
		default:
			return fmt.Errorf("reapply confirmed: %w", err)
		}
	}

	return nil
}

// Delete removes the item, its ledger entries and its Held reservations in one
// transaction. Confirmed reservations are kept as records.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	var (
		released []*domain.Reservation
		purged   int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.items.GetByID(ctx, id); err != nil {
			return err
		}

		var err error
		if purged, err = s.ledger.DeleteByItem(ctx, id); err != nil {
			return fmt.Errorf("purge ledger: %w", err)
		}
		if released, err = s.reservations.ReleaseHeld(ctx, id, nil); err != nil {
			return fmt.Errorf("release holds: %w", err)
		}
		if err = s.items.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "item deleted",
		logger.String("item_id", id),
		logger.Int("released", len(released)),
		logger.Int("purged", purged),
	)
	s.publishReleased(ctx, released)

	return nil
}

// Availability lists the item's ledger entries in [from, to].
func (s *ItemService) Availability(ctx context.Context, itemID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	if err := s.validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	return s.ledger.ListByItem(ctx, itemID, from, to)
}

func (s *ItemService) publishReleased(ctx context.Context, released []*domain.Reservation) {
	for _, r := range released {
		evt := domain.NewReservationEvent(domain.ReservationReleased, r)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to publish reservation event",
				logger.String("reservation_id", r.ID),
				logger.String("error", err.Error()),
			)
		}
	}
}
