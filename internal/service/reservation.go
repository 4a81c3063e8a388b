package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/stpnv0/TourBooker/internal/service"

type ReservationConfig struct {
	HoldTTL     time.Duration
	ExpireBatch int
}

type ReservationService struct {
	ledger       ports.LedgerRepo
	reservations ports.ReservationRepo
	tx           ports.Transactor
	items        ports.ItemRepo
	users        ports.UserRepo
	notifier     ports.ReservationNotifier
	publisher    ports.EventPublisher
	logger       logger.Logger
	cfg          ReservationConfig
	tracer       trace.Tracer
}

func NewReservationService(
	ledger ports.LedgerRepo,
	reservations ports.ReservationRepo,
	tx ports.Transactor,
	items ports.ItemRepo,
	users ports.UserRepo,
	notifier ports.ReservationNotifier,
	publisher ports.EventPublisher,
	logger logger.Logger,
	cfg ReservationConfig,
) *ReservationService {
	return &ReservationService{
		ledger:       ledger,
		reservations: reservations,
		tx:           tx,
		items:        items,
		users:        users,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
		cfg:          cfg,
		tracer:       otel.Tracer(tracerName),
	}
}

// Reserve deducts quantity from the slot and records a Held reservation, all or nothing.
// A second Reserve for a slot the cart already holds merges into one hold: the old hold
// is Released and a new one carries old+new quantity. Only the added quantity is taken
// from the ledger, so a failed merge leaves the old hold untouched.
func (s *ReservationService) Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Reservation, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if in.CartID == "" {
		return nil, fmt.Errorf("%w: cart is required", domain.ErrValidation)
	}
	if !in.Tier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, in.Tier)
	}

	key := in.Key()
	ctx, span := s.tracer.Start(ctx, "ReservationService.Reserve", trace.WithAttributes(
		attribute.String("item.id", key.ItemID),
		attribute.String("slot.date", key.Date.Format(time.DateOnly)),
		attribute.String("slot.time", key.Time.String()),
		attribute.Int("quantity", in.Quantity),
	))
	defer span.End()

	var (
		created *domain.Reservation
		merged  *domain.Reservation
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.reservations.FindHeld(ctx, in.CartID, key)
		if err != nil && !errors.Is(err, domain.ErrReservationNotFound) {
			return fmt.Errorf("find held: %w", err)
		}

		if _, err = s.ledger.TryDecrement(ctx, key, in.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientCapacity) {
				return fmt.Errorf("%w: %s %s", domain.ErrSlotUnavailable, key.Date.Format(time.DateOnly), key.Time)
			}
			return err
		}

		quantity := in.Quantity
		if existing != nil {
			merged, err = s.reservations.UpdateStatus(ctx, existing.ID, domain.ReservationStatusHeld, domain.ReservationStatusReleased)
			if err != nil {
				return fmt.Errorf("release merged hold: %w", err)
			}
			quantity += existing.Quantity
		}

		now := time.Now().UTC()
		created = &domain.Reservation{
			ID:        uuid.New().String(),
			CartID:    in.CartID,
			UserID:    in.UserID,
			ItemID:    key.ItemID,
			Date:      key.Date,
			Time:      key.Time,
			Quantity:  quantity,
			Tier:      in.Tier,
			Status:    domain.ReservationStatusHeld,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err = s.reservations.Create(ctx, created); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reserve: %w", err)
	}

	if merged != nil {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "holds merged",
			logger.String("released_id", merged.ID),
			logger.String("reservation_id", created.ID),
			logger.Int("quantity", created.Quantity),
		)
		s.publish(ctx, domain.NewReservationEvent(domain.ReservationReleased, merged))
	}
	s.logger.LogAttrs(ctx, logger.InfoLevel, "hold placed",
		logger.String("reservation_id", created.ID),
		logger.String("cart_id", created.CartID),
		logger.String("item_id", created.ItemID),
		logger.String("date", created.Date.Format(time.DateOnly)),
		logger.String("time", created.Time.String()),
		logger.Int("quantity", created.Quantity),
	)
	s.publish(ctx, domain.NewReservationEvent(domain.ReservationHeld, created))

	return created, nil
}

// Release returns a Held reservation's quantity to the ledger. Releasing a reservation
// that is not Held fails with ErrInvalidStateTransition and leaves the ledger as is.
// If the ledger clamps the increment the release is kept and a *ConsistencyError is returned.
func (s *ReservationService) Release(ctx context.Context, id string) (*domain.Reservation, error) {
	ctx, span := s.tracer.Start(ctx, "ReservationService.Release", trace.WithAttributes(
		attribute.String("reservation.id", id),
	))
	defer span.End()

	var (
		released    *domain.Reservation
		consistency *domain.ConsistencyError
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		released, err = s.reservations.UpdateStatus(ctx, id, domain.ReservationStatusHeld, domain.ReservationStatusReleased)
		if err != nil {
			return err
		}

		_, err = s.ledger.Increment(ctx, released.Key(), released.Quantity)
		switch {
		case err == nil:
		case errors.As(err, &consistency):
		case errors.Is(err, domain.ErrSlotNotFound):
			s.logger.LogAttrs(ctx, logger.WarnLevel, "released hold has no ledger entry",
				logger.String("reservation_id", released.ID),
				logger.String("item_id", released.ItemID),
				logger.String("date", released.Date.Format(time.DateOnly)),
				logger.String("time", released.Time.String()),
			)
		default:
			return fmt.Errorf("increment ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStateTransition) {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "release rejected",
				logger.String("reservation_id", id),
				logger.String("error", err.Error()),
			)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("release: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "hold released",
		logger.String("reservation_id", released.ID),
		logger.String("item_id", released.ItemID),
		logger.Int("quantity", released.Quantity),
	)
	s.publish(ctx, domain.NewReservationEvent(domain.ReservationReleased, released))

	if consistency != nil {
		s.logConsistency(ctx, consistency)
		span.RecordError(consistency)
		span.SetStatus(codes.Error, consistency.Error())
		return released, consistency
	}

	return released, nil
}

// Confirm moves a Held reservation to Confirmed. The ledger is not touched.
// Inside a checkout the confirmed event is published only after the checkout commits.
func (s *ReservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	ctx, span := s.tracer.Start(ctx, "ReservationService.Confirm", trace.WithAttributes(
		attribute.String("reservation.id", id),
	))
	defer span.End()

	confirmed, err := s.reservations.UpdateStatus(ctx, id, domain.ReservationStatusHeld, domain.ReservationStatusConfirmed)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStateTransition) {
			s.logger.LogAttrs(ctx, logger.WarnLevel, "confirm rejected",
				logger.String("reservation_id", id),
				logger.String("error", err.Error()),
			)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("confirm: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "hold confirmed",
		logger.String("reservation_id", confirmed.ID),
		logger.String("item_id", confirmed.ItemID),
		logger.Int("quantity", confirmed.Quantity),
	)
	evt := domain.NewReservationEvent(domain.ReservationConfirmed, confirmed)
	runOrDefer(ctx, func() { s.publish(context.WithoutCancel(ctx), evt) })

	return confirmed, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// ExpireStale releases Held reservations older than the hold TTL and notifies their owners.
func (s *ReservationService) ExpireStale(ctx context.Context) ([]*domain.Reservation, error) {
	cutoff := time.Now().UTC().Add(-s.cfg.HoldTTL)
	stale, err := s.reservations.ListHeldBefore(ctx, cutoff, s.cfg.ExpireBatch)
	if err != nil {
		return nil, fmt.Errorf("list stale holds: %w", err)
	}

	var expired []*domain.Reservation
	for _, r := range stale {
		released, err := s.Release(ctx, r.ID)
		switch {
		case err == nil, errors.Is(err, domain.ErrConsistency):
			expired = append(expired, released)
		case errors.Is(err, domain.ErrInvalidStateTransition):
			// checked out or removed meanwhile
		default:
			return expired, fmt.Errorf("expire hold %s: %w", r.ID, err)
		}
	}

	if len(expired) > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "stale holds expired",
			logger.Int("count", len(expired)),
			logger.Duration("hold_ttl", s.cfg.HoldTTL),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *ReservationService) notifyExpired(ctx context.Context, expired []*domain.Reservation) {
	for _, r := range expired {
		user, err := s.users.GetByID(ctx, r.UserID)
		if err != nil {
			s.logger.LogAttrs(ctx, logger.DebugLevel, "no user for expiry notification",
				logger.String("user_id", r.UserID),
			)
			continue
		}

		item, err := s.items.GetByID(ctx, r.ItemID)
		if err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get item for expiry notification",
				logger.String("item_id", r.ItemID),
			)
			continue
		}

		s.notifier.NotifyHoldExpired(ctx, user, item, r)
	}
}

func (s *ReservationService) publish(ctx context.Context, evt domain.ReservationEvent) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "failed to publish reservation event",
			logger.String("type", string(evt.Type)),
			logger.String("reservation_id", evt.ReservationID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) logConsistency(ctx context.Context, ce *domain.ConsistencyError) {
	s.logger.LogAttrs(ctx, logger.ErrorLevel, "ledger consistency violated",
		logger.String("item_id", ce.ItemID),
		logger.String("date", ce.Date.Format(time.DateOnly)),
		logger.String("time", ce.Time.String()),
		logger.Int("delta", ce.Delta),
		logger.Int("remaining", ce.Remaining),
		logger.Int("total_capacity", ce.TotalCapacity),
	)
}
