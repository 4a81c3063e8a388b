package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindHeld(ctx context.Context, cartID string, key domain.LedgerKey) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) (*domain.Reservation, error)
	ListByCart(ctx context.Context, cartID string, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	ListByItem(ctx context.Context, itemID string, dates *domain.DateRange, statuses []domain.ReservationStatus) ([]*domain.Reservation, error)
	ListHeldBefore(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Reservation, error)
	ReleaseHeld(ctx context.Context, itemID string, dates *domain.DateRange) ([]*domain.Reservation, error)
}

// ReservationManager is the hold lifecycle consumed by the cart.
type ReservationManager interface {
	Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Reservation, error)
	Release(ctx context.Context, id string) (*domain.Reservation, error)
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
}
