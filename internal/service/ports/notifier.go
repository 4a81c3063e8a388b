package ports

import (
	"context"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyHoldExpired(ctx context.Context, user *domain.User, item *domain.BookableItem, r *domain.Reservation)
	NotifyCheckoutConfirmed(ctx context.Context, user *domain.User, items []domain.CartItemView)
}

type EventPublisher interface {
	Publish(ctx context.Context, evt domain.ReservationEvent) error
}
