package ports

import (
	"context"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type CartRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
}
