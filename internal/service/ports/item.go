package ports

import (
	"context"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.BookableItem) error
	GetByID(ctx context.Context, id string) (*domain.BookableItem, error)
	List(ctx context.Context) ([]*domain.BookableItem, error)
	Update(ctx context.Context, item *domain.BookableItem) error
	Delete(ctx context.Context, id string) error
}
