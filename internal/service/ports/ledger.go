package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

// LedgerRepo owns per-(item, date, slot) capacity counters.
// TryDecrement and Increment are single atomic read-modify-writes on one entry.
type LedgerRepo interface {
	Seed(ctx context.Context, entries []domain.LedgerEntry) (int, error)
	Get(ctx context.Context, key domain.LedgerKey) (*domain.LedgerEntry, error)
	TryDecrement(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error)
	Increment(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error)
	ListByItem(ctx context.Context, itemID string, from, to time.Time) ([]*domain.LedgerEntry, error)
	DeleteRange(ctx context.Context, itemID string, from, to time.Time) (int, error)
	DeleteByItem(ctx context.Context, itemID string) (int, error)
}
