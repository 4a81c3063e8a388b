package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type LedgerStore struct {
	s *Store
}

func (l *LedgerStore) cell(key domain.LedgerKey) *cell {
	l.s.ledgerMu.RLock()
	defer l.s.ledgerMu.RUnlock()
	return l.s.ledger[keyOf(key)]
}

func (l *LedgerStore) Seed(ctx context.Context, entries []domain.LedgerEntry) (int, error) {
	l.s.ledgerMu.Lock()
	defer l.s.ledgerMu.Unlock()

	created := 0
	for _, e := range entries {
		e.Date = domain.DateOnly(e.Date)
		k := keyOf(e.Key())
		if _, ok := l.s.ledger[k]; ok {
			continue
		}

		c := &cell{entry: e}
		l.s.ledger[k] = c
		created++

		onRollback(ctx, func() {
			l.s.ledgerMu.Lock()
			defer l.s.ledgerMu.Unlock()
			if l.s.ledger[k] == c {
				delete(l.s.ledger, k)
			}
		})
	}

	return created, nil
}

func (l *LedgerStore) Get(_ context.Context, key domain.LedgerKey) (*domain.LedgerEntry, error) {
	c := l.cell(key)
	if c == nil {
		return nil, domain.ErrSlotNotFound
	}

	c.mu.Lock()
	e := c.entry
	c.mu.Unlock()

	return &e, nil
}

func (l *LedgerStore) TryDecrement(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error) {
	c := l.cell(key)
	if c == nil {
		return nil, domain.ErrSlotNotFound
	}

	c.mu.Lock()
	if c.entry.Remaining < quantity {
		c.mu.Unlock()
		return nil, domain.ErrInsufficientCapacity
	}
	c.entry.Remaining -= quantity
	c.entry.UpdatedAt = l.s.now()
	e := c.entry
	c.mu.Unlock()

	recordDecrement(ctx, keyOf(key), c)
	onRollback(ctx, func() {
		c.mu.Lock()
		c.entry.Remaining += quantity
		c.mu.Unlock()
	})

	return &e, nil
}

// Increment adds quantity back, clamping remaining at the total capacity. A clamp
// is reported as *domain.ConsistencyError together with the stored entry.
func (l *LedgerStore) Increment(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error) {
	c := l.cell(key)
	if c == nil {
		return nil, domain.ErrSlotNotFound
	}

	c.mu.Lock()
	prev := c.entry.Remaining
	c.entry.Remaining = min(prev+quantity, c.entry.TotalCapacity)
	c.entry.UpdatedAt = l.s.now()
	added := c.entry.Remaining - prev
	e := c.entry
	c.mu.Unlock()

	onRollback(ctx, func() {
		c.mu.Lock()
		c.entry.Remaining -= added
		c.mu.Unlock()
	})

	if prev+quantity > e.TotalCapacity {
		return &e, &domain.ConsistencyError{
			ItemID:        key.ItemID,
			Date:          key.Date,
			Time:          key.Time,
			Delta:         quantity,
			Remaining:     prev,
			TotalCapacity: e.TotalCapacity,
		}
	}

	return &e, nil
}

func (l *LedgerStore) ListByItem(_ context.Context, itemID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	window := domain.DateRange{From: from, To: to}

	l.s.ledgerMu.RLock()
	var res []*domain.LedgerEntry
	for k, c := range l.s.ledger {
		if k.itemID != itemID {
			continue
		}
		c.mu.Lock()
		e := c.entry
		c.mu.Unlock()
		if window.Contains(e.Date) {
			res = append(res, &e)
		}
	}
	l.s.ledgerMu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.Before(res[j].Date)
		}
		return res[i].Time < res[j].Time
	})

	return res, nil
}

func (l *LedgerStore) DeleteRange(ctx context.Context, itemID string, from, to time.Time) (int, error) {
	window := domain.DateRange{From: from, To: to}
	return l.deleteWhere(ctx, func(k slotKey, date time.Time) bool {
		return k.itemID == itemID && window.Contains(date)
	}), nil
}

func (l *LedgerStore) DeleteByItem(ctx context.Context, itemID string) (int, error) {
	return l.deleteWhere(ctx, func(k slotKey, _ time.Time) bool {
		return k.itemID == itemID
	}), nil
}

func (l *LedgerStore) deleteWhere(ctx context.Context, match func(slotKey, time.Time) bool) int {
	l.s.ledgerMu.Lock()
	defer l.s.ledgerMu.Unlock()

	removed := make(map[slotKey]*cell)
	for k, c := range l.s.ledger {
		if match(k, c.entry.Date) {
			removed[k] = c
			delete(l.s.ledger, k)
		}
	}

	if len(removed) > 0 {
		onRollback(ctx, func() {
			l.s.ledgerMu.Lock()
			defer l.s.ledgerMu.Unlock()
			for k, c := range removed {
				if _, ok := l.s.ledger[k]; !ok {
					l.s.ledger[k] = c
				}
			}
		})
	}

	return len(removed)
}
