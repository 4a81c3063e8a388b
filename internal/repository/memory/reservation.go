package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type ReservationStore struct {
	s *Store
}

func holdKeyOf(r *domain.Reservation) holdKey {
	return holdKey{cartID: r.CartID, slot: keyOf(r.Key())}
}

// Create refuses a Held reservation whose ledger entry is gone or was replaced
// after this transaction decremented it, so a hold always matches a deduction.
func (rs *ReservationStore) Create(ctx context.Context, r *domain.Reservation) error {
	s := rs.s
	s.resMu.Lock()
	defer s.resMu.Unlock()

	if _, ok := s.reservations[r.ID]; ok {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}

	stored := *r
	stored.Date = domain.DateOnly(stored.Date)
	if stored.Status == domain.ReservationStatusHeld {
		hk := holdKeyOf(&stored)
		if _, ok := s.held[hk]; ok {
			return domain.ErrHoldConflict
		}
		if !s.liveSlot(ctx, hk.slot) {
			return domain.ErrSlotNotFound
		}
		s.held[hk] = stored.ID
	}
	s.reservations[stored.ID] = &stored

	onRollback(ctx, func() {
		s.resMu.Lock()
		defer s.resMu.Unlock()
		delete(s.reservations, stored.ID)
		if hk := holdKeyOf(&stored); s.held[hk] == stored.ID {
			delete(s.held, hk)
		}
	})

	return nil
}

func (rs *ReservationStore) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	rs.s.resMu.RLock()
	defer rs.s.resMu.RUnlock()

	r, ok := rs.s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	res := *r
	return &res, nil
}

func (rs *ReservationStore) FindHeld(_ context.Context, cartID string, key domain.LedgerKey) (*domain.Reservation, error) {
	rs.s.resMu.RLock()
	defer rs.s.resMu.RUnlock()

	id, ok := rs.s.held[holdKey{cartID: cartID, slot: keyOf(key)}]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	res := *rs.s.reservations[id]
	return &res, nil
}

func (rs *ReservationStore) UpdateStatus(
	ctx context.Context,
	id string,
	from, to domain.ReservationStatus,
) (*domain.Reservation, error) {
	if !from.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStateTransition, from, to)
	}

	s := rs.s
	s.resMu.Lock()
	defer s.resMu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Status != from {
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidStateTransition, r.Status)
	}

	prev := *r
	s.transition(r, to)

	onRollback(ctx, func() {
		s.resMu.Lock()
		defer s.resMu.Unlock()
		if cur, ok := s.reservations[id]; ok && cur.Status == to {
			*cur = prev
			if prev.Status == domain.ReservationStatusHeld {
				s.held[holdKeyOf(cur)] = id
			}
		}
	})

	res := *r
	return &res, nil
}

// transition must be called with resMu held.
func (s *Store) transition(r *domain.Reservation, to domain.ReservationStatus) {
	if r.Status == domain.ReservationStatusHeld {
		if hk := holdKeyOf(r); s.held[hk] == r.ID {
			delete(s.held, hk)
		}
	}
	r.Status = to
	r.UpdatedAt = s.now()
}

func (rs *ReservationStore) ListByCart(
	_ context.Context,
	cartID string,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	return rs.list(func(r *domain.Reservation) bool {
		if r.CartID != cartID {
			return false
		}
		return slices.Contains(statuses, r.Status)
	}), nil
}

func (rs *ReservationStore) ListByItem(
	_ context.Context,
	itemID string,
	dates *domain.DateRange,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	return rs.list(func(r *domain.Reservation) bool {
		if r.ItemID != itemID || (dates != nil && !dates.Contains(r.Date)) {
			return false
		}
		return slices.Contains(statuses, r.Status)
	}), nil
}

func (rs *ReservationStore) ListHeldBefore(_ context.Context, cutoff time.Time, limit int) ([]*domain.Reservation, error) {
	res := rs.list(func(r *domain.Reservation) bool {
		return r.Status == domain.ReservationStatusHeld && r.CreatedAt.Before(cutoff)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (rs *ReservationStore) list(match func(*domain.Reservation) bool) []*domain.Reservation {
	rs.s.resMu.RLock()
	var res []*domain.Reservation
	for _, r := range rs.s.reservations {
		if match(r) {
			cp := *r
			res = append(res, &cp)
		}
	}
	rs.s.resMu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res
}

// ReleaseHeld marks the item's Held reservations as Released without touching the
// ledger. dates limits the update to a slot date range; nil means all dates.
func (rs *ReservationStore) ReleaseHeld(
	ctx context.Context,
	itemID string,
	dates *domain.DateRange,
) ([]*domain.Reservation, error) {
	s := rs.s
	s.resMu.Lock()
	defer s.resMu.Unlock()

	var released []*domain.Reservation
	var ids []string
	for id, r := range s.reservations {
		if r.ItemID != itemID || r.Status != domain.ReservationStatusHeld {
			continue
		}
		if dates != nil && !dates.Contains(r.Date) {
			continue
		}
		s.transition(r, domain.ReservationStatusReleased)
		ids = append(ids, id)
		cp := *r
		released = append(released, &cp)
	}

	if len(ids) > 0 {
		onRollback(ctx, func() {
			s.resMu.Lock()
			defer s.resMu.Unlock()
			for _, id := range ids {
				if cur, ok := s.reservations[id]; ok && cur.Status == domain.ReservationStatusReleased {
					cur.Status = domain.ReservationStatusHeld
					s.held[holdKeyOf(cur)] = id
				}
			}
		})
	}

	return released, nil
}
