package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/domain"
)

type CartStore struct {
	s *Store
}

func (cs *CartStore) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	s := cs.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[userID]; ok {
		res := *c
		return &res, nil
	}

	c := &domain.Cart{ID: uuid.New().String(), UserID: userID, CreatedAt: s.now()}
	s.carts[userID] = c

	onRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.carts[userID] == c {
			delete(s.carts, userID)
		}
	})

	res := *c
	return &res, nil
}

func (cs *CartStore) GetByUser(_ context.Context, userID string) (*domain.Cart, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	c, ok := cs.s.carts[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	res := *c
	return &res, nil
}
