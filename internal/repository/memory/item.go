package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type ItemStore struct {
	s *Store
}

func (is *ItemStore) Create(ctx context.Context, item *domain.BookableItem) error {
	s := is.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; ok {
		return fmt.Errorf("item %s already exists", item.ID)
	}
	stored := *item
	s.items[item.ID] = &stored

	onRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.items, stored.ID)
	})

	return nil
}

func (is *ItemStore) GetByID(_ context.Context, id string) (*domain.BookableItem, error) {
	is.s.mu.RLock()
	defer is.s.mu.RUnlock()

	it, ok := is.s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	res := *it
	return &res, nil
}

func (is *ItemStore) List(_ context.Context) ([]*domain.BookableItem, error) {
	is.s.mu.RLock()
	res := make([]*domain.BookableItem, 0, len(is.s.items))
	for _, it := range is.s.items {
		cp := *it
		res = append(res, &cp)
	}
	is.s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if res[i].Kind != res[j].Kind {
			return res[i].Kind < res[j].Kind
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (is *ItemStore) Update(ctx context.Context, item *domain.BookableItem) error {
	s := is.s
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	stored := *item
	stored.Kind = prev.Kind
	stored.CreatedAt = prev.CreatedAt
	s.items[item.ID] = &stored

	onRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.items[prev.ID]; ok {
			s.items[prev.ID] = prev
		}
	})

	return nil
}

func (is *ItemStore) Delete(ctx context.Context, id string) error {
	s := is.s
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	delete(s.items, id)

	onRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items[id] = it
	})

	return nil
}
