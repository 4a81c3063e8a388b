package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type UserStore struct {
	s *Store
}

func (us *UserStore) Create(ctx context.Context, user *domain.User) error {
	s := us.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	if _, ok := s.users[user.ID]; ok {
		return domain.ErrUsernameTaken
	}
	stored := *user
	s.users[user.ID] = &stored

	onRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.users, stored.ID)
	})

	return nil
}

func (us *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	u, ok := us.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	res := *u
	return &res, nil
}

func (us *UserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	for _, u := range us.s.users {
		if u.Username == username {
			res := *u
			return &res, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (us *UserStore) List(_ context.Context) ([]*domain.User, error) {
	us.s.mu.RLock()
	res := make([]*domain.User, 0, len(us.s.users))
	for _, u := range us.s.users {
		cp := *u
		res = append(res, &cp)
	}
	us.s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool { return res[i].Username < res[j].Username })
	return res, nil
}

func (us *UserStore) UpdateTier(ctx context.Context, id string, tier domain.Tier) (*domain.User, error) {
	s := us.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	prev := u.Tier
	u.Tier = tier

	onRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		u.Tier = prev
	})

	res := *u
	return &res, nil
}
