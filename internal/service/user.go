package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/service/ports"
)

type UserService struct {
	repo        ports.UserRepo
	defaultTier domain.Tier
}

func NewUserService(repo ports.UserRepo, defaultTier domain.Tier) *UserService {
	return &UserService{repo: repo, defaultTier: defaultTier}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	tier := input.Tier
	if tier == "" {
		tier = s.defaultTier
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		Tier:           tier,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateTier moves the user to another pricing tier. Existing holds keep the tier
// they were placed with.
func (s *UserService) UpdateTier(ctx context.Context, id string, tier domain.Tier) (*domain.User, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, tier)
	}

	user, err := s.repo.UpdateTier(ctx, id, tier)
	if err != nil {
		return nil, fmt.Errorf("update tier: %w", err)
	}

	return user, nil
}
