package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_UsernameTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.User{ID: "u1", Username: "alice", Tier: domain.TierB})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "tier", "telegram_chat_id", "created_at"}).
			AddRow("u1", "alice", "C", nil, now))

	u, err := repo.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.TierC, u.Tier)
	assert.Nil(t, u.TelegramChatID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "tier", "telegram_chat_id", "created_at"}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UpdateTier(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs("u1", "A").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "tier", "telegram_chat_id", "created_at"}).
			AddRow("u1", "alice", "A", nil, now))

	u, err := repo.UpdateTier(context.Background(), "u1", domain.TierA)

	require.NoError(t, err)
	assert.Equal(t, domain.TierA, u.Tier)
	assert.Equal(t, "alice", u.Username)
}

func TestUserRepository_UpdateTier_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "tier", "telegram_chat_id", "created_at"}))

	_, err := repo.UpdateTier(context.Background(), "missing", domain.TierB)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
