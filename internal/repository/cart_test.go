package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_GetOrCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).
		WithArgs(sqlmock.AnyArg(), "u1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).AddRow("c1", "u1", now))

	cart, err := repo.GetOrCreate(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "c1", cart.ID)
	assert.Equal(t, "u1", cart.UserID)
}

func TestCartRepository_GetByUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM carts")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}))

	_, err := repo.GetByUser(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}
