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

func TestLedgerRepository_TryDecrement_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WithArgs("i1", "2025-07-01", "09:00", 3).
		WillReturnRows(ledgerRows().AddRow("i1", testDate, "09:00", 10, 7, now, now))

	e, err := repo.TryDecrement(context.Background(), testKey, 3)

	require.NoError(t, err)
	assert.Equal(t, 7, e.Remaining)
	assert.Equal(t, 10, e.TotalCapacity)
	assert.Equal(t, domain.NewTimeOfDay(9, 0), e.Time)
}

func TestLedgerRepository_TryDecrement_InsufficientCapacity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WithArgs("i1", "2025-07-01", "09:00", 6).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("i1", "2025-07-01", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WithArgs("i1", "2025-07-01", "09:00", 6).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("i1", "2025-07-01", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.TryDecrement(context.Background(), testKey, 6)

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestLedgerRepository_TryDecrement_RetriesAfterReseed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)
	now := time.Now()

	// first UPDATE raced a delete+reseed and matched nothing
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WithArgs("i1", "2025-07-01", "09:00", 4).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WithArgs("i1", "2025-07-01", "09:00", 4).
		WillReturnRows(ledgerRows().AddRow("i1", testDate, "09:00", 10, 6, now, now))

	e, err := repo.TryDecrement(context.Background(), testKey, 4)

	require.NoError(t, err)
	assert.Equal(t, 6, e.Remaining)
}

func TestLedgerRepository_TryDecrement_GoneAfterRetry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.TryDecrement(context.Background(), testKey, 4)

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestLedgerRepository_TryDecrement_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.TryDecrement(context.Background(), testKey, 1)

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerRepository_Increment_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"prev", "item_id", "slot_date", "slot_time", "total_capacity", "remaining", "created_at", "updated_at",
	}).AddRow(5, "i1", testDate, "09:00", 10, 8, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries l")).
		WithArgs("i1", "2025-07-01", "09:00", 3).
		WillReturnRows(rows)

	e, err := repo.Increment(context.Background(), testKey, 3)

	require.NoError(t, err)
	assert.Equal(t, 8, e.Remaining)
}

func TestLedgerRepository_Increment_ClampedIsConsistencyError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"prev", "item_id", "slot_date", "slot_time", "total_capacity", "remaining", "created_at", "updated_at",
	}).AddRow(9, "i1", testDate, "09:00", 10, 10, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries l")).
		WithArgs("i1", "2025-07-01", "09:00", 3).
		WillReturnRows(rows)

	e, err := repo.Increment(context.Background(), testKey, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConsistency)
	require.NotNil(t, e)
	assert.Equal(t, 10, e.Remaining)

	var ce *domain.ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 9, ce.Remaining)
	assert.Equal(t, 3, ce.Delta)
	assert.Equal(t, 10, ce.TotalCapacity)
}

func TestLedgerRepository_Increment_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries l")).
		WillReturnRows(sqlmock.NewRows([]string{"prev"}))

	_, err := repo.Increment(context.Background(), testKey, 1)

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestLedgerRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_entries")).
		WithArgs("i1", "2025-07-01", "09:00").
		WillReturnRows(ledgerRows())

	_, err := repo.Get(context.Background(), testKey)

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestLedgerRepository_Seed_GroupsByItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	entries := []domain.LedgerEntry{
		{ItemID: "i1", Date: testDate, Time: domain.NewTimeOfDay(9, 0), TotalCapacity: 10, Remaining: 10},
		{ItemID: "i1", Date: testDate, Time: domain.NewTimeOfDay(10, 0), TotalCapacity: 10, Remaining: 10},
		{ItemID: "i2", Date: testDate, Time: domain.NewTimeOfDay(9, 0), TotalCapacity: 4, Remaining: 4},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_entries")).
		WithArgs("i1", 10, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_entries")).
		WithArgs("i2", 4, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.Seed(context.Background(), entries)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLedgerRepository_DeleteRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ledger_entries")).
		WithArgs("i1", "2025-07-01", "2025-07-03").
		WillReturnResult(sqlmock.NewResult(0, 6))

	n, err := repo.DeleteRange(context.Background(), "i1", testDate, testDate.AddDate(0, 0, 2))

	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestLedgerRepository_ListByItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepo(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY slot_date, slot_time")).
		WithArgs("i1", "2025-07-01", "2025-07-01").
		WillReturnRows(ledgerRows().
			AddRow("i1", testDate, "09:00", 10, 10, now, now).
			AddRow("i1", testDate, "10:00", 10, 0, now, now))

	entries, err := repo.ListByItem(context.Background(), "i1", testDate, testDate)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsOpen())
	assert.False(t, entries[1].IsOpen())
}
