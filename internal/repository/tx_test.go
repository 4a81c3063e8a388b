package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	txm := NewTxManager(db)
	ledger := NewLedgerRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ledger_entries")).
		WithArgs("i1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := txm.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := ledger.DeleteByItem(ctx, "i1")
		return err
	})

	require.NoError(t, err)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txm := NewTxManager(db)
	ledger := NewLedgerRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE ledger_entries")).
		WillReturnRows(ledgerRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := txm.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := ledger.TryDecrement(ctx, testKey, 100)
		return err
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestTxManager_NestedCallJoinsOuterTx(t *testing.T) {
	db, mock := newMockDB(t)
	txm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := txm.WithinTx(context.Background(), func(ctx context.Context) error {
		return txm.WithinTx(ctx, func(ctx context.Context) error {
			assert.NotNil(t, txFromContext(ctx))
			return boom
		})
	})

	assert.ErrorIs(t, err, boom)
}
