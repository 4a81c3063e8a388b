package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var (
	testDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	testKey  = domain.NewLedgerKey("i1", testDate, domain.NewTimeOfDay(9, 0))
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &dbpg.DB{Master: db}, mock
}

func ledgerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"item_id", "slot_date", "slot_time", "total_capacity", "remaining", "created_at", "updated_at",
	})
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "cart_id", "user_id", "item_id", "slot_date", "slot_time",
		"quantity", "tier", "status", "created_at", "updated_at",
	})
}
