package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/repository/memory"
	"github.com/stpnv0/TourBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testItemConfig = ItemConfig{IntervalMinutes: 60, MaxRangeDays: 366}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func passthroughTx(t *testing.T) *mocks.MockTransactor {
	tx := mocks.NewMockTransactor(t)
	tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	return tx
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.ReservationEvent) error { return nil }

type nopNotifier struct{}

func (nopNotifier) NotifyHoldExpired(context.Context, *domain.User, *domain.BookableItem, *domain.Reservation) {
}

func (nopNotifier) NotifyCheckoutConfirmed(context.Context, *domain.User, []domain.CartItemView) {}

var (
	testDay  = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	testNine = domain.NewTimeOfDay(9, 0)
	testKey  = domain.NewLedgerKey("i1", testDay, testNine)
)

// harness wires the services over the in-memory store.
type harness struct {
	store        *memory.Store
	items        *ItemService
	reservations *ReservationService
	carts        *CartService
	item         *domain.BookableItem
}

// newHarness creates a 09:00-11:00 item of the given capacity seeded for testDay.
func newHarness(t *testing.T, capacity int) *harness {
	t.Helper()
	log := newTestLogger(t)
	store := memory.New()

	rs := NewReservationService(
		store.Ledger(), store.Reservations(), store, store.Items(), store.Users(),
		nopNotifier{}, nopPublisher{}, log,
		ReservationConfig{HoldTTL: 15 * time.Minute, ExpireBatch: 100},
	)
	h := &harness{
		store:        store,
		items:        NewItemService(store.Items(), store.Ledger(), store.Reservations(), store, nopPublisher{}, log, testItemConfig),
		reservations: rs,
		carts: NewCartService(
			store.Carts(), store.Reservations(), rs, store.Items(), store.Users(), store,
			nopNotifier{}, log, domain.TierC,
		),
	}

	item, err := h.items.Create(context.Background(), domain.CreateItemInput{
		Kind:         domain.ItemKindTour,
		Name:         "Old Town",
		StartTime:    domain.NewTimeOfDay(9, 0),
		EndTime:      domain.NewTimeOfDay(11, 0),
		Capacity:     capacity,
		Prices:       domain.Prices{A: 3000, B: 2000, C: 1000},
		Availability: &domain.DateRange{From: testDay, To: testDay},
	})
	require.NoError(t, err)
	h.item = item

	return h
}

func (h *harness) key() domain.LedgerKey {
	return domain.NewLedgerKey(h.item.ID, testDay, testNine)
}

func (h *harness) reserve(cartID string, qty int) (*domain.Reservation, error) {
	return h.reservations.Reserve(context.Background(), domain.ReserveInput{
		CartID:   cartID,
		UserID:   "u-" + cartID,
		ItemID:   h.item.ID,
		Date:     testDay,
		Time:     testNine,
		Quantity: qty,
		Tier:     domain.TierA,
	})
}

func (h *harness) remaining(t *testing.T) int {
	t.Helper()
	e, err := h.store.Ledger().Get(context.Background(), h.key())
	require.NoError(t, err)
	return e.Remaining
}

// deducted sums the quantities of Held and Confirmed reservations on the harness slot.
func (h *harness) deducted(t *testing.T) int {
	t.Helper()
	rs, err := h.store.Reservations().ListByItem(context.Background(), h.item.ID, nil, domain.DeductingStatuses)
	require.NoError(t, err)
	sum := 0
	for _, r := range rs {
		if r.Time == testNine && r.Date.Equal(testDay) {
			sum += r.Quantity
		}
	}
	return sum
}
