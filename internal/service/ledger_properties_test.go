package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve_ScenarioB_LastUnitsThenFull(t *testing.T) {
	h := newHarness(t, 10)
	_, err := h.reserve("other", 5)
	require.NoError(t, err)
	require.Equal(t, 5, h.remaining(t))

	_, err = h.reserve("c1", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, h.remaining(t))

	_, err = h.reserve("c2", 1)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.Equal(t, 0, h.remaining(t))
}

func TestConfirm_ScenarioC_LedgerUnchanged(t *testing.T) {
	h := newHarness(t, 10)
	r, err := h.reserve("c1", 3)
	require.NoError(t, err)
	require.Equal(t, 7, h.remaining(t))

	_, err = h.reservations.Confirm(context.Background(), r.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, h.remaining(t))
	assert.Equal(t, 3, h.deducted(t))
}

func TestRelease_RoundTrip(t *testing.T) {
	h := newHarness(t, 10)
	before := h.remaining(t)

	r, err := h.reserve("c1", 4)
	require.NoError(t, err)
	_, err = h.reservations.Release(context.Background(), r.ID)
	require.NoError(t, err)

	assert.Equal(t, before, h.remaining(t))
}

func TestRelease_SecondCallRejected(t *testing.T) {
	h := newHarness(t, 10)
	r, err := h.reserve("c1", 4)
	require.NoError(t, err)

	_, err = h.reservations.Release(context.Background(), r.ID)
	require.NoError(t, err)
	_, err = h.reservations.Release(context.Background(), r.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, 10, h.remaining(t))
}

func TestRelease_ConfirmedRejected(t *testing.T) {
	h := newHarness(t, 10)
	r, err := h.reserve("c1", 2)
	require.NoError(t, err)
	_, err = h.reservations.Confirm(context.Background(), r.ID)
	require.NoError(t, err)

	_, err = h.reservations.Release(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	_, err = h.reservations.Confirm(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, 8, h.remaining(t))
}

func TestReserve_ConcurrentNeverOversells(t *testing.T) {
	const capacity, workers = 5, 40
	h := newHarness(t, capacity)

	var ok, full atomic.Int32
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.reserve(fmt.Sprintf("cart-%d", i), 1)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrSlotUnavailable):
				full.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, capacity, ok.Load())
	assert.EqualValues(t, workers-capacity, full.Load())
	assert.Equal(t, 0, h.remaining(t))
	assert.Equal(t, capacity, h.deducted(t))
}

func TestReserve_MergesRepeatedHold(t *testing.T) {
	h := newHarness(t, 10)
	first, err := h.reserve("c1", 2)
	require.NoError(t, err)

	merged, err := h.reserve("c1", 3)
	require.NoError(t, err)

	assert.Equal(t, 5, merged.Quantity)
	assert.Equal(t, 5, h.remaining(t))
	old, err := h.reservations.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReleased, old.Status)

	held, err := h.store.Reservations().ListByCart(context.Background(), "c1",
		[]domain.ReservationStatus{domain.ReservationStatusHeld})
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, merged.ID, held[0].ID)
}

func TestReserve_FailedMergeKeepsOldHold(t *testing.T) {
	h := newHarness(t, 4)
	first, err := h.reserve("c1", 3)
	require.NoError(t, err)

	_, err = h.reserve("c1", 2)
	require.ErrorIs(t, err, domain.ErrSlotUnavailable)

	kept, err := h.reservations.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusHeld, kept.Status)
	assert.Equal(t, 1, h.remaining(t))
}

func TestDeleteItem_ScenarioD_ForceReleasesHolds(t *testing.T) {
	h := newHarness(t, 10)
	ctx := context.Background()
	held, err := h.reserve("c1", 2)
	require.NoError(t, err)
	booked, err := h.reserve("c2", 3)
	require.NoError(t, err)
	_, err = h.reservations.Confirm(ctx, booked.ID)
	require.NoError(t, err)

	require.NoError(t, h.items.Delete(ctx, h.item.ID))

	entries, err := h.store.Ledger().ListByItem(ctx, h.item.ID, testDay, testDay)
	require.NoError(t, err)
	assert.Empty(t, entries)

	r, err := h.reservations.Get(ctx, held.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReleased, r.Status)

	r, err = h.reservations.Get(ctx, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, r.Status)

	_, err = h.items.GetByID(ctx, h.item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = h.reserve("c3", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegenerateAvailability_KeepsConfirmedDeducted(t *testing.T) {
	h := newHarness(t, 10)
	ctx := context.Background()
	held, err := h.reserve("c1", 2)
	require.NoError(t, err)
	booked, err := h.reserve("c2", 3)
	require.NoError(t, err)
	_, err = h.reservations.Confirm(ctx, booked.ID)
	require.NoError(t, err)

	change, err := h.items.RegenerateAvailability(ctx, h.item.ID, testDay, testDay)
	require.NoError(t, err)

	assert.Equal(t, 1, change.Released)
	assert.Equal(t, 2, change.Purged)
	assert.Equal(t, 2, change.Seeded)
	assert.Equal(t, 7, h.remaining(t))

	r, err := h.reservations.Get(ctx, held.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReleased, r.Status)
}

// opKind values drive the random operation sequences below.
const (
	opReserve = iota
	opRelease
	opConfirm
)

func TestLedger_InvariantAndConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("0 <= remaining <= capacity and deducted == capacity - remaining", prop.ForAll(
		func(ops []int, quantities []int) bool {
			h := newHarness(t, 8)
			ctx := context.Background()
			var ids []string

			for i, op := range ops {
				qty := 1 + quantities[i%len(quantities)]
				switch op {
				case opReserve:
					r, err := h.reserve(fmt.Sprintf("c%d", i%3), qty)
					if err == nil {
						ids = append(ids, r.ID)
					} else if !errors.Is(err, domain.ErrSlotUnavailable) {
						return false
					}
				case opRelease:
					if len(ids) > 0 {
						_, _ = h.reservations.Release(ctx, ids[i%len(ids)])
					}
				case opConfirm:
					if len(ids) > 0 {
						_, _ = h.reservations.Confirm(ctx, ids[i%len(ids)])
					}
				}

				remaining := h.remaining(t)
				if remaining < 0 || remaining > 8 {
					return false
				}
				if 8-remaining != h.deducted(t) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(opReserve, opConfirm)),
		gen.SliceOfN(4, gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}

// regeneratingLedger regenerates the slot's day from outside the caller's
// transaction right after the first successful decrement.
type regeneratingLedger struct {
	ports.LedgerRepo
	once  sync.Once
	regen func()
}

func (l *regeneratingLedger) TryDecrement(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error) {
	e, err := l.LedgerRepo.TryDecrement(ctx, key, quantity)
	if err == nil {
		l.once.Do(l.regen)
	}
	return e, err
}

func TestReserve_RegenerateBetweenDecrementAndHold(t *testing.T) {
	tests := []struct {
		name     string
		existing int
	}{
		{name: "new hold", existing: 0},
		{name: "merged hold", existing: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 10)
			if tt.existing > 0 {
				_, err := h.reserve("c1", tt.existing)
				require.NoError(t, err)
			}

			ledger := &regeneratingLedger{LedgerRepo: h.store.Ledger()}
			ledger.regen = func() {
				_, err := h.items.RegenerateAvailability(context.Background(), h.item.ID, testDay, testDay)
				require.NoError(t, err)
			}
			rs := NewReservationService(
				ledger, h.store.Reservations(), h.store, h.store.Items(), h.store.Users(),
				nopNotifier{}, nopPublisher{}, newTestLogger(t),
				ReservationConfig{HoldTTL: 15 * time.Minute, ExpireBatch: 100},
			)

			_, err := rs.Reserve(context.Background(), domain.ReserveInput{
				CartID: "c1", UserID: "u-c1", ItemID: h.item.ID,
				Date: testDay, Time: testNine, Quantity: 4, Tier: domain.TierA,
			})
			require.Error(t, err)

			assert.Equal(t, 10, h.remaining(t))
			assert.Equal(t, 0, h.deducted(t))

			held, err := h.store.Reservations().ListByItem(context.Background(), h.item.ID, nil, domain.DeductingStatuses)
			require.NoError(t, err)
			for _, r := range held {
				_, err = h.reservations.Release(context.Background(), r.ID)
				var ce *domain.ConsistencyError
				assert.False(t, errors.As(err, &ce), "release of %s hit a consistency error", r.ID)
			}
		})
	}
}
