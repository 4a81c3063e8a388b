package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/repository/memory"
	"github.com/stpnv0/TourBooker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrDefer(t *testing.T) {
	var ran []string

	runOrDefer(context.Background(), func() { ran = append(ran, "now") })
	assert.Equal(t, []string{"now"}, ran)

	ctx, ac := withAfterCommit(context.Background())
	runOrDefer(ctx, func() { ran = append(ran, "later-1") })
	runOrDefer(ctx, func() { ran = append(ran, "later-2") })
	assert.Equal(t, []string{"now"}, ran)

	ac.run()
	assert.Equal(t, []string{"now", "later-1", "later-2"}, ran)

	ac.run()
	assert.Len(t, ran, 3)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ReservationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evt domain.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) count(t domain.ReservationEventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// failingTx runs fn and then fails the commit, rolling the memory store back.
type failingTx struct{ store *memory.Store }

func (f failingTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return errors.New("commit failed")
	})
}

func TestCheckout_PublishesConfirmedAfterCommit(t *testing.T) {
	for _, commit := range []bool{true, false} {
		name := "commit"
		if !commit {
			name = "rollback"
		}
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 10)
			pub := &recordingPublisher{}
			log := newTestLogger(t)

			rs := NewReservationService(
				h.store.Ledger(), h.store.Reservations(), h.store, h.store.Items(), h.store.Users(),
				nopNotifier{}, pub, log,
				ReservationConfig{HoldTTL: time.Minute, ExpireBatch: 10},
			)
			var tx ports.Transactor = h.store
			if !commit {
				tx = failingTx{store: h.store}
			}
			carts := NewCartService(
				h.store.Carts(), h.store.Reservations(), rs, h.store.Items(), h.store.Users(), tx,
				nopNotifier{}, log, domain.TierC,
			)

			ctx := context.Background()
			_, err := carts.AddItem(ctx, "u1", domain.AddCartItemInput{
				ItemID: h.item.ID, Date: testDay, Time: testNine, Quantity: 2,
			})
			require.NoError(t, err)

			_, err = carts.Checkout(ctx, "u1")

			if commit {
				require.NoError(t, err)
				assert.Equal(t, 1, pub.count(domain.ReservationConfirmed))
				return
			}

			require.Error(t, err)
			assert.Zero(t, pub.count(domain.ReservationConfirmed))

			views, err := carts.ListItems(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, domain.ReservationStatusHeld, views[0].Status)
			assert.Equal(t, 8, h.remaining(t))
		})
	}
}
