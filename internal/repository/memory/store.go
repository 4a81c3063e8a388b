// Package memory is an in-process implementation of the repository ports.
// Every ledger entry has its own mutex, so reservations on different slots never
// contend. Transactions are an undo log carried in ctx: writes are visible to other
// callers immediately and are reverted if the transaction function fails.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type txKey struct{}

type transaction struct {
	mu              sync.Mutex
	rollbackActions []func()
	decremented     map[slotKey]*cell
}

func (t *transaction) onRollback(fn func()) {
	t.mu.Lock()
	t.rollbackActions = append(t.rollbackActions, fn)
	t.mu.Unlock()
}

func (t *transaction) rollback() {
	t.mu.Lock()
	actions := t.rollbackActions
	t.rollbackActions = nil
	t.mu.Unlock()

	for i := len(actions) - 1; i >= 0; i-- {
		actions[i]()
	}
}

// recordDecrement remembers which cell the transaction took capacity from.
func recordDecrement(ctx context.Context, k slotKey, c *cell) {
	trx, ok := ctx.Value(txKey{}).(*transaction)
	if !ok {
		return
	}
	trx.mu.Lock()
	if trx.decremented == nil {
		trx.decremented = make(map[slotKey]*cell)
	}
	trx.decremented[k] = c
	trx.mu.Unlock()
}

func decrementedCell(ctx context.Context, k slotKey) (*cell, bool) {
	trx, ok := ctx.Value(txKey{}).(*transaction)
	if !ok {
		return nil, false
	}
	trx.mu.Lock()
	defer trx.mu.Unlock()
	c, ok := trx.decremented[k]
	return c, ok
}

func onRollback(ctx context.Context, fn func()) {
	if trx, ok := ctx.Value(txKey{}).(*transaction); ok {
		trx.onRollback(fn)
	}
}

// slotKey is the comparable form of domain.LedgerKey.
type slotKey struct {
	itemID string
	date   string
	time   domain.TimeOfDay
}

func keyOf(k domain.LedgerKey) slotKey {
	return slotKey{itemID: k.ItemID, date: k.Date.Format(time.DateOnly), time: k.Time}
}

type holdKey struct {
	cartID string
	slot   slotKey
}

type cell struct {
	mu    sync.Mutex
	entry domain.LedgerEntry
}

type Store struct {
	ledgerMu sync.RWMutex
	ledger   map[slotKey]*cell

	resMu        sync.RWMutex
	reservations map[string]*domain.Reservation
	held         map[holdKey]string

	mu    sync.RWMutex
	items map[string]*domain.BookableItem
	users map[string]*domain.User
	carts map[string]*domain.Cart

	now func() time.Time
}

func New() *Store {
	return &Store{
		ledger:       make(map[slotKey]*cell),
		reservations: make(map[string]*domain.Reservation),
		held:         make(map[holdKey]string),
		items:        make(map[string]*domain.BookableItem),
		users:        make(map[string]*domain.User),
		carts:        make(map[string]*domain.Cart),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithinTx joins the transaction already in ctx, if any.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*transaction); ok {
		return fn(ctx)
	}

	trx := &transaction{}
	committed := false
	defer func() {
		if !committed {
			trx.rollback()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, trx)); err != nil {
		return err
	}
	committed = true

	return nil
}

func (s *Store) Ledger() *LedgerStore {
	return &LedgerStore{s: s}
}

func (s *Store) Reservations() *ReservationStore {
	return &ReservationStore{s: s}
}

func (s *Store) Items() *ItemStore {
	return &ItemStore{s: s}
}

func (s *Store) Carts() *CartStore {
	return &CartStore{s: s}
}

func (s *Store) Users() *UserStore {
	return &UserStore{s: s}
}

// liveSlot reports whether k has a ledger entry and, when ctx decremented k,
// whether that entry is still the one it decremented.
func (s *Store) liveSlot(ctx context.Context, k slotKey) bool {
	s.ledgerMu.RLock()
	defer s.ledgerMu.RUnlock()
	live, ok := s.ledger[k]
	if !ok {
		return false
	}
	if c, ok := decrementedCell(ctx, k); ok {
		return c == live
	}
	return true
}
