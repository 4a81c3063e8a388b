package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const ledgerColumns = `item_id, slot_date, to_char(slot_time, 'HH24:MI'), total_capacity, remaining, created_at, updated_at`

type LedgerRepository struct {
	conn
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{conn: conn{db: db, strategy: defaultStrategy()}}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner, extra ...any) (*domain.LedgerEntry, error) {
	var (
		e       domain.LedgerEntry
		slotRaw string
	)
	dest := append(extra, &e.ItemID, &e.Date, &slotRaw, &e.TotalCapacity, &e.Remaining, &e.CreatedAt, &e.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	slot, err := domain.ParseTimeOfDay(slotRaw)
	if err != nil {
		return nil, fmt.Errorf("parse slot time: %w", err)
	}
	e.Time = slot
	e.Date = domain.DateOnly(e.Date)

	return &e, nil
}

func dateArg(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Seed inserts entries that do not exist yet and leaves existing ones untouched.
func (r *LedgerRepository) Seed(ctx context.Context, entries []domain.LedgerEntry) (int, error) {
	type group struct {
		itemID   string
		capacity int
	}
	var (
		order  []group
		dates  = map[group][]string{}
		slots  = map[group][]string{}
		total  int
		now    = time.Now().UTC()
		query  = `INSERT INTO ledger_entries (item_id, slot_date, slot_time, total_capacity, remaining, created_at, updated_at)
				  SELECT $1, s.slot_date, s.slot_time, $2, $2, $3, $3
				  FROM unnest($4::date[], $5::time[]) AS s(slot_date, slot_time)
				  ON CONFLICT (item_id, slot_date, slot_time) DO NOTHING`
	)

	for _, e := range entries {
		g := group{itemID: e.ItemID, capacity: e.TotalCapacity}
		if _, ok := dates[g]; !ok {
			order = append(order, g)
		}
		dates[g] = append(dates[g], dateArg(e.Date))
		slots[g] = append(slots[g], e.Time.String())
	}

	for _, g := range order {
		res, err := r.exec(ctx, query, g.itemID, g.capacity, now, pq.Array(dates[g]), pq.Array(slots[g]))
		if err != nil {
			return total, fmt.Errorf("seed ledger: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("seed rows affected: %w", err)
		}
		total += int(n)
	}

	return total, nil
}

func (r *LedgerRepository) Get(ctx context.Context, key domain.LedgerKey) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
			  FROM ledger_entries
			  WHERE item_id = $1 AND slot_date = $2 AND slot_time = $3`

	row, err := r.queryRow(ctx, query, key.ItemID, dateArg(key.Date), key.Time.String())
	if err != nil {
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}

	return e, nil
}

// TryDecrement subtracts quantity only if remaining >= quantity, in one statement.
// A miss on a row that exists is retried once: under READ COMMITTED an UPDATE that
// waited on a concurrently deleted and reseeded entry does not see the new row.
func (r *LedgerRepository) TryDecrement(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error) {
	query := `UPDATE ledger_entries
			  SET remaining = remaining - $4, updated_at = NOW()
			  WHERE item_id = $1 AND slot_date = $2 AND slot_time = $3
			    AND remaining >= $4
			  RETURNING ` + ledgerColumns

	for attempt := 0; ; attempt++ {
		e, err := scanEntry(r.queryRowOnce(ctx, query, key.ItemID, dateArg(key.Date), key.Time.String(), quantity))
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("decrement ledger entry: %w", err)
		}

		exists, err := r.exists(ctx, key)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrSlotNotFound
		}
		if attempt > 0 {
			return nil, domain.ErrInsufficientCapacity
		}
	}
}

// Increment adds quantity back, clamping remaining at total_capacity. A clamp is
// reported as *domain.ConsistencyError together with the stored entry.
func (r *LedgerRepository) Increment(ctx context.Context, key domain.LedgerKey, quantity int) (*domain.LedgerEntry, error) {
	query := `UPDATE ledger_entries l
			  SET remaining = LEAST(l.remaining + $4, l.total_capacity), updated_at = NOW()
			  FROM (
			      SELECT remaining FROM ledger_entries
			      WHERE item_id = $1 AND slot_date = $2 AND slot_time = $3
			      FOR UPDATE
			  ) prev
			  WHERE l.item_id = $1 AND l.slot_date = $2 AND l.slot_time = $3
			  RETURNING prev.remaining, l.item_id, l.slot_date, to_char(l.slot_time, 'HH24:MI'),
			            l.total_capacity, l.remaining, l.created_at, l.updated_at`

	var prev int
	e, err := scanEntry(r.queryRowOnce(ctx, query, key.ItemID, dateArg(key.Date), key.Time.String(), quantity), &prev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("increment ledger entry: %w", err)
	}

	if prev+quantity > e.TotalCapacity {
		return e, &domain.ConsistencyError{
			ItemID:        key.ItemID,
			Date:          key.Date,
			Time:          key.Time,
			Delta:         quantity,
			Remaining:     prev,
			TotalCapacity: e.TotalCapacity,
		}
	}

	return e, nil
}

func (r *LedgerRepository) ListByItem(ctx context.Context, itemID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
			  FROM ledger_entries
			  WHERE item_id = $1 AND slot_date BETWEEN $2 AND $3
			  ORDER BY slot_date, slot_time`

	rows, err := r.query(ctx, query, itemID, dateArg(from), dateArg(to))
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *LedgerRepository) DeleteRange(ctx context.Context, itemID string, from, to time.Time) (int, error) {
	query := `DELETE FROM ledger_entries
			  WHERE item_id = $1 AND slot_date BETWEEN $2 AND $3`

	res, err := r.exec(ctx, query, itemID, dateArg(from), dateArg(to))
	if err != nil {
		return 0, fmt.Errorf("delete ledger range: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete rows affected: %w", err)
	}
	return int(n), nil
}

func (r *LedgerRepository) DeleteByItem(ctx context.Context, itemID string) (int, error) {
	res, err := r.exec(ctx, `DELETE FROM ledger_entries WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete ledger entries: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete rows affected: %w", err)
	}
	return int(n), nil
}

func (r *LedgerRepository) exists(ctx context.Context, key domain.LedgerKey) (bool, error) {
	query := `SELECT EXISTS (
			      SELECT 1 FROM ledger_entries
			      WHERE item_id = $1 AND slot_date = $2 AND slot_time = $3
			  )`

	var exists bool
	if err := r.queryRowOnce(ctx, query, key.ItemID, dateArg(key.Date), key.Time.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("check ledger entry: %w", err)
	}
	return exists, nil
}
