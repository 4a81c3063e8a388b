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

const reservationColumns = `id, cart_id, user_id, item_id, slot_date, to_char(slot_time, 'HH24:MI'),
			  quantity, tier, status, created_at, updated_at`

type ReservationRepository struct {
	conn
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{conn: conn{db: db, strategy: defaultStrategy()}}
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var (
		res     domain.Reservation
		slotRaw string
	)
	if err := row.Scan(
		&res.ID, &res.CartID, &res.UserID, &res.ItemID, &res.Date, &slotRaw,
		&res.Quantity, &res.Tier, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	slot, err := domain.ParseTimeOfDay(slotRaw)
	if err != nil {
		return nil, fmt.Errorf("parse slot time: %w", err)
	}
	res.Time = slot
	res.Date = domain.DateOnly(res.Date)

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, r)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, cart_id, user_id, item_id, slot_date, slot_time,
			                          quantity, tier, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.execOnce(
		ctx, query, res.ID, res.CartID, res.UserID, res.ItemID,
		dateArg(res.Date), res.Time.String(), res.Quantity, res.Tier,
		res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrHoldConflict
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindHeld(ctx context.Context, cartID string, key domain.LedgerKey) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE cart_id = $1 AND item_id = $2 AND slot_date = $3 AND slot_time = $4
			    AND status = $5
			  FOR UPDATE`

	res, err := scanReservation(r.queryRowOnce(
		ctx, query, cartID, key.ItemID, dateArg(key.Date), key.Time.String(),
		domain.ReservationStatusHeld,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find held reservation: %w", err)
	}

	return res, nil
}

// UpdateStatus moves a reservation from one status to another only if it is
// currently in from.
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to domain.ReservationStatus,
) (*domain.Reservation, error) {
	if !from.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStateTransition, from, to)
	}

	query := `UPDATE reservations
			  SET status = $3, updated_at = NOW()
			  WHERE id = $1 AND status = $2
			  RETURNING ` + reservationColumns

	res, err := scanReservation(r.queryRowOnce(ctx, query, id, from, to))
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: reservation is %s", domain.ErrInvalidStateTransition, current.Status)
}

func (r *ReservationRepository) ListByCart(
	ctx context.Context,
	cartID string,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE cart_id = $1 AND status = ANY($2)
			  ORDER BY created_at`

	rows, err := r.query(ctx, query, cartID, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list reservations by cart: %w", err)
	}

	return scanReservations(rows)
}

// ListByItem lists the item's reservations in the given statuses. dates limits the
// result to a slot date range; nil means all dates.
func (r *ReservationRepository) ListByItem(
	ctx context.Context,
	itemID string,
	dates *domain.DateRange,
	statuses []domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE item_id = $1 AND status = ANY($2)`
	args := []any{itemID, pq.Array(statuses)}
	if dates != nil {
		query += ` AND slot_date BETWEEN $3 AND $4`
		args = append(args, dateArg(dates.From), dateArg(dates.To))
	}
	query += ` ORDER BY created_at`

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations by item: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) ListHeldBefore(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = $1 AND created_at < $2
			  ORDER BY created_at
			  LIMIT $3`

	rows, err := r.query(ctx, query, domain.ReservationStatusHeld, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale holds: %w", err)
	}

	return scanReservations(rows)
}

// ReleaseHeld marks every Held reservation of an item as Released without touching
// the ledger. dates limits the update to a slot date range; nil means all dates.
func (r *ReservationRepository) ReleaseHeld(
	ctx context.Context,
	itemID string,
	dates *domain.DateRange,
) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $3, updated_at = NOW()
			  WHERE item_id = $1 AND status = $2`
	args := []any{itemID, domain.ReservationStatusHeld, domain.ReservationStatusReleased}
	if dates != nil {
		query += ` AND slot_date BETWEEN $4 AND $5`
		args = append(args, dateArg(dates.From), dateArg(dates.To))
	}
	query += ` RETURNING ` + reservationColumns

	rows, err := r.queryOnce(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("release held reservations: %w", err)
	}

	return scanReservations(rows)
}
