package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const itemColumns = `id, kind, name, description, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
			  capacity, price_a, price_b, price_c, created_at, updated_at`

type ItemRepository struct {
	conn
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{conn: conn{db: db, strategy: defaultStrategy()}}
}

func scanItem(row scanner) (*domain.BookableItem, error) {
	var (
		it         domain.BookableItem
		start, end string
	)
	if err := row.Scan(
		&it.ID, &it.Kind, &it.Name, &it.Description, &start, &end,
		&it.Capacity, &it.Prices.A, &it.Prices.B, &it.Prices.C,
		&it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if it.StartTime, err = domain.ParseTimeOfDay(start); err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}
	if it.EndTime, err = domain.ParseTimeOfDay(end); err != nil {
		return nil, fmt.Errorf("parse end time: %w", err)
	}

	return &it, nil
}

func (r *ItemRepository) Create(ctx context.Context, it *domain.BookableItem) error {
	query := `INSERT INTO items (id, kind, name, description, start_time, end_time,
			                   capacity, price_a, price_b, price_c, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.exec(
		ctx, query, it.ID, it.Kind, it.Name, it.Description,
		it.StartTime.String(), it.EndTime.String(), it.Capacity,
		it.Prices.A, it.Prices.B, it.Prices.C, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.BookableItem, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return it, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*domain.BookableItem, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  ORDER BY kind, name`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookableItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, it)
	}

	return res, rows.Err()
}

// Update rewrites the item's mutable fields. Kind and created_at never change.
func (r *ItemRepository) Update(ctx context.Context, it *domain.BookableItem) error {
	query := `UPDATE items
			  SET name = $2, description = $3, start_time = $4, end_time = $5,
			      capacity = $6, price_a = $7, price_b = $8, price_c = $9, updated_at = $10
			  WHERE id = $1`

	res, err := r.execOnce(
		ctx, query, it.ID, it.Name, it.Description, it.StartTime.String(), it.EndTime.String(),
		it.Capacity, it.Prices.A, it.Prices.B, it.Prices.C, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}
