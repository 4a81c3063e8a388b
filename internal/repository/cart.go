package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type CartRepository struct {
	conn
}

func NewCartRepo(db *dbpg.DB) *CartRepository {
	return &CartRepository{conn: conn{db: db, strategy: defaultStrategy()}}
}

// GetOrCreate returns the user's cart, creating it on first use.
func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	query := `INSERT INTO carts (id, user_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
			  RETURNING id, user_id, created_at`

	row, err := r.queryRow(ctx, query, uuid.New().String(), userID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	var c domain.Cart
	if err = row.Scan(&c.ID, &c.UserID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan cart: %w", err)
	}

	return &c, nil
}

func (r *CartRepository) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	query := `SELECT id, user_id, created_at
			  FROM carts
			  WHERE user_id = $1`

	row, err := r.queryRow(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var c domain.Cart
	if err = row.Scan(&c.ID, &c.UserID, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("scan cart: %w", err)
	}

	return &c, nil
}
