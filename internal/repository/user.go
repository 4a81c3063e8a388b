package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type UserRepository struct {
	conn
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{conn: conn{db: db, strategy: defaultStrategy()}}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, tier, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.execOnce(ctx, query, user.ID, user.Username, user.Tier, user.TelegramChatID, user.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, tier, telegram_chat_id, created_at 
    		  FROM users
    		  WHERE id=$1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.Tier, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, tier, telegram_chat_id, created_at 
    		  FROM users
    		  WHERE username=$1`

	row, err := r.queryRow(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.Tier, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, username, tier, telegram_chat_id, created_at 
			  FROM users 
			  ORDER BY username`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Username, &u.Tier, &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) UpdateTier(ctx context.Context, id string, tier domain.Tier) (*domain.User, error) {
	query := `UPDATE users
			  SET tier = $2
			  WHERE id = $1
			  RETURNING id, username, tier, telegram_chat_id, created_at`

	var u domain.User
	err := r.queryRowOnce(ctx, query, id, tier).Scan(&u.ID, &u.Username, &u.Tier, &u.TelegramChatID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user tier: %w", err)
	}

	return &u, nil
}
