package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/testament/internal/db"
)

// SQLiteScoreRepo implements ScoreRepo on the scores table.
type SQLiteScoreRepo struct {
	db db.DBTX
}

func NewSQLiteScoreRepo(conn db.DBTX) *SQLiteScoreRepo {
	return &SQLiteScoreRepo{db: conn}
}

func (r *SQLiteScoreRepo) Get(ctx context.Context, key string) (int, error) {
	var v int
	err := r.db.QueryRowContext(ctx, `SELECT value FROM scores WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("score %q: %w", key, ErrNotFound)
		}
		return 0, fmt.Errorf("reading score %q: %w", key, err)
	}
	return v, nil
}

func (r *SQLiteScoreRepo) Set(ctx context.Context, key string, value int) error {
	if value < 0 {
		return fmt.Errorf("score %q must be non-negative, got %d", key, value)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scores (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, nowUTC())
	if err != nil {
		return fmt.Errorf("writing score %q: %w", key, err)
	}
	return nil
}
