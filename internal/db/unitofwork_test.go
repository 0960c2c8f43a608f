package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/testament/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertScore(ctx context.Context, tx db.DBTX, key string, v int) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO scores (key, value, updated_at) VALUES (?, ?, '2026-01-01T00:00:00Z')`, key, v)
	return err
}

func scoreExists(t *testing.T, database *sql.DB, key string) bool {
	t.Helper()
	var v int
	err := database.QueryRow(`SELECT value FROM scores WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	require.NoError(t, err)
	return true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertScore(ctx, tx, "best_score", 10)
	})
	require.NoError(t, err)
	assert.True(t, scoreExists(t, database, "best_score"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertScore(ctx, tx, "best_score", 10); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, scoreExists(t, database, "best_score"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertScore(ctx, tx, "best_score", 10)
			panic("boom")
		})
	})
	assert.False(t, scoreExists(t, database, "best_score"))
}

func TestWithinTx_ClosedDatabase(t *testing.T) {
	database, uow := openUoW(t)
	require.NoError(t, database.Close())

	called := false
	err := uow.WithinTx(context.Background(), func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
