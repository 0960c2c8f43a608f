package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesScoresTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='scores'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "scores", name)
}

func TestMigrate_RejectsNegativeScore(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO scores (key, value, updated_at) VALUES ('best_score', -2, 'now')`)
	assert.Error(t, err)
}

func TestOpenDB_MemorySharesOneDatabase(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO scores (key, value, updated_at) VALUES ('k', 4, 'now')`)
	require.NoError(t, err)

	var v int
	require.NoError(t, db.QueryRow(`SELECT value FROM scores WHERE key = 'k'`).Scan(&v))
	assert.Equal(t, 4, v)
}

func TestOpenDB_FileCreatesDirectoryAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "testament.db")

	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO scores (key, value, updated_at) VALUES ('best_score', 12, 'now')`)
	require.NoError(t, err)

	var mode string
	require.NoError(t, first.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
	require.NoError(t, first.Close())

	second, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	var v int
	require.NoError(t, second.QueryRow(`SELECT value FROM scores WHERE key = 'best_score'`).Scan(&v))
	assert.Equal(t, 12, v, "value survives reopen")
}

func TestOpenDB_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}
