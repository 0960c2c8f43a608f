package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Keyed integer records. The only key in use is the best score.
	`CREATE TABLE IF NOT EXISTS scores (
		key        TEXT PRIMARY KEY,
		value      INTEGER NOT NULL CHECK(value >= 0),
		updated_at TEXT NOT NULL
	)`,
}
