package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema if needed. The board has no relational
// shape of its own: each repository is one JSON document in the kv table.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
