package database

import (
	"context"
	"database/sql"
)

// schema is kept compatible with task files written by earlier versions:
// one table, three columns, no indexes. AUTOINCREMENT keeps SQLite from
// handing out the id of a deleted row again.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
}

// runMigrations creates the database schema if needed. Running it against a
// store that already has the table is a no-op.
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
