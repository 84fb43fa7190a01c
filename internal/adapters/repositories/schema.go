package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the auth tables. The DDL is portable across the SQLite
// and Postgres drivers, so both repositories share it.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT ''
	);
	`

	if _, err := tx.Exec(createUsersQuery); err != nil {
		return fmt.Errorf("init schema: create users table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
