package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent and re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS export_records (
		id          TEXT PRIMARY KEY,
		file_name   TEXT NOT NULL,
		path        TEXT NOT NULL,
		phase_count INTEGER NOT NULL DEFAULT 0 CHECK(phase_count >= 0),
		task_count  INTEGER NOT NULL DEFAULT 0 CHECK(task_count >= 0),
		size_bytes  INTEGER NOT NULL DEFAULT 0,
		sha256      TEXT NOT NULL,
		exported_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_export_records_exported_at ON export_records(exported_at)`,
}

// Migrate applies the schema.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
