package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Opaque key-value blobs. The course plan lives under a single key.
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_events (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('course_added','course_removed','auto_added')),
		semester    INTEGER NOT NULL,
		course_code TEXT NOT NULL,
		credits     REAL NOT NULL DEFAULT 0,
		entry_id    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_events_created ON plan_events(created_at)`,

	// Insertion order for events logged within the same second.
	`ALTER TABLE plan_events ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
}
