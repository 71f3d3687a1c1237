package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations for the local cache.
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
	`CREATE TABLE IF NOT EXISTS cached_users (
		uid        TEXT PRIMARY KEY,
		blob       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS duty_sessions (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		schedule_id    TEXT NOT NULL DEFAULT '',
		timesheet_id   TEXT NOT NULL DEFAULT '',
		clock_in_time  TEXT NOT NULL,
		clock_out_time TEXT,
		off_duty_start TEXT,
		off_duty_total INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','clocked_in','completed'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_duty_sessions_user ON duty_sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS session_breaks (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL REFERENCES duty_sessions(id) ON DELETE CASCADE,
		start_time  TEXT NOT NULL,
		end_time    TEXT,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_breaks_session ON session_breaks(session_id)`,

	`CREATE TABLE IF NOT EXISTS pending_submissions (
		id              TEXT PRIMARY KEY,
		idempotency_key TEXT NOT NULL,
		user_id         TEXT NOT NULL,
		schedule_id     TEXT NOT NULL DEFAULT '',
		session_id      TEXT NOT NULL DEFAULT '',
		kind            TEXT NOT NULL CHECK(kind IN ('pre_trip','post_trip')),
		payload         BLOB NOT NULL,
		phase           TEXT NOT NULL CHECK(phase IN ('inspection','schedule','clock_out')),
		created_at      TEXT NOT NULL
	)`,
}
