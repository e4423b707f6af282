package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is applied in order on every OpenDB call; CREATE TABLE IF NOT
// EXISTS makes re-application idempotent, matching the teacher's migration
// idiom (internal/db/migrate.go).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		roster_start TEXT NOT NULL,
		roster_end TEXT NOT NULL,
		doctor_count INTEGER NOT NULL,
		day_count INTEGER NOT NULL,
		adopted_phase INTEGER NOT NULL,
		solver_status TEXT NOT NULL,
		objective_value REAL,
		success INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workload_ledger (
		doctor_id TEXT PRIMARY KEY,
		weekday_oncalls_3m INTEGER NOT NULL DEFAULT 0,
		weekend_oncalls_3m INTEGER NOT NULL DEFAULT 0,
		ed_shifts_3m INTEGER NOT NULL DEFAULT 0,
		days_since_last_standby INTEGER NOT NULL DEFAULT 9999,
		standby_count_12m INTEGER NOT NULL DEFAULT 0,
		standby_count_3m INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations. Duplicate-column errors are tolerated
// since the migration set is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
