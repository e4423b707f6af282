package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/medschedulr/roster/internal/domain"
)

// WorkloadLedgerRepo persists the rolling Standby/on-call history used by
// the workload-aware Standby penalty (spec.md §4.5) between requests, so a
// caller can seed workload_data from the last known state rather than
// resupplying it every time.
type WorkloadLedgerRepo interface {
	Get(ctx context.Context, doctorID string) (domain.Workload, error)
	Upsert(ctx context.Context, doctorID string, w domain.Workload) error
}

// SQLiteWorkloadLedgerRepo implements WorkloadLedgerRepo using SQLite.
type SQLiteWorkloadLedgerRepo struct {
	db *sql.DB
}

// NewSQLiteWorkloadLedgerRepo creates a new SQLiteWorkloadLedgerRepo.
func NewSQLiteWorkloadLedgerRepo(db *sql.DB) *SQLiteWorkloadLedgerRepo {
	return &SQLiteWorkloadLedgerRepo{db: db}
}

func (r *SQLiteWorkloadLedgerRepo) Get(ctx context.Context, doctorID string) (domain.Workload, error) {
	query := `SELECT weekday_oncalls_3m, weekend_oncalls_3m, ed_shifts_3m, days_since_last_standby, standby_count_12m, standby_count_3m
		FROM workload_ledger WHERE doctor_id = ?`
	row := r.db.QueryRowContext(ctx, query, doctorID)

	var w domain.Workload
	err := row.Scan(&w.WeekdayOncalls3m, &w.WeekendOncalls3m, &w.EDShifts3m,
		&w.DaysSinceLastStandby, &w.StandbyCount12m, &w.StandbyCount3m)
	if err == sql.ErrNoRows {
		return domain.DefaultWorkload(), nil
	}
	if err != nil {
		return domain.Workload{}, fmt.Errorf("loading workload ledger for %s: %w", doctorID, err)
	}
	return w, nil
}

func (r *SQLiteWorkloadLedgerRepo) Upsert(ctx context.Context, doctorID string, w domain.Workload) error {
	query := `INSERT INTO workload_ledger (doctor_id, weekday_oncalls_3m, weekend_oncalls_3m, ed_shifts_3m, days_since_last_standby, standby_count_12m, standby_count_3m, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doctor_id) DO UPDATE SET
			weekday_oncalls_3m = excluded.weekday_oncalls_3m,
			weekend_oncalls_3m = excluded.weekend_oncalls_3m,
			ed_shifts_3m = excluded.ed_shifts_3m,
			days_since_last_standby = excluded.days_since_last_standby,
			standby_count_12m = excluded.standby_count_12m,
			standby_count_3m = excluded.standby_count_3m,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		doctorID, w.WeekdayOncalls3m, w.WeekendOncalls3m, w.EDShifts3m,
		w.DaysSinceLastStandby, w.StandbyCount12m, w.StandbyCount3m, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting workload ledger for %s: %w", doctorID, err)
	}
	return nil
}
