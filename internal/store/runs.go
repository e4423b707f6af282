package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/medschedulr/roster/internal/domain"
)

// RunRecord summarizes one solved roster run for the history store.
type RunRecord struct {
	ID             string
	RosterStart    time.Time
	RosterEnd      time.Time
	DoctorCount    int
	DayCount       int
	AdoptedPhase   int
	SolverStatus   domain.SolverStatus
	ObjectiveValue *float64
	Success        bool
	WarningCount   int
	CreatedAt      time.Time
}

// RunRepo persists and lists past solved runs.
type RunRepo interface {
	Create(ctx context.Context, r *RunRecord) error
	GetByID(ctx context.Context, id string) (*RunRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*RunRecord, error)
}

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *RunRecord) error {
	query := `INSERT INTO runs (id, roster_start, roster_end, doctor_count, day_count, adopted_phase, solver_status, objective_value, success, warning_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.RosterStart.Format(dateLayout),
		run.RosterEnd.Format(dateLayout),
		run.DoctorCount,
		run.DayCount,
		run.AdoptedPhase,
		string(run.SolverStatus),
		nullableFloat(run.ObjectiveValue),
		boolToInt(run.Success),
		run.WarningCount,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*RunRecord, error) {
	query := `SELECT id, roster_start, roster_end, doctor_count, day_count, adopted_phase, solver_status, objective_value, success, warning_count, created_at
		FROM runs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanRun(row)
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, roster_start, roster_end, doctor_count, day_count, adopted_phase, solver_status, objective_value, success, warning_count, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []*RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var run RunRecord
	var start, end, createdAt string
	var status string
	var objective sql.NullFloat64
	var success int

	err := row.Scan(&run.ID, &start, &end, &run.DoctorCount, &run.DayCount, &run.AdoptedPhase,
		&status, &objective, &success, &run.WarningCount, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.RosterStart, _ = time.Parse(dateLayout, start)
	run.RosterEnd, _ = time.Parse(dateLayout, end)
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	run.SolverStatus = domain.SolverStatus(status)
	run.ObjectiveValue = scanNullableFloat(objective)
	run.Success = intToBool(success)

	return &run, nil
}
