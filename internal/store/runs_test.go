package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/store"
)

func TestSQLiteRunRepo_CreateAndGetByID(t *testing.T) {
	db := openRunsTestDB(t)
	repo := store.NewSQLiteRunRepo(db)

	objective := 42.0
	record := &store.RunRecord{
		ID:             "run-1",
		RosterStart:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RosterEnd:      time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
		DoctorCount:    3,
		DayCount:       7,
		AdoptedPhase:   1,
		SolverStatus:   domain.StatusOptimal,
		ObjectiveValue: &objective,
		Success:        true,
		WarningCount:   0,
	}
	require.NoError(t, repo.Create(context.Background(), record))

	got, err := repo.GetByID(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, 3, got.DoctorCount)
	assert.Equal(t, domain.StatusOptimal, got.SolverStatus)
	require.NotNil(t, got.ObjectiveValue)
	assert.Equal(t, 42.0, *got.ObjectiveValue)
	assert.True(t, got.Success)
}

func TestSQLiteRunRepo_GetByIDMissingReturnsNotFound(t *testing.T) {
	db := openRunsTestDB(t)
	repo := store.NewSQLiteRunRepo(db)

	_, err := repo.GetByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteRunRepo_ListRecentOrdersByCreatedAtDescending(t *testing.T) {
	db := openRunsTestDB(t)
	repo := store.NewSQLiteRunRepo(db)

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		rec := &store.RunRecord{
			ID:           id,
			RosterStart:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			RosterEnd:    time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
			SolverStatus: domain.StatusOptimal,
			Success:      true,
		}
		require.NoError(t, repo.Create(context.Background(), rec))
	}

	runs, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, "run-c", runs[0].ID)
}

func TestSQLiteRunRepo_CreateWithNilObjectivePersistsNull(t *testing.T) {
	db := openRunsTestDB(t)
	repo := store.NewSQLiteRunRepo(db)

	rec := &store.RunRecord{
		ID:           "run-nil",
		RosterStart:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RosterEnd:    time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
		SolverStatus: domain.StatusInfeasible,
		Success:      false,
	}
	require.NoError(t, repo.Create(context.Background(), rec))

	got, err := repo.GetByID(context.Background(), "run-nil")
	require.NoError(t, err)
	assert.Nil(t, got.ObjectiveValue)
	assert.False(t, got.Success)
}

func openRunsTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
