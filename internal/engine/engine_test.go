package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/mip"
	"github.com/medschedulr/roster/internal/solver"
	"github.com/medschedulr/roster/internal/testutil"
)

func smallRequest() contract.ScheduleRequest {
	return contract.ScheduleRequest{
		RosterStart: "2026-01-01",
		RosterEnd:   "2026-01-07",
		Units: []contract.UnitInput{
			{ID: "gen", Name: "General", ClinicDays: []int{0}},
		},
		Doctors: []contract.DoctorInput{
			{ID: "d1", Name: "Dr A", Unit: "gen", Category: "senior"},
			{ID: "d2", Name: "Dr B", Unit: "gen", Category: "registrar"},
		},
		PostsWeekday: []string{"Standby Oncall"},
		PostsWeekend: []string{"Standby Oncall"},
		Availability: []contract.AvailabilityInput{
			{DoctorID: "d1", Date: "2026-01-01", Post: "Standby Oncall", Available: true},
			{DoctorID: "d2", Date: "2026-01-02", Post: "Standby Oncall", Available: true},
		},
	}
}

func TestGenerate_NoOracleReturnsSolverUnavailable(t *testing.T) {
	eng := NewEngine(nil)
	_, err := eng.Generate(context.Background(), smallRequest())

	require.Error(t, err)
	var schedErr *ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, ErrSolverUnavailable, schedErr.Code)
}

func TestGenerate_InvalidDateIsInputError(t *testing.T) {
	oracle := &testutil.FakeOracle{}
	eng := NewEngine(oracle)

	req := smallRequest()
	req.RosterStart = "not-a-date"

	_, err := eng.Generate(context.Background(), req)
	require.Error(t, err)
	var schedErr *ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, ErrInput, schedErr.Code)
}

func TestGenerate_UnknownCategoryIsInputError(t *testing.T) {
	oracle := &testutil.FakeOracle{}
	eng := NewEngine(oracle)

	req := smallRequest()
	req.Doctors[0].Category = "attending"

	_, err := eng.Generate(context.Background(), req)
	require.Error(t, err)
	var schedErr *ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, ErrInput, schedErr.Code)
}

func TestGenerate_UnknownUnitIsInputError(t *testing.T) {
	oracle := &testutil.FakeOracle{}
	eng := NewEngine(oracle)

	req := smallRequest()
	req.Doctors[0].Unit = "does-not-exist"

	_, err := eng.Generate(context.Background(), req)
	require.Error(t, err)
	var schedErr *ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, ErrInput, schedErr.Code)
}

func TestGenerate_AdoptsPhase1WhenOptimal(t *testing.T) {
	oracle := &testutil.FakeOracle{Status: domain.StatusOptimal}
	eng := NewEngine(oracle)

	resp, err := eng.Generate(context.Background(), smallRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.AdoptedPhase)
	assert.Equal(t, 1, oracle.Calls)
}

func TestGenerate_FallsBackToPhase2WhenPhase1Infeasible(t *testing.T) {
	oracle := &testutil.FakeOracle{}
	oracle.SolveFunc = func(model *mip.Model) solver.Result {
		if oracle.Calls == 1 {
			return solver.Result{Status: domain.StatusInfeasible}
		}
		values := make(map[string]float64, len(model.Vars))
		for _, v := range model.Vars {
			if v.Kind == mip.Binary {
				values[v.ID] = 1
			}
		}
		return solver.Result{Status: domain.StatusFeasible, Values: values}
	}
	eng := NewEngine(oracle)

	resp, err := eng.Generate(context.Background(), smallRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.AdoptedPhase)
	assert.Equal(t, 2, oracle.Calls)
}

func TestGenerate_Phase2UnusableStatusYieldsFailedResponse(t *testing.T) {
	oracle := &testutil.FakeOracle{Status: domain.StatusInfeasible}
	eng := NewEngine(oracle)

	resp, err := eng.Generate(context.Background(), smallRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Warnings)
	assert.Equal(t, 2, resp.AdoptedPhase)
}

func TestGenerate_OracleErrorIsSolverFailure(t *testing.T) {
	oracle := &testutil.FakeOracle{Err: errors.New("oracle unavailable")}
	eng := NewEngine(oracle)

	_, err := eng.Generate(context.Background(), smallRequest())
	require.Error(t, err)
	var schedErr *ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, ErrSolverFailure, schedErr.Code)
}

func TestVerifyRoundTrip_StableOnFakeOracle(t *testing.T) {
	oracle := &testutil.FakeOracle{Status: domain.StatusOptimal}
	eng := NewEngine(oracle)

	stable, second, err := eng.VerifyRoundTrip(context.Background(), smallRequest())
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.True(t, stable)
}
