package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/medschedulr/roster/internal/domain"
)

func TestResult_BooleanValueThresholdsAtOneHalf(t *testing.T) {
	r := Result{Values: map[string]float64{"set": 1, "frac": 0.4, "unset": 0}}

	assert.True(t, r.BooleanValue("set"))
	assert.False(t, r.BooleanValue("frac"))
	assert.False(t, r.BooleanValue("unset"))
	assert.False(t, r.BooleanValue("absent"))
}

func TestScaleCoeff_RoundsToNearestScaledInteger(t *testing.T) {
	assert.Equal(t, int64(10000), scaleCoeff(10))
	assert.Equal(t, int64(5500), scaleCoeff(5.5))
	assert.Equal(t, int64(-3000), scaleCoeff(-3))
}

func TestTranslateStatus_MapsEveryKnownCPSATStatus(t *testing.T) {
	cases := map[cmpb.CpSolverStatus]domain.SolverStatus{
		cmpb.CpSolverStatus_OPTIMAL:      domain.StatusOptimal,
		cmpb.CpSolverStatus_FEASIBLE:     domain.StatusFeasible,
		cmpb.CpSolverStatus_INFEASIBLE:   domain.StatusInfeasible,
		cmpb.CpSolverStatus_MODEL_INVALID: domain.StatusModelInvalid,
		cmpb.CpSolverStatus_UNKNOWN:      domain.StatusUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, translateStatus(in))
	}
}
