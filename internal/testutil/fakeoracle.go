package testutil

import (
	"context"
	"time"

	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/mip"
	"github.com/medschedulr/roster/internal/solver"
)

// FakeOracle is a deterministic solver.Oracle double: it reports a fixed
// status and, when SolveFunc is nil, sets every boolean variable to 1
// (any feasible-looking instantiation is usually enough to exercise the
// extractor/reporter without depending on CP-SAT's search order). Tests
// that need a specific solution set SolveFunc instead; a non-nil Err is
// returned from every call.
type FakeOracle struct {
	Status    domain.SolverStatus
	Err       error
	SolveFunc func(model *mip.Model) solver.Result
	Calls     int
}

func (f *FakeOracle) Solve(ctx context.Context, model *mip.Model, timeout time.Duration, phase int) (solver.Result, error) {
	f.Calls++
	if f.Err != nil {
		return solver.Result{}, f.Err
	}
	if f.SolveFunc != nil {
		return f.SolveFunc(model), nil
	}

	status := f.Status
	if status == "" {
		status = domain.StatusOptimal
	}
	values := make(map[string]float64, len(model.Vars))
	for _, v := range model.Vars {
		if v.Kind == mip.Binary {
			values[v.ID] = 1
		}
	}
	return solver.Result{Status: status, Values: values}, nil
}
