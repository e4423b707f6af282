// Package solver isolates the engine from any particular MIP/CP
// implementation behind a narrow Oracle interface (spec.md §9 "Solver
// coupling"): build a linear model, get back a status and variable
// valuations. internal/mip never imports this package; internal/engine
// wires the two together.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/mip"
)

// ErrUnavailable indicates the configured oracle dependency could not be
// reached or initialised (spec.md §7 SolverUnavailable).
var ErrUnavailable = errors.New("solver oracle unavailable")

// Result is what a compliant oracle returns for one Solve call.
type Result struct {
	Status         domain.SolverStatus
	ObjectiveValue float64
	// Values holds the valuation of every variable the oracle was asked
	// about; booleans are already thresholded into {0,1} by the oracle
	// itself (a CP-SAT boolean var has no fractional valuation), integer
	// variables carry their solved value. Absent entries are implicit 0.
	Values map[string]float64
}

// BooleanValue reports whether varID's valuation is "set" (>0.5), per the
// Result Extractor's thresholding rule (spec.md §4.7).
func (r Result) BooleanValue(varID string) bool {
	return r.Values[varID] > 0.5
}

// Oracle is a pluggable dependency: it accepts a 0/1 MIP with a linear
// objective and constraints, a time budget, and returns a status plus
// variable valuations (spec.md §4.6 point 3). phase (1 or 2) is passed
// through for observability only — it has no effect on how the oracle
// solves the model.
type Oracle interface {
	Solve(ctx context.Context, model *mip.Model, timeout time.Duration, phase int) (Result, error)
}
