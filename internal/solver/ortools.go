package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/mip"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

// coeffScale converts the model's float64 coefficients into the integer
// coefficients CP-SAT requires without losing the penalty weights' three
// decimal places of precision (every default in spec.md §6 is a whole
// number; this only matters for caller-supplied solver_config overrides).
const coeffScale = 1000

// OrToolsOracle solves a mip.Model with Google OR-Tools' CP-SAT solver.
// Grounded on the nurse-scheduling and no-overlap CP-SAT sample programs:
// build with cpmodel.NewCpModelBuilder(), register one BoolVar/IntVar per
// mip.Var, translate each mip.Constraint into the matching AddXxx call,
// and read valuations back with cpmodel.SolutionBooleanValue /
// cpmodel.SolutionIntegerValue.
type OrToolsOracle struct {
	Observer SolveObserver
}

// NewOrToolsOracle returns an Oracle backed by CP-SAT. A nil observer is
// replaced with a no-op.
func NewOrToolsOracle(observer SolveObserver) *OrToolsOracle {
	if observer == nil {
		observer = NoopSolveObserver{}
	}
	return &OrToolsOracle{Observer: observer}
}

func (o *OrToolsOracle) Solve(ctx context.Context, model *mip.Model, timeout time.Duration, phase int) (Result, error) {
	start := time.Now()
	builder := cpmodel.NewCpModelBuilder()

	boolVars := make(map[string]cpmodel.BoolVar, len(model.Vars))
	intVars := make(map[string]cpmodel.IntVar, len(model.Vars))

	for _, v := range model.Vars {
		switch v.Kind {
		case mip.Binary:
			boolVars[v.ID] = builder.NewBoolVar().WithName(v.ID)
		case mip.Integer:
			intVars[v.ID] = builder.NewIntVarFromDomain(cpmodel.NewDomain(v.Lower, v.Upper)).WithName(v.ID)
		}
	}

	linearExpr := func(e mip.Expr) cpmodel.LinearExpr {
		expr := cpmodel.NewLinearExpr()
		for _, t := range e.Terms {
			coeff := scaleCoeff(t.Coeff)
			if bv, ok := boolVars[t.Var]; ok {
				expr = expr.AddTerm(bv, coeff)
				continue
			}
			if iv, ok := intVars[t.Var]; ok {
				expr = expr.AddTerm(iv, coeff)
			}
		}
		if e.Constant != 0 {
			expr = expr.AddConstant(scaleCoeff(e.Constant))
		}
		return expr
	}

	for _, c := range model.Constraints {
		lhs := linearExpr(c.Expr)
		rhs := cpmodel.NewConstant(scaleCoeff(c.RHS))
		switch c.Op {
		case mip.LE:
			builder.AddLessOrEqual(lhs, rhs)
		case mip.GE:
			builder.AddGreaterOrEqual(lhs, rhs)
		case mip.EQ:
			builder.AddEquality(lhs, rhs)
		}
	}

	builder.Minimize(linearExpr(model.Objective))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	built, err := builder.Model()
	if err != nil {
		return Result{}, fmt.Errorf("instantiate cp model: %w", err)
	}

	// Once invoked the oracle call is synchronous and cannot be
	// preempted (spec.md §5 Cancellation). timeout is not applied:
	// SolveCpModel is called without a time limit, so the solve runs until
	// CP-SAT finishes on its own.
	_ = timeout
	response, err := cpmodel.SolveCpModel(built)
	if err != nil {
		return Result{}, fmt.Errorf("solve cp model: %w", err)
	}

	status := translateStatus(response.GetStatus())
	values := make(map[string]float64, len(model.Vars))
	for id, bv := range boolVars {
		if cpmodel.SolutionBooleanValue(response, bv) {
			values[id] = 1
		}
	}
	for id, iv := range intVars {
		values[id] = float64(cpmodel.SolutionIntegerValue(response, iv))
	}

	result := Result{
		Status:         status,
		ObjectiveValue: response.GetObjectiveValue() / coeffScale,
		Values:         values,
	}

	o.Observer.ObserveSolve(ctx, SolveEvent{
		Phase:       phase,
		VarCount:    len(model.Vars),
		ConstrCount: len(model.Constraints),
		Status:      status,
		Duration:    time.Since(start),
	})

	return result, nil
}

func scaleCoeff(v float64) int64 {
	return int64(math.Round(v * coeffScale))
}

func translateStatus(s cmpb.CpSolverStatus) domain.SolverStatus {
	switch s {
	case cmpb.CpSolverStatus_OPTIMAL:
		return domain.StatusOptimal
	case cmpb.CpSolverStatus_FEASIBLE:
		return domain.StatusFeasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		return domain.StatusInfeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return domain.StatusModelInvalid
	case cmpb.CpSolverStatus_UNKNOWN:
		return domain.StatusUnknown
	default:
		return domain.StatusUnknown
	}
}
