// Package mip builds the 0/1 mixed-integer program described in spec.md
// §4.4-§4.5 (C4 Variable Builder, C5 Constraint Builder): a sparse set of
// boolean decision variables plus linear (in)equality constraints and a
// linear objective, handed to a pluggable solver oracle (internal/solver).
//
// The package never talks to a solver itself — Model is a plain
// intermediate representation. This keeps the engine compiling against
// multiple backends (spec.md §9 "Solver coupling").
package mip

// Op is a linear constraint's relational operator.
type Op int

const (
	LE Op = iota // <=
	GE           // >=
	EQ           // ==
)

// Term is one coefficient·variable pair in a linear expression.
type Term struct {
	Var   string
	Coeff float64
}

// Expr is a linear expression: sum(coeff·var) + constant.
type Expr struct {
	Terms    []Term
	Constant float64
}

// Add appends a term to the expression and returns it for chaining.
func (e Expr) Add(varID string, coeff float64) Expr {
	e.Terms = append(e.Terms, Term{Var: varID, Coeff: coeff})
	return e
}

// Constraint is one linear (in)equality: Expr <op> RHS.
type Constraint struct {
	Name string // for diagnostics only
	Expr Expr
	Op   Op
	RHS  float64
}

// VarKind distinguishes the assignment/indicator booleans (the bulk of the
// model) from the small integer counters the overflow/overage penalties
// need (k[d], unit-overage slack).
type VarKind int

const (
	Binary VarKind = iota
	Integer
)

// Var is one decision variable in the model.
type Var struct {
	ID    string
	Kind  VarKind
	Lower int64 // only meaningful for Integer
	Upper int64 // only meaningful for Integer
}

// Model is the full 0/1 MIP (plus a handful of small bounded integer
// counters): decision variables, linear constraints, and a linear
// objective to minimize.
type Model struct {
	Vars        []Var
	Constraints []Constraint
	Objective   Expr
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// AddVar registers a new boolean variable. Returns its id, unchanged, for
// call-site convenience (id generation is the caller's responsibility via
// the naming helpers in naming.go — this keeps Model itself naming
// agnostic).
func (m *Model) AddVar(id string) string {
	m.Vars = append(m.Vars, Var{ID: id, Kind: Binary})
	return id
}

// AddBoundedIntVar registers a bounded nonnegative integer variable (used
// for the overage/overflow slacks that are not simple 0/1 indicators).
func (m *Model) AddBoundedIntVar(id string, upper int64) string {
	m.Vars = append(m.Vars, Var{ID: id, Kind: Integer, Lower: 0, Upper: upper})
	return id
}

// AddConstraint appends a constraint to the model.
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// AddObjectiveTerm adds coeff·var to the objective (the model always
// minimizes; a reward is expressed as a negative coefficient per spec.md
// §4.5's 3-day gap reward).
func (m *Model) AddObjectiveTerm(varID string, coeff float64) {
	if coeff == 0 {
		return
	}
	m.Objective.Terms = append(m.Objective.Terms, Term{Var: varID, Coeff: coeff})
}
