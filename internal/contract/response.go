package contract

// AssignmentRow is one emitted {doctor, date, post} row (spec.md §4.7).
type AssignmentRow struct {
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Post   string `json:"post"`
}

// Statistics is the C7 statistics bundle, extended per SPEC_FULL.md §4
// with per-post fill-rate and category/unit-grouped diagnostics.
type Statistics struct {
	CountsByPost        map[string]int     `json:"counts_by_post"`
	CountsByDate        map[string]int     `json:"counts_by_date"`
	CountsByDoctor      map[string]int     `json:"counts_by_doctor"`
	FillRateByPost      map[string]float64 `json:"fill_rate_by_post"`
	EligibleUnassigned  []string           `json:"eligible_unassigned"`
	UnassignedByUnit    map[string][]string `json:"unassigned_by_unit,omitempty"`
	UnassignedByCategory map[string][]string `json:"unassigned_by_category,omitempty"`
}

// ScheduleResponse is the engine's output, per spec.md §6.
type ScheduleResponse struct {
	Schedule           []AssignmentRow `json:"schedule"`
	Statistics         Statistics      `json:"statistics"`
	SolverStatus       string          `json:"solver_status"`
	ObjectiveValue     *float64        `json:"objective_value,omitempty"`
	Success            bool            `json:"success"`
	Warnings           []string        `json:"warnings"`
	WeekendAssignments int             `json:"weekend_assignments"`
	AdoptedPhase       int             `json:"adopted_phase"`
}
