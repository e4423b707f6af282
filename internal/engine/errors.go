package engine

import "fmt"

// ScheduleErrorCode classifies a fatal engine failure (spec.md §7).
type ScheduleErrorCode string

const (
	ErrInput             ScheduleErrorCode = "INPUT_ERROR"
	ErrSolverUnavailable ScheduleErrorCode = "SOLVER_UNAVAILABLE"
	ErrSolverFailure     ScheduleErrorCode = "SOLVER_FAILURE"
)

// ScheduleError is a fatal, user-facing engine failure: malformed input,
// a missing oracle dependency, or an oracle call that returned an error in
// Phase 2. An unusable Phase 2 status is not an error: Generate returns a
// response with Success false and the status surfaced instead. Warnings
// (uncoverable slots, weekend-pairing infeasibility) are not errors —
// they accumulate in the response instead (spec.md §7 Propagation).
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func inputErrorf(format string, args ...any) *ScheduleError {
	return &ScheduleError{Code: ErrInput, Message: fmt.Sprintf(format, args...)}
}
