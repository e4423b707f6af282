package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/medschedulr/roster/internal/domain"
)

// SolveEvent records metadata about a single oracle invocation, one per
// solver phase (spec.md §4.6).
type SolveEvent struct {
	Phase     int // 1 or 2
	VarCount  int
	ConstrCount int
	Status    domain.SolverStatus
	Duration  time.Duration
	Err       error
}

// SolveObserver receives events about oracle calls for logging.
type SolveObserver interface {
	ObserveSolve(ctx context.Context, event SolveEvent)
}

// NoopSolveObserver discards all events. Useful for tests.
type NoopSolveObserver struct{}

func (NoopSolveObserver) ObserveSolve(context.Context, SolveEvent) {}

type logSolveObserver struct {
	logger *slog.Logger
}

// NewLogSolveObserver writes oracle-call events to logger, or to a noop
// observer if logger is nil.
func NewLogSolveObserver(logger *slog.Logger) SolveObserver {
	if logger == nil {
		return NoopSolveObserver{}
	}
	return &logSolveObserver{logger: logger}
}

func (o *logSolveObserver) ObserveSolve(ctx context.Context, event SolveEvent) {
	attrs := []any{
		"phase", event.Phase,
		"vars", event.VarCount,
		"constraints", event.ConstrCount,
		"status", string(event.Status),
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "solve_phase", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "solve_phase", attrs...)
}
