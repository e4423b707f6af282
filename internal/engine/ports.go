package engine

import (
	"context"

	"github.com/medschedulr/roster/internal/contract"
)

// ScheduleUseCase is the engine's single entry point: one immutable
// request in, one response out, no persisted state beyond what the
// caller chooses to record (spec.md §3 Lifecycle).
type ScheduleUseCase interface {
	Generate(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}
