// Package engine orchestrates C1 through C8 into the single ScheduleUseCase
// entry point: parse and validate the request, build the calendar,
// catalogue, and availability index, then drive the two-phase solve
// (spec.md §4.6) and assemble the response.
package engine

import (
	"context"
	"time"

	"github.com/medschedulr/roster/internal/availability"
	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/mip"
	"github.com/medschedulr/roster/internal/report"
	"github.com/medschedulr/roster/internal/result"
	"github.com/medschedulr/roster/internal/solver"
)

// Engine implements ScheduleUseCase by running the full C1-C8 pipeline
// over a solver.Oracle dependency.
type Engine struct {
	Oracle solver.Oracle
}

// NewEngine returns an Engine backed by oracle. A nil oracle is accepted
// here and turned into a SolverUnavailable error at Generate time, not at
// construction — mirroring spec.md §7's SolverUnavailable being a
// per-job, not a startup, failure.
func NewEngine(oracle solver.Oracle) *Engine {
	return &Engine{Oracle: oracle}
}

var _ ScheduleUseCase = (*Engine)(nil)

func (e *Engine) Generate(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	if e.Oracle == nil {
		return nil, &ScheduleError{Code: ErrSolverUnavailable, Message: "no solver oracle configured"}
	}

	start, err := calendar.ParseRequiredDate(req.RosterStart, "roster_start")
	if err != nil {
		return nil, inputErrorf("%v", err)
	}
	end, err := calendar.ParseRequiredDate(req.RosterEnd, "roster_end")
	if err != nil {
		return nil, inputErrorf("%v", err)
	}

	cal, calErr := calendar.Build(start, end)
	if calErr != nil {
		return nil, inputErrorf("%v", calErr)
	}

	units, serr := buildUnits(req.Units)
	if serr != nil {
		return nil, serr
	}
	unitByID := unitIndex(units)

	doctors, serr := buildDoctors(req.Doctors, req.WorkloadData, unitByID)
	if serr != nil {
		return nil, serr
	}

	cat := catalogue.Build(req.PostsWeekday, req.PostsWeekend, units)
	availRecords := buildAvailability(req.Availability, cal)
	availIdx := availability.Build(availRecords, doctors, units)

	cfg := contract.ResolveSolverConfig(req.SolverConfig)
	timeout := time.Duration(cfg.SolverTimeoutSeconds) * time.Second

	phase1Model := mip.NewModel()
	vs1 := mip.BuildVariables(phase1Model, cal, cat, availIdx, doctors, units, false)
	mip.BuildConstraints(phase1Model, vs1, cal, cat, doctors, units, cfg, false)

	res1, err := e.Oracle.Solve(ctx, phase1Model, timeout, 1)
	if err == nil && res1.Status == domain.StatusOptimal {
		return assembleResponse(1, res1, vs1, cal, cat, availIdx, doctors, units), nil
	}

	phase2Model := mip.NewModel()
	vs2 := mip.BuildVariables(phase2Model, cal, cat, availIdx, doctors, units, true)
	mip.BuildConstraints(phase2Model, vs2, cal, cat, doctors, units, cfg, true)

	res2, err := e.Oracle.Solve(ctx, phase2Model, timeout, 2)
	if err != nil {
		return nil, &ScheduleError{Code: ErrSolverFailure, Message: err.Error()}
	}
	if !res2.Status.IsUsable() {
		resp := failedResponse(res2.Status)
		return resp, nil
	}
	return assembleResponse(2, res2, vs2, cal, cat, availIdx, doctors, units), nil
}

func assembleResponse(phase int, res solver.Result, vs *mip.VariableSet, cal *calendar.Calendar, cat *catalogue.Catalogue, availIdx *availability.Index, doctors []domain.Doctor, units []domain.Unit) *contract.ScheduleResponse {
	extraction := result.Extract(res, vs, cal, cat, doctors, units)
	rpt := report.Build(phase, res.Status, res.ObjectiveValue, extraction.Statistics, cal, availIdx, cat, doctors)

	objective := res.ObjectiveValue
	return &contract.ScheduleResponse{
		Schedule:           extraction.Rows,
		Statistics:         rpt.Statistics,
		SolverStatus:       string(rpt.SolverStatus),
		ObjectiveValue:     &objective,
		Success:            true,
		Warnings:           rpt.Warnings,
		WeekendAssignments: extraction.WeekendAssignments,
		AdoptedPhase:       rpt.AdoptedPhase,
	}
}

func failedResponse(status domain.SolverStatus) *contract.ScheduleResponse {
	return &contract.ScheduleResponse{
		Schedule:     nil,
		Statistics:   contract.Statistics{},
		SolverStatus: string(status),
		Success:      false,
		Warnings:     []string{"solver returned an unusable status in phase 2"},
		AdoptedPhase: 2,
	}
}
