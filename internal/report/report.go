// Package report implements C8: aggregating the diagnostics produced by
// earlier stages (post availability, weekend-pairing feasibility) with
// the adopted solver status, objective value, and statistics bundle into
// one informational bundle. Nothing here feeds back into the model —
// warnings are advisory only (spec.md §4.8).
package report

import (
	"fmt"
	"sort"

	"github.com/medschedulr/roster/internal/availability"
	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
)

const dateLayout = "2006-01-02"

// Report is C8's output, merged into contract.ScheduleResponse by the
// engine.
type Report struct {
	AdoptedPhase   int
	SolverStatus   domain.SolverStatus
	ObjectiveValue float64
	Statistics     contract.Statistics
	Warnings       []string
}

// Build assembles the full diagnostic bundle: uncoverable-slot warnings
// from C3, weekend-pairing feasibility warnings derived here, and
// whatever the caller already knows about the adopted solve.
func Build(adoptedPhase int, status domain.SolverStatus, objective float64, stats contract.Statistics, cal *calendar.Calendar, avail *availability.Index, cat postsForDayer, doctors []domain.Doctor) Report {
	var warnings []string
	for _, slot := range avail.Diagnose(cal.Days, cat, doctors) {
		warnings = append(warnings, slot.String())
	}
	warnings = append(warnings, WeekendPairingWarnings(cal, avail, doctors)...)

	return Report{
		AdoptedPhase:   adoptedPhase,
		SolverStatus:   status,
		ObjectiveValue: objective,
		Statistics:     stats,
		Warnings:       warnings,
	}
}

// postsForDayer is the slice of *catalogue.Catalogue this package
// actually needs, kept narrow so report doesn't otherwise depend on the
// catalogue package's internals.
type postsForDayer interface {
	PostsForDay(day domain.Day) []string
}

// WeekendPairingWarnings names, for every weekend pair with no doctor
// eligible for both Saturday and Sunday Standby Oncall, the disjoint
// eligible sets on each side (spec.md §4.8 "weekend-pairing feasibility
// warnings (Sat-set ∩ Sun-set for Standby)").
func WeekendPairingWarnings(cal *calendar.Calendar, avail *availability.Index, doctors []domain.Doctor) []string {
	var warnings []string
	for _, wp := range cal.WeekendPairs {
		satDay := cal.Days[indexOfDay(cal, wp.Saturday)]
		sunDay := cal.Days[indexOfDay(cal, wp.Sunday)]

		satEligible := eligibleFor(avail, doctors, satDay, domain.StandbyOncallPost)
		sunEligible := eligibleFor(avail, doctors, sunDay, domain.StandbyOncallPost)

		if intersects(satEligible, sunEligible) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf(
			"weekend pair %d (%s–%s): no doctor eligible for both days' Standby Oncall (Saturday-eligible %v, Sunday-eligible %v)",
			wp.Index, satDay.Date.Format(dateLayout), sunDay.Date.Format(dateLayout), satEligible, sunEligible))
	}
	return warnings
}

func indexOfDay(cal *calendar.Calendar, dayIndex int) int {
	for i, d := range cal.Days {
		if d.Index == dayIndex {
			return i
		}
	}
	return 0
}

func eligibleFor(avail *availability.Index, doctors []domain.Doctor, day domain.Day, post string) []string {
	var out []string
	for _, d := range doctors {
		if avail.Available(d.ID, day, post) {
			out = append(out, d.ID)
		}
	}
	sort.Strings(out)
	return out
}

func intersects(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if set[id] {
			return true
		}
	}
	return false
}
