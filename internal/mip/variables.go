package mip

import (
	"github.com/medschedulr/roster/internal/availability"
	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/domain"
)

// VariableSet is the C4 output: every decision/auxiliary variable id the
// constraint builder (C5) needs, indexed the same way the design notes
// describe them. Absent map entries mean "not materialised" and are
// implicit zeros in every sum that touches them.
type VariableSet struct {
	// X[doctorID][dayIndex][post] — materialised only where availability
	// holds.
	X map[string]map[int]map[string]string

	// Y[doctorID][weekendIndex] — materialised for every (d,w), even when
	// neither underlying x exists (the constraint builder then forces it
	// to 0).
	Y map[string]map[int]string

	// RestViolation[doctorID][dayIndex] keyed by the earlier day s of the
	// adjacent pair (s, s+1).
	RestViolation map[string]map[int]string

	// ZGap[doctorID][dayIndex] keyed by s of the pair (s, s+2).
	ZGap map[string]map[int]string

	// MinOneSlack[doctorID] — non-floaters only.
	MinOneSlack map[string]string

	// CoverageSlack[dayIndex][post] — Phase 2 only.
	CoverageSlack map[int]map[string]string

	// UnitOver[unitID][dayIndex] — every day whose weekday is not a
	// clinic day for that unit.
	UnitOver map[string]map[int]string

	// Overflow[doctorID] — the k[d] multi-Standby overflow counter.
	// Present only when the horizon has at least one weekend pair.
	Overflow map[string]string
}

func newVariableSet() *VariableSet {
	return &VariableSet{
		X:             make(map[string]map[int]map[string]string),
		Y:             make(map[string]map[int]string),
		RestViolation: make(map[string]map[int]string),
		ZGap:          make(map[string]map[int]string),
		MinOneSlack:   make(map[string]string),
		CoverageSlack: make(map[int]map[string]string),
		UnitOver:      make(map[string]map[int]string),
		Overflow:      make(map[string]string),
	}
}

// BuildVariables materialises every variable described in spec.md §4.4,
// in request order (doctors, then days, then each day's post list) so
// that model construction is deterministic given identical input (spec.md
// §5 "Ordering guarantees").
func BuildVariables(m *Model, cal *calendar.Calendar, cat *catalogue.Catalogue, avail *availability.Index, doctors []domain.Doctor, units []domain.Unit, phase2 bool) *VariableSet {
	vs := newVariableSet()

	for _, d := range doctors {
		dayMap := make(map[int]map[string]string)
		for _, day := range cal.Days {
			var postMap map[string]string
			for _, post := range cat.PostsForDay(day) {
				if !avail.Available(d.ID, day, post) {
					continue
				}
				if postMap == nil {
					postMap = make(map[string]string)
				}
				id := assignVarName(d.ID, day.Index, post)
				m.AddVar(id)
				postMap[post] = id
			}
			if postMap != nil {
				dayMap[day.Index] = postMap
			}
		}
		if len(dayMap) > 0 {
			vs.X[d.ID] = dayMap
		}
	}

	// Weekend indicators: always materialised, one per (doctor, weekend
	// pair), regardless of whether the underlying Standby variables exist.
	for _, d := range doctors {
		if len(cal.WeekendPairs) == 0 {
			continue
		}
		wm := make(map[int]string)
		for _, wp := range cal.WeekendPairs {
			id := weekendVarName(d.ID, wp.Index)
			m.AddVar(id)
			wm[wp.Index] = id
		}
		vs.Y[d.ID] = wm

		ov := overflowVarName(d.ID)
		m.AddBoundedIntVar(ov, int64(len(cal.WeekendPairs)))
		vs.Overflow[d.ID] = ov
	}

	// Rest-violation and 3-day-gap auxiliaries, one per doctor per
	// qualifying adjacent-day pair.
	for _, d := range doctors {
		rm := make(map[int]string)
		gm := make(map[int]string)
		for i, day := range cal.Days {
			if i+1 < len(cal.Days) {
				id := restViolationVarName(d.ID, day.Index)
				m.AddVar(id)
				rm[day.Index] = id
			}
			if i+2 < len(cal.Days) {
				id := gapVarName(d.ID, day.Index)
				m.AddVar(id)
				gm[day.Index] = id
			}
		}
		if len(rm) > 0 {
			vs.RestViolation[d.ID] = rm
		}
		if len(gm) > 0 {
			vs.ZGap[d.ID] = gm
		}
	}

	// Minimum-one slack: non-floaters only.
	for _, d := range doctors {
		if d.IsFloater() {
			continue
		}
		id := minOneSlackVarName(d.ID)
		m.AddVar(id)
		vs.MinOneSlack[d.ID] = id
	}

	// Coverage slack: Phase 2 only, one per (day, post) pair that exists
	// in the catalogue for that day (whether or not any x was
	// materialised — an uncoverable slot needs the slack to stay
	// feasible).
	if phase2 {
		for _, day := range cal.Days {
			pm := make(map[string]string)
			for _, post := range cat.PostsForDay(day) {
				id := coverageSlackVarName(day.Index, post)
				m.AddVar(id)
				pm[post] = id
			}
			vs.CoverageSlack[day.Index] = pm
		}
	}

	// Unit over-coverage slack: every unit, every day whose weekday is
	// not one of that unit's clinic days.
	for _, u := range units {
		um := make(map[int]string)
		for _, day := range cal.Days {
			if u.RunsClinicOn(day.ClinicWeekday()) {
				continue
			}
			cap := unitOverCap(u, doctors)
			id := unitOverVarName(u.ID, day.Index)
			m.AddBoundedIntVar(id, int64(cap)+int64(len(doctors)))
			um[day.Index] = id
		}
		if len(um) > 0 {
			vs.UnitOver[u.ID] = um
		}
	}

	return vs
}

// unitOverCap implements cap = max(1, ceil(0.25 * |u|)) (spec.md §4.5 Unit
// over-coverage soft cap), bounding the over-slack's upper range.
func unitOverCap(u domain.Unit, doctors []domain.Doctor) int {
	size := 0
	for _, d := range doctors {
		if d.UnitID == u.ID {
			size++
		}
	}
	cap := (size + 3) / 4 // ceil(0.25*size)
	if cap < 1 {
		cap = 1
	}
	return cap
}
