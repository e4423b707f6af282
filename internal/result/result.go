// Package result implements C7: thresholding the oracle's variable
// valuations at 0.5 into concrete assignment rows, and deriving the
// statistics bundle spec.md §4.7 and §6 describe.
package result

import (
	"sort"

	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
	"github.com/medschedulr/roster/internal/mip"
	"github.com/medschedulr/roster/internal/solver"
)

const dateLayout = "2006-01-02"

// Extraction is C7's output: the emitted rows, the statistics bundle, and
// the weekend-Standby count (spec.md §6's weekend_assignments field).
type Extraction struct {
	Rows               []contract.AssignmentRow
	Statistics         contract.Statistics
	WeekendAssignments int
}

// Extract reads res's variable valuations against vs and emits one row
// per materialised x[d,s,t] with valuation > 0.5 (spec.md §4.7). Rows are
// ordered by day, then by the catalogue's post order for that day, then
// by doctor — a deterministic total order derived entirely from request
// order, per spec.md §5.
func Extract(res solver.Result, vs *mip.VariableSet, cal *calendar.Calendar, cat *catalogue.Catalogue, doctors []domain.Doctor, units []domain.Unit) Extraction {
	var rows []contract.AssignmentRow
	countsByPost := map[string]int{}
	countsByDate := map[string]int{}
	countsByDoctor := map[string]int{}
	filledSlots := map[string]int{}
	totalSlots := map[string]int{}

	assignedDoctor := map[string]bool{}

	for _, day := range cal.Days {
		date := day.Date.Format(dateLayout)
		for _, post := range cat.PostsForDay(day) {
			totalSlots[post]++
			for _, d := range doctors {
				id, ok := vs.X[d.ID][day.Index][post]
				if !ok || !res.BooleanValue(id) {
					continue
				}
				rows = append(rows, contract.AssignmentRow{Doctor: d.ID, Date: date, Post: post})
				countsByPost[post]++
				countsByDate[date]++
				countsByDoctor[d.ID]++
				filledSlots[post]++
				assignedDoctor[d.ID] = true
			}
		}
	}

	fillRate := make(map[string]float64, len(totalSlots))
	for post, total := range totalSlots {
		if total == 0 {
			continue
		}
		fillRate[post] = float64(filledSlots[post]) / float64(total)
	}

	eligibleUnassigned := eligibleButUnassigned(vs, doctors, assignedDoctor)
	unassignedByUnit := map[string][]string{}
	unassignedByCategory := map[string][]string{}
	doctorByID := make(map[string]domain.Doctor, len(doctors))
	for _, d := range doctors {
		doctorByID[d.ID] = d
	}
	for _, id := range eligibleUnassigned {
		d := doctorByID[id]
		unassignedByUnit[d.UnitID] = append(unassignedByUnit[d.UnitID], id)
		unassignedByCategory[string(d.Category)] = append(unassignedByCategory[string(d.Category)], id)
	}

	weekendAssignments := 0
	for _, d := range doctors {
		for _, wp := range cal.WeekendPairs {
			yID, ok := vs.Y[d.ID][wp.Index]
			if ok && res.BooleanValue(yID) {
				weekendAssignments++
			}
		}
	}

	return Extraction{
		Rows: rows,
		Statistics: contract.Statistics{
			CountsByPost:         countsByPost,
			CountsByDate:         countsByDate,
			CountsByDoctor:       countsByDoctor,
			FillRateByPost:       fillRate,
			EligibleUnassigned:   eligibleUnassigned,
			UnassignedByUnit:     unassignedByUnit,
			UnassignedByCategory: unassignedByCategory,
		},
		WeekendAssignments: weekendAssignments,
	}
}

// eligibleButUnassigned lists doctors who had at least one materialised
// assignment variable (i.e. were eligible for something) but ended up
// with zero rows in the final schedule.
func eligibleButUnassigned(vs *mip.VariableSet, doctors []domain.Doctor, assigned map[string]bool) []string {
	var out []string
	for _, d := range doctors {
		if assigned[d.ID] {
			continue
		}
		if len(vs.X[d.ID]) == 0 {
			continue
		}
		out = append(out, d.ID)
	}
	sort.Strings(out)
	return out
}
