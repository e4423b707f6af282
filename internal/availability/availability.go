// Package availability implements C3: a sparse (doctor, day, post) → bool
// lookup with clinic-post auto-availability defaulting and uncoverable-slot
// diagnostics.
package availability

import (
	"fmt"
	"sort"

	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/domain"
)

// Record is one explicit availability entry, already resolved from the
// wire DoctorID/date/post form into an internal day index.
type Record struct {
	DoctorID string
	DayIndex int
	Post     string
	Available bool
}

type key struct {
	doctorID string
	dayIndex int
	post     string
}

// Index answers availability(d, s, t) for the duration of one solve.
type Index struct {
	explicit map[key]bool
	doctorsByUnit map[string][]string
	units    map[string]domain.Unit
}

// Build applies explicit records, then the clinic-post default (spec.md
// §4.3): a clinic:<unit> post on a clinic weekday defaults to true for
// every doctor whose unit is that unit, unless an explicit record says
// otherwise. All other missing entries default to false.
func Build(records []Record, doctors []domain.Doctor, units []domain.Unit) *Index {
	idx := &Index{
		explicit:      make(map[key]bool, len(records)),
		doctorsByUnit: make(map[string][]string),
		units:         make(map[string]domain.Unit, len(units)),
	}
	for _, u := range units {
		idx.units[u.ID] = u
	}
	for _, d := range doctors {
		idx.doctorsByUnit[d.UnitID] = append(idx.doctorsByUnit[d.UnitID], d.ID)
	}
	for _, r := range records {
		idx.explicit[key{r.DoctorID, r.DayIndex, r.Post}] = r.Available
	}
	return idx
}

// Available reports availability(d, s, t), applying the clinic-post default
// only when no explicit record exists for the cell.
func (idx *Index) Available(doctorID string, day domain.Day, post string) bool {
	k := key{doctorID, day.Index, post}
	if v, ok := idx.explicit[k]; ok {
		return v
	}
	if domain.IsClinicPost(post) {
		unitID := domain.ClinicUnitID(post)
		u, ok := idx.units[unitID]
		if ok && u.RunsClinicOn(day.ClinicWeekday()) {
			// Only true for a doctor actually belonging to the unit.
			for _, id := range idx.doctorsByUnit[unitID] {
				if id == doctorID {
					return true
				}
			}
		}
	}
	return false
}

// UncoverableSlot names a (day, post) with zero eligible doctors.
type UncoverableSlot struct {
	DayIndex int
	Date     string
	Post     string
}

// String renders a human-readable warning line.
func (s UncoverableSlot) String() string {
	return fmt.Sprintf("no eligible doctor for post %q on %s", s.Post, s.Date)
}

// Diagnose emits one UncoverableSlot for every (s,t) with zero eligible
// doctors, given the catalogue's per-day post lists.
func (idx *Index) Diagnose(days []domain.Day, cat *catalogue.Catalogue, doctors []domain.Doctor) []UncoverableSlot {
	var out []UncoverableSlot
	for _, day := range days {
		for _, post := range cat.PostsForDay(day) {
			eligible := false
			for _, d := range doctors {
				if idx.Available(d.ID, day, post) {
					eligible = true
					break
				}
			}
			if !eligible {
				out = append(out, UncoverableSlot{
					DayIndex: day.Index,
					Date:     day.Date.Format("2006-01-02"),
					Post:     post,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayIndex != out[j].DayIndex {
			return out[i].DayIndex < out[j].DayIndex
		}
		return out[i].Post < out[j].Post
	})
	return out
}
