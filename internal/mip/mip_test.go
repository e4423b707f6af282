package mip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medschedulr/roster/internal/availability"
	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
)

func buildFixture(t *testing.T) (*calendar.Calendar, *catalogue.Catalogue, *availability.Index, []domain.Doctor, []domain.Unit) {
	t.Helper()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) // Thursday
	end := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)  // includes two weekend pairs
	cal, err := calendar.Build(start, end)
	require.NoError(t, err)

	units := []domain.Unit{
		{ID: "gen", Name: "General", ClinicDays: map[int]bool{}},
	}
	doctors := []domain.Doctor{
		{ID: "d1", Name: "Dr A", UnitID: "gen", Category: domain.CategorySenior, Workload: domain.DefaultWorkload()},
		{ID: "d2", Name: "Dr B", UnitID: "gen", Category: domain.CategoryRegistrar, Workload: domain.DefaultWorkload()},
	}

	cat := catalogue.Build([]string{"Standby Oncall"}, []string{"Standby Oncall"}, units)
	avail := availability.Build([]availability.Record{
		{DoctorID: "d1", DayIndex: 0, Post: "Standby Oncall", Available: true},
	}, doctors, units)

	return cal, cat, avail, doctors, units
}

func TestBuildVariables_MaterializesOnlyAvailableAssignments(t *testing.T) {
	cal, cat, avail, doctors, units := buildFixture(t)

	m := NewModel()
	vs := BuildVariables(m, cal, cat, avail, doctors, units, false)

	// Only d1 was granted explicit availability for day 0's Standby
	// Oncall slot; d2 has no availability anywhere, so no x variables
	// exist for it at all. The weekend indicator is still materialised
	// for every (doctor, weekend pair) regardless.
	assert.Len(t, vs.X["d1"], 1)
	assert.Empty(t, vs.X["d2"])
	for _, d := range doctors {
		assert.Len(t, vs.Y[d.ID], len(cal.WeekendPairs))
	}
}

func TestBuildVariables_CoverageSlackOnlyInPhase2(t *testing.T) {
	cal, cat, avail, doctors, units := buildFixture(t)

	m1 := NewModel()
	vs1 := BuildVariables(m1, cal, cat, avail, doctors, units, false)
	assert.Empty(t, vs1.CoverageSlack)

	m2 := NewModel()
	vs2 := BuildVariables(m2, cal, cat, avail, doctors, units, true)
	assert.NotEmpty(t, vs2.CoverageSlack)
}

func TestBuildVariables_MinOneSlackExcludesFloaters(t *testing.T) {
	cal, cat, avail, doctors, units := buildFixture(t)
	doctors = append(doctors, domain.Doctor{ID: "d3", UnitID: "gen", Category: domain.CategoryFloater, Workload: domain.DefaultWorkload()})
	avail = availability.Build(nil, doctors, units)

	m := NewModel()
	vs := BuildVariables(m, cal, cat, avail, doctors, units, false)

	_, hasD1 := vs.MinOneSlack["d1"]
	_, hasD3 := vs.MinOneSlack["d3"]
	assert.True(t, hasD1)
	assert.False(t, hasD3)
}

func TestBuildConstraints_Phase1CoverageIsEquality(t *testing.T) {
	cal, cat, avail, doctors, units := buildFixture(t)
	cfg := contract.DefaultSolverConfig()

	m := NewModel()
	vs := BuildVariables(m, cal, cat, avail, doctors, units, false)
	BuildConstraints(m, vs, cal, cat, doctors, units, cfg, false)

	foundEquality := false
	for _, c := range m.Constraints {
		if c.Op == EQ && c.RHS == 1 {
			foundEquality = true
			break
		}
	}
	assert.True(t, foundEquality, "phase 1 should emit a strict equality coverage constraint somewhere")
}

func TestBuildConstraints_Phase2AddsBigMSlackToObjective(t *testing.T) {
	cal, cat, avail, doctors, units := buildFixture(t)
	cfg := contract.DefaultSolverConfig()

	m := NewModel()
	vs := BuildVariables(m, cal, cat, avail, doctors, units, true)
	BuildConstraints(m, vs, cal, cat, doctors, units, cfg, true)

	var sawSlackTerm bool
	for _, t := range m.Objective.Terms {
		if t.Coeff == cfg.BigM {
			sawSlackTerm = true
			break
		}
	}
	assert.True(t, sawSlackTerm, "phase 2 objective should penalize coverage slack at BigM")
}

func TestModel_AddBoundedIntVarRecordsBounds(t *testing.T) {
	m := NewModel()
	id := m.AddBoundedIntVar("over|u1|3", 5)

	require.Len(t, m.Vars, 1)
	assert.Equal(t, id, m.Vars[0].ID)
	assert.Equal(t, Integer, m.Vars[0].Kind)
	assert.Equal(t, int64(0), m.Vars[0].Lower)
	assert.Equal(t, int64(5), m.Vars[0].Upper)
}
