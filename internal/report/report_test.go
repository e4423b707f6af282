package report

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

func TestBuild_CarriesAdoptedPhaseStatusAndStats(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	cal, err := calendar.Build(start, end)
	require.NoError(t, err)

	units := []domain.Unit{{ID: "gen", Name: "General", ClinicDays: map[int]bool{}}}
	doctors := []domain.Doctor{{ID: "d1", UnitID: "gen", Category: domain.CategorySenior}}
	cat := catalogue.Build([]string{"Standby Oncall"}, []string{"Standby Oncall"}, units)
	avail := availability.Build([]availability.Record{
		{DoctorID: "d1", DayIndex: 0, Post: "Standby Oncall", Available: true},
		{DoctorID: "d1", DayIndex: 1, Post: "Standby Oncall", Available: true},
	}, doctors, units)

	stats := contract.Statistics{CountsByPost: map[string]int{"Standby Oncall": 2}}
	rpt := Build(1, domain.StatusOptimal, 4.5, stats, cal, avail, cat, doctors)

	assert.Equal(t, 1, rpt.AdoptedPhase)
	assert.Equal(t, domain.StatusOptimal, rpt.SolverStatus)
	assert.Equal(t, 4.5, rpt.ObjectiveValue)
	assert.Equal(t, stats, rpt.Statistics)
}

func TestWeekendPairingWarnings_FlagsDisjointEligibility(t *testing.T) {
	// 2026-01-01 is a Thursday; the first weekend pair is Sat 2026-01-03 / Sun 2026-01-04.
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	cal, err := calendar.Build(start, end)
	require.NoError(t, err)
	require.Len(t, cal.WeekendPairs, 1)

	units := []domain.Unit{{ID: "gen", Name: "General", ClinicDays: map[int]bool{}}}
	doctors := []domain.Doctor{
		{ID: "d1", UnitID: "gen", Category: domain.CategorySenior},
		{ID: "d2", UnitID: "gen", Category: domain.CategorySenior},
	}
	// d1 eligible only Saturday, d2 eligible only Sunday: disjoint sets.
	avail := availability.Build([]availability.Record{
		{DoctorID: "d1", DayIndex: 2, Post: domain.StandbyOncallPost, Available: true},
		{DoctorID: "d2", DayIndex: 3, Post: domain.StandbyOncallPost, Available: true},
	}, doctors, units)

	warnings := WeekendPairingWarnings(cal, avail, doctors)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no doctor eligible for both days")
}

func TestWeekendPairingWarnings_SilentWhenOverlapExists(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	cal, err := calendar.Build(start, end)
	require.NoError(t, err)

	units := []domain.Unit{{ID: "gen", Name: "General", ClinicDays: map[int]bool{}}}
	doctors := []domain.Doctor{{ID: "d1", UnitID: "gen", Category: domain.CategorySenior}}
	avail := availability.Build([]availability.Record{
		{DoctorID: "d1", DayIndex: 2, Post: domain.StandbyOncallPost, Available: true},
		{DoctorID: "d1", DayIndex: 3, Post: domain.StandbyOncallPost, Available: true},
	}, doctors, units)

	warnings := WeekendPairingWarnings(cal, avail, doctors)
	assert.Empty(t, warnings)
}
