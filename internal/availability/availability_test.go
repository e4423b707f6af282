package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/domain"
)

func unitGen() domain.Unit {
	return domain.Unit{ID: "gen", Name: "General", ClinicDays: map[int]bool{0: true}} // Monday
}

func TestAvailable_ExplicitRecordOverridesDefault(t *testing.T) {
	units := []domain.Unit{unitGen()}
	doctors := []domain.Doctor{{ID: "d1", UnitID: "gen", Category: domain.CategorySenior}}
	monday := domain.Day{Index: 0, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Weekday: time.Monday}

	idx := Build([]Record{
		{DoctorID: "d1", DayIndex: 0, Post: domain.ClinicPostName("gen"), Available: false},
	}, doctors, units)

	assert.False(t, idx.Available("d1", monday, domain.ClinicPostName("gen")))
}

func TestAvailable_ClinicDefaultsTrueForUnitMember(t *testing.T) {
	units := []domain.Unit{unitGen()}
	doctors := []domain.Doctor{
		{ID: "d1", UnitID: "gen", Category: domain.CategorySenior},
		{ID: "d2", UnitID: "other", Category: domain.CategorySenior},
	}
	monday := domain.Day{Index: 0, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Weekday: time.Monday}

	idx := Build(nil, doctors, units)

	assert.True(t, idx.Available("d1", monday, domain.ClinicPostName("gen")))
	assert.False(t, idx.Available("d2", monday, domain.ClinicPostName("gen")))
}

func TestAvailable_NonClinicDefaultsFalse(t *testing.T) {
	units := []domain.Unit{unitGen()}
	doctors := []domain.Doctor{{ID: "d1", UnitID: "gen", Category: domain.CategorySenior}}
	monday := domain.Day{Index: 0, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Weekday: time.Monday}

	idx := Build(nil, doctors, units)

	assert.False(t, idx.Available("d1", monday, "Standby Oncall"))
}

func TestDiagnose_FlagsUncoverableSlots(t *testing.T) {
	units := []domain.Unit{unitGen()}
	doctors := []domain.Doctor{{ID: "d1", UnitID: "gen", Category: domain.CategorySenior}}
	days := []domain.Day{
		{Index: 0, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Weekday: time.Monday},
	}
	cat := catalogue.Build([]string{"Standby Oncall"}, nil, units)

	idx := Build(nil, doctors, units)
	slots := idx.Diagnose(days, cat, doctors)

	assert.Len(t, slots, 1)
	assert.Equal(t, "Standby Oncall", slots[0].Post)
}
