package engine

import (
	"github.com/medschedulr/roster/internal/availability"
	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
)

var knownCategories = map[string]domain.Category{
	string(domain.CategoryFloater):   domain.CategoryFloater,
	string(domain.CategoryJunior):    domain.CategoryJunior,
	string(domain.CategorySenior):    domain.CategorySenior,
	string(domain.CategoryRegistrar): domain.CategoryRegistrar,
}

// buildUnits translates contract.UnitInput into domain.Unit, validating
// clinic_days values.
func buildUnits(in []contract.UnitInput) ([]domain.Unit, *ScheduleError) {
	units := make([]domain.Unit, 0, len(in))
	for _, u := range in {
		clinicDays := make(map[int]bool, len(u.ClinicDays))
		for _, wd := range u.ClinicDays {
			if wd < 0 || wd > 6 {
				return nil, inputErrorf("unit %q: clinic day %d out of range 0..6", u.ID, wd)
			}
			clinicDays[wd] = true
		}
		units = append(units, domain.Unit{ID: u.ID, Name: u.Name, ClinicDays: clinicDays})
	}
	return units, nil
}

// buildDoctors translates contract.DoctorInput into domain.Doctor,
// validating category and unit references, and resolving workload
// history either inline on the doctor or from the separate
// workload_data[] list.
func buildDoctors(in []contract.DoctorInput, workloadData []contract.WorkloadInput, unitByID map[string]domain.Unit) ([]domain.Doctor, *ScheduleError) {
	workloadByDoctor := make(map[string]contract.WorkloadInput, len(workloadData))
	for _, w := range workloadData {
		workloadByDoctor[w.DoctorID] = w
	}

	doctors := make([]domain.Doctor, 0, len(in))
	for _, di := range in {
		category, ok := knownCategories[di.Category]
		if !ok {
			return nil, inputErrorf("doctor %q: unknown category %q", di.ID, di.Category)
		}
		if _, ok := unitByID[di.Unit]; !ok {
			return nil, inputErrorf("doctor %q: references unknown unit %q", di.ID, di.Unit)
		}
		lastStandby, err := calendar.ParseOptionalDate(di.LastStandby, "last_standby")
		if err != nil {
			return nil, inputErrorf("doctor %q: %v", di.ID, err)
		}

		workload := domain.DefaultWorkload()
		if di.Workload != nil {
			workload = workloadFromInput(*di.Workload)
		} else if w, ok := workloadByDoctor[di.ID]; ok {
			workload = workloadFromInput(w)
		}

		doctors = append(doctors, domain.Doctor{
			ID:          di.ID,
			Name:        di.Name,
			UnitID:      di.Unit,
			Category:    category,
			LastStandby: lastStandby,
			Workload:    workload,
		})
	}
	return doctors, nil
}

func workloadFromInput(w contract.WorkloadInput) domain.Workload {
	days := domain.NeverStandbySentinel
	if w.DaysSinceLastStandby != nil {
		days = *w.DaysSinceLastStandby
	}
	return domain.Workload{
		WeekdayOncalls3m:     w.WeekdayOncalls3m,
		WeekendOncalls3m:     w.WeekendOncalls3m,
		EDShifts3m:           w.EDShifts3m,
		DaysSinceLastStandby: days,
		StandbyCount12m:      w.StandbyCount12m,
		StandbyCount3m:       w.StandbyCount3m,
	}
}

// buildAvailability resolves each wire-form {doctor_id, date, post,
// available} record into an internal day-index record. Entries whose
// date falls outside the roster horizon are dropped — they cannot refer
// to a materialisable day.
func buildAvailability(in []contract.AvailabilityInput, cal *calendar.Calendar) []availability.Record {
	dayIndexByDate := make(map[string]int, len(cal.Days))
	for _, d := range cal.Days {
		dayIndexByDate[d.Date.Format("2006-01-02")] = d.Index
	}

	records := make([]availability.Record, 0, len(in))
	for _, a := range in {
		idx, ok := dayIndexByDate[a.Date]
		if !ok {
			continue
		}
		records = append(records, availability.Record{
			DoctorID:  a.DoctorID,
			DayIndex:  idx,
			Post:      a.Post,
			Available: a.Available,
		})
	}
	return records
}

func unitIndex(units []domain.Unit) map[string]domain.Unit {
	m := make(map[string]domain.Unit, len(units))
	for _, u := range units {
		m[u.ID] = u
	}
	return m
}
