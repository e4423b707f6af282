// Package contract holds the wire-shaped request/response DTOs exchanged
// with the (external, out-of-scope) request-ingestion web layer, per
// spec.md §6. These are plain JSON-tagged structs; the engine converts
// them into internal/domain values at the boundary.
package contract

// DoctorInput is one entry of ScheduleRequest.Doctors.
type DoctorInput struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	LastStandby *string         `json:"last_standby,omitempty"`
	Workload    *WorkloadInput  `json:"workload,omitempty"`
}

// WorkloadInput is the enriched workload history carried either inline on
// a doctor or in the separate workload_data[] list.
type WorkloadInput struct {
	DoctorID             string `json:"doctor_id,omitempty"`
	WeekdayOncalls3m     int    `json:"weekday_oncalls_3m"`
	WeekendOncalls3m     int    `json:"weekend_oncalls_3m"`
	EDShifts3m           int    `json:"ed_shifts_3m"`
	DaysSinceLastStandby *int   `json:"days_since_last_standby,omitempty"`
	StandbyCount12m      int    `json:"standby_count_12m"`
	StandbyCount3m       int    `json:"standby_count_3m"`
}

// UnitInput is one entry of ScheduleRequest.Units.
type UnitInput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClinicDays []int  `json:"clinic_days"`
}

// AvailabilityInput is one explicit (doctor, day, post) availability record.
// Entries not present default per spec.md §4.3.
type AvailabilityInput struct {
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Post      string `json:"post"`
	Available bool   `json:"available"`
}

// ScheduleRequest is the immutable input that gives birth to every engine
// entity for the duration of one solve (spec.md §3 Lifecycle).
type ScheduleRequest struct {
	RosterStart    string              `json:"roster_start"`
	RosterEnd      string              `json:"roster_end"`
	Doctors        []DoctorInput       `json:"doctors"`
	Units          []UnitInput         `json:"units"`
	PostsWeekday   []string            `json:"posts_weekday"`
	PostsWeekend   []string            `json:"posts_weekend"`
	Availability   []AvailabilityInput `json:"availability"`
	WorkloadData   []WorkloadInput     `json:"workload_data,omitempty"`
	SolverConfig   map[string]float64  `json:"solver_config,omitempty"`
}
