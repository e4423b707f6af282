package domain

import "time"

// Day is one calendar day in the roster horizon.
type Day struct {
	Index   int // s, 0-based offset into the horizon
	Date    time.Time
	Weekday time.Weekday // stdlib weekday, 0=Sunday
}

// ClinicWeekday converts the stdlib Weekday into spec.md's 0=Monday..6=Sunday
// numbering used by Unit.ClinicDays.
func (d Day) ClinicWeekday() int {
	return (int(d.Weekday) + 6) % 7
}

// IsWeekend reports whether the day is Saturday or Sunday.
func (d Day) IsWeekend() bool {
	return d.Weekday == time.Saturday || d.Weekday == time.Sunday
}

// WeekendPair is an adjacent (Saturday, Sunday) index pair in the horizon,
// indexed 0..W-1 in horizon order.
type WeekendPair struct {
	Index    int
	Saturday int // day index s_sat
	Sunday   int // day index s_sun
}

// MonthsBetween implements spec.md §4.1's months_between utility:
// 12·(b.year−a.year) + (b.month−a.month).
func MonthsBetween(a, b time.Time) int {
	return 12*(b.Year()-a.Year()) + (int(b.Month()) - int(a.Month()))
}
