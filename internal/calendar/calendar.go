// Package calendar implements C1: expanding a roster horizon into an
// ordered day list and enumerating weekend pairs.
package calendar

import (
	"fmt"
	"time"

	"github.com/medschedulr/roster/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseRequiredDate parses a required YYYY-MM-DD date with field-aware
// errors, adapted from the teacher's generation.ParseRequiredDate.
func ParseRequiredDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)
	}
	return t, nil
}

// ParseOptionalDate parses an optional YYYY-MM-DD date, returning nil when
// value is empty.
func ParseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseRequiredDate(*value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Calendar holds the expanded day list and weekend pairs for one horizon.
type Calendar struct {
	Days         []domain.Day
	WeekendPairs []domain.WeekendPair
}

// Build expands the inclusive [start, end] interval into an ordered day
// list and enumerates Sat→Sun weekend-pair indices (spec.md §4.1). A
// Saturday whose following day is not a Sunday (cannot occur for an
// adjacent-index expansion of consecutive calendar days, but guarded
// defensively) is not paired.
func Build(start, end time.Time) (*Calendar, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("roster_end %s is before roster_start %s", end.Format(dateLayout), start.Format(dateLayout))
	}

	var days []domain.Day
	for d, i := start, 0; !d.After(end); d, i = d.AddDate(0, 0, 1), i+1 {
		days = append(days, domain.Day{
			Index:   i,
			Date:    d,
			Weekday: d.Weekday(),
		})
	}

	var pairs []domain.WeekendPair
	for i := 0; i < len(days)-1; i++ {
		if days[i].Weekday == time.Saturday && days[i+1].Weekday == time.Sunday {
			pairs = append(pairs, domain.WeekendPair{
				Index:    len(pairs),
				Saturday: days[i].Index,
				Sunday:   days[i+1].Index,
			})
		}
	}

	return &Calendar{Days: days, WeekendPairs: pairs}, nil
}

// NumDays returns N, the horizon length in days.
func (c *Calendar) NumDays() int { return len(c.Days) }

// NumWeekendPairs returns W.
func (c *Calendar) NumWeekendPairs() int { return len(c.WeekendPairs) }
