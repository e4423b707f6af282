package engine

import (
	"context"
	"fmt"

	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/contract"
)

// VerifyRoundTrip re-runs the engine on a derived request built from its
// own first-pass output: availability is replaced wholesale with "true
// only for the cell an assignment row occupies, false everywhere else in
// the catalogue" (spec.md §8 Round-trip / idempotence). Given a
// deterministic oracle, the second pass must reproduce exactly the first
// pass's assignment rows, since every slot now has at most one
// materialisable choice. Returns whether the two runs matched, plus the
// second run's response for inspection.
func (e *Engine) VerifyRoundTrip(ctx context.Context, req contract.ScheduleRequest) (bool, *contract.ScheduleResponse, error) {
	first, err := e.Generate(ctx, req)
	if err != nil {
		return false, nil, err
	}

	derivedReq, err := deriveRoundTripRequest(req, first)
	if err != nil {
		return false, nil, err
	}

	second, err := e.Generate(ctx, derivedReq)
	if err != nil {
		return false, nil, err
	}

	return sameAssignments(first.Schedule, second.Schedule), second, nil
}

func deriveRoundTripRequest(req contract.ScheduleRequest, first *contract.ScheduleResponse) (contract.ScheduleRequest, error) {
	start, err := calendar.ParseRequiredDate(req.RosterStart, "roster_start")
	if err != nil {
		return contract.ScheduleRequest{}, err
	}
	end, err := calendar.ParseRequiredDate(req.RosterEnd, "roster_end")
	if err != nil {
		return contract.ScheduleRequest{}, err
	}
	cal, err := calendar.Build(start, end)
	if err != nil {
		return contract.ScheduleRequest{}, err
	}
	units, serr := buildUnits(req.Units)
	if serr != nil {
		return contract.ScheduleRequest{}, serr
	}
	cat := catalogue.Build(req.PostsWeekday, req.PostsWeekend, units)

	assigned := make(map[string]bool, len(first.Schedule))
	for _, row := range first.Schedule {
		assigned[row.Doctor+"|"+row.Date+"|"+row.Post] = true
	}

	var availability []contract.AvailabilityInput
	for _, day := range cal.Days {
		date := day.Date.Format("2006-01-02")
		for _, post := range cat.PostsForDay(day) {
			for _, d := range req.Doctors {
				key := d.ID + "|" + date + "|" + post
				availability = append(availability, contract.AvailabilityInput{
					DoctorID:  d.ID,
					Date:      date,
					Post:      post,
					Available: assigned[key],
				})
			}
		}
	}

	derived := req
	derived.Availability = availability
	return derived, nil
}

func sameAssignments(a, b []contract.AssignmentRow) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]int, len(a))
	for _, row := range a {
		set[fmt.Sprintf("%s|%s|%s", row.Doctor, row.Date, row.Post)]++
	}
	for _, row := range b {
		key := fmt.Sprintf("%s|%s|%s", row.Doctor, row.Date, row.Post)
		if set[key] == 0 {
			return false
		}
		set[key]--
	}
	return true
}
