package schedule

import (
	"time"

	"field-booking/pkg/apperr"
)

// Request is a proposed reservation: a service date, a start slot and a
// duration in slot units.
type Request struct {
	Date      time.Time
	StartHour int
	Units     int
}

// EndHour computes where the reservation would end on the given grid.
func (r Request) EndHour(grid Grid) int {
	return r.StartHour + r.Units*grid.SlotHours
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckRequest validates a proposed reservation against business rules and
// the supplied availability snapshot, short-circuiting on the first failure.
// The result is advisory: the snapshot can be stale under concurrent
// requests, so the committer re-checks inside its transaction.
func CheckRequest(grid Grid, avail Availability, req Request, today time.Time, maxUnits int) error {
	if dateOnly(req.Date).Before(dateOnly(today)) {
		return apperr.Validation("cannot book a past date %s", req.Date.Format("2006-01-02"))
	}

	if req.Units < 1 {
		return apperr.Validation("duration must be at least 1 slot")
	}
	if maxUnits > 0 && req.Units > maxUnits {
		return apperr.Validation("duration exceeds the maximum of %d slots", maxUnits)
	}

	if !grid.AlignedStart(req.StartHour) {
		return apperr.Validation("start time %s is outside operating hours", HourLabel(req.StartHour))
	}
	if req.EndHour(grid) > grid.CloseHour {
		return apperr.Validation("a %d-slot booking starting at %s does not fit before closing at %s",
			req.Units, HourLabel(req.StartHour), HourLabel(grid.CloseHour))
	}

	for unit := 0; unit < req.Units; unit++ {
		hour := req.StartHour + unit*grid.SlotHours
		if !avail.SlotFree(hour) {
			return apperr.Conflict("slot %s is already booked", HourLabel(hour))
		}
	}

	return nil
}
