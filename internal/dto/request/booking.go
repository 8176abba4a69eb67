package request

import (
	"fmt"
	"time"
)

type CreateBookingRequest struct {
	FieldID     string `json:"field_id" validate:"required,uuid4"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	Duration    int    `json:"duration" validate:"required,min=1"`
}

// ParseDate returns the booking date at midnight local time.
func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.BookingDate, time.Local)
}

// StartHour converts the "HH:MM" start label into an hour integer. Slots are
// whole hours, so a non-zero minute component is rejected.
func (r CreateBookingRequest) StartHour() (int, error) {
	t, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		return 0, err
	}
	if t.Minute() != 0 {
		return 0, fmt.Errorf("start time %s is not aligned to a full hour", r.StartTime)
	}
	return t.Hour(), nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid canceled"`
}
