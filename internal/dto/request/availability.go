package request

import "time"

type AvailabilityRequest struct {
	FieldID string `json:"field_id" validate:"required,uuid4"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (r AvailabilityRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.Date, time.Local)
}
