package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusPaid     BookingStatus = "paid"
	BookingStatusCanceled BookingStatus = "canceled"
)

// statusLabels maps the stored status to its display label.
var statusLabels = map[BookingStatus]string{
	BookingStatusPending:  "Pending",
	BookingStatusPaid:     "Dibayar",
	BookingStatusCanceled: "Dibatalkan",
}

// Valid reports whether s is one of the closed set of statuses.
func (s BookingStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Terminal reports whether no further transition is defined from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusPaid || s == BookingStatusCanceled
}

// Occupies reports whether a booking in this status still claims its slots.
func (s BookingStatus) Occupies() bool {
	return s != BookingStatusCanceled
}

// Label returns the display label for s, falling back to the raw value.
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

type Booking struct {
	Base
	FieldID     uuid.UUID     `db:"field_id"`
	UserID      uuid.UUID     `db:"user_id"`
	BookingDate time.Time     `db:"booking_date"` // date only, midnight local
	StartHour   int           `db:"start_hour"`
	EndHour     int           `db:"end_hour"`
	TotalAmount int64         `db:"total_amount"`
	Status      BookingStatus `db:"status"`
}
