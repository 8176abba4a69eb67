package notify

import (
	"context"

	"field-booking/internal/dto/response"
)

type EventType string

const (
	EventBookingCreated EventType = "booking.created"
	EventStatusChanged  EventType = "booking.status_changed"
)

// Requester is the contact info attached to outbound events.
type Requester struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// Event is the payload delivered to the configured webhook endpoints.
type Event struct {
	Type      EventType                `json:"type"`
	Booking   response.BookingResponse `json:"booking"`
	Field     response.FieldResponse   `json:"field"`
	Requester Requester                `json:"user"`
	Status    string                   `json:"status"`
}

// Notifier delivers booking events to the outside world. Delivery is
// best-effort: the booking flow never fails because of a notifier error, so
// callers log and move on.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
