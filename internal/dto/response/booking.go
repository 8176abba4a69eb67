package response

import (
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/schedule"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	FieldID     string               `json:"field_id"`
	FieldName   string               `json:"field_name,omitempty"`
	UserID      string               `json:"user_id"`
	BookingDate string               `json:"booking_date"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	TotalAmount int64                `json:"total_amount"`
	Status      entity.BookingStatus `json:"status"`
	StatusLabel string               `json:"status_label"`
	CreatedAt   time.Time            `json:"created_at"`
}

// BookingToResponse converts a booking entity; field may be nil when the
// caller did not resolve it.
func BookingToResponse(booking *entity.Booking, field *entity.Field) BookingResponse {
	resp := BookingResponse{
		ID:          booking.ID.String(),
		FieldID:     booking.FieldID.String(),
		UserID:      booking.UserID.String(),
		BookingDate: booking.BookingDate.Format("2006-01-02"),
		StartTime:   schedule.HourLabel(booking.StartHour),
		EndTime:     schedule.HourLabel(booking.EndHour),
		TotalAmount: booking.TotalAmount,
		Status:      booking.Status,
		StatusLabel: booking.Status.Label(),
		CreatedAt:   booking.CreatedAt,
	}
	if field != nil {
		resp.FieldName = field.Name
	}
	return resp
}
