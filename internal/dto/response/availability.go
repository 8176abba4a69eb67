package response

import (
	"field-booking/internal/schedule"
)

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Occupied  bool   `json:"occupied"`
}

type AvailabilitySummary struct {
	TotalSlots     int `json:"total_slots"`
	FreeSlots      int `json:"free_slots"`
	BookedSlots    int `json:"booked_slots"`
	ActiveBookings int `json:"active_bookings"`
}

type AvailabilityResponse struct {
	FieldID string              `json:"field_id"`
	Date    string              `json:"date"`
	Slots   []SlotResponse      `json:"slots"`
	Summary AvailabilitySummary `json:"summary"`
}

func AvailabilityToResponse(fieldID, date string, avail schedule.Availability) AvailabilityResponse {
	slots := make([]SlotResponse, len(avail.Slots))
	for i, st := range avail.Slots {
		slots[i] = SlotResponse{
			StartTime: schedule.HourLabel(st.StartHour),
			EndTime:   schedule.HourLabel(st.EndHour),
			Occupied:  st.Occupied,
		}
	}

	return AvailabilityResponse{
		FieldID: fieldID,
		Date:    date,
		Slots:   slots,
		Summary: AvailabilitySummary{
			TotalSlots:     avail.Summary.TotalSlots,
			FreeSlots:      avail.Summary.FreeSlots,
			BookedSlots:    avail.Summary.BookedSlots,
			ActiveBookings: avail.Summary.ActiveBookings,
		},
	}
}
