package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/pkg/middleware"
	"field-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== IDENTIFIED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Requester(log))

		// POST /api/bookings - Reserve slots
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Own booking history
		r.Get("/api/bookings", bookingHandler.GetUserBookings)

		// GET /api/bookings/{id} - Booking details
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	})

	// ==================== OPERATOR ROUTES ====================
	r.Route("/api/operator/bookings", func(r chi.Router) {
		r.Use(middleware.Operator(config.Operator.APIKey, log))

		// GET /api/operator/bookings - All bookings
		r.Get("/", bookingHandler.ListBookings)

		// PUT /api/operator/bookings/{id}/status - Change booking status
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
