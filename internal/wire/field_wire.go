package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/pkg/middleware"
	"field-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireField(
	r chi.Router,
	fieldHandler *adaptor.FieldHandler,
	availabilityHandler *adaptor.AvailabilityHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/fields - List bookable fields
	r.Get("/api/fields", fieldHandler.GetActiveFields)

	// GET /api/fields/{id} - Field details
	r.Get("/api/fields/{id}", fieldHandler.GetFieldByID)

	// GET /api/fields/{id}/availability?date=YYYY-MM-DD - Slot grid for a day
	r.Get("/api/fields/{id}/availability", availabilityHandler.GetAvailability)

	// ==================== OPERATOR ROUTES ====================
	r.Route("/api/operator/fields", func(r chi.Router) {
		r.Use(middleware.Operator(config.Operator.APIKey, log))

		// GET /api/operator/fields - All fields, including inactive
		r.Get("/", fieldHandler.GetAllFields)

		// POST /api/operator/fields - Create field
		r.Post("/", fieldHandler.CreateField)

		// PUT /api/operator/fields/{id} - Update field
		r.Put("/{id}", fieldHandler.UpdateField)

		// DELETE /api/operator/fields/{id} - Delete field
		r.Delete("/{id}", fieldHandler.DeleteField)
	})
}
