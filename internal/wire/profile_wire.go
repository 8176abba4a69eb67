package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Requester(log))

		// GET /api/profile - Own contact info
		r.Get("/api/profile", profileHandler.GetProfile)

		// PUT /api/profile - Create or update contact info
		r.Put("/api/profile", profileHandler.UpsertProfile)
	})
}
