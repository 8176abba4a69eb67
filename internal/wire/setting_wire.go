package wire

import (
	"field-booking/internal/adaptor"
	"field-booking/pkg/middleware"
	"field-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSetting(
	r chi.Router,
	settingHandler *adaptor.SettingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/settings - Site-facing settings
	r.Get("/api/settings", settingHandler.GetPublicSettings)

	// ==================== OPERATOR ROUTES ====================
	r.Route("/api/operator/settings", func(r chi.Router) {
		r.Use(middleware.Operator(config.Operator.APIKey, log))

		// GET /api/operator/settings - All settings, webhooks included
		r.Get("/", settingHandler.GetAllSettings)

		// PUT /api/operator/settings/{key} - Update one setting
		r.Put("/{key}", settingHandler.UpdateSetting)
	})
}
