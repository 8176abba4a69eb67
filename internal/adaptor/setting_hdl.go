package adaptor

import (
	"encoding/json"
	"net/http"

	"field-booking/internal/dto/request"
	"field-booking/internal/usecase"
	"field-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SettingHandler struct {
	service usecase.SettingService
	log     *zap.Logger
}

func NewSettingHandler(service usecase.SettingService, log *zap.Logger) *SettingHandler {
	return &SettingHandler{
		service: service,
		log:     log.With(zap.String("handler", "setting")),
	}
}

// GetPublicSettings handles GET /api/settings (public)
func (h *SettingHandler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetPublicSettings(r.Context())
	if err != nil {
		writeError(h.log, w, err, "get public settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// ==================== OPERATOR METHODS ====================

// GetAllSettings handles GET /api/operator/settings (operator only)
func (h *SettingHandler) GetAllSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetAllSettings(r.Context())
	if err != nil {
		writeError(h.log, w, err, "get all settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdateSetting handles PUT /api/operator/settings/{key} (operator only)
func (h *SettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ResponseBadRequest(w, "Setting key is required", nil)
		return
	}

	var req request.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	setting, err := h.service.UpdateSetting(r.Context(), key, &req)
	if err != nil {
		writeError(h.log, w, err, "update setting")
		return
	}

	utils.ResponseSuccess(w, "success", setting)
}
