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

type FieldHandler struct {
	service usecase.FieldService
	log     *zap.Logger
}

func NewFieldHandler(service usecase.FieldService, log *zap.Logger) *FieldHandler {
	return &FieldHandler{
		service: service,
		log:     log.With(zap.String("handler", "field")),
	}
}

// GetActiveFields handles GET /api/fields (public)
func (h *FieldHandler) GetActiveFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.service.GetActiveFields(r.Context())
	if err != nil {
		writeError(h.log, w, err, "get active fields")
		return
	}

	utils.ResponseSuccess(w, "success", fields)
}

// GetFieldByID handles GET /api/fields/{id} (public)
func (h *FieldHandler) GetFieldByID(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	field, err := h.service.GetFieldByID(r.Context(), fieldID)
	if err != nil {
		writeError(h.log, w, err, "get field by ID")
		return
	}

	utils.ResponseSuccess(w, "success", field)
}

// ==================== OPERATOR METHODS ====================

// GetAllFields handles GET /api/operator/fields (operator only)
func (h *FieldHandler) GetAllFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.service.GetAllFields(r.Context())
	if err != nil {
		writeError(h.log, w, err, "get all fields")
		return
	}

	utils.ResponseSuccess(w, "success", fields)
}

// CreateField handles POST /api/operator/fields (operator only)
func (h *FieldHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	var req request.FieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	field, err := h.service.CreateField(r.Context(), &req)
	if err != nil {
		writeError(h.log, w, err, "create field")
		return
	}

	utils.ResponseCreated(w, "success", field)
}

// UpdateField handles PUT /api/operator/fields/{id} (operator only)
func (h *FieldHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	var req request.FieldUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	field, err := h.service.UpdateField(r.Context(), fieldID, &req)
	if err != nil {
		writeError(h.log, w, err, "update field")
		return
	}

	utils.ResponseSuccess(w, "success", field)
}

// DeleteField handles DELETE /api/operator/fields/{id} (operator only)
func (h *FieldHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "id")
	if fieldID == "" {
		utils.ResponseBadRequest(w, "Field ID is required", nil)
		return
	}

	if err := h.service.DeleteField(r.Context(), fieldID); err != nil {
		writeError(h.log, w, err, "delete field")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
