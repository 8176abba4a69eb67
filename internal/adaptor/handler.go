package adaptor

import (
	"net/http"

	"field-booking/internal/usecase"
	"field-booking/pkg/apperr"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Field        *FieldHandler
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Profile      *ProfileHandler
	Setting      *SettingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Field:        NewFieldHandler(service.Field, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Profile:      NewProfileHandler(service.Profile, log),
		Setting:      NewSettingHandler(service.Setting, log),
	}
}

// writeError maps an application error onto the response envelope. Unknown
// errors stay opaque to the client.
func writeError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperr.KindConflict:
		log.Warn(operation+" conflicted", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case apperr.KindNotFound:
		log.Warn(operation+" target not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindUnauthorized:
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case apperr.KindForbidden:
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case apperr.KindPersistence:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Storage temporarily unavailable, please retry")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
