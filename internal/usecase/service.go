package usecase

import (
	"field-booking/internal/data/repository"
	"field-booking/internal/notify"
	"field-booking/internal/schedule"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service groups every use case behind one injection point.
type Service struct {
	Field        FieldService
	Booking      BookingService
	Availability AvailabilityService
	Profile      ProfileService
	Setting      SettingService
}

func NewService(repo *repository.Repository, notifier notify.Notifier, cfg utils.BookingConfig, log *zap.Logger) *Service {
	grid := schedule.NewGrid(cfg.OpenHour, cfg.CloseHour, cfg.SlotHours)

	return &Service{
		Field:        NewFieldService(repo, log),
		Booking:      NewBookingService(repo, notifier, grid, cfg.MaxSlots, log),
		Availability: NewAvailabilityService(repo, grid, log),
		Profile:      NewProfileService(repo, log),
		Setting:      NewSettingService(repo, log),
	}
}
