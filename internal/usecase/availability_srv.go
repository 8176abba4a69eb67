package usecase

import (
	"context"
	"fmt"

	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/internal/schedule"
	"field-booking/pkg/apperr"
	"field-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// GetAvailability derives the slot-by-slot occupancy for one field and
	// date from the current set of active bookings. Nothing is cached; a
	// cancellation is visible on the next call.
	GetAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	grid schedule.Grid
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, grid schedule.Grid, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		grid: grid,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Availability request validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	fieldID, err := uuid.Parse(req.FieldID)
	if err != nil {
		return nil, apperr.Validation("invalid field ID format %s", req.FieldID)
	}

	date, err := req.ParseDate()
	if err != nil {
		return nil, apperr.Validation("invalid date %s", req.Date)
	}

	field, err := s.repo.Field.FindByID(ctx, fieldID)
	if err != nil {
		return nil, fmt.Errorf("find field %s: %w", req.FieldID, err)
	}
	if field == nil {
		return nil, apperr.NotFound("field %s not found", req.FieldID)
	}

	active, err := s.repo.Booking.ListActive(ctx, fieldID, date)
	if err != nil {
		s.log.Error("Failed to list active bookings",
			zap.Error(err),
			zap.String("field_id", req.FieldID),
			zap.String("date", req.Date),
		)
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	intervals := make([]schedule.Interval, len(active))
	for i, b := range active {
		intervals[i] = schedule.Interval{StartHour: b.StartHour, EndHour: b.EndHour}
	}

	avail := schedule.Compute(s.grid, intervals)

	resp := response.AvailabilityToResponse(req.FieldID, req.Date, avail)
	return &resp, nil
}
