package usecase

import (
	"context"
	"fmt"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/internal/notify"
	"field-booking/internal/schedule"
	"field-booking/pkg/apperr"
	"field-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints (identified caller)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// Operator endpoints
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	grid     schedule.Grid
	maxUnits int
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier notify.Notifier, grid schedule.Grid, maxUnits int, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		grid:     grid,
		maxUnits: maxUnits,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user ID format %s", userID)
	}

	fieldID, err := uuid.Parse(req.FieldID)
	if err != nil {
		return nil, apperr.Validation("invalid field ID format %s", req.FieldID)
	}

	bookingDate, err := req.ParseDate()
	if err != nil {
		return nil, apperr.Validation("invalid booking date %s", req.BookingDate)
	}

	startHour, err := req.StartHour()
	if err != nil {
		return nil, apperr.Validation("invalid start time %s", req.StartTime)
	}

	// Validate field exists and is open for booking
	field, err := s.repo.Field.FindByID(ctx, fieldID)
	if err != nil {
		return nil, fmt.Errorf("find field %s: %w", req.FieldID, err)
	}
	if field == nil {
		return nil, apperr.NotFound("field %s not found", req.FieldID)
	}
	if !field.IsActive {
		return nil, apperr.Validation("field %s is not open for booking", field.Name)
	}

	// Advisory availability check against the current active set. The
	// repository re-checks inside the commit transaction, so a stale
	// snapshot here can reject but never double-book.
	active, err := s.repo.Booking.ListActive(ctx, fieldID, bookingDate)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	intervals := make([]schedule.Interval, len(active))
	for i, b := range active {
		intervals[i] = schedule.Interval{StartHour: b.StartHour, EndHour: b.EndHour}
	}
	avail := schedule.Compute(s.grid, intervals)

	proposal := schedule.Request{
		Date:      bookingDate,
		StartHour: startHour,
		Units:     req.Duration,
	}
	if err := schedule.CheckRequest(s.grid, avail, proposal, time.Now(), s.maxUnits); err != nil {
		s.log.Warn("Booking request rejected",
			zap.Error(err),
			zap.String("field_id", req.FieldID),
			zap.String("booking_date", req.BookingDate),
			zap.Int("start_hour", startHour),
		)
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FieldID:     fieldID,
		UserID:      userUUID,
		BookingDate: bookingDate,
		StartHour:   startHour,
		EndHour:     proposal.EndHour(s.grid),
		TotalAmount: field.PricePerSlot * int64(req.Duration),
		Status:      entity.BookingStatusPending,
	}

	if err := s.repo.Booking.CreateAtomic(ctx, booking); err != nil {
		s.log.Warn("Booking commit rejected",
			zap.Error(err),
			zap.String("field_id", req.FieldID),
			zap.String("booking_date", req.BookingDate),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("field_id", fieldID.String()),
		zap.String("user_id", userID),
		zap.String("booking_date", req.BookingDate),
		zap.Int("start_hour", booking.StartHour),
		zap.Int("end_hour", booking.EndHour),
		zap.Int64("total_amount", booking.TotalAmount),
	)

	s.dispatch(ctx, notify.EventBookingCreated, booking, field)

	resp := response.BookingToResponse(booking, field)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user ID format %s", userID)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	field := s.resolveField(ctx, booking.FieldID)

	resp := response.BookingToResponse(booking, field)
	return &resp, nil
}

// ==================== OPERATOR METHODS ====================

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	field := s.resolveField(ctx, booking.FieldID)

	newStatus := entity.BookingStatus(req.Status)

	// Re-applying the current status is a no-op, not an error.
	if booking.Status == newStatus {
		resp := response.BookingToResponse(booking, field)
		return &resp, nil
	}

	if booking.Status.Terminal() {
		return nil, apperr.Conflict("booking %s is already %s and cannot change status", bookingID, booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	s.dispatch(ctx, notify.EventStatusChanged, booking, field)

	resp := response.BookingToResponse(booking, field)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

// dispatch sends a booking event with the requester's contact info attached.
// Delivery is best-effort and never fails the calling operation.
func (s *bookingService) dispatch(ctx context.Context, eventType notify.EventType, booking *entity.Booking, field *entity.Field) {
	requester := notify.Requester{ID: booking.UserID.String()}
	profile, err := s.repo.Profile.FindByUserID(ctx, booking.UserID)
	if err != nil {
		s.log.Warn("Failed to resolve requester profile for event",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
		)
	} else if profile != nil {
		requester.FullName = profile.FullName
		requester.Phone = profile.Phone
	}

	event := notify.Event{
		Type:      eventType,
		Booking:   response.BookingToResponse(booking, field),
		Requester: requester,
		Status:    string(booking.Status),
	}
	if field != nil {
		event.Field = response.FieldToResponse(field)
	}

	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn("Failed to dispatch booking event",
			zap.Error(err),
			zap.String("event_type", string(eventType)),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

// resolveField looks up a field for response enrichment. The booking itself
// is already loaded, so a failed lookup degrades to a response without the
// field name rather than failing the read.
func (s *bookingService) resolveField(ctx context.Context, fieldID uuid.UUID) *entity.Field {
	field, err := s.repo.Field.FindByID(ctx, fieldID)
	if err != nil {
		s.log.Warn("Failed to resolve field for booking response",
			zap.Error(err),
			zap.String("field_id", fieldID.String()),
		)
		return nil
	}
	return field
}

// toResponses converts bookings, resolving each referenced field once.
func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	fields := make(map[uuid.UUID]*entity.Field)
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		field, ok := fields[booking.FieldID]
		if !ok {
			field = s.resolveField(ctx, booking.FieldID)
			fields[booking.FieldID] = field
		}
		responses[i] = response.BookingToResponse(booking, field)
	}
	return responses
}
