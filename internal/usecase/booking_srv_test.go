package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/dto/request"
	"field-booking/internal/notify"
	"field-booking/internal/schedule"
	"field-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testGrid() schedule.Grid {
	return schedule.NewGrid(6, 23, 1)
}

func testField(price int64, active bool) *entity.Field {
	return &entity.Field{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Lapangan A",
		PricePerSlot: price,
		IsActive:     active,
	}
}

func activeBooking(fieldID uuid.UUID, date time.Time, startHour, endHour int) *entity.Booking {
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		FieldID:     fieldID,
		UserID:      uuid.New(),
		BookingDate: date,
		StartHour:   startHour,
		EndHour:     endHour,
		Status:      entity.BookingStatusPending,
	}
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestCreateBooking(t *testing.T) {
	field := testField(100000, true)
	userID := uuid.New().String()

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Field, error) {
			if id == field.ID {
				return field, nil
			}
			return nil, nil
		},
	}

	var committed *entity.Booking
	bookingRepo := &mockBookingRepo{
		createAtomicFn: func(_ context.Context, b *entity.Booking) error {
			committed = b
			return nil
		},
	}

	notifier := &mockNotifier{}
	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), notifier, testGrid(), 3, zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		FieldID:     field.ID.String(),
		BookingDate: tomorrow(),
		StartTime:   "10:00",
		Duration:    2,
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if committed == nil {
		t.Fatal("booking was never committed")
	}
	if committed.StartHour != 10 || committed.EndHour != 12 {
		t.Errorf("committed hours = [%d, %d), want [10, 12)", committed.StartHour, committed.EndHour)
	}
	if committed.Status != entity.BookingStatusPending {
		t.Errorf("committed status = %s, want pending", committed.Status)
	}

	// Two slots at 100000 each must come out exact.
	if resp.TotalAmount != 200000 {
		t.Errorf("TotalAmount = %d, want 200000", resp.TotalAmount)
	}
	if resp.StartTime != "10:00" || resp.EndTime != "12:00" {
		t.Errorf("slot span = %s-%s, want 10:00-12:00", resp.StartTime, resp.EndTime)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("dispatched events = %d, want 1", len(notifier.events))
	}
	if notifier.events[0].Type != notify.EventBookingCreated {
		t.Errorf("event type = %s, want %s", notifier.events[0].Type, notify.EventBookingCreated)
	}
}

func TestCreateBookingRejections(t *testing.T) {
	field := testField(100000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)

	tests := []struct {
		name     string
		req      request.CreateBookingRequest
		field    *entity.Field
		active   []*entity.Booking
		wantKind apperr.Kind
	}{
		{
			name: "overlapping slot",
			req: request.CreateBookingRequest{
				FieldID: field.ID.String(), BookingDate: tomorrow(), StartTime: "11:00", Duration: 2,
			},
			field:    field,
			active:   []*entity.Booking{activeBooking(field.ID, date, 10, 12)},
			wantKind: apperr.KindConflict,
		},
		{
			name: "past date",
			req: request.CreateBookingRequest{
				FieldID: field.ID.String(), BookingDate: "2020-01-01", StartTime: "10:00", Duration: 1,
			},
			field:    field,
			wantKind: apperr.KindValidation,
		},
		{
			name: "inactive field",
			req: request.CreateBookingRequest{
				FieldID: field.ID.String(), BookingDate: tomorrow(), StartTime: "10:00", Duration: 1,
			},
			field:    testField(100000, false),
			wantKind: apperr.KindValidation,
		},
		{
			name: "unknown field",
			req: request.CreateBookingRequest{
				FieldID: uuid.New().String(), BookingDate: tomorrow(), StartTime: "10:00", Duration: 1,
			},
			field:    nil,
			wantKind: apperr.KindNotFound,
		},
		{
			name: "duration over maximum",
			req: request.CreateBookingRequest{
				FieldID: field.ID.String(), BookingDate: tomorrow(), StartTime: "10:00", Duration: 4,
			},
			field:    field,
			wantKind: apperr.KindValidation,
		},
		{
			name: "does not fit before closing",
			req: request.CreateBookingRequest{
				FieldID: field.ID.String(), BookingDate: tomorrow(), StartTime: "21:00", Duration: 3,
			},
			field:    field,
			wantKind: apperr.KindValidation,
		},
		{
			name: "start not on the hour",
			req: request.CreateBookingRequest{
				FieldID: field.ID.String(), BookingDate: tomorrow(), StartTime: "10:30", Duration: 1,
			},
			field:    field,
			wantKind: apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldRepo := &mockFieldRepo{
				findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
					return tt.field, nil
				},
			}

			createCalled := false
			bookingRepo := &mockBookingRepo{
				listActiveFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
					return tt.active, nil
				},
				createAtomicFn: func(_ context.Context, _ *entity.Booking) error {
					createCalled = true
					return nil
				},
			}

			notifier := &mockNotifier{}
			svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), notifier, testGrid(), 3, zap.NewNop())

			_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &tt.req)
			if err == nil {
				t.Fatal("CreateBooking() error = nil, want rejection")
			}
			if got := apperr.KindOf(err); got != tt.wantKind {
				t.Errorf("error kind = %s, want %s", got, tt.wantKind)
			}
			if createCalled {
				t.Error("rejected request must not reach the committer")
			}
			if len(notifier.events) != 0 {
				t.Errorf("rejected request dispatched %d events, want 0", len(notifier.events))
			}
		})
	}
}

func TestCreateBookingAdjacentSlots(t *testing.T) {
	field := testField(50000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{activeBooking(field.ID, date, 10, 12)}, nil
		},
	}

	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), &mockNotifier{}, testGrid(), 3, zap.NewNop())

	// A booking starting exactly where the previous one ends is not an
	// overlap.
	resp, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		FieldID:     field.ID.String(),
		BookingDate: tomorrow(),
		StartTime:   "12:00",
		Duration:    2,
	})
	if err != nil {
		t.Fatalf("CreateBooking() adjacent error = %v", err)
	}
	if resp.TotalAmount != 100000 {
		t.Errorf("TotalAmount = %d, want 100000", resp.TotalAmount)
	}
}

func TestCreateBookingCommitConflict(t *testing.T) {
	field := testField(100000, true)

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createAtomicFn: func(_ context.Context, _ *entity.Booking) error {
			return apperr.Conflict("time slot was taken by a concurrent booking")
		},
	}

	notifier := &mockNotifier{}
	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), notifier, testGrid(), 3, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		FieldID:     field.ID.String(),
		BookingDate: tomorrow(),
		StartTime:   "10:00",
		Duration:    1,
	})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("error kind = %v, want conflict", apperr.KindOf(err))
	}
	if len(notifier.events) != 0 {
		t.Errorf("failed commit dispatched %d events, want 0", len(notifier.events))
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	field := testField(100000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)

	tests := []struct {
		name       string
		current    entity.BookingStatus
		next       string
		wantKind   apperr.Kind
		wantUpdate bool
		wantEvent  bool
	}{
		{name: "pending to paid", current: entity.BookingStatusPending, next: "paid", wantUpdate: true, wantEvent: true},
		{name: "pending to canceled", current: entity.BookingStatusPending, next: "canceled", wantUpdate: true, wantEvent: true},
		{name: "same status is a no-op", current: entity.BookingStatusPaid, next: "paid"},
		{name: "paid cannot change", current: entity.BookingStatusPaid, next: "canceled", wantKind: apperr.KindConflict},
		{name: "canceled cannot change", current: entity.BookingStatusCanceled, next: "paid", wantKind: apperr.KindConflict},
		{name: "unknown status", current: entity.BookingStatusPending, next: "refunded", wantKind: apperr.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := activeBooking(field.ID, date, 10, 12)
			booking.Status = tt.current

			fieldRepo := &mockFieldRepo{
				findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
					return field, nil
				},
			}

			updateCalled := false
			bookingRepo := &mockBookingRepo{
				findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
					if id == booking.ID {
						return booking, nil
					}
					return nil, nil
				},
				updateStatusFn: func(_ context.Context, _ uuid.UUID, _ entity.BookingStatus) error {
					updateCalled = true
					return nil
				},
			}

			notifier := &mockNotifier{}
			svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), notifier, testGrid(), 3, zap.NewNop())

			resp, err := svc.UpdateBookingStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: tt.next})

			if tt.wantKind != "" {
				if err == nil {
					t.Fatal("UpdateBookingStatus() error = nil, want rejection")
				}
				if got := apperr.KindOf(err); got != tt.wantKind {
					t.Errorf("error kind = %s, want %s", got, tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("UpdateBookingStatus() error = %v", err)
			}
			if updateCalled != tt.wantUpdate {
				t.Errorf("update called = %v, want %v", updateCalled, tt.wantUpdate)
			}

			if tt.wantEvent {
				if len(notifier.events) != 1 {
					t.Fatalf("dispatched events = %d, want 1", len(notifier.events))
				}
				event := notifier.events[0]
				if event.Type != notify.EventStatusChanged {
					t.Errorf("event type = %s, want %s", event.Type, notify.EventStatusChanged)
				}
				if event.Status != tt.next {
					t.Errorf("event status = %s, want %s", event.Status, tt.next)
				}
			} else if len(notifier.events) != 0 {
				t.Errorf("no-op dispatched %d events, want 0", len(notifier.events))
			}

			if string(resp.Status) != tt.next {
				t.Errorf("response status = %s, want %s", resp.Status, tt.next)
			}
		})
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := NewBookingService(newTestRepository(nil, &mockBookingRepo{}, nil, nil), &mockNotifier{}, testGrid(), 3, zap.NewNop())

	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New().String(), &request.UpdateBookingStatusRequest{Status: "paid"})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("error kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestUpdateBookingStatusAttachesContactInfo(t *testing.T) {
	field := testField(100000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)
	booking := activeBooking(field.ID, date, 10, 11)

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	profileRepo := &mockProfileRepo{
		findByUserIDFn: func(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: userID, FullName: "Budi Santoso", Phone: "+628123456789"}, nil
		},
	}

	notifier := &mockNotifier{}
	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, profileRepo, nil), notifier, testGrid(), 3, zap.NewNop())

	_, err := svc.UpdateBookingStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "paid"})
	if err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("dispatched events = %d, want 1", len(notifier.events))
	}
	requester := notifier.events[0].Requester
	if requester.FullName != "Budi Santoso" || requester.Phone != "+628123456789" {
		t.Errorf("requester = %+v, want profile contact info", requester)
	}
}

func TestCreateBookingStorageFailureIsRetryable(t *testing.T) {
	field := testField(100000, true)

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return nil, apperr.Persistence("query bookings", errors.New("connection refused"))
		},
	}

	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), &mockNotifier{}, testGrid(), 3, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		FieldID:     field.ID.String(),
		BookingDate: tomorrow(),
		StartTime:   "10:00",
		Duration:    1,
	})
	if apperr.KindOf(err) != apperr.KindPersistence {
		t.Fatalf("error kind = %q, want persistence", apperr.KindOf(err))
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || !appErr.Retryable() {
		t.Errorf("storage failure %v must surface as retryable", err)
	}
}

func TestGetBookingByIDLogsFieldLookupFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	field := testField(100000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)
	booking := activeBooking(field.ID, date, 10, 11)

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return nil, apperr.Persistence("find field", errors.New("connection refused"))
		},
	}
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, nil, nil), &mockNotifier{}, testGrid(), 3, zap.New(core))

	resp, err := svc.GetBookingByID(context.Background(), booking.ID.String())
	if err != nil {
		t.Fatalf("GetBookingByID() error = %v, field lookup is enrichment only", err)
	}
	if resp.FieldName != "" {
		t.Errorf("FieldName = %q, want empty when the lookup failed", resp.FieldName)
	}

	if logs.FilterMessage("Failed to resolve field for booking response").Len() != 1 {
		t.Error("failed field lookup was not logged")
	}
}

func TestDispatchLogsProfileLookupFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	field := testField(100000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)
	booking := activeBooking(field.ID, date, 10, 11)

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	profileRepo := &mockProfileRepo{
		findByUserIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return nil, apperr.Persistence("find profile", errors.New("connection refused"))
		},
	}

	notifier := &mockNotifier{}
	svc := NewBookingService(newTestRepository(fieldRepo, bookingRepo, profileRepo, nil), notifier, testGrid(), 3, zap.New(core))

	_, err := svc.UpdateBookingStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "paid"})
	if err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}

	// The event still goes out, just without contact info.
	if len(notifier.events) != 1 {
		t.Fatalf("dispatched events = %d, want 1", len(notifier.events))
	}
	if notifier.events[0].Requester.FullName != "" {
		t.Errorf("requester name = %q, want empty when the lookup failed", notifier.events[0].Requester.FullName)
	}

	if logs.FilterMessage("Failed to resolve requester profile for event").Len() != 1 {
		t.Error("failed profile lookup was not logged")
	}
}
