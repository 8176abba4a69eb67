package usecase

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/dto/request"
	"field-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestGetAvailability(t *testing.T) {
	field := testField(100000, true)
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)

	active := []*entity.Booking{
		activeBooking(field.ID, date, 10, 12),
		activeBooking(field.ID, date, 15, 16),
	}

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return active, nil
		},
	}

	svc := NewAvailabilityService(newTestRepository(fieldRepo, bookingRepo, nil, nil), testGrid(), zap.NewNop())

	resp, err := svc.GetAvailability(context.Background(), &request.AvailabilityRequest{
		FieldID: field.ID.String(),
		Date:    tomorrow(),
	})
	if err != nil {
		t.Fatalf("GetAvailability() error = %v", err)
	}

	// 06:00 through 22:00 on a one-hour grid closing at 23:00.
	if resp.Summary.TotalSlots != 17 {
		t.Fatalf("TotalSlots = %d, want 17", resp.Summary.TotalSlots)
	}
	if resp.Summary.BookedSlots != 3 {
		t.Errorf("BookedSlots = %d, want 3", resp.Summary.BookedSlots)
	}
	if resp.Summary.FreeSlots != 14 {
		t.Errorf("FreeSlots = %d, want 14", resp.Summary.FreeSlots)
	}
	if resp.Summary.ActiveBookings != 2 {
		t.Errorf("ActiveBookings = %d, want 2", resp.Summary.ActiveBookings)
	}

	occupied := map[string]bool{}
	for _, slot := range resp.Slots {
		occupied[slot.StartTime] = slot.Occupied
	}
	for _, hour := range []string{"10:00", "11:00", "15:00"} {
		if !occupied[hour] {
			t.Errorf("slot %s not marked occupied", hour)
		}
	}
	if occupied["12:00"] {
		t.Error("slot 12:00 marked occupied, booking ends there")
	}
}

func TestGetAvailabilityReflectsCancellation(t *testing.T) {
	field := testField(100000, true)

	// The active set is the only occupancy source, so a canceled booking
	// simply stops appearing in it.
	var active []*entity.Booking

	fieldRepo := &mockFieldRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Field, error) {
			return field, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return active, nil
		},
	}

	svc := NewAvailabilityService(newTestRepository(fieldRepo, bookingRepo, nil, nil), testGrid(), zap.NewNop())
	req := &request.AvailabilityRequest{FieldID: field.ID.String(), Date: tomorrow()}
	date, _ := time.ParseInLocation("2006-01-02", tomorrow(), time.Local)

	active = []*entity.Booking{activeBooking(field.ID, date, 10, 11)}
	before, err := svc.GetAvailability(context.Background(), req)
	if err != nil {
		t.Fatalf("GetAvailability() error = %v", err)
	}
	if before.Summary.BookedSlots != 1 {
		t.Fatalf("BookedSlots before cancel = %d, want 1", before.Summary.BookedSlots)
	}

	active = nil
	after, err := svc.GetAvailability(context.Background(), req)
	if err != nil {
		t.Fatalf("GetAvailability() error = %v", err)
	}
	if after.Summary.BookedSlots != 0 {
		t.Errorf("BookedSlots after cancel = %d, want 0", after.Summary.BookedSlots)
	}
}

func TestGetAvailabilityUnknownField(t *testing.T) {
	svc := NewAvailabilityService(newTestRepository(nil, nil, nil, nil), testGrid(), zap.NewNop())

	_, err := svc.GetAvailability(context.Background(), &request.AvailabilityRequest{
		FieldID: uuid.New().String(),
		Date:    tomorrow(),
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("error kind = %v, want not found", apperr.KindOf(err))
	}
}
