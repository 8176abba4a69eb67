package usecase

import (
	"context"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/notify"

	"github.com/google/uuid"
)

type mockFieldRepo struct {
	createFn        func(ctx context.Context, field *entity.Field) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Field, error)
	findAllActiveFn func(ctx context.Context) ([]*entity.Field, error)
	findAllFn       func(ctx context.Context) ([]*entity.Field, error)
	updateFn        func(ctx context.Context, field *entity.Field) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFieldRepo) Create(ctx context.Context, field *entity.Field) error {
	if m.createFn != nil {
		return m.createFn(ctx, field)
	}
	return nil
}

func (m *mockFieldRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Field, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFieldRepo) FindAllActive(ctx context.Context) ([]*entity.Field, error) {
	if m.findAllActiveFn != nil {
		return m.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockFieldRepo) FindAll(ctx context.Context) ([]*entity.Field, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockFieldRepo) Update(ctx context.Context, field *entity.Field) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, field)
	}
	return nil
}

func (m *mockFieldRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockBookingRepo struct {
	createAtomicFn  func(ctx context.Context, booking *entity.Booking) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findByUserIDFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	countByUserIDFn func(ctx context.Context, userID uuid.UUID) (int64, error)
	findAllFn       func(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	countFn         func(ctx context.Context) (int64, error)
	listActiveFn    func(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	updateStatusFn  func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

func (m *mockBookingRepo) CreateAtomic(ctx context.Context, booking *entity.Booking) error {
	if m.createAtomicFn != nil {
		return m.createAtomicFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.countByUserIDFn != nil {
		return m.countByUserIDFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepo) ListActive(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, fieldID, date)
	}
	return nil, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, bookingID, status)
	}
	return nil
}

type mockProfileRepo struct {
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	upsertFn       func(ctx context.Context, profile *entity.Profile) error
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *entity.Profile) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, profile)
	}
	return nil
}

type mockSettingRepo struct {
	findAllFn   func(ctx context.Context) ([]*entity.Setting, error)
	findValueFn func(ctx context.Context, key string) (string, error)
	upsertFn    func(ctx context.Context, setting *entity.Setting) error
}

func (m *mockSettingRepo) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockSettingRepo) FindValue(ctx context.Context, key string) (string, error) {
	if m.findValueFn != nil {
		return m.findValueFn(ctx, key)
	}
	return "", nil
}

func (m *mockSettingRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, setting)
	}
	return nil
}

// mockNotifier records every dispatched event.
type mockNotifier struct {
	events []notify.Event
	err    error
}

func (m *mockNotifier) Notify(_ context.Context, event notify.Event) error {
	m.events = append(m.events, event)
	return m.err
}

func newTestRepository(field *mockFieldRepo, booking *mockBookingRepo, profile *mockProfileRepo, setting *mockSettingRepo) *repository.Repository {
	if field == nil {
		field = &mockFieldRepo{}
	}
	if booking == nil {
		booking = &mockBookingRepo{}
	}
	if profile == nil {
		profile = &mockProfileRepo{}
	}
	if setting == nil {
		setting = &mockSettingRepo{}
	}
	return &repository.Repository{
		Field:   field,
		Booking: booking,
		Profile: profile,
		Setting: setting,
	}
}
