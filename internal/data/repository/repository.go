package repository

import (
	"field-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Field   FieldRepository
	Booking BookingRepository
	Profile ProfileRepository
	Setting SettingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Field:   NewFieldRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Profile: NewProfileRepository(db, log),
		Setting: NewSettingRepository(db, log),
	}
}
