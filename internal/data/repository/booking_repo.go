package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/pkg/apperr"
	"field-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateAtomic inserts the booking inside a serializable transaction
	// that re-runs the overlap check, so two concurrent commits for
	// intersecting slots can never both succeed.
	CreateAtomic(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)

	// ListActive returns the non-canceled bookings for one field and date,
	// ordered by start hour. This is the snapshot the availability
	// calculator derives occupancy from.
	ListActive(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*entity.Booking, error)

	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, field_id, user_id, booking_date, start_hour, end_hour, total_amount, status, created_at, updated_at`

// translateCommitError maps storage errors from the commit path onto the
// application taxonomy. 23P01 is the gist exclusion constraint on overlapping
// hour ranges, 23505 a duplicate key, 40001 a serialization failure.
func translateCommitError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01", "23505":
			return apperr.Conflict("time slot was taken by a concurrent booking")
		case "40001":
			return apperr.Conflict("concurrent booking detected, please re-check availability")
		}
	}
	return apperr.Persistence(op, err)
}

func (r *bookingRepository) CreateAtomic(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return apperr.Persistence("begin booking transaction", err)
	}
	defer tx.Rollback(ctx)

	// Re-run the overlap check inside the same atomic unit as the insert.
	// The advisory check in the service may have used a stale snapshot.
	overlapQuery := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE field_id = $1
			  AND booking_date = $2
			  AND status <> 'canceled'
			  AND start_hour < $4
			  AND end_hour > $3
		)
	`

	var occupied bool
	err = tx.QueryRow(ctx, overlapQuery,
		booking.FieldID,
		booking.BookingDate,
		booking.StartHour,
		booking.EndHour,
	).Scan(&occupied)
	if err != nil {
		r.log.Error("Failed to re-check overlap",
			zap.Error(err),
			zap.String("field_id", booking.FieldID.String()),
		)
		return translateCommitError(err, "re-check booking overlap")
	}

	if occupied {
		return apperr.Conflict("time slot %02d:00-%02d:00 is already booked", booking.StartHour, booking.EndHour)
	}

	insertQuery := `
		INSERT INTO bookings (id, field_id, user_id, booking_date, start_hour, end_hour, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.FieldID,
		booking.UserID,
		booking.BookingDate,
		booking.StartHour,
		booking.EndHour,
		booking.TotalAmount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("field_id", booking.FieldID.String()),
		)
		return translateCommitError(err, "insert booking")
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return translateCommitError(err, "commit booking")
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.FieldID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartHour,
		&booking.EndHour,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, apperr.Persistence(fmt.Sprintf("find booking by ID %s", id.String()), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC, start_hour DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryBookings(ctx, query, userID, limit, offset)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, apperr.Persistence(fmt.Sprintf("count bookings by user ID %s", userID.String()), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date DESC, start_hour DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryBookings(ctx, query, limit, offset)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, apperr.Persistence("count bookings", err)
	}

	return count, nil
}

func (r *bookingRepository) ListActive(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE field_id = $1 AND booking_date = $2 AND status <> 'canceled'
		ORDER BY start_hour
	`

	return r.queryBookings(ctx, query, fieldID, date)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, apperr.Persistence("query bookings", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.FieldID,
			&booking.UserID,
			&booking.BookingDate,
			&booking.StartHour,
			&booking.EndHour,
			&booking.TotalAmount,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, apperr.Persistence("scan booking row", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return apperr.Persistence(fmt.Sprintf("update booking %s status", bookingID.String()), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("booking %s not found", bookingID.String())
	}

	return nil
}
