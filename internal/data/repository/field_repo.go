package repository

import (
	"context"
	"errors"
	"fmt"

	"field-booking/internal/data/entity"
	"field-booking/pkg/apperr"
	"field-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type FieldRepository interface {
	Create(ctx context.Context, field *entity.Field) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Field, error)
	FindAllActive(ctx context.Context) ([]*entity.Field, error)
	FindAll(ctx context.Context) ([]*entity.Field, error)
	Update(ctx context.Context, field *entity.Field) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFieldRepository(db database.PgxIface, log *zap.Logger) FieldRepository {
	return &fieldRepository{
		db:  db,
		log: log.With(zap.String("repository", "field")),
	}
}

func (r *fieldRepository) Create(ctx context.Context, field *entity.Field) error {
	query := `
		INSERT INTO fields (id, name, description, price_per_slot, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		field.ID,
		field.Name,
		field.Description,
		field.PricePerSlot,
		field.ImageURL,
		field.IsActive,
		field.CreatedAt,
		field.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create field",
			zap.Error(err),
			zap.String("name", field.Name),
		)
		return apperr.Persistence(fmt.Sprintf("create field %s", field.Name), err)
	}

	return nil
}

func (r *fieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Field, error) {
	query := `
		SELECT id, name, description, price_per_slot, image_url, is_active, created_at, updated_at
		FROM fields
		WHERE id = $1
	`

	var field entity.Field
	err := r.db.QueryRow(ctx, query, id).Scan(
		&field.ID,
		&field.Name,
		&field.Description,
		&field.PricePerSlot,
		&field.ImageURL,
		&field.IsActive,
		&field.CreatedAt,
		&field.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find field by ID",
			zap.Error(err),
			zap.String("field_id", id.String()),
		)
		return nil, apperr.Persistence(fmt.Sprintf("find field by ID %s", id.String()), err)
	}

	return &field, nil
}

func (r *fieldRepository) FindAllActive(ctx context.Context) ([]*entity.Field, error) {
	query := `
		SELECT id, name, description, price_per_slot, image_url, is_active, created_at, updated_at
		FROM fields
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`

	return r.queryFields(ctx, query)
}

func (r *fieldRepository) FindAll(ctx context.Context) ([]*entity.Field, error) {
	query := `
		SELECT id, name, description, price_per_slot, image_url, is_active, created_at, updated_at
		FROM fields
		ORDER BY created_at DESC
	`

	return r.queryFields(ctx, query)
}

func (r *fieldRepository) queryFields(ctx context.Context, query string, args ...any) ([]*entity.Field, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query fields", zap.Error(err))
		return nil, apperr.Persistence("query fields", err)
	}
	defer rows.Close()

	var fields []*entity.Field
	for rows.Next() {
		var field entity.Field
		err := rows.Scan(
			&field.ID,
			&field.Name,
			&field.Description,
			&field.PricePerSlot,
			&field.ImageURL,
			&field.IsActive,
			&field.CreatedAt,
			&field.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan field row", zap.Error(err))
			return nil, apperr.Persistence("scan field row", err)
		}
		fields = append(fields, &field)
	}

	return fields, nil
}

func (r *fieldRepository) Update(ctx context.Context, field *entity.Field) error {
	query := `
		UPDATE fields
		SET name = $2, description = $3, price_per_slot = $4, image_url = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		field.ID,
		field.Name,
		field.Description,
		field.PricePerSlot,
		field.ImageURL,
		field.IsActive,
		field.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update field",
			zap.Error(err),
			zap.String("field_id", field.ID.String()),
		)
		return apperr.Persistence(fmt.Sprintf("update field %s", field.ID.String()), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("field %s not found", field.ID.String())
	}

	return nil
}

func (r *fieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fields WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		// 23503 is the foreign key from bookings: a field with booking
		// history cannot be removed, only deactivated.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperr.Conflict("field %s has bookings and cannot be deleted, deactivate it instead", id.String())
		}
		r.log.Error("Failed to delete field",
			zap.Error(err),
			zap.String("field_id", id.String()),
		)
		return apperr.Persistence(fmt.Sprintf("delete field %s", id.String()), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("field %s not found", id.String())
	}

	r.log.Info("Field deleted", zap.String("field_id", id.String()))
	return nil
}
