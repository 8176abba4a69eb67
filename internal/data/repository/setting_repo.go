package repository

import (
	"context"
	"fmt"

	"field-booking/internal/data/entity"
	"field-booking/pkg/apperr"
	"field-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingRepository interface {
	FindAll(ctx context.Context) ([]*entity.Setting, error)
	// FindValue returns the value for key, or "" when the key is unset.
	FindValue(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, setting *entity.Setting) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func (r *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	query := `SELECT key, value, updated_at FROM settings ORDER BY key`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query settings", zap.Error(err))
		return nil, apperr.Persistence("query settings", err)
	}
	defer rows.Close()

	var settings []*entity.Setting
	for rows.Next() {
		var setting entity.Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			r.log.Error("Failed to scan setting row", zap.Error(err))
			return nil, apperr.Persistence("scan setting row", err)
		}
		settings = append(settings, &setting)
	}

	return settings, nil
}

func (r *settingRepository) FindValue(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM settings WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.log.Error("Failed to find setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", apperr.Persistence(fmt.Sprintf("find setting %s", key), err)
	}

	return value, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query, setting.Key, setting.Value, setting.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to upsert setting",
			zap.Error(err),
			zap.String("key", setting.Key),
		)
		return apperr.Persistence(fmt.Sprintf("upsert setting %s", setting.Key), err)
	}

	return nil
}
