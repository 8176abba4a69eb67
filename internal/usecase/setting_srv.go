package usecase

import (
	"context"
	"fmt"
	"time"

	"field-booking/internal/data/entity"
	"field-booking/internal/data/repository"
	"field-booking/internal/dto/request"
	"field-booking/internal/dto/response"
	"field-booking/pkg/apperr"
	"field-booking/pkg/utils"

	"go.uber.org/zap"
)

// knownSettingKeys is the closed set of keys an operator may write.
var knownSettingKeys = map[string]bool{
	entity.SettingSiteName:            true,
	entity.SettingHeroBanner:          true,
	entity.SettingQRISImage:           true,
	entity.SettingPaymentInstructions: true,
	entity.SettingWhatsAppAdmin:       true,
	entity.SettingWebhookBooking:      true,
	entity.SettingWebhookPayment:      true,
}

// publicSettingKeys are exposed without operator credentials. Webhook
// endpoints stay private.
var publicSettingKeys = map[string]bool{
	entity.SettingSiteName:            true,
	entity.SettingHeroBanner:          true,
	entity.SettingQRISImage:           true,
	entity.SettingPaymentInstructions: true,
	entity.SettingWhatsAppAdmin:       true,
}

type SettingService interface {
	// GetPublicSettings returns the site-facing subset of settings.
	GetPublicSettings(ctx context.Context) ([]response.SettingResponse, error)

	// Operator endpoints
	GetAllSettings(ctx context.Context) ([]response.SettingResponse, error)
	UpdateSetting(ctx context.Context, key string, req *request.UpdateSettingRequest) (*response.SettingResponse, error)
}

type settingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSettingService(repo *repository.Repository, log *zap.Logger) SettingService {
	return &settingService{
		repo: repo,
		log:  log.With(zap.String("service", "setting")),
	}
}

func (s *settingService) GetPublicSettings(ctx context.Context) ([]response.SettingResponse, error) {
	settings, err := s.repo.Setting.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get settings", zap.Error(err))
		return nil, fmt.Errorf("get settings: %w", err)
	}

	responses := make([]response.SettingResponse, 0, len(settings))
	for _, setting := range settings {
		if publicSettingKeys[setting.Key] {
			responses = append(responses, response.SettingToResponse(setting))
		}
	}

	return responses, nil
}

func (s *settingService) GetAllSettings(ctx context.Context) ([]response.SettingResponse, error) {
	settings, err := s.repo.Setting.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get settings", zap.Error(err))
		return nil, fmt.Errorf("get settings: %w", err)
	}

	responses := make([]response.SettingResponse, len(settings))
	for i, setting := range settings {
		responses[i] = response.SettingToResponse(setting)
	}

	return responses, nil
}

func (s *settingService) UpdateSetting(ctx context.Context, key string, req *request.UpdateSettingRequest) (*response.SettingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update setting validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	if !knownSettingKeys[key] {
		return nil, apperr.Validation("unknown setting key %s", key)
	}

	setting := &entity.Setting{
		Key:       key,
		Value:     req.Value,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Setting.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("update setting %s: %w", key, err)
	}

	s.log.Info("Setting updated", zap.String("key", key))

	resp := response.SettingToResponse(setting)
	return &resp, nil
}
