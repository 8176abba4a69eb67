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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FieldService interface {
	// Public endpoints
	GetActiveFields(ctx context.Context) ([]response.FieldResponse, error)
	GetFieldByID(ctx context.Context, fieldID string) (*response.FieldResponse, error)

	// Operator endpoints
	GetAllFields(ctx context.Context) ([]response.FieldResponse, error)
	CreateField(ctx context.Context, req *request.FieldRequest) (*response.FieldResponse, error)
	UpdateField(ctx context.Context, fieldID string, req *request.FieldUpdateRequest) (*response.FieldResponse, error)
	DeleteField(ctx context.Context, fieldID string) error
}

type fieldService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFieldService(repo *repository.Repository, log *zap.Logger) FieldService {
	return &fieldService{
		repo: repo,
		log:  log.With(zap.String("service", "field")),
	}
}

func (s *fieldService) GetActiveFields(ctx context.Context) ([]response.FieldResponse, error) {
	fields, err := s.repo.Field.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to get active fields", zap.Error(err))
		return nil, fmt.Errorf("get active fields: %w", err)
	}

	responses := make([]response.FieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = response.FieldToResponse(field)
	}

	return responses, nil
}

func (s *fieldService) GetFieldByID(ctx context.Context, fieldID string) (*response.FieldResponse, error) {
	id, err := uuid.Parse(fieldID)
	if err != nil {
		return nil, apperr.Validation("invalid field ID format %s", fieldID)
	}

	field, err := s.repo.Field.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find field %s: %w", fieldID, err)
	}
	if field == nil {
		return nil, apperr.NotFound("field %s not found", fieldID)
	}

	resp := response.FieldToResponse(field)
	return &resp, nil
}

// ==================== OPERATOR METHODS ====================

func (s *fieldService) GetAllFields(ctx context.Context) ([]response.FieldResponse, error) {
	fields, err := s.repo.Field.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all fields", zap.Error(err))
		return nil, fmt.Errorf("get all fields: %w", err)
	}

	responses := make([]response.FieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = response.FieldToResponse(field)
	}

	return responses, nil
}

func (s *fieldService) CreateField(ctx context.Context, req *request.FieldRequest) (*response.FieldResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create field validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	field := &entity.Field{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Description:  req.Description,
		PricePerSlot: req.PricePerSlot,
		ImageURL:     req.ImageURL,
		IsActive:     true,
	}

	if err := s.repo.Field.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}

	s.log.Info("Field created",
		zap.String("field_id", field.ID.String()),
		zap.String("name", field.Name),
		zap.Int64("price_per_slot", field.PricePerSlot),
	)

	resp := response.FieldToResponse(field)
	return &resp, nil
}

func (s *fieldService) UpdateField(ctx context.Context, fieldID string, req *request.FieldUpdateRequest) (*response.FieldResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update field validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(fieldID)
	if err != nil {
		return nil, apperr.Validation("invalid field ID format %s", fieldID)
	}

	field, err := s.repo.Field.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find field %s: %w", fieldID, err)
	}
	if field == nil {
		return nil, apperr.NotFound("field %s not found", fieldID)
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.Description != nil {
		field.Description = req.Description
	}
	if req.PricePerSlot != nil {
		field.PricePerSlot = *req.PricePerSlot
	}
	if req.ImageURL != nil {
		field.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		field.IsActive = *req.IsActive
	}
	field.UpdatedAt = time.Now()

	if err := s.repo.Field.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("update field %s: %w", fieldID, err)
	}

	s.log.Info("Field updated",
		zap.String("field_id", fieldID),
		zap.String("name", field.Name),
	)

	resp := response.FieldToResponse(field)
	return &resp, nil
}

func (s *fieldService) DeleteField(ctx context.Context, fieldID string) error {
	id, err := uuid.Parse(fieldID)
	if err != nil {
		return apperr.Validation("invalid field ID format %s", fieldID)
	}

	if err := s.repo.Field.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Field deleted", zap.String("field_id", fieldID))
	return nil
}
