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

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)
	UpsertProfile(ctx context.Context, userID string, req *request.ProfileRequest) (*response.ProfileResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user ID format %s", userID)
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find profile %s: %w", userID, err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile for user %s not found", userID)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, userID string, req *request.ProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert profile validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user ID format %s", userID)
	}

	now := time.Now()
	profile := &entity.Profile{
		UserID:    userUUID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Profile.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile %s: %w", userID, err)
	}

	s.log.Info("Profile saved",
		zap.String("user_id", userID),
		zap.String("full_name", req.FullName),
	)

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}
