package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/cache"
	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/response"
)

// ProfileService handles profile business logic
type ProfileService interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	ProfileExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type ProfileServiceImpl struct {
	profileRepo  repository.ProfileRepository
	profileCache cache.ProfileCache
	logger       *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository, profileCache cache.ProfileCache, logger *zap.Logger) ProfileService {
	return &ProfileServiceImpl{
		profileRepo:  profileRepo,
		profileCache: profileCache,
		logger:       logger,
	}
}

// UpsertProfile creates or replaces the caller's profile and invalidates
// the cached existence flag
func (s *ProfileServiceImpl) UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid tags", err.Error())
	}

	profile := &domain.Profile{
		ID:          userID,
		Username:    req.Username,
		AvatarURL:   req.AvatarURL,
		BioImageURL: req.BioImageURL,
		Bio:         req.Bio,
		Tags:        datatypes.JSON(tagsJSON),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.logger.Error("Failed to upsert profile", zap.String("userID", userID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save profile", err.Error())
	}

	s.profileCache.Invalidate(ctx, userID)
	s.logger.Info("Profile saved", zap.String("userID", userID.String()), zap.String("username", req.Username))

	return dto.NewProfileResponse(profile), nil
}

// GetProfile returns a profile by user ID
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Profile not found", "")
		}
		s.logger.Error("Failed to get profile", zap.String("userID", userID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get profile", err.Error())
	}

	return dto.NewProfileResponse(profile), nil
}

// ProfileExists reports whether the user finished onboarding. The answer is
// cached; misses fall through to the database and prime the cache.
func (s *ProfileServiceImpl) ProfileExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	if exists, ok := s.profileCache.GetExists(ctx, userID); ok {
		return exists, nil
	}

	exists, err := s.profileRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to check profile existence", zap.String("userID", userID.String()), zap.Error(err))
		return false, response.NewAppError(response.ErrCodeInternal, "Failed to check profile", err.Error())
	}

	s.profileCache.SetExists(ctx, userID, exists)
	return exists, nil
}
