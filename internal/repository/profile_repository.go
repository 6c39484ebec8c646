package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dondr1/lastminparty/internal/domain"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// profileRepositoryImpl is the GORM implementation of ProfileRepository
type profileRepositoryImpl struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

// Upsert creates the profile or replaces the mutable fields of an existing one
func (r *profileRepositoryImpl) Upsert(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "avatar_url", "bio_image_url", "bio", "tags", "updated_at"}),
		}).
		Create(profile).Error
}

// FindByID finds a profile by user id
func (r *profileRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Exists reports whether a profile row exists for the user
func (r *profileRepositoryImpl) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Select("id").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
