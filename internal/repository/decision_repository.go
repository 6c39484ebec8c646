package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dondr1/lastminparty/internal/domain"
)

// DecisionRepository defines the interface for swipe decision data access
type DecisionRepository interface {
	Upsert(ctx context.Context, decision *domain.Decision) error
	FindByEventAndUser(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error)
	FindLikersByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Decision, error)
}

// decisionRepositoryImpl is the GORM implementation of DecisionRepository
type decisionRepositoryImpl struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new instance of DecisionRepository
func NewDecisionRepository(db *gorm.DB) DecisionRepository {
	return &decisionRepositoryImpl{db: db}
}

// Upsert records the swipe, replacing any prior decision for the same
// (event, user). Latest decision wins.
func (r *decisionRepositoryImpl) Upsert(ctx context.Context, decision *domain.Decision) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_uuid"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"decision", "updated_at"}),
		}).
		Create(decision).Error
}

// FindByEventAndUser finds the user's current decision on an event
func (r *decisionRepositoryImpl) FindByEventAndUser(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error) {
	var decision domain.Decision
	if err := r.db.WithContext(ctx).
		Where("event_uuid = ? AND user_id = ?", eventUUID, userID).
		First(&decision).Error; err != nil {
		return nil, err
	}
	return &decision, nil
}

// FindLikersByEvent finds all like decisions on an event with the swipers'
// profiles, oldest first.
func (r *decisionRepositoryImpl) FindLikersByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Decision, error) {
	var decisions []*domain.Decision
	if err := r.db.WithContext(ctx).
		Where("event_uuid = ? AND decision = ?", eventUUID, domain.SwipeLike).
		Preload("Profile").
		Order("created_at ASC").
		Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}
