package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dondr1/lastminparty/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Upsert(ctx context.Context, participant *domain.Participant) error
	FindByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Participant, error)
	FindByEventAndUser(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Participant, error)
	RemoveWithRejection(ctx context.Context, eventUUID, userID uuid.UUID) error
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Upsert confirms participation idempotently; a repeated join keeps the
// original join time.
func (r *participantRepositoryImpl) Upsert(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_uuid"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(participant).Error
}

// FindByEvent finds all participants of an event with their profiles,
// earliest join first.
func (r *participantRepositoryImpl) FindByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	if err := r.db.WithContext(ctx).
		Where("event_uuid = ?", eventUUID).
		Preload("Profile").
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// FindByEventAndUser finds a single participant row
func (r *participantRepositoryImpl) FindByEventAndUser(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("event_uuid = ? AND user_id = ?", eventUUID, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// RemoveWithRejection deletes the participant and records a rejected host
// decision in one transaction. The rejection keeps the evicted user from
// silently resurfacing as a fresh waitlist candidate; their underlying
// like/invite rows are left untouched.
func (r *participantRepositoryImpl) RemoveWithRejection(ctx context.Context, eventUUID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("event_uuid = ? AND user_id = ?", eventUUID, userID).
			Delete(&domain.Participant{}).Error; err != nil {
			return err
		}

		rejection := &domain.HostDecision{
			EventUUID: eventUUID,
			UserID:    userID,
			Decision:  domain.HostRejected,
		}
		return upsertHostDecision(tx, rejection)
	})
}
