package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dondr1/lastminparty/internal/domain"
)

// InviteRepository defines the interface for invite data access
type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Invite, error)
	FindByUserWithEvent(ctx context.Context, userID uuid.UUID) ([]*domain.Invite, error)
	FindPendingByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Invite, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InviteStatus) error
	AcceptWithParticipant(ctx context.Context, invite *domain.Invite) error
}

// inviteRepositoryImpl is the GORM implementation of InviteRepository
type inviteRepositoryImpl struct {
	db *gorm.DB
}

// NewInviteRepository creates a new instance of InviteRepository
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepositoryImpl{db: db}
}

// Create inserts a new invite. The unique index on (event_uuid, user_id)
// rejects duplicates; callers treat that violation as the idempotency signal.
func (r *inviteRepositoryImpl) Create(ctx context.Context, invite *domain.Invite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// FindByID finds an invite by its id
func (r *inviteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invite, error) {
	var invite domain.Invite
	if err := r.db.WithContext(ctx).First(&invite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindByUserWithEvent finds the user's invites joined with their events and
// the events' host profiles, newest first. The inner join drops invites
// whose event no longer exists instead of surfacing orphans.
func (r *inviteRepositoryImpl) FindByUserWithEvent(ctx context.Context, userID uuid.UUID) ([]*domain.Invite, error) {
	var invites []*domain.Invite
	if err := r.db.WithContext(ctx).
		Joins("JOIN events ON events.id = event_invites.event_uuid").
		Where("event_invites.user_id = ?", userID).
		Preload("Event").
		Preload("Event.Creator").
		Order("event_invites.created_at DESC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// FindPendingByEvent finds all pending invites on an event with the
// requesters' profiles, oldest first.
func (r *inviteRepositoryImpl) FindPendingByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Invite, error) {
	var invites []*domain.Invite
	if err := r.db.WithContext(ctx).
		Where("event_uuid = ? AND status = ?", eventUUID, domain.InviteStatusPending).
		Preload("Profile").
		Order("created_at ASC").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// UpdateStatus updates the invite status by primary key
func (r *inviteRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InviteStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Invite{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// AcceptWithParticipant flips the invite to accepted and upserts the
// recipient's participation in one transaction, so the two records cannot
// diverge on a partial failure.
func (r *inviteRepositoryImpl) AcceptWithParticipant(ctx context.Context, invite *domain.Invite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Invite{}).
			Where("id = ?", invite.ID).
			Update("status", domain.InviteStatusAccepted).Error; err != nil {
			return err
		}

		participant := &domain.Participant{
			EventUUID: invite.EventUUID,
			UserID:    invite.UserID,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_uuid"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(participant).Error
	})
}
