package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dondr1/lastminparty/internal/domain"
)

// HostDecisionRepository defines the interface for host decision data access
type HostDecisionRepository interface {
	Upsert(ctx context.Context, decision *domain.HostDecision) error
	UpsertWithParticipant(ctx context.Context, decision *domain.HostDecision, participant *domain.Participant) error
	FindByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.HostDecision, error)
	FindAcceptedWithoutParticipant(ctx context.Context) ([]*domain.HostDecision, error)
}

// hostDecisionRepositoryImpl is the GORM implementation of HostDecisionRepository
type hostDecisionRepositoryImpl struct {
	db *gorm.DB
}

// NewHostDecisionRepository creates a new instance of HostDecisionRepository
func NewHostDecisionRepository(db *gorm.DB) HostDecisionRepository {
	return &hostDecisionRepositoryImpl{db: db}
}

func upsertHostDecision(tx *gorm.DB, decision *domain.HostDecision) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_uuid"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"decision", "updated_at"}),
	}).Create(decision).Error
}

// Upsert records the host's call on a candidate, last write wins
func (r *hostDecisionRepositoryImpl) Upsert(ctx context.Context, decision *domain.HostDecision) error {
	return upsertHostDecision(r.db.WithContext(ctx), decision)
}

// UpsertWithParticipant records an accept and the resulting participation in
// one transaction, so an accepted candidate cannot be left stranded without
// a participant row.
func (r *hostDecisionRepositoryImpl) UpsertWithParticipant(ctx context.Context, decision *domain.HostDecision, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertHostDecision(tx, decision); err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_uuid"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(participant).Error
	})
}

// FindByEvent finds all host decisions for an event
func (r *hostDecisionRepositoryImpl) FindByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.HostDecision, error) {
	var decisions []*domain.HostDecision
	if err := r.db.WithContext(ctx).
		Where("event_uuid = ?", eventUUID).
		Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// FindAcceptedWithoutParticipant finds accepted host decisions that have no
// matching participant row. These are divergences left by partial writes and
// are repaired by the reconcile job.
func (r *hostDecisionRepositoryImpl) FindAcceptedWithoutParticipant(ctx context.Context) ([]*domain.HostDecision, error) {
	var decisions []*domain.HostDecision
	if err := r.db.WithContext(ctx).
		Where("decision = ?", domain.HostAccepted).
		Where("NOT EXISTS (SELECT 1 FROM event_participants p WHERE p.event_uuid = host_event_decisions.event_uuid AND p.user_id = host_event_decisions.user_id)").
		Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}
