package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindFeed(ctx context.Context, excludeCreator uuid.UUID) ([]*domain.Event, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Event, error)
	FindAttending(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
}

// eventRepositoryImpl is the GORM implementation of EventRepository
type eventRepositoryImpl struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepositoryImpl{db: db}
}

// Create creates a new event
func (r *eventRepositoryImpl) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID finds an event by id with its creator profile
func (r *eventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindFeed finds all events not created by the viewer, newest first, with
// creator profiles. Expiry filtering happens in the service layer.
func (r *eventRepositoryImpl) FindFeed(ctx context.Context, excludeCreator uuid.UUID) ([]*domain.Event, error) {
	var events []*domain.Event
	query := r.db.WithContext(ctx).
		Preload("Creator").
		Order("created_at DESC")
	if excludeCreator != uuid.Nil {
		query = query.Where("creator_id <> ?", excludeCreator)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByCreator finds all events created by the user
func (r *eventRepositoryImpl) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindAttending finds all events the user participates in, with creator
// profiles, joined through the participants table.
func (r *eventRepositoryImpl) FindAttending(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.db.WithContext(ctx).
		Joins("JOIN event_participants ON event_participants.event_uuid = events.id").
		Where("event_participants.user_id = ?", userID).
		Preload("Creator").
		Order("events.created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update persists changes to an event
func (r *eventRepositoryImpl) Update(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}
