package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/response"
)

// EventService handles event business logic
type EventService interface {
	CreateEvent(ctx context.Context, creatorID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, eventUUID uuid.UUID) (*dto.EventResponse, error)
	GetFeed(ctx context.Context, userID uuid.UUID) ([]*dto.EventResponse, error)
	GetHosting(ctx context.Context, userID uuid.UUID) ([]*dto.EventResponse, error)
	GetAttending(ctx context.Context, userID uuid.UUID) ([]*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, eventUUID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
}

type EventServiceImpl struct {
	eventRepo repository.EventRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository, m *metrics.Metrics, logger *zap.Logger) EventService {
	return &EventServiceImpl{
		eventRepo: eventRepo,
		metrics:   m,
		logger:    logger,
	}
}

// CreateEvent creates a new event hosted by the caller
func (s *EventServiceImpl) CreateEvent(ctx context.Context, creatorID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &domain.Event{
		CreatorID:    creatorID,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		ImageURL:     req.ImageURL,
		IsInviteOnly: req.IsInviteOnly,
		Capacity:     req.Capacity,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.Error("Failed to create event", zap.String("creatorID", creatorID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create event", err.Error())
	}

	s.metrics.IncrementEventCreated()
	s.logger.Info("Event created",
		zap.String("eventUUID", event.ID.String()),
		zap.String("creatorID", creatorID.String()),
		zap.Bool("inviteOnly", event.IsInviteOnly))

	return dto.NewEventResponse(event), nil
}

// GetEvent returns a single event by its UUID
func (s *EventServiceImpl) GetEvent(ctx context.Context, eventUUID uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		s.logger.Error("Failed to get event", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get event", err.Error())
	}

	return dto.NewEventResponse(event), nil
}

// GetFeed returns swipeable events for the caller: everyone else's events
// that have not yet ended. Expiry is evaluated at read time so a stale feed
// never resurfaces a finished event.
func (s *EventServiceImpl) GetFeed(ctx context.Context, userID uuid.UUID) ([]*dto.EventResponse, error) {
	events, err := s.eventRepo.FindFeed(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get event feed", zap.String("userID", userID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get event feed", err.Error())
	}

	return dto.NewEventResponses(filterLive(events, time.Now())), nil
}

// GetHosting returns the caller's live hosted events, newest first
func (s *EventServiceImpl) GetHosting(ctx context.Context, userID uuid.UUID) ([]*dto.EventResponse, error) {
	events, err := s.eventRepo.FindByCreator(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get hosted events", zap.String("userID", userID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get hosted events", err.Error())
	}

	return dto.NewEventResponses(filterLive(events, time.Now())), nil
}

// GetAttending returns the live events the caller is confirmed to attend
func (s *EventServiceImpl) GetAttending(ctx context.Context, userID uuid.UUID) ([]*dto.EventResponse, error) {
	events, err := s.eventRepo.FindAttending(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get attending events", zap.String("userID", userID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get attending events", err.Error())
	}

	return dto.NewEventResponses(filterLive(events, time.Now())), nil
}

func filterLive(events []*domain.Event, now time.Time) []*domain.Event {
	live := make([]*domain.Event, 0, len(events))
	for _, event := range events {
		if !event.IsExpired(now) {
			live = append(live, event)
		}
	}
	return live
}

// UpdateEvent applies a partial update. Only the event's creator may update it.
func (s *EventServiceImpl) UpdateEvent(ctx context.Context, eventUUID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		s.logger.Error("Failed to get event for update", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get event", err.Error())
	}

	if event.CreatorID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the event creator can update the event", "")
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Date != nil {
		event.Date = req.Date
	}
	if req.StartTime != nil {
		event.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		s.logger.Error("Failed to update event", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update event", err.Error())
	}

	s.logger.Info("Event updated", zap.String("eventUUID", eventUUID.String()))
	return dto.NewEventResponse(event), nil
}
