package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/response"
)

// DecisionService maintains the swipe ledger: the caller's current like or
// nope per event. It records decisions only; follow-up effects such as
// invite creation belong to the caller.
type DecisionService interface {
	RecordSwipe(ctx context.Context, eventUUID, userID uuid.UUID, decision domain.SwipeDecision) error
	GetSwipe(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error)
}

type DecisionServiceImpl struct {
	decisionRepo repository.DecisionRepository
	eventRepo    repository.EventRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewDecisionService creates a new decision service
func NewDecisionService(decisionRepo repository.DecisionRepository, eventRepo repository.EventRepository, m *metrics.Metrics, logger *zap.Logger) DecisionService {
	return &DecisionServiceImpl{
		decisionRepo: decisionRepo,
		eventRepo:    eventRepo,
		metrics:      m,
		logger:       logger,
	}
}

// RecordSwipe upserts the caller's decision on an event. A repeat swipe on
// the same event replaces the previous decision in place. Ledger write
// failures are swallowed after logging; only validation and unknown events
// surface to the caller.
func (s *DecisionServiceImpl) RecordSwipe(ctx context.Context, eventUUID, userID uuid.UUID, decision domain.SwipeDecision) error {
	if !decision.Valid() {
		return response.NewAppError(response.ErrCodeValidation, "Unknown swipe decision", string(decision))
	}

	if _, err := s.eventRepo.FindByID(ctx, eventUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		s.logger.Error("Failed to check event for swipe", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to record swipe", err.Error())
	}

	record := &domain.Decision{
		EventUUID: eventUUID,
		UserID:    userID,
		Decision:  decision,
	}
	if err := s.decisionRepo.Upsert(ctx, record); err != nil {
		// Ledger writes are best effort: the swipe gesture must not fail
		// the client, and a re-swipe repairs a lost row.
		s.logger.Error("Failed to record swipe",
			zap.String("eventUUID", eventUUID.String()),
			zap.String("userID", userID.String()),
			zap.Error(err))
		return nil
	}

	s.metrics.IncrementSwipeRecorded(decision)
	s.logger.Info("Swipe recorded",
		zap.String("eventUUID", eventUUID.String()),
		zap.String("userID", userID.String()),
		zap.String("decision", string(decision)))

	return nil
}

// GetSwipe returns the caller's current decision on an event, or nil when
// the event has not been swiped yet.
func (s *DecisionServiceImpl) GetSwipe(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error) {
	decision, err := s.decisionRepo.FindByEventAndUser(ctx, eventUUID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to get swipe", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get swipe", err.Error())
	}

	return decision, nil
}
