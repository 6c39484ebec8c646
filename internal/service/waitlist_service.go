package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/response"
)

// WaitlistService gives the host a review surface over the people who want
// into their event: the combined waitlist, the filtered review queue, the
// decision map, the confirmed attendees, and eviction.
type WaitlistService interface {
	GetWaitlist(ctx context.Context, eventUUID, hostID uuid.UUID) ([]*dto.CandidateResponse, error)
	GetDecisionMap(ctx context.Context, eventUUID, hostID uuid.UUID) (map[string]string, error)
	GetQueue(ctx context.Context, eventUUID, hostID uuid.UUID) ([]*dto.CandidateResponse, error)
	Decide(ctx context.Context, eventUUID, hostID, targetID uuid.UUID, value domain.HostDecisionValue) error
	GetAttendees(ctx context.Context, eventUUID uuid.UUID) ([]*dto.AttendeeResponse, error)
	Evict(ctx context.Context, eventUUID, hostID, targetID uuid.UUID) error
}

type WaitlistServiceImpl struct {
	eventRepo        repository.EventRepository
	decisionRepo     repository.DecisionRepository
	inviteRepo       repository.InviteRepository
	hostDecisionRepo repository.HostDecisionRepository
	participantRepo  repository.ParticipantRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(
	eventRepo repository.EventRepository,
	decisionRepo repository.DecisionRepository,
	inviteRepo repository.InviteRepository,
	hostDecisionRepo repository.HostDecisionRepository,
	participantRepo repository.ParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) WaitlistService {
	return &WaitlistServiceImpl{
		eventRepo:        eventRepo,
		decisionRepo:     decisionRepo,
		inviteRepo:       inviteRepo,
		hostDecisionRepo: hostDecisionRepo,
		participantRepo:  participantRepo,
		metrics:          m,
		logger:           logger,
	}
}

// requireCreator loads the event and verifies the caller hosts it
func (s *WaitlistServiceImpl) requireCreator(ctx context.Context, eventUUID, hostID uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		s.logger.Error("Failed to get event", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get event", err.Error())
	}
	if event.CreatorID != hostID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the event creator can review candidates", "")
	}
	return event, nil
}

// collectWaitlist merges likers and pending invite senders into one
// deduplicated candidate list. Likers come first in swipe order, then
// pending inviters who never swiped. Entries without a loaded profile are
// dropped: the host cannot review a candidate they cannot see.
func (s *WaitlistServiceImpl) collectWaitlist(ctx context.Context, eventUUID uuid.UUID) ([]*dto.CandidateResponse, error) {
	likers, err := s.decisionRepo.FindLikersByEvent(ctx, eventUUID)
	if err != nil {
		return nil, err
	}
	pending, err := s.inviteRepo.FindPendingByEvent(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(likers)+len(pending))
	candidates := make([]*dto.CandidateResponse, 0, len(likers)+len(pending))
	for _, liker := range likers {
		if seen[liker.UserID] || liker.Profile == nil {
			continue
		}
		seen[liker.UserID] = true
		candidates = append(candidates, dto.NewCandidateResponse(liker.UserID, liker.Profile))
	}
	for _, invite := range pending {
		if seen[invite.UserID] || invite.Profile == nil {
			continue
		}
		seen[invite.UserID] = true
		candidates = append(candidates, dto.NewCandidateResponse(invite.UserID, invite.Profile))
	}

	return candidates, nil
}

// GetWaitlist returns every candidate waiting on the host's event
func (s *WaitlistServiceImpl) GetWaitlist(ctx context.Context, eventUUID, hostID uuid.UUID) ([]*dto.CandidateResponse, error) {
	if _, err := s.requireCreator(ctx, eventUUID, hostID); err != nil {
		return nil, err
	}

	candidates, err := s.collectWaitlist(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to collect waitlist", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get waitlist", err.Error())
	}

	return candidates, nil
}

// GetDecisionMap returns the host's latest decision per candidate, keyed by
// user ID
func (s *WaitlistServiceImpl) GetDecisionMap(ctx context.Context, eventUUID, hostID uuid.UUID) (map[string]string, error) {
	if _, err := s.requireCreator(ctx, eventUUID, hostID); err != nil {
		return nil, err
	}

	decisions, err := s.hostDecisionRepo.FindByEvent(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to get host decisions", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get decisions", err.Error())
	}

	result := make(map[string]string, len(decisions))
	for _, d := range decisions {
		result[d.UserID.String()] = string(d.Decision)
	}
	return result, nil
}

// GetQueue returns the candidates still worth the host's attention:
// confirmed attendees and already accepted candidates are removed, and
// rejected ones are moved to the back so the host can reconsider them after
// the unreviewed.
func (s *WaitlistServiceImpl) GetQueue(ctx context.Context, eventUUID, hostID uuid.UUID) ([]*dto.CandidateResponse, error) {
	if _, err := s.requireCreator(ctx, eventUUID, hostID); err != nil {
		return nil, err
	}

	candidates, err := s.collectWaitlist(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to collect waitlist", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get review queue", err.Error())
	}

	participants, err := s.participantRepo.FindByEvent(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to get participants", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get review queue", err.Error())
	}
	decisions, err := s.hostDecisionRepo.FindByEvent(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to get host decisions", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get review queue", err.Error())
	}

	attending := make(map[uuid.UUID]bool, len(participants))
	for _, p := range participants {
		attending[p.UserID] = true
	}
	decided := make(map[uuid.UUID]domain.HostDecisionValue, len(decisions))
	for _, d := range decisions {
		decided[d.UserID] = d.Decision
	}

	unreviewed := make([]*dto.CandidateResponse, 0, len(candidates))
	var rejected []*dto.CandidateResponse
	for _, c := range candidates {
		if attending[c.UserID] || decided[c.UserID] == domain.HostAccepted {
			continue
		}
		if decided[c.UserID] == domain.HostRejected {
			rejected = append(rejected, c)
			continue
		}
		unreviewed = append(unreviewed, c)
	}

	return append(unreviewed, rejected...), nil
}

// Decide records the host's call on a candidate. Accepting also confirms
// attendance in the same transaction; deciding again overwrites the
// previous call.
func (s *WaitlistServiceImpl) Decide(ctx context.Context, eventUUID, hostID, targetID uuid.UUID, value domain.HostDecisionValue) error {
	if _, err := s.requireCreator(ctx, eventUUID, hostID); err != nil {
		return err
	}

	if !value.Valid() {
		return response.NewAppError(response.ErrCodeValidation, "Unknown host decision", string(value))
	}

	decision := &domain.HostDecision{
		EventUUID: eventUUID,
		UserID:    targetID,
		Decision:  value,
	}

	var err error
	if value == domain.HostAccepted {
		participant := &domain.Participant{
			EventUUID: eventUUID,
			UserID:    targetID,
		}
		err = s.hostDecisionRepo.UpsertWithParticipant(ctx, decision, participant)
	} else {
		err = s.hostDecisionRepo.Upsert(ctx, decision)
	}
	if err != nil {
		s.logger.Error("Failed to record host decision",
			zap.String("eventUUID", eventUUID.String()),
			zap.String("targetID", targetID.String()),
			zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to record decision", err.Error())
	}

	if value == domain.HostAccepted {
		s.metrics.IncrementParticipantJoined()
	}
	s.logger.Info("Host decision recorded",
		zap.String("eventUUID", eventUUID.String()),
		zap.String("targetID", targetID.String()),
		zap.String("decision", string(value)))

	return nil
}

// GetAttendees returns the confirmed participants of an event in join order
func (s *WaitlistServiceImpl) GetAttendees(ctx context.Context, eventUUID uuid.UUID) ([]*dto.AttendeeResponse, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		s.logger.Error("Failed to get event", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get attendees", err.Error())
	}

	participants, err := s.participantRepo.FindByEvent(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to get participants", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get attendees", err.Error())
	}

	return dto.NewAttendeeResponses(participants), nil
}

// Evict removes a confirmed participant and records a rejection so the
// person does not resurface as unreviewed in the queue
func (s *WaitlistServiceImpl) Evict(ctx context.Context, eventUUID, hostID, targetID uuid.UUID) error {
	if _, err := s.requireCreator(ctx, eventUUID, hostID); err != nil {
		return err
	}

	if _, err := s.participantRepo.FindByEventAndUser(ctx, eventUUID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Participant not found", "")
		}
		s.logger.Error("Failed to check participant", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to evict participant", err.Error())
	}

	if err := s.participantRepo.RemoveWithRejection(ctx, eventUUID, targetID); err != nil {
		s.logger.Error("Failed to evict participant",
			zap.String("eventUUID", eventUUID.String()),
			zap.String("targetID", targetID.String()),
			zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to evict participant", err.Error())
	}

	s.metrics.IncrementParticipantRemoved()
	s.logger.Info("Participant evicted",
		zap.String("eventUUID", eventUUID.String()),
		zap.String("targetID", targetID.String()))

	return nil
}
