package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/response"
)

// InviteService handles join requests for invite-only events
type InviteService interface {
	CreateInvite(ctx context.Context, eventUUID, userID uuid.UUID) error
	GetMyInvites(ctx context.Context, userID uuid.UUID) ([]*dto.InviteResponse, error)
	UpdateStatus(ctx context.Context, inviteID, userID uuid.UUID, status domain.InviteStatus) (*dto.InviteResponse, error)
}

type InviteServiceImpl struct {
	inviteRepo repository.InviteRepository
	eventRepo  repository.EventRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewInviteService creates a new invite service
func NewInviteService(inviteRepo repository.InviteRepository, eventRepo repository.EventRepository, m *metrics.Metrics, logger *zap.Logger) InviteService {
	return &InviteServiceImpl{
		inviteRepo: inviteRepo,
		eventRepo:  eventRepo,
		metrics:    m,
		logger:     logger,
	}
}

// isUniqueViolation matches the driver's unique constraint error text.
// Postgres reports SQLSTATE 23505 as "duplicate key value".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// CreateInvite creates a pending invite for an invite-only event. A repeat
// request for the same (event, user) pair is a no-op: the unique index
// rejects the second row and the existing invite keeps its status.
func (s *InviteServiceImpl) CreateInvite(ctx context.Context, eventUUID, userID uuid.UUID) error {
	event, err := s.eventRepo.FindByID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		s.logger.Error("Failed to check event for invite", zap.String("eventUUID", eventUUID.String()), zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to create invite", err.Error())
	}

	if !event.IsInviteOnly {
		return response.NewAppError(response.ErrCodeInvalidState, "Event is not invite-only", "")
	}

	invite := &domain.Invite{
		EventUUID: eventUUID,
		UserID:    userID,
		Status:    domain.InviteStatusPending,
	}
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		if isUniqueViolation(err) {
			s.logger.Debug("Invite already exists",
				zap.String("eventUUID", eventUUID.String()),
				zap.String("userID", userID.String()))
			return nil
		}
		s.logger.Error("Failed to create invite",
			zap.String("eventUUID", eventUUID.String()),
			zap.String("userID", userID.String()),
			zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to create invite", err.Error())
	}

	s.metrics.IncrementInviteCreated()
	s.logger.Info("Invite created",
		zap.String("inviteID", invite.ID.String()),
		zap.String("eventUUID", eventUUID.String()),
		zap.String("userID", userID.String()))

	return nil
}

// GetMyInvites returns the caller's invite inbox, newest first, with the
// event and its host joined in
func (s *InviteServiceImpl) GetMyInvites(ctx context.Context, userID uuid.UUID) ([]*dto.InviteResponse, error) {
	invites, err := s.inviteRepo.FindByUserWithEvent(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get invites", zap.String("userID", userID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to get invites", err.Error())
	}

	return dto.NewInviteResponses(invites), nil
}

// UpdateStatus resolves a pending invite. Only the invite's recipient may
// resolve it, the transition is one-way, and repeating an already applied
// resolution is a no-op. Accepting also confirms attendance atomically.
func (s *InviteServiceImpl) UpdateStatus(ctx context.Context, inviteID, userID uuid.UUID, status domain.InviteStatus) (*dto.InviteResponse, error) {
	if !status.Terminal() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invite can only be accepted or rejected", string(status))
	}

	invite, err := s.inviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Invite not found", "")
		}
		s.logger.Error("Failed to get invite", zap.String("inviteID", inviteID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invite", err.Error())
	}

	if invite.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the invite recipient can resolve it", "")
	}

	if invite.Status == status {
		return dto.NewInviteResponse(invite), nil
	}
	if invite.Status.Terminal() {
		return nil, response.NewAppError(response.ErrCodeInvalidState, "Invite is already resolved", string(invite.Status))
	}

	switch status {
	case domain.InviteStatusAccepted:
		err = s.inviteRepo.AcceptWithParticipant(ctx, invite)
	case domain.InviteStatusRejected:
		err = s.inviteRepo.UpdateStatus(ctx, inviteID, status)
	}
	if err != nil {
		s.logger.Error("Failed to resolve invite",
			zap.String("inviteID", inviteID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invite", err.Error())
	}

	invite.Status = status
	s.metrics.IncrementInviteResolved(status)
	s.logger.Info("Invite resolved",
		zap.String("inviteID", inviteID.String()),
		zap.String("status", string(status)))

	return dto.NewInviteResponse(invite), nil
}
