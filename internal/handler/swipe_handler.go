package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/response"
	"github.com/dondr1/lastminparty/internal/service"
)

// SwipeHandler records swipes and composes their follow-up: a like on an
// invite-only event also files a join request. The swipe itself is the
// source of truth; the invite is best-effort and repaired by re-swiping.
type SwipeHandler struct {
	decisionService service.DecisionService
	inviteService   service.InviteService
	logger          *zap.Logger
}

func NewSwipeHandler(decisionService service.DecisionService, inviteService service.InviteService, logger *zap.Logger) *SwipeHandler {
	return &SwipeHandler{
		decisionService: decisionService,
		inviteService:   inviteService,
		logger:          logger,
	}
}

// RecordSwipe handles POST /api/events/:eventId/swipes
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	eventUUID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return
	}

	var req dto.RecordSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	decision := domain.SwipeDecision(req.Decision)
	if err := h.decisionService.RecordSwipe(c.Request.Context(), eventUUID, userID, decision); err != nil {
		handleServiceError(c, err)
		return
	}

	if decision == domain.SwipeLike {
		if err := h.inviteService.CreateInvite(c.Request.Context(), eventUUID, userID); err != nil {
			// Likes on open events have no invite to create; anything else
			// is logged and left for the next swipe to retry.
			var appErr *response.AppError
			if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeInvalidState {
				h.logger.Warn("Invite creation after like failed",
					zap.String("eventUUID", eventUUID.String()),
					zap.String("userID", userID.String()),
					zap.Error(err))
			}
		}
	}

	// 202: the ledger write is best effort and may have been deferred
	response.SendSuccess(c, http.StatusAccepted, &dto.SwipeResponse{
		EventUUID: eventUUID,
		Decision:  decision,
	})
}

// GetSwipe handles GET /api/events/:eventId/swipes/me
func (h *SwipeHandler) GetSwipe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	eventUUID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return
	}

	decision, err := h.decisionService.GetSwipe(c.Request.Context(), eventUUID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if decision == nil {
		response.SendSuccess(c, http.StatusOK, nil)
		return
	}

	response.SendSuccess(c, http.StatusOK, &dto.SwipeResponse{
		EventUUID: decision.EventUUID,
		Decision:  decision.Decision,
	})
}
