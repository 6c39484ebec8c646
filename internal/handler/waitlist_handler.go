package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/response"
	"github.com/dondr1/lastminparty/internal/service"
)

type WaitlistHandler struct {
	waitlistService service.WaitlistService
}

func NewWaitlistHandler(waitlistService service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistService: waitlistService,
	}
}

// parseEventID reads the eventId path parameter
func parseEventID(c *gin.Context) (uuid.UUID, bool) {
	eventUUID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return uuid.Nil, false
	}
	return eventUUID, true
}

// GetWaitlist handles GET /api/events/:eventId/waitlist
func (h *WaitlistHandler) GetWaitlist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	eventUUID, ok := parseEventID(c)
	if !ok {
		return
	}

	waitlist, err := h.waitlistService.GetWaitlist(c.Request.Context(), eventUUID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, waitlist)
}

// GetQueue handles GET /api/events/:eventId/queue
func (h *WaitlistHandler) GetQueue(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	eventUUID, ok := parseEventID(c)
	if !ok {
		return
	}

	queue, err := h.waitlistService.GetQueue(c.Request.Context(), eventUUID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, queue)
}

// GetDecisions handles GET /api/events/:eventId/decisions
func (h *WaitlistHandler) GetDecisions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	eventUUID, ok := parseEventID(c)
	if !ok {
		return
	}

	decisions, err := h.waitlistService.GetDecisionMap(c.Request.Context(), eventUUID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, decisions)
}

// Decide handles PUT /api/events/:eventId/decisions/:userId
func (h *WaitlistHandler) Decide(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	eventUUID, ok := parseEventID(c)
	if !ok {
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	var req dto.HostDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.waitlistService.Decide(c.Request.Context(), eventUUID, userID, targetID, domain.HostDecisionValue(req.Decision)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// GetAttendees handles GET /api/events/:eventId/attendees
func (h *WaitlistHandler) GetAttendees(c *gin.Context) {
	eventUUID, ok := parseEventID(c)
	if !ok {
		return
	}

	attendees, err := h.waitlistService.GetAttendees(c.Request.Context(), eventUUID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, attendees)
}

// Evict handles DELETE /api/events/:eventId/attendees/:userId
func (h *WaitlistHandler) Evict(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	eventUUID, ok := parseEventID(c)
	if !ok {
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	if err := h.waitlistService.Evict(c.Request.Context(), eventUUID, userID, targetID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
