package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/response"
	"github.com/dondr1/lastminparty/internal/service"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, event)
}

// GetFeed handles GET /api/events/feed
func (h *EventHandler) GetFeed(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	events, err := h.eventService.GetFeed(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, events)
}

// GetHosting handles GET /api/events/hosting
func (h *EventHandler) GetHosting(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	events, err := h.eventService.GetHosting(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, events)
}

// GetAttending handles GET /api/events/attending
func (h *EventHandler) GetAttending(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	events, err := h.eventService.GetAttending(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, events)
}

// GetEvent handles GET /api/events/:eventId
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventUUID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), eventUUID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, event)
}

// UpdateEvent handles PATCH /api/events/:eventId
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	eventUUID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventUUID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, event)
}
