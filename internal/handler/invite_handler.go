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

type InviteHandler struct {
	inviteService service.InviteService
}

func NewInviteHandler(inviteService service.InviteService) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// GetMyInvites handles GET /api/invites
func (h *InviteHandler) GetMyInvites(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invites, err := h.inviteService.GetMyInvites(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invites)
}

// UpdateStatus handles PATCH /api/invites/:inviteId
func (h *InviteHandler) UpdateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	inviteID, err := uuid.Parse(c.Param("inviteId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid invite ID")
		return
	}

	var req dto.UpdateInviteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	invite, err := h.inviteService.UpdateStatus(c.Request.Context(), inviteID, userID, domain.InviteStatus(req.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invite)
}
