package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/response"
	"github.com/dondr1/lastminparty/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// UpsertProfile handles POST /api/profiles
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}

// GetMyProfile handles GET /api/profiles/me
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}

// GetMyProfileExists handles GET /api/profiles/me/exists
func (h *ProfileHandler) GetMyProfileExists(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	exists, err := h.profileService.ProfileExists(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, &dto.ProfileExistsResponse{Exists: exists})
}

// GetProfile handles GET /api/profiles/:userId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), targetID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}
