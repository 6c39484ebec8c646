package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/domain"
)

// UpsertProfileRequest creates or replaces the caller's profile
type UpsertProfileRequest struct {
	Username    string   `json:"username" binding:"required,max=100"`
	AvatarURL   string   `json:"avatar_url"`
	BioImageURL *string  `json:"bio_image_url"`
	Bio         *string  `json:"bio"`
	Tags        []string `json:"tags"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	AvatarURL   string    `json:"avatar_url"`
	BioImageURL *string   `json:"bio_image_url"`
	Bio         *string   `json:"bio"`
	Tags        []string  `json:"tags"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileExistsResponse reports whether the caller already onboarded
type ProfileExistsResponse struct {
	Exists bool `json:"exists"`
}

// NewProfileResponse converts a domain profile to its API representation.
// Malformed stored tags degrade to an empty list rather than failing the read.
func NewProfileResponse(p *domain.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:          p.ID,
		Username:    p.Username,
		AvatarURL:   p.AvatarURL,
		BioImageURL: p.BioImageURL,
		Bio:         p.Bio,
		Tags:        []string{},
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.Tags) > 0 {
		var tags []string
		if err := json.Unmarshal(p.Tags, &tags); err == nil {
			resp.Tags = tags
		}
	}
	return resp
}
