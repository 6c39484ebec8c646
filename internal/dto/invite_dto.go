package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/domain"
)

// UpdateInviteStatusRequest resolves a pending invite
type UpdateInviteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// InviteEventResponse is the event summary embedded in an invite row
type InviteEventResponse struct {
	UUID     uuid.UUID        `json:"uuid"`
	Title    string           `json:"title"`
	Date     *string          `json:"date"`
	Location string           `json:"location"`
	ImageURL string           `json:"image_url"`
	Host     *CreatorResponse `json:"host,omitempty"`
}

// InviteResponse represents an invite in the recipient's inbox
type InviteResponse struct {
	ID        uuid.UUID            `json:"id"`
	Status    domain.InviteStatus  `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Event     *InviteEventResponse `json:"event,omitempty"`
}

// NewInviteResponse converts a domain invite to its API representation
func NewInviteResponse(inv *domain.Invite) *InviteResponse {
	resp := &InviteResponse{
		ID:        inv.ID,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}
	if inv.Event != nil {
		resp.Event = &InviteEventResponse{
			UUID:     inv.Event.ID,
			Title:    inv.Event.Title,
			Date:     inv.Event.Date,
			Location: inv.Event.Location,
			ImageURL: inv.Event.ImageURL,
			Host:     NewCreatorResponse(inv.Event.Creator),
		}
	}
	return resp
}

// NewInviteResponses converts a slice of domain invites
func NewInviteResponses(invites []*domain.Invite) []*InviteResponse {
	responses := make([]*InviteResponse, len(invites))
	for i, inv := range invites {
		responses[i] = NewInviteResponse(inv)
	}
	return responses
}
