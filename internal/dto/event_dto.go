package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/domain"
)

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  string  `json:"description"`
	Date         *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Location     string  `json:"location" binding:"required,max=255"`
	ImageURL     string  `json:"image_url" binding:"required"`
	IsInviteOnly bool    `json:"is_invite_only"`
	Capacity     *int    `json:"capacity" binding:"omitempty,min=1"`
}

// UpdateEventRequest represents the creator's partial update of an event.
// Only the fields the host-side edit screen exposes are mutable.
type UpdateEventRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	ImageURL  *string `json:"image_url"`
}

// CreatorResponse is the host identity joined onto event rows
type CreatorResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Date         *string          `json:"date"`
	StartTime    *string          `json:"start_time"`
	EndTime      *string          `json:"end_time"`
	Location     string           `json:"location"`
	ImageURL     string           `json:"image_url"`
	IsInviteOnly bool             `json:"is_invite_only"`
	Capacity     *int             `json:"capacity,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	Creator      *CreatorResponse `json:"creator,omitempty"`
}

// NewCreatorResponse converts a profile to the joined creator projection
func NewCreatorResponse(p *domain.Profile) *CreatorResponse {
	if p == nil {
		return nil
	}
	return &CreatorResponse{
		ID:        p.ID,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
	}
}

// NewEventResponse converts a domain event to its API representation
func NewEventResponse(e *domain.Event) *EventResponse {
	return &EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Location:     e.Location,
		ImageURL:     e.ImageURL,
		IsInviteOnly: e.IsInviteOnly,
		Capacity:     e.Capacity,
		CreatedAt:    e.CreatedAt,
		Creator:      NewCreatorResponse(e.Creator),
	}
}

// NewEventResponses converts a slice of domain events
func NewEventResponses(events []*domain.Event) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = NewEventResponse(e)
	}
	return responses
}
