package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/domain"
)

// HostDecisionRequest records the host's review of a candidate
type HostDecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}

// CandidateResponse is one entry in the host's waitlist or review queue
type CandidateResponse struct {
	UserID  uuid.UUID        `json:"user_id"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

// AttendeeResponse is one confirmed participant of an event
type AttendeeResponse struct {
	UserID   uuid.UUID        `json:"user_id"`
	JoinedAt time.Time        `json:"joined_at"`
	Profile  *ProfileResponse `json:"profile,omitempty"`
}

// NewCandidateResponse converts a candidate's profile to a queue entry
func NewCandidateResponse(userID uuid.UUID, p *domain.Profile) *CandidateResponse {
	resp := &CandidateResponse{UserID: userID}
	if p != nil {
		resp.Profile = NewProfileResponse(p)
	}
	return resp
}

// NewAttendeeResponse converts a participant row to its API representation
func NewAttendeeResponse(part *domain.Participant) *AttendeeResponse {
	resp := &AttendeeResponse{
		UserID:   part.UserID,
		JoinedAt: part.CreatedAt,
	}
	if part.Profile != nil {
		resp.Profile = NewProfileResponse(part.Profile)
	}
	return resp
}

// NewAttendeeResponses converts a slice of participant rows
func NewAttendeeResponses(parts []*domain.Participant) []*AttendeeResponse {
	responses := make([]*AttendeeResponse, len(parts))
	for i, p := range parts {
		responses[i] = NewAttendeeResponse(p)
	}
	return responses
}
