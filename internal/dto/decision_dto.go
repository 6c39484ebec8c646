package dto

import (
	"github.com/google/uuid"

	"github.com/dondr1/lastminparty/internal/domain"
)

// RecordSwipeRequest represents a swipe on an event card
type RecordSwipeRequest struct {
	Decision string `json:"decision" binding:"required,oneof=like nope"`
}

// SwipeResponse acknowledges a recorded swipe
type SwipeResponse struct {
	EventUUID uuid.UUID            `json:"event_uuid"`
	Decision  domain.SwipeDecision `json:"decision"`
}
