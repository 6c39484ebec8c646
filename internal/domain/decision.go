package domain

import (
	"time"

	"github.com/google/uuid"
)

// SwipeDecision is a user's disposition toward an event card
type SwipeDecision string

const (
	SwipeLike SwipeDecision = "like"
	SwipeNope SwipeDecision = "nope"
)

// Valid reports whether the value is one of the known swipe decisions
func (d SwipeDecision) Valid() bool {
	return d == SwipeLike || d == SwipeNope
}

// Decision records a user's current swipe on an event. One row per
// (event, user); a re-swipe replaces the previous decision.
type Decision struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventUUID uuid.UUID     `gorm:"type:uuid;not null;index:idx_decisions_event;uniqueIndex:uq_decisions_event_user" json:"event_uuid"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_decisions_user;uniqueIndex:uq_decisions_event_user" json:"user_id"`
	Decision  SwipeDecision `gorm:"type:varchar(10);not null" json:"decision"`
	CreatedAt time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null" json:"updated_at"`

	Event   *Event   `gorm:"foreignKey:EventUUID;references:ID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "event_decisions"
}
