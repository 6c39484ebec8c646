package domain

import (
	"time"

	"github.com/google/uuid"
)

// HostDecisionValue is the host's call on a waitlist candidate
type HostDecisionValue string

const (
	HostAccepted HostDecisionValue = "accepted"
	HostRejected HostDecisionValue = "rejected"
)

// Valid reports whether the value is one of the known host decisions
func (v HostDecisionValue) Valid() bool {
	return v == HostAccepted || v == HostRejected
}

// HostDecision is the authoritative record of the host's latest accept or
// reject of a candidate for their event. Upserted on (event, user),
// last write wins; no history is retained.
type HostDecision struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventUUID uuid.UUID         `gorm:"type:uuid;not null;index:idx_host_decisions_event;uniqueIndex:uq_host_decisions_event_user" json:"event_uuid"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_host_decisions_event_user" json:"user_id"`
	Decision  HostDecisionValue `gorm:"type:varchar(20);not null" json:"decision"`
	CreatedAt time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null" json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventUUID;references:ID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
}

// TableName specifies the table name for HostDecision
func (HostDecision) TableName() string {
	return "host_event_decisions"
}
