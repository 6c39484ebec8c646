package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is confirmed attendance of a user at an event. Upserted on
// (event, user) so joining is idempotent; CreatedAt is the join time.
type Participant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventUUID uuid.UUID `gorm:"type:uuid;not null;index:idx_participants_event;uniqueIndex:uq_participants_event_user" json:"event_uuid"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_participants_user;uniqueIndex:uq_participants_event_user" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Event   *Event   `gorm:"foreignKey:EventUUID;references:ID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "event_participants"
}
