package domain

import (
	"time"

	"github.com/google/uuid"
)

// InviteStatus represents the status of an invite request
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

// Terminal reports whether no further transition is allowed from the status
func (s InviteStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusRejected
}

// Invite is a user's request to join an invite-only event. At most one per
// (event, user), enforced by the unique index. Status moves from pending to
// accepted or rejected and never back.
type Invite struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventUUID uuid.UUID    `gorm:"type:uuid;not null;index:idx_invites_event;uniqueIndex:uq_invites_event_user" json:"event_uuid"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_invites_user;uniqueIndex:uq_invites_event_user" json:"user_id"`
	Status    InviteStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_invites_status" json:"status"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`

	Event   *Event   `gorm:"foreignKey:EventUUID;references:ID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

// TableName specifies the table name for Invite
func (Invite) TableName() string {
	return "event_invites"
}
