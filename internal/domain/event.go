package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event represents a hosted event discoverable in the swipe feed
type Event struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatorID    uuid.UUID `gorm:"type:uuid;not null;index:idx_events_creator_id" json:"creator_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Date         *string   `gorm:"type:varchar(10)" json:"date"`
	StartTime    *string   `gorm:"type:varchar(8)" json:"start_time"`
	EndTime      *string   `gorm:"type:varchar(8)" json:"end_time"`
	Location     string    `gorm:"type:varchar(255)" json:"location"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	IsInviteOnly bool      `gorm:"default:false;index:idx_events_invite_only" json:"is_invite_only"`
	Capacity     *int      `json:"capacity,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`

	Creator *Profile `gorm:"foreignKey:CreatorID;references:ID" json:"creator,omitempty"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// EffectiveEnd computes the moment the event ends: date combined with the end
// time, falling back to the start time, else end of day. Returns false when
// the event has no date or the stored values cannot be parsed.
func (e *Event) EffectiveEnd() (time.Time, bool) {
	if e.Date == nil || *e.Date == "" {
		return time.Time{}, false
	}

	t := e.EndTime
	if t == nil || *t == "" {
		t = e.StartTime
	}
	clock := "23:59:59"
	if t != nil && *t != "" {
		clock = *t
	}
	// Accept HH:MM as well as HH:MM:SS
	if len(clock) == 5 {
		clock = clock + ":00"
	}

	end, err := time.ParseInLocation("2006-01-02 15:04:05", fmt.Sprintf("%s %s", *e.Date, clock), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return end, true
}

// IsExpired reports whether the event's effective end has passed. An event
// ending exactly at now counts as expired. Undated or unparseable events
// never expire.
func (e *Event) IsExpired(now time.Time) bool {
	end, ok := e.EffectiveEnd()
	if !ok {
		return false
	}
	return !end.After(now)
}
