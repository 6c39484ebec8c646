package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is a user's public identity. The primary key is the auth user id,
// so a user has at most one profile and no surrogate id is generated.
type Profile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string         `gorm:"type:varchar(50);not null" json:"username"`
	AvatarURL   string         `gorm:"type:text" json:"avatar_url"`
	BioImageURL *string        `gorm:"type:text" json:"bio_image_url,omitempty"`
	Bio         *string        `gorm:"type:text" json:"bio,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
