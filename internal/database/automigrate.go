package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models. Tables,
// indexes and foreign key constraints are derived from the struct tags in
// the domain package. Profiles migrate first so the FK targets exist.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Profile{},
		&domain.Event{},
		&domain.Decision{},
		&domain.Invite{},
		&domain.HostDecision{},
		&domain.Participant{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
