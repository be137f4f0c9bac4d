package database

import (
	"wecare/internal/models"

	"gorm.io/gorm"
)

// AllModels lists every model that participates in auto-migration, in
// dependency order. Tests migrate the same registry against sqlite.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Volunteer{},
	}
}

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
