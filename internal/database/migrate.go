package database

import (
	"gorm.io/gorm"

	"sonna_backend/internal/logger"
	"sonna_backend/internal/models"
)

// Migrate runs the schema auto-migration for all application models.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.News{},
		&models.Product{},
		&models.Camp{},
		&models.Podcast{},
		&models.Expert{},
		&models.SystemSetting{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
