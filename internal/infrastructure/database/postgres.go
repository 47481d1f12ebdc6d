package database

import (
	"fmt"

	"github.com/pablobispo13/api-portifolio/internal/infrastructure/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection. TranslateError lets unique-index
// violations surface as gorm.ErrDuplicatedKey, which is how the repositories
// detect conflicts atomically instead of check-then-write.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the identities, twilio_settings and
// log_entries tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBIdentity{},
		&repositories.DBTwilioSettings{},
		&repositories.DBLogEntry{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
