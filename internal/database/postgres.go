package database

import (
	"fmt"

	"github.com/nutricoach/nutricoach-api/internal/config"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the database connection and migrates the schema
func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	// TranslateError maps driver constraint violations onto gorm's sentinel
	// errors so the repository can classify them without string matching.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema for all record types
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Customer{},
		&domain.BodyMeasurement{},
		&domain.BodyMeasurementAIAnalysis{},
		&domain.Injury{},
		&domain.Disease{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
