package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"media-service/internal/pkg/config"
)

func NewPostgresDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// Keep the schema aligned with the entities; goose handles the
	// versioned DDL, AutoMigrate covers drift in-between releases.
	if err := AutoMigrate(database); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	return database, nil
}
