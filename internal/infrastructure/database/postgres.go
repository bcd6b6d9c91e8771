package database

import (
	"fmt"
	"log"

	"github.com/noid254/qaribu-api/internal/config"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.BusinessProfile{},

		// Document entities
		&entity.DocumentDraft{},
		&entity.DocumentDraftItem{},
		&entity.Document{},
		&entity.DocumentItem{},

		// Check-in entities
		&entity.Premise{},
		&entity.DirectoryTenant{},
		&entity.VisitDraft{},
		&entity.VisitRequest{},

		// Marketplace entities
		&entity.Listing{},
		&entity.Gig{},
		&entity.Order{},
		&entity.OrderItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}
