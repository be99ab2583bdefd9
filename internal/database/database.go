package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/the88gb/influencer-dashboard-backend/internal/config"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

// InitDB opens the database connection and performs migrations. The returned
// handle is owned by the caller and passed down into repositories; there is
// no package-level instance.
func InitDB(cfg config.DBConfig) (*gorm.DB, error) {
	if !cfg.IsSet() {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection. Foreign key constraint creation is disabled:
	// brand and campaign deletions are intentionally unguarded, so a deleted
	// brand leaves dependent campaigns with a dangling brand_id.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.Brand{},
		&models.Campaign{},
		&models.CampaignInfluencer{},
		&models.CampaignAnalytics{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}
