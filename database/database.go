package database

import (
	"fmt"
	"time"

	"booking-app/config"
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// Open connects to the configured store, sizes the pool and, when enabled,
// migrates the schema.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg.Database), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if cfg.Telemetry.Enabled {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, fmt.Errorf("register gorm tracing: %w", err)
		}
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info("database migrated", zap.String("driver", cfg.Database.Driver))
	}

	log.Info("connected to database", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

// Migrate creates or updates the venue, artist and show tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&venues.Venue{},
		&artists.Artist{},
		&shows.Show{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.URL)
	}
	return postgres.Open(cfg.URL)
}
