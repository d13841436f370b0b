package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mirtechlab/mt-analytics/core/config"
)

// NewDatabase opens the source-of-truth connection based on the configured
// URI. PostgreSQL in production, SQLite for local runs; the scheme decides.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.Database.IsPostgres() {
		dialector = postgres.Open(cfg.Database.URI)
	} else {
		dialector = sqlite.Open(cfg.Database.URI)
	}

	logLevel := logger.Warn
	if cfg.App.Debug {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB instance: %w", err)
	}

	if cfg.Database.IsPostgres() {
		sqlDB.SetMaxOpenConns(cfg.Database.PoolSize + cfg.Database.MaxOverflow)
		sqlDB.SetMaxIdleConns(cfg.Database.PoolSize)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite serializes writers anyway
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}
