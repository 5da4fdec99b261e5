package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"plate-check-service/internal/config"
)

// gormConfig discards gorm's own logging; query errors are returned to the
// caller and logged once by the HTTP handler.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.Discard,
	}
}

// New opens the optional allow-list database. It returns (nil, nil) when
// DB_DSN is not configured.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("DB_DSN not set, allow-list is read from ALLOWED_PLATES only")
		return nil, nil
	}

	database, err := gorm.Open(postgres.Open(cfg.DB.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := runMigrations(database); err != nil {
		return nil, err
	}

	log.Info().Msg("allow-list database ready")
	return database, nil
}
