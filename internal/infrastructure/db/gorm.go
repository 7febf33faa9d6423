package db

import (
	"log/slog"
	"strings"
	"time"

	"peerlend-backend/internal/domain/activity"
	"peerlend-backend/internal/domain/business"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/opportunity"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn, logLevel string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), logLevel)
}

// OpenGormWithDialector opens, tunes the pool and pings. Split out so tests
// can pass a dialector over a fake *sql.DB.
func OpenGormWithDialector(dial gorm.Dialector, logLevel string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(logLevel)),
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected")
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&business.Business{},
		&opportunity.Opportunity{},
		&loan.Loan{},
		&activity.Activity{},
	)
}

func parseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
