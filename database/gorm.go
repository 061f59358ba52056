package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pss-admin/logging"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Config contains connection and pool settings
type Config struct {
	Driver          string // postgres, mysql, sqlite
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// DefaultConfig mirrors the pool the detection pipeline's database was sized for
func DefaultConfig(driver, url string) Config {
	return Config{
		Driver:          driver,
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		LogLevel:        logger.Warn,
	}
}

// dialector picks the gorm driver for the configured engine
func dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "postgresql", "":
		return postgres.Open(cfg.URL), nil
	case "mysql":
		return mysql.Open(cfg.URL), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open connects to the metadata database and configures the pool
func Open(cfg Config, log *logging.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	// Route gorm's logger through zap
	gormLogger := logger.New(
		zap.NewStdLog(log.Logger),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	// Requests beyond MaxOpenConns queue inside database/sql
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// Initialize sets up the package-level connection used by the server
func Initialize(cfg Config, log *logging.Logger) error {
	db, err := Open(cfg, log)
	if err != nil {
		return err
	}
	DB = db

	log.Info("✅ Connected to database",
		"driver", cfg.Driver,
		"max_open_conns", cfg.MaxOpenConns,
	)
	return nil
}

// Ping checks that the database still answers
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("database not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
