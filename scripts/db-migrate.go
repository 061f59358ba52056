package main

import (
	"flag"
	"log"
	"os"

	"github.com/pss-admin/config"
	"github.com/pss-admin/database"
	"github.com/pss-admin/logging"
)

func main() {
	config.LoadEnv()

	sourceDriver := flag.String("source-driver", config.GetEnv("SOURCE_DATABASE_DRIVER", "mysql"), "source database driver (postgres, mysql, sqlite)")
	sourceURL := flag.String("source-url", os.Getenv("SOURCE_DATABASE_URL"), "source database DSN; empty skips the data copy")
	targetDriver := flag.String("target-driver", config.GetEnv("TARGET_DATABASE_DRIVER", config.GetEnv("DATABASE_DRIVER", "postgres")), "target database driver (postgres, mysql, sqlite)")
	targetURL := flag.String("target-url", config.GetEnv("TARGET_DATABASE_URL", os.Getenv("DATABASE_URL")), "target database DSN")
	flag.Parse()

	logger, err := logging.New(logging.LogConfig{
		Level:  config.GetEnv("LOG_LEVEL", "info"),
		Format: config.GetEnv("LOG_FORMAT", "text"),
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting database migration...")

	if *targetURL == "" {
		logger.Fatal("TARGET_DATABASE_URL or DATABASE_URL must be set")
	}

	// Connect to target database
	targetDB, err := database.NewDBConnection("target", database.DefaultConfig(*targetDriver, *targetURL), logger)
	if err != nil {
		logger.Fatal("Failed to connect to target database", "error", err)
	}
	defer targetDB.Close()

	// Ensure target database schema is migrated
	if err := targetDB.Migrate(); err != nil {
		logger.Fatal("Failed to migrate target database schema", "error", err)
	}

	if *sourceURL == "" {
		logger.Info("No source database given, schema migration only")
		return
	}

	// Connect to source database
	sourceDB, err := database.NewDBConnection("source", database.DefaultConfig(*sourceDriver, *sourceURL), logger)
	if err != nil {
		logger.Fatal("Failed to connect to source database", "error", err)
	}
	defer sourceDB.Close()

	// Copy data from source to target
	result, err := database.MigrateDataBetweenDatabases(sourceDB, targetDB)
	if err != nil {
		logger.Fatal("Data migration failed", "error", err)
	}

	logger.Info("Database migration completed successfully!",
		"original_images", result.OriginalImages,
		"moving_objects", result.MovingObjects,
	)
}
