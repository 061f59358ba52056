package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pss-admin/config"
	"github.com/pss-admin/database"
	"github.com/pss-admin/logging"
	"github.com/pss-admin/server"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin API and web UI",
	Long: `Starts the HTTP backend. Settings come from the environment or a .env file
(PORT, BASE_PATH, DATABASE_DRIVER, DATABASE_URL, IMAGE_ROOT, ...).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Configuration
		config.LoadEnv()
		cfg := config.Load()

		// Step 2: Logging
		log, err := logging.New(logging.LogConfig{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: cfg.LogOutput,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer log.Sync()

		// Step 3: Database
		dbCfg := database.Config{
			Driver:          cfg.DatabaseDriver,
			URL:             cfg.DatabaseURL,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			LogLevel:        logger.Warn,
		}
		if err := database.Initialize(dbCfg, log); err != nil {
			log.Error("Failed to connect to database", "error", err)
			return err
		}
		defer database.Close(database.DB)

		if cfg.DBAutoMigrate {
			if err := database.Migrate(database.DB); err != nil {
				log.Error("Failed to migrate database", "error", err)
				return err
			}
			log.Info("✅ Database schema migrated")
		}

		log.Info("💡 Admin authentication", "enabled", cfg.AuthEnabled())
		if cfg.AuthEnabled() {
			log.Info("💡 Deletions require an admin token")
		} else {
			log.Warn("Deletions are open to anyone who can reach the API")
		}

		// Step 4: Serve until interrupted
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, log, database.DB).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
