package database

import (
	"fmt"

	"github.com/pss-admin/logging"
	"github.com/pss-admin/models"
	"gorm.io/gorm"
)

// copyBatchSize bounds the rows held in memory while copying between databases
const copyBatchSize = 500

// Models lists the tables owned by the detection pipeline schema
func Models() []interface{} {
	return []interface{}{
		&models.OriginalImage{},
		&models.MovingObject{},
	}
}

// Migrate creates or updates the frame and crop tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// DBConnection represents a named database connection
type DBConnection struct {
	DB   *gorm.DB
	Name string
	log  *logging.Logger
}

// NewDBConnection opens a named connection for maintenance tooling
func NewDBConnection(name string, cfg Config, log *logging.Logger) (*DBConnection, error) {
	db, err := Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	log.Info("✅ Connected to database", "name", name, "driver", cfg.Driver)

	return &DBConnection{
		DB:   db,
		Name: name,
		log:  log,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	c.log.Info("Migrating database schema", "name", c.Name)
	if err := Migrate(c.DB); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	c.log.Info("✅ Database schema migrated", "name", c.Name)
	return nil
}

// Close closes the connection
func (c *DBConnection) Close() error {
	return Close(c.DB)
}

// CopyResult counts the rows copied by MigrateDataBetweenDatabases
type CopyResult struct {
	OriginalImages int64
	MovingObjects  int64
}

// MigrateDataBetweenDatabases copies frames and crops from source to target.
// Frames go first so every crop's foreign key resolves; primary keys are preserved.
func MigrateDataBetweenDatabases(source, target *DBConnection) (CopyResult, error) {
	var result CopyResult
	log := source.log

	log.Info("Starting data migration", "source", source.Name, "target", target.Name)

	// Step 1: Copy frames
	var frames []models.OriginalImage
	err := source.DB.FindInBatches(&frames, copyBatchSize, func(tx *gorm.DB, batch int) error {
		if err := target.DB.Omit("MovingObjects").Create(&frames).Error; err != nil {
			return fmt.Errorf("failed to copy original images batch %d: %w", batch, err)
		}
		result.OriginalImages += tx.RowsAffected
		return nil
	}).Error
	if err != nil {
		return result, err
	}
	log.Info("Copied original images", "count", result.OriginalImages)

	// Step 2: Copy crops
	var objects []models.MovingObject
	err = source.DB.FindInBatches(&objects, copyBatchSize, func(tx *gorm.DB, batch int) error {
		if err := target.DB.Omit("OriginalImage").Create(&objects).Error; err != nil {
			return fmt.Errorf("failed to copy moving objects batch %d: %w", batch, err)
		}
		result.MovingObjects += tx.RowsAffected
		return nil
	}).Error
	if err != nil {
		return result, err
	}
	log.Info("Copied moving objects", "count", result.MovingObjects)

	log.Info("✅ Data migration completed successfully")
	return result, nil
}
