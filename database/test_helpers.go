package database

import (
	"path/filepath"
	"testing"

	"github.com/pss-admin/logging"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB returns a migrated sqlite database living in the test's temp dir
func OpenTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := DefaultConfig("sqlite", filepath.Join(t.TempDir(), "test.db")+"?_foreign_keys=on")
	cfg.LogLevel = logger.Silent

	db, err := Open(cfg, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = Close(db) })
	return db
}
