// Package testdb provides an in-memory SQLite database for tests.
package testdb

import (
	"testing"

	"notepad-be/internal/model"
	"notepad-be/pkg/database"

	"gorm.io/gorm"
)

// New opens an in-memory SQLite database with every model migrated. The
// connection is closed when the test finishes.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewGormDBSilent(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
