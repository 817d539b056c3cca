// Package testutil provides test helpers for setting up temp-file
// databases, creating fixtures, and making assertions.
package testutil

import (
	"path/filepath"
	"testing"

	"accrue/internal/database"

	"gorm.io/gorm"
)

// SetupTestManager creates a database manager over a temp-file SQLite
// database with the real schema migrations applied, so the CHECK
// constraints of the production schema are active in tests.
func SetupTestManager(t *testing.T) *database.Manager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accrue_test.sqlite")
	mgr, err := database.NewManager(path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := mgr.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return mgr
}

// SetupTestDB creates a migrated temp-file database and returns its GORM
// handle.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestManager(t).DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
