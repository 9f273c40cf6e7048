// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides a temp-dir SQLite database per test.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "mealplan.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}
