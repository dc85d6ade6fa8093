package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/LinFrancis/aucca-app/internal/db"
)

// NewTestDB opens a migrated in-memory query log database that is closed
// when the test completes. It holds a single connection.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, db.InMemory)
}

// NewTestFileDB opens a migrated database file under t.TempDir. Unlike
// NewTestDB every pooled connection sees the same data, which concurrency
// tests need.
func NewTestFileDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "aucca_test.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test database %s: %v", path, err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps database in the production unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
