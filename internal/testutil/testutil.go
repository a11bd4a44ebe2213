// Package testutil provides shared test helpers for setting up roots and databases.
package testutil

import (
	"os"
	"testing"

	"github.com/tmather/daybook/internal/index"
	"github.com/tmather/daybook/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "daybook-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestRoot creates a temporary daybook root directory with a storage.Provider.
func TestRoot(t *testing.T) (string, storage.Provider) {
	t.Helper()
	rootDir := t.TempDir()
	store, err := storage.NewFS(rootDir)
	if err != nil {
		t.Fatal(err)
	}
	return rootDir, store
}
