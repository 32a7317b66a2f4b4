package testutil

import (
	"os"
	"testing"

	"rcwebui/internal/settings"
)

// SetupTestStore creates an in-memory settings store for testing
func SetupTestStore(t *testing.T) *settings.Store {
	t.Helper()

	store, err := settings.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test settings store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// SetupTestStoreWithFile creates a temporary file-based settings store for testing
func SetupTestStoreWithFile(t *testing.T) (*settings.Store, string) {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "rcwebui-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp database file: %v", err)
	}
	dbPath := tmpFile.Name()
	tmpFile.Close()

	store, err := settings.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test settings store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store, dbPath
}
