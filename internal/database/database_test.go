package database

import "testing"

// setupTestDB connects the package-global DB to a fresh in-memory SQLite
// instance for one test
func setupTestDB(t *testing.T) {
	t.Helper()
	if err := Connect(":memory:"); err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
}
