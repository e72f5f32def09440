package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/pincecheck/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied
// (including the seeded admin operator). It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
