package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// AdminPasswordSHA256 is the unsalted SHA-256 hex digest of the seeded
// admin password ("password123").
const AdminPasswordSHA256 = "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f"

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS operators (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		scheme        TEXT NOT NULL DEFAULT 'bcrypt'
		              CHECK(scheme IN ('sha256','bcrypt')),
		created_at    TEXT NOT NULL
	)`,

	// Seed the plant's shared admin account.
	`INSERT OR IGNORE INTO operators (id, username, password_hash, scheme, created_at)
	 VALUES ('admin', 'admin', '` + AdminPasswordSHA256 + `', 'sha256', '2024-01-01T00:00:00Z')`,
}
