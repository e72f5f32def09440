package domain

import "time"

// PasswordScheme names the hash function a stored credential was made with.
type PasswordScheme string

const (
	// SchemeSHA256 is an unsalted hex SHA-256 digest, kept for the seeded
	// admin account. It offers no protection against offline guessing.
	SchemeSHA256 PasswordScheme = "sha256"
	SchemeBcrypt PasswordScheme = "bcrypt"
)

// Operator is a person allowed to log in and fill inspections.
type Operator struct {
	ID           string
	Username     string
	PasswordHash string
	Scheme       PasswordScheme
	CreatedAt    time.Time
}
