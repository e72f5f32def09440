package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// HashSHA256 returns the unsalted hex SHA-256 digest used by the seeded
// admin account.
func HashSHA256(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// HashPassword hashes password with the given scheme.
func HashPassword(scheme domain.PasswordScheme, password string) (string, error) {
	switch scheme {
	case domain.SchemeSHA256:
		return HashSHA256(password), nil
	case domain.SchemeBcrypt:
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hashing password: %w", err)
		}
		return string(h), nil
	default:
		return "", fmt.Errorf("unsupported password scheme %q", scheme)
	}
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(scheme domain.PasswordScheme, hash, password string) bool {
	switch scheme {
	case domain.SchemeSHA256:
		return subtle.ConstantTimeCompare([]byte(HashSHA256(password)), []byte(hash)) == 1
	case domain.SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	default:
		return false
	}
}
