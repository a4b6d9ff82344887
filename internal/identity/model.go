package identity

import (
	"strings"
	"time"
)

// User represents one registered principal. PasswordHash holds the bcrypt
// output of the password supplied at registration; the plaintext is never
// stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email address. Every store lookup
// and insert goes through this, so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
