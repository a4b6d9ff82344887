package auth

import (
	"context"
	"errors"

	"github.com/authgate/authgate/internal/identity"
	"github.com/authgate/authgate/internal/password"
)

// PasswordStrategy verifies an email and plaintext password against the
// credential store.
type PasswordStrategy struct {
	users  identity.Repository
	hasher *password.Hasher
}

// NewPasswordStrategy builds the email+password verification strategy.
func NewPasswordStrategy(users identity.Repository, hasher *password.Hasher) *PasswordStrategy {
	return &PasswordStrategy{users: users, hasher: hasher}
}

// Verify looks up the user by normalized email and checks the password
// against the stored hash. An unknown email yields ErrNotFound and a wrong
// password ErrInvalidCredentials; both render identically at the HTTP
// boundary so responses do not reveal whether an account exists.
func (s *PasswordStrategy) Verify(ctx context.Context, creds Credentials) (identity.User, error) {
	user, err := s.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return identity.User{}, ErrNotFound
		}
		return identity.User{}, ErrInternal
	}

	ok, err := s.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		// The stored hash could not be evaluated; this is a fault, not a
		// mismatch.
		return identity.User{}, ErrInternal
	}
	if !ok {
		return identity.User{}, ErrInvalidCredentials
	}

	return user, nil
}
