package auth

import (
	"context"
	"errors"

	"github.com/authgate/authgate/internal/identity"
	"github.com/authgate/authgate/internal/token"
)

// TokenStrategy verifies a raw bearer token and resolves its subject in the
// credential store. Issue time is carried in the token but not checked;
// tokens do not expire.
type TokenStrategy struct {
	users identity.Repository
	codec *token.Codec
}

// NewTokenStrategy builds the bearer-token verification strategy.
func NewTokenStrategy(users identity.Repository, codec *token.Codec) *TokenStrategy {
	return &TokenStrategy{users: users, codec: codec}
}

// Verify decodes the token and looks up the subject. Any decode failure,
// structural or cryptographic, yields ErrInvalidToken; a subject no longer
// in the store yields ErrNotFound.
func (s *TokenStrategy) Verify(ctx context.Context, creds Credentials) (identity.User, error) {
	claims, err := s.codec.Decode(creds.Token)
	if err != nil {
		return identity.User{}, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return identity.User{}, ErrNotFound
		}
		return identity.User{}, ErrInternal
	}

	return user, nil
}
