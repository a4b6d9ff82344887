package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/authgate/authgate/internal/identity"
	"github.com/authgate/authgate/internal/password"
	"github.com/authgate/authgate/internal/token"
)

// Service orchestrates the registration and login flows: it owns the
// credential store, the password hasher, and the token codec.
type Service struct {
	users  identity.Repository
	hasher *password.Hasher
	codec  *token.Codec
}

// NewService wires the authentication flows.
func NewService(users identity.Repository, hasher *password.Hasher, codec *token.Codec) *Service {
	return &Service{users: users, hasher: hasher, codec: codec}
}

// Register creates a credential record for a new email/password pair and
// returns a freshly minted token. The FindByEmail pre-check is an early
// exit; the store's uniqueness constraint is the real guard against a
// concurrent registration racing past it.
func (s *Service) Register(ctx context.Context, email, plaintext string) (string, error) {
	email = identity.NormalizeEmail(email)
	if email == "" || plaintext == "" {
		return "", ErrMissingField
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailInUse
	}
	if !errors.Is(err, identity.ErrNotFound) {
		return "", ErrInternal
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return "", ErrInternal
	}

	user := identity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, identity.ErrDuplicateEmail) {
			return "", ErrEmailInUse
		}
		return "", ErrInternal
	}

	return s.Login(user)
}

// Login mints a token for an already-verified identity. Credential checking
// is the password strategy's job, composed upstream by the routing layer.
func (s *Service) Login(user identity.User) (string, error) {
	signed, err := s.codec.Encode(user.ID, time.Now())
	if err != nil {
		return "", ErrInternal
	}
	return signed, nil
}
