package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/authgate/internal/identity"
	"github.com/authgate/authgate/internal/password"
	"github.com/authgate/authgate/internal/token"
)

func newTestService(t *testing.T) (*Service, identity.Repository, *token.Codec) {
	t.Helper()
	repo := identity.NewMemoryRepository()
	codec := token.NewCodec("strategy-test-secret")
	svc := NewService(repo, password.NewHasherWithCost(bcrypt.MinCost), codec)
	return svc, repo, codec
}

func TestPasswordStrategyVerify(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	strategy := NewPasswordStrategy(repo, password.NewHasherWithCost(bcrypt.MinCost))

	user, err := strategy.Verify(ctx, Credentials{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("resolved wrong user: %s", user.Email)
	}

	// Case-insensitive email lookup.
	if _, err := strategy.Verify(ctx, Credentials{Email: "A@B.COM", Password: "secret1"}); err != nil {
		t.Fatalf("verify mixed case: %v", err)
	}

	if _, err := strategy.Verify(ctx, Credentials{Email: "a@b.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := strategy.Verify(ctx, Credentials{Email: "nobody@b.com", Password: "secret1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPasswordStrategyUnreadableHash(t *testing.T) {
	repo := identity.NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, identity.User{ID: "u1", Email: "a@b.com", PasswordHash: "corrupted"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	strategy := NewPasswordStrategy(repo, password.NewHasher())
	if _, err := strategy.Verify(ctx, Credentials{Email: "a@b.com", Password: "secret1"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal for unreadable hash, got %v", err)
	}
}

func TestTokenStrategyVerify(t *testing.T) {
	svc, repo, codec := newTestService(t)
	ctx := context.Background()

	signed, err := svc.Register(ctx, "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	strategy := NewTokenStrategy(repo, codec)

	user, err := strategy.Verify(ctx, Credentials{Token: signed})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Fatalf("resolved wrong user: %s", user.Email)
	}

	if _, err := strategy.Verify(ctx, Credentials{Token: "garbage"}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	// Valid signature from a different secret.
	foreign, err := token.NewCodec("another-secret").Encode(user.ID, time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := strategy.Verify(ctx, Credentials{Token: foreign}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenStrategyUnknownSubject(t *testing.T) {
	repo := identity.NewMemoryRepository()
	codec := token.NewCodec("strategy-test-secret")
	strategy := NewTokenStrategy(repo, codec)

	signed, err := codec.Encode("no-such-user", time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := strategy.Verify(context.Background(), Credentials{Token: signed}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
