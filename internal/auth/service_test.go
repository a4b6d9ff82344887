package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/authgate/internal/identity"
	"github.com/authgate/authgate/internal/password"
	"github.com/authgate/authgate/internal/token"
)

func TestRegisterIssuesDecodableToken(t *testing.T) {
	svc, repo, codec := newTestService(t)
	ctx := context.Background()

	signed, err := svc.Register(ctx, "A@B.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("decode issued token: %v", err)
	}

	user, err := repo.FindByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("find registered user: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("token subject %s does not match user id %s", claims.Subject, user.ID)
	}
	if claims.IssuedAt == 0 {
		t.Fatal("token carries no issue time")
	}
	if user.PasswordHash == "secret1" {
		t.Fatal("plaintext password was persisted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "secret1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.com", "other"); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	// Case variants collide too.
	if _, err := svc.Register(ctx, "A@B.COM", "other"); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse for case variant, got %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "secret1"); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty email, got %v", err)
	}
	if _, err := svc.Register(ctx, "a@b.com", ""); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty password, got %v", err)
	}

	// No record may exist after a rejected registration.
	if _, err := repo.FindByEmail(ctx, "a@b.com"); !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("expected no user to be created, got %v", err)
	}
}

// racingRepository reports no user on lookup but a duplicate on insert,
// mimicking a concurrent registration winning between the pre-check and the
// persist step.
type racingRepository struct {
	identity.Repository
}

func (r *racingRepository) FindByEmail(context.Context, string) (identity.User, error) {
	return identity.User{}, identity.ErrNotFound
}

func (r *racingRepository) Insert(context.Context, identity.User) error {
	return identity.ErrDuplicateEmail
}

func TestRegisterLosesInsertRace(t *testing.T) {
	svc := NewService(&racingRepository{}, password.NewHasherWithCost(bcrypt.MinCost), token.NewCodec("s"))

	if _, err := svc.Register(context.Background(), "a@b.com", "secret1"); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse when the store rejects the insert, got %v", err)
	}
}

func TestLoginMintsTokenForVerifiedIdentity(t *testing.T) {
	svc, _, codec := newTestService(t)

	user := identity.User{ID: "user-42", Email: "a@b.com"}
	signed, err := svc.Login(user)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("expected subject user-42, got %s", claims.Subject)
	}
}
