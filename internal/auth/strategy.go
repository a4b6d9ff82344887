package auth

import (
	"context"

	"github.com/authgate/authgate/internal/identity"
)

// Credentials carries the raw material a strategy verifies. A password
// strategy reads Email and Password; a token strategy reads Token. Unused
// fields stay empty.
type Credentials struct {
	Email    string
	Password string
	Token    string
}

// Strategy resolves request credentials to a stored user or a typed
// rejection. Strategies are independent and pluggable; the routing layer
// picks which one guards an endpoint.
type Strategy interface {
	Verify(ctx context.Context, creds Credentials) (identity.User, error)
}
