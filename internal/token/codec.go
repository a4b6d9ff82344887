package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed reports a token that is not a structurally valid JWT.
	ErrMalformed = errors.New("malformed token")
	// ErrSignature reports a token whose signature does not match the secret.
	ErrSignature = errors.New("token signature mismatch")
)

// Claims is the signed payload carried by every issued token: the user id
// and the issue time in milliseconds since epoch. Tokens carry no expiry;
// possession of a valid signature is the whole credential.
type Claims struct {
	Subject  string `json:"sub"`
	IssuedAt int64  `json:"iat"`
}

func (Claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (Claims) GetIssuer() (string, error)                   { return "", nil }
func (Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
func (c Claims) GetSubject() (string, error)                { return c.Subject, nil }

// Codec signs and verifies compact HS256 tokens with a single shared secret
// injected at construction.
type Codec struct {
	secret []byte
}

// NewCodec builds a Codec around the shared signing secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode mints a signed token for the given subject at the given issue time.
func (c *Codec) Encode(subject string, issuedAt time.Time) (string, error) {
	claims := Claims{Subject: subject, IssuedAt: issuedAt.UnixMilli()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature of a raw token and returns its claims.
// Failures are distinguished: ErrMalformed for structural problems,
// ErrSignature when the secret does not match, and a wrapped error for
// anything else. Claims are never returned on failure.
func (c *Codec) Decode(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrSignature
		default:
			return Claims{}, fmt.Errorf("parse token: %w", err)
		}
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return Claims{}, ErrMalformed
	}
	return *claims, nil
}
