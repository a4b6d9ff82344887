package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Typed rejections returned by strategies and flows. The routing layer maps
// these to HTTP statuses; nothing else crosses the core boundary.
var (
	// ErrMissingField rejects a registration without an email or password.
	ErrMissingField = errors.New("you must provide an email and password")
	// ErrEmailInUse rejects a registration for an already-taken address.
	ErrEmailInUse = errors.New("email is in use")
	// ErrNotFound rejects a lookup for an unknown user.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials rejects a password that does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken rejects a bearer token that fails decoding.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInternal covers store or hash-engine faults the caller cannot act on.
	ErrInternal = errors.New("internal error")
)

// StatusFor maps a typed rejection to its HTTP status: 422 for validation
// failures, 401 for credential and token rejections, 500 otherwise.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrEmailInUse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// HTTPError renders a typed rejection for the routing layer. All 401-class
// rejections share one message so a caller cannot tell an unknown email from
// a wrong password, and internal faults never leak detail.
func HTTPError(err error) *fiber.Error {
	status := StatusFor(err)
	switch status {
	case http.StatusUnauthorized:
		return fiber.NewError(status, "unauthorized")
	case http.StatusInternalServerError:
		return fiber.NewError(status, "internal server error")
	default:
		return fiber.NewError(status, err.Error())
	}
}
