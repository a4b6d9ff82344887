package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/authgate/authgate/internal/auth"
)

// RequireToken guards endpoints with the bearer-token strategy. The raw
// Authorization header value is handed to the strategy as-is; clients send
// the token itself, with no prefix scheme.
func RequireToken(tokens auth.Strategy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		if raw == "" {
			return fiber.NewError(http.StatusUnauthorized, "unauthorized")
		}

		user, err := tokens.Verify(c.UserContext(), auth.Credentials{Token: raw})
		if err != nil {
			return auth.HTTPError(err)
		}

		auth.StoreUser(c, user)
		return c.Next()
	}
}

// RequirePassword guards endpoints with the email+password strategy, reading
// credentials from the JSON request body. Downstream handlers receive the
// verified identity and never see the password.
func RequirePassword(passwords auth.Strategy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		user, err := passwords.Verify(c.UserContext(), auth.Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			return auth.HTTPError(err)
		}

		auth.StoreUser(c, user)
		return c.Next()
	}
}
