package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/authgate/authgate/internal/identity"
)

const userLocalsKey = "auth_user"

// StoreUser stashes a verified identity on the request for downstream
// handlers. Called by the strategy middlewares after Verify succeeds.
func StoreUser(c *fiber.Ctx, user identity.User) {
	c.Locals(userLocalsKey, user)
}

// UserFromCtx returns the identity a strategy middleware verified for this
// request, if any.
func UserFromCtx(c *fiber.Ctx) (identity.User, bool) {
	user, ok := c.Locals(userLocalsKey).(identity.User)
	return user, ok
}
