package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/authgate/authgate/internal/auth"
	"github.com/authgate/authgate/internal/middleware"
)

// RegisterAuthRoutes wires the signup and signin endpoints. The password
// strategy runs as middleware on signin; Signin itself only mints a token.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, passwords auth.Strategy) {
	group := r.Group("/auth")
	group.Post("/signup", h.Signup)
	group.Post("/signin", middleware.RequirePassword(passwords), h.Signin)
}
