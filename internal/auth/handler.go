package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the signup and signin endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds the auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new email/password pair and returns a bearer token.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	signed, err := h.svc.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return HTTPError(err)
	}

	return c.Status(http.StatusOK).JSON(tokenResponse{Token: signed})
}

// Signin returns a bearer token for the identity the password strategy
// middleware already verified. It performs no credential checking itself.
func (h *Handler) Signin(c *fiber.Ctx) error {
	user, ok := UserFromCtx(c)
	if !ok {
		// Route wired without the password strategy in front of it.
		return HTTPError(ErrInternal)
	}

	signed, err := h.svc.Login(user)
	if err != nil {
		return HTTPError(err)
	}

	return c.Status(http.StatusOK).JSON(tokenResponse{Token: signed})
}
