package http

import (
	"github.com/gofiber/fiber/v3"

	"gonote/internal/notes/ports/api"
	"gonote/pkg/validation"
)

const msgLoggedOut = "Logged out"

// UsersHandler обслуживает /api/users.
type UsersHandler struct {
	auth      api.AuthUseCase
	validator *validation.Validator
}

// NewUsersHandler создает обработчик пользователей.
func NewUsersHandler(auth api.AuthUseCase, validator *validation.Validator) *UsersHandler {
	return &UsersHandler{auth: auth, validator: validator}
}

// Register - POST /api/users/register.
func (h *UsersHandler) Register(c fiber.Ctx) error {
	var req RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	result, err := h.auth.Register(requestContext(c), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newAuthResponse(result))
}

// Login - POST /api/users/login.
func (h *UsersHandler) Login(c fiber.Ctx) error {
	var req LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	result, err := h.auth.Login(requestContext(c), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(newAuthResponse(result))
}

// Me - GET /api/users/me.
func (h *UsersHandler) Me(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Profile(ctx, identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Logout - POST /api/users/logout.
func (h *UsersHandler) Logout(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	if err := h.auth.Logout(ctx, identity); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: msgLoggedOut})
}
