package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parokitomang/content-service/internal/api/dto"
	"github.com/parokitomang/content-service/internal/auth"
	"github.com/parokitomang/content-service/internal/service"
	apperrors "github.com/parokitomang/content-service/pkg/util"
)

// AuthHandler exposes login and identity endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	identity, token, _, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return auth.AsDomainError(err)
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserInfo{
			Email: identity.Email,
			Role:  string(identity.Role),
		},
	})
}

// Me handles GET /api/auth/me. The bearer gate runs first, so a
// missing identity here means the route was wired without it.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.AsDomainError(auth.ErrMissingCredential)
	}

	return c.JSON(dto.UserInfo{
		Email: identity.Email,
		Role:  string(identity.Role),
	})
}
