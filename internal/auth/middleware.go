package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/parokitomang/content-service/internal/domain"
	apperrors "github.com/parokitomang/content-service/pkg/util"
)

const identityKey = "auth_identity"

// Middleware gates protected routes behind bearer-token resolution.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the access gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle extracts the bearer token, resolves it to an Identity and
// stores it in request locals. Each resolver failure keeps its kind so
// the response carries the matching code.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return AsDomainError(ErrMissingCredential)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return AsDomainError(ErrMissingCredential)
	}

	identity, err := m.tokens.Resolve(parts[1])
	if err != nil {
		return AsDomainError(err)
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller, if any.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}

// AsDomainError converts an auth sentinel into the 401 DomainError the
// HTTP layer renders. Signature and parse failures share one message so
// a caller cannot distinguish them.
func AsDomainError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return apperrors.NewUnauthorizedCode("INVALID_CREDENTIALS", "incorrect email or password")
	case errors.Is(err, ErrMissingCredential):
		return apperrors.NewUnauthorizedCode("MISSING_CREDENTIAL", "missing authorization header")
	case errors.Is(err, ErrTokenExpired):
		return apperrors.NewUnauthorizedCode("TOKEN_EXPIRED", "token has expired")
	case errors.Is(err, ErrSignatureInvalid):
		return apperrors.NewUnauthorizedCode("TOKEN_SIGNATURE_INVALID", "could not validate credentials")
	default:
		return apperrors.NewUnauthorizedCode("TOKEN_MALFORMED", "could not validate credentials")
	}
}
