package service

import (
	"time"

	"github.com/parokitomang/content-service/internal/auth"
	"github.com/parokitomang/content-service/internal/config"
	"github.com/parokitomang/content-service/internal/domain"
)

// AuthService coordinates the login flow: credential verification
// followed by token issuance.
type AuthService struct {
	credentials auth.CredentialStore
	tokenMgr    *auth.TokenManager
}

// NewAuthService builds the service from configuration. The credential
// store is injected so a multi-user backend can replace the static
// bootstrap account without touching token handling.
func NewAuthService(cfg config.Config, credentials auth.CredentialStore) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login verifies the credentials and mints a bearer token for the
// resulting identity. Failure is auth.ErrInvalidCredentials; no token
// is issued on any mismatch.
func (s *AuthService) Login(email, password string) (*domain.Identity, string, time.Time, error) {
	identity, err := s.credentials.Verify(email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokenMgr.Issue(identity.Email, nil)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return identity, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
