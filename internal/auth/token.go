package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/parokitomang/content-service/internal/domain"
)

// TokenManager issues and resolves signed bearer tokens. It is a pure
// function of its inputs plus the injected secret, so a single instance
// is safe for arbitrary request concurrency.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager signing with the given secret.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60 * 24
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// TTL reports the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue signs an HS256 token for the subject, stamping issue and expiry
// times. Extra claims are passed through untouched; they must not
// collide with the registered sub/iat/exp claims.
func (tm *TokenManager) Issue(subject string, extra map[string]any) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(expiresAt),
	}
	for k, v := range extra {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Resolve verifies a token and recovers the caller identity. Failure is
// exactly one of ErrTokenExpired, ErrSignatureInvalid or
// ErrTokenMalformed; an absent or empty subject counts as malformed.
func (tm *TokenManager) Resolve(tokenStr string) (*domain.Identity, error) {
	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}
	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrTokenMalformed
	}

	return &domain.Identity{Email: subject, Role: domain.RoleAdmin}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
