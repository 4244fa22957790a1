package auth

import "errors"

// Auth failure kinds. Each maps to a distinct 401 response; callers
// must never learn which half of a credential pair was wrong.
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrMissingCredential  = errors.New("missing authorization header")
	ErrTokenMalformed     = errors.New("could not validate credentials")
	ErrTokenExpired       = errors.New("token has expired")
	ErrSignatureInvalid   = errors.New("invalid token signature")
)
