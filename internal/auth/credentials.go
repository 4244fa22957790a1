package auth

import (
	"crypto/subtle"

	"github.com/parokitomang/content-service/internal/domain"
)

// CredentialStore authenticates submitted credentials. Implementations
// return ErrInvalidCredentials on any mismatch without revealing which
// field was wrong.
type CredentialStore interface {
	Verify(email, password string) (*domain.Identity, error)
}

// StaticCredentialStore recognizes a single account whose secret is
// held as a bcrypt hash. It backs the bootstrap admin login; swapping
// in a user-table store later only means another CredentialStore.
type StaticCredentialStore struct {
	email        string
	passwordHash string
}

// NewStaticCredentialStore builds a store for one hashed credential.
func NewStaticCredentialStore(email, passwordHash string) *StaticCredentialStore {
	return &StaticCredentialStore{email: email, passwordHash: passwordHash}
}

// Verify checks both fields unconditionally so a wrong email costs the
// same bcrypt comparison as a wrong password.
func (s *StaticCredentialStore) Verify(email, password string) (*domain.Identity, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passwordErr := ComparePassword(s.passwordHash, password)

	if !emailMatch || passwordErr != nil {
		return nil, ErrInvalidCredentials
	}
	return &domain.Identity{Email: s.email, Role: domain.RoleAdmin}, nil
}
