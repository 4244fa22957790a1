package domain

// Role enumerates caller roles. The service recognizes a single
// administrative account, so every authenticated caller is an admin.
type Role string

const RoleAdmin Role = "admin"

// Identity is the authenticated caller resolved from a bearer token.
// It is reconstructed on every request and never persisted; only the
// email travels inside the token.
type Identity struct {
	Email string
	Role  Role
}
