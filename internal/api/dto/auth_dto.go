package dto

// LoginRequest payload for admin login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo mirrors the identity embedded in auth responses.
type UserInfo struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is the wire shape of a successful login.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}
