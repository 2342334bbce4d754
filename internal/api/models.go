package api

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	// Token is an HS256 access token to send as "Authorization: Bearer <token>".
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 expiry of Token.
	ExpiresAt string `json:"expires_at"`
}
