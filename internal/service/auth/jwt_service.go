package auth

import (
	"context"
	"time"

	"github.com/phrazzld/anime-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the principal.
	// Returns the token string and its expiry.
	GenerateToken(ctx context.Context, principal domain.Principal) (string, time.Time, error)

	// ValidateToken validates the provided access token string and extracts the claims.
	// Returns the claims if the token is valid, or an error if validation fails
	// (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	// Username of the principal the token was issued for. Also the JWT subject.
	Username string `json:"sub,omitempty"`

	// Roles granted to the principal at issue time.
	Roles []string `json:"roles,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Principal returns the identity carried by the claims.
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{Username: c.Username, Roles: c.Roles}
}
