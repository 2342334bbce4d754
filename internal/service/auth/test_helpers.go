package auth

import (
	"context"
	"testing"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// DefaultJWTConfig returns a standard configuration for JWT authentication suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BCryptCost:           4,
	}
}

// RequireTestJWTService creates a test JWT service and uses require to handle errors.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	service, err := NewJWTService(DefaultJWTConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return service
}

// GenerateAuthHeaderForTestingT returns a "Bearer <token>" header value for
// the principal, signed with DefaultJWTConfig.
func GenerateAuthHeaderForTestingT(t *testing.T, principal domain.Principal) string {
	t.Helper()
	token, _, err := RequireTestJWTService(t).GenerateToken(context.Background(), principal)
	require.NoError(t, err, "Failed to generate auth header")
	return "Bearer " + token
}
