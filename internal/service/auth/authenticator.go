package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/store"
)

// dummyHash is compared against when the username is unknown so both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZkYDgTdMZ0fNGmbEwwIvfS"

// Authenticator resolves request credentials to a domain.Principal.
type Authenticator struct {
	users    store.UserStore
	verifier PasswordVerifier
	tokens   JWTService
	logger   *slog.Logger
}

// NewAuthenticator wires the user store, password verifier and token service.
func NewAuthenticator(
	users store.UserStore,
	verifier PasswordVerifier,
	tokens JWTService,
	logger *slog.Logger,
) (*Authenticator, error) {
	if users == nil {
		return nil, fmt.Errorf("users cannot be nil")
	}
	if verifier == nil {
		return nil, fmt.Errorf("verifier cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "authenticator")),
	}, nil
}

// AuthenticateBasic checks a username and password.
// Returns ErrInvalidCredentials for an unknown user or a wrong password.
func (a *Authenticator) AuthenticateBasic(
	ctx context.Context,
	username, password string,
) (domain.Principal, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			_ = a.verifier.Compare(dummyHash, password)
			log.Debug("authentication failed: unknown user", slog.String("username", username))
			return domain.Principal{}, ErrInvalidCredentials
		}
		log.Error("failed to load user for authentication",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return domain.Principal{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := a.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("authentication failed: password mismatch", slog.String("username", username))
		return domain.Principal{}, ErrInvalidCredentials
	}

	return user.Principal(), nil
}

// AuthenticateBearer validates an access token.
func (a *Authenticator) AuthenticateBearer(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := a.tokens.ValidateToken(ctx, token)
	if err != nil {
		return domain.Principal{}, err
	}
	return claims.Principal(), nil
}

// Login exchanges a username and password for an access token.
func (a *Authenticator) Login(
	ctx context.Context,
	username, password string,
) (string, time.Time, error) {
	principal, err := a.AuthenticateBasic(ctx, username, password)
	if err != nil {
		return "", time.Time{}, err
	}

	token, expiresAt, err := a.tokens.GenerateToken(ctx, principal)
	if err != nil {
		return "", time.Time{}, err
	}

	logger.FromContextOrDefault(ctx, a.logger).Info("issued access token",
		slog.String("username", principal.Username))
	return token, expiresAt, nil
}
