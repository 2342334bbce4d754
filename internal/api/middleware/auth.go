package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/service/auth"
)

// Realm is advertised in the WWW-Authenticate challenge.
const Realm = "animes"

// Authenticator resolves request credentials to a principal.
type Authenticator interface {
	AuthenticateBasic(ctx context.Context, username, password string) (domain.Principal, error)
	AuthenticateBearer(ctx context.Context, token string) (domain.Principal, error)
}

// AuthMiddleware authenticates requests with HTTP Basic credentials or a
// Bearer access token.
type AuthMiddleware struct {
	authenticator Authenticator
	logger        *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator Authenticator, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate resolves the Authorization header and stores the principal in
// the request context. Requests without valid credentials get a 401 challenge.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), m.logger)

		principal, err := m.resolve(r)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) || errors.Is(err, auth.ErrInvalidToken) ||
				errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrTokenNotYetValid) ||
				errors.Is(err, auth.ErrInvalidCredentials) {
				challenge(w, r, err)
				return
			}
			log.Error("authentication failed unexpectedly", slog.String("error", err.Error()))
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Authentication error", shared.KindInternalError, err)
			return
		}

		log.Debug("request authenticated", slog.String("username", principal.Username))
		next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), principal)))
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (domain.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Principal{}, auth.ErrMissingToken
	}

	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || credentials == "" {
		return domain.Principal{}, auth.ErrInvalidToken
	}

	switch {
	case strings.EqualFold(scheme, "Bearer"):
		return m.authenticator.AuthenticateBearer(r.Context(), strings.TrimSpace(credentials))
	case strings.EqualFold(scheme, "Basic"):
		username, password, ok := r.BasicAuth()
		if !ok {
			return domain.Principal{}, auth.ErrInvalidCredentials
		}
		return m.authenticator.AuthenticateBasic(r.Context(), username, password)
	default:
		return domain.Principal{}, auth.ErrInvalidToken
	}
}

func challenge(w http.ResponseWriter, r *http.Request, err error) {
	details := "Full authentication is required to access this resource"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		details = "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
		details = "Invalid token"
	case errors.Is(err, auth.ErrInvalidCredentials):
		details = "Invalid username or password"
	}

	w.Header().Set("WWW-Authenticate", `Basic realm="`+Realm+`"`)
	shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, details, shared.KindUnauthorized, err)
}

// GetPrincipal extracts the authenticated principal from the request context.
func GetPrincipal(r *http.Request) (domain.Principal, bool) {
	return shared.GetPrincipal(r.Context())
}
