package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/platform/logger"
)

// LoginService exchanges credentials for an access token.
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	loginService LoginService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(loginService LoginService, logger *slog.Logger) *AuthHandler {
	if loginService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("loginService cannot be nil for AuthHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		loginService: loginService,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	token, expiresAt, err := h.loginService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", `Basic realm="animes"`)
		}
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("login succeeded", slog.String("username", req.Username))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
