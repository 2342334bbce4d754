package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/logger"
)

// RequireRole only lets requests through whose principal was granted role.
// It must run after AuthMiddleware.Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := shared.GetPrincipal(r.Context())
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="`+Realm+`"`)
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
					"Full authentication is required to access this resource",
					shared.KindUnauthorized, domain.ErrUnauthorized)
				return
			}

			if !principal.HasRole(role) {
				logger.FromContext(r.Context()).Info("role check failed",
					slog.String("username", principal.Username),
					slog.String("required_role", role))
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden,
					"Access is denied", shared.KindForbidden, domain.ErrForbidden,
					shared.WithElevatedLogLevel())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
