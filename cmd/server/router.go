package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/anime-api/internal/api"
	apiMiddleware "github.com/phrazzld/anime-api/internal/api/middleware"
	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/domain"
)

// setupRouter creates the router with the standard middleware chain and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Instrument)
	if app.config.Server.RateLimitRPS > 0 {
		limiter := apiMiddleware.NewRateLimiter(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst)
		r.Use(limiter.Handler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "No handler found for "+r.Method+" "+r.URL.Path, shared.KindNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Request method "+r.Method+" not supported", "MethodNotAllowed")
	})

	authHandler := api.NewAuthHandler(app.authenticator, app.logger)
	animeHandler := api.NewAnimeHandler(app.animeService, app.config.Pagination, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authenticator, app.logger)
	requireAdmin := apiMiddleware.RequireRole(domain.RoleAdmin)

	r.Post("/auth/login", authHandler.Login)

	r.Route("/animes", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/", animeHandler.List)
		r.Get("/all", animeHandler.ListAll)
		r.Get("/search", animeHandler.Search)
		r.Get("/{id}", animeHandler.Get)
		r.Put("/{id}", animeHandler.Replace)

		r.With(requireAdmin).Post("/", animeHandler.Create)
		r.With(requireAdmin).Delete("/admin/{id}", animeHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", app.metrics.Handler())

	return r
}
