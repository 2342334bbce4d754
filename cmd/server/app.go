package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/anime-api/internal/api/middleware"
	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/service"
	"github.com/phrazzld/anime-api/internal/service/auth"
)

// application holds the shared dependencies of the HTTP server and owns
// their cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	storage *storage

	animeService  service.AnimeService
	jwtService    auth.JWTService
	authenticator *auth.Authenticator
	metrics       *apiMiddleware.Metrics
}

// newApplication wires stores, services and metrics from cfg.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	st, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		storage: st,
		metrics: apiMiddleware.NewMetrics(),
	}

	if err := app.wireServices(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("application initialized",
		"driver", cfg.Database.Driver,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	return app, nil
}

func (app *application) wireServices(ctx context.Context) error {
	var err error

	app.animeService, err = service.NewAnimeService(app.storage.animes, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create anime service: %w", err)
	}

	app.jwtService, err = auth.NewJWTService(app.config.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	app.authenticator, err = auth.NewAuthenticator(
		app.storage.users,
		auth.NewBcryptVerifier(),
		app.jwtService,
		app.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %w", err)
	}

	if err := ensureAdmin(ctx, app.storage.users, app.config.Auth, app.logger); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the database connection pool.
func (app *application) cleanup() {
	app.storage.close(app.logger)
	app.logger.Info("application shutdown completed")
}
