package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/platform/memory"
	"github.com/phrazzld/anime-api/internal/platform/sqldb"
	"github.com/phrazzld/anime-api/internal/store"
)

// errMemoryDriver is returned by commands that need a SQL database.
var errMemoryDriver = errors.New("the memory driver has no database; set database.driver to postgres or sqlite")

// storage bundles the stores selected by database.driver.
type storage struct {
	animes store.AnimeStore
	users  store.UserStore
	// db is nil for the memory driver.
	db *sqldb.DB
}

// openStorage connects the configured backend and, when migrate_on_start is
// set, brings its schema up to date.
func openStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	if cfg.Driver == "memory" {
		logger.Warn("using in-memory storage, data is lost on shutdown")
		return &storage{
			animes: memory.NewAnimeStore(),
			users:  memory.NewUserStore(),
		}, nil
	}

	db, err := openSQLDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := sqldb.Migrate(ctx, db, sqldb.MigrateUp, logger); err != nil {
			closeDatabase(db, logger)
			return nil, fmt.Errorf("failed to migrate database on start: %w", err)
		}
	}

	animes, err := sqldb.NewAnimeStore(db, logger)
	if err != nil {
		closeDatabase(db, logger)
		return nil, err
	}
	users, err := sqldb.NewUserStore(db, logger)
	if err != nil {
		closeDatabase(db, logger)
		return nil, err
	}

	return &storage{animes: animes, users: users, db: db}, nil
}

// openSQLDatabase opens a SQL connection pool, rejecting the memory driver.
func openSQLDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqldb.DB, error) {
	if cfg.Driver == "memory" {
		return nil, errMemoryDriver
	}
	db, err := sqldb.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func (s *storage) close(logger *slog.Logger) {
	if s == nil || s.db == nil {
		return
	}
	closeDatabase(s.db, logger)
}

func closeDatabase(db *sqldb.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("error closing database connection", "error", err)
	}
}
