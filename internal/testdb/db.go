//go:build integration

package testdb

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/platform/sqldb"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds every setup and teardown statement.
const TestTimeout = 10 * time.Second

// GetTestDatabaseURL returns DATABASE_URL, falling back to ANIME_TEST_DB_URL.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("ANIME_TEST_DB_URL")
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// OpenPostgres connects to the test database, applies all migrations and
// registers cleanup that empties the tables and closes the pool.
func OpenPostgres(t *testing.T) *sqldb.DB {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	db, err := sqldb.Open(ctx, config.DatabaseConfig{
		Driver:          "postgres",
		URL:             url,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}, log)
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateUp, log), "failed to migrate test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cleanupCancel()

		if _, err := db.ExecContext(cleanupCtx, "TRUNCATE animes, users RESTART IDENTITY"); err != nil {
			t.Errorf("failed to truncate test tables: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sqldb.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
