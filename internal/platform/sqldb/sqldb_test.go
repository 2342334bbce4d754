package sqldb_test

import (
	"context"
	"testing"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/platform/sqldb"
	"github.com/stretchr/testify/require"
)

// openSQLite returns a migrated in-memory SQLite database.
func openSQLite(t *testing.T) *sqldb.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqldb.Open(ctx, config.DatabaseConfig{
		Driver: "sqlite",
		URL:    ":memory:",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateUp, nil))
	return db
}
