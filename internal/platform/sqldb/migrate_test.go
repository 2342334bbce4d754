package sqldb_test

import (
	"context"
	"testing"

	"github.com/phrazzld/anime-api/internal/platform/sqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	version, err := sqldb.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(20250101000002), version)

	t.Run("status and version are read-only", func(t *testing.T) {
		require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateStatus, nil))
		require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateVersion, nil))
	})

	t.Run("up is idempotent", func(t *testing.T) {
		require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateUp, nil))
	})

	t.Run("down rolls back one migration", func(t *testing.T) {
		require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateDown, nil))
		version, err := sqldb.CurrentVersion(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, int64(20250101000001), version)

		require.NoError(t, sqldb.Migrate(ctx, db, sqldb.MigrateUp, nil))
	})

	t.Run("unknown command", func(t *testing.T) {
		err := sqldb.Migrate(ctx, db, "sideways", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown migration command")
	})
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		driver  string
		want    sqldb.Dialect
		wantErr bool
	}{
		{driver: "postgres", want: sqldb.Postgres},
		{driver: "sqlite", want: sqldb.SQLite},
		{driver: "memory", wantErr: true},
		{driver: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := sqldb.ParseDialect(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "pgx", sqldb.Postgres.DriverName())
	assert.Equal(t, "sqlite", sqldb.SQLite.DriverName())
	assert.Equal(t, "sqlite3", sqldb.SQLite.GooseDialect())
}

func TestStatementBuilderPlaceholders(t *testing.T) {
	query, _, err := sqldb.Postgres.StatementBuilder().
		Select("id").From("animes").Where("name = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM animes WHERE name = $1", query)

	query, _, err = sqldb.SQLite.StatementBuilder().
		Select("id").From("animes").Where("name = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM animes WHERE name = ?", query)
}
