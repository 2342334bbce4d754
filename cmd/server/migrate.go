package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/anime-api/internal/platform/sqldb"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|version|reset]",
		Short: "Run database migrations",
		Long: `Apply or inspect the embedded schema migrations for the configured
database. "up" is the default command.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{sqldb.MigrateUp, sqldb.MigrateDown, sqldb.MigrateStatus, sqldb.MigrateVersion, sqldb.MigrateReset},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := sqldb.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			db, err := openSQLDatabase(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer closeDatabase(db, log)

			if err := sqldb.Migrate(cmd.Context(), db, command, log); err != nil {
				return err
			}

			if command != sqldb.MigrateStatus {
				current, err := sqldb.CurrentVersion(cmd.Context(), db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: schema at version %d\n", command, current)
			}
			return nil
		},
	}
}
