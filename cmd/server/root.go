package main

import (
	"fmt"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// newRootCmd builds the command tree. Each call returns a fresh tree so
// tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "anime-api",
		Short: "REST API for an anime catalogue",
		Long: `anime-api serves a small anime catalogue over HTTP with role-based
access control, and ships the maintenance commands that go with it.

Configuration comes from ANIME_* environment variables and an optional
YAML file (./config.yaml, or the file named by --config).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default is ./config.yaml when present)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newUsersCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads configuration honouring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
