package main

import (
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server on server.port. The server stops gracefully on
SIGINT or SIGTERM, waiting up to server.shutdown_timeout for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log, err := logger.Setup(cfg.Server)
			if err != nil {
				return err
			}
			log.Info("server configuration loaded",
				"port", cfg.Server.Port,
				"log_level", cfg.Server.LogLevel,
				"driver", cfg.Database.Driver)

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}
