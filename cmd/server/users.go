package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/sqldb"
	"github.com/phrazzld/anime-api/internal/service/auth"
	"github.com/phrazzld/anime-api/internal/store"
	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage API user accounts",
	}
	usersCmd.AddCommand(newUsersCreateCmd(), newUsersHashPasswordCmd())
	return usersCmd
}

func newUsersCreateCmd() *cobra.Command {
	var (
		username string
		name     string
		password string
		roles    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Example: `  anime-api users create --username william --name "William Suane" \
    --password academy --roles ROLE_USER,ROLE_ADMIN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			users, err := sqldb.NewUserStore(db, log)
			if err != nil {
				return err
			}

			user, err := createUser(cmd.Context(), users, cfg.Auth, username, name, password, roles)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d) with roles %s\n",
				user.Username, user.ID, user.Authorities)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the username)")
	cmd.Flags().StringVar(&password, "password", "", "plain-text password (required)")
	cmd.Flags().StringSliceVar(&roles, "roles", []string{domain.RoleUser}, "comma-separated roles")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password PASSWORD",
		Short: "Print the bcrypt hash of a password",
		Long:  "Print the bcrypt hash of a password, for seeding the users table by hand.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0], cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 10, "bcrypt cost")
	return cmd
}

// createUser hashes password and stores a new account.
func createUser(
	ctx context.Context,
	users store.UserStore,
	cfg config.AuthConfig,
	username, name, password string,
	roles []string,
) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if name == "" {
		name = username
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "password is required", nil)
	}

	hash, err := auth.HashPassword(password, cfg.BCryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:           name,
		Username:       username,
		HashedPassword: hash,
		Authorities:    domain.JoinAuthorities(roles),
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return user, nil
}

// ensureAdmin creates the configured administrator unless it already exists.
func ensureAdmin(ctx context.Context, users store.UserStore, cfg config.AuthConfig, logger *slog.Logger) error {
	if cfg.AdminUsername == "" {
		return nil
	}

	_, err := users.GetByUsername(ctx, cfg.AdminUsername)
	switch {
	case err == nil:
		logger.Debug("admin user already present", "username", cfg.AdminUsername)
		return nil
	case !errors.Is(err, store.ErrUserNotFound):
		return err
	}

	_, err = createUser(ctx, users, cfg, cfg.AdminUsername, cfg.AdminUsername, cfg.AdminPassword,
		[]string{domain.RoleUser, domain.RoleAdmin})
	if err != nil && !store.IsDuplicateError(err) {
		return err
	}
	logger.Info("seeded admin user", "username", cfg.AdminUsername)
	return nil
}
