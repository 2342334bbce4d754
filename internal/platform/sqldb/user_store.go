package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/store"
)

const usersTable = "users"

// UserStore implements store.UserStore on a SQL database.
type UserStore struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *slog.Logger
}

// NewUserStore creates a UserStore. If logger is nil, slog.Default() is used.
func NewUserStore(db *DB, logger *slog.Logger) (*UserStore, error) {
	if db == nil || db.DB == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:      db,
		builder: db.Dialect.StatementBuilder(),
		logger:  logger.With(slog.String("component", "user_store")),
	}, nil
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// Returns store.ErrUsernameExists if the username is taken.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	query, args, err := s.builder.
		Insert(usersTable).
		Columns("name", "username", "password", "authorities").
		Values(user.Name, user.Username, user.HashedPassword, user.Authorities).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if IsUniqueViolation(err) {
			log.Warn("attempt to create user with existing username",
				slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to insert user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return wrapError("user", "create", err)
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername.
// Returns store.ErrUserNotFound if no user has the username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.
		Select("id", "name", "username", "password", "authorities").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var user domain.User
	if err := s.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to load user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, wrapError("user", "get_by_username", err)
	}
	return &user, nil
}
