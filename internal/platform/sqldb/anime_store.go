package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/store"
)

const animesTable = "animes"

// sortableAnimeColumns maps accepted sort properties to columns.
var sortableAnimeColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

// AnimeStore implements store.AnimeStore on a SQL database.
type AnimeStore struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *slog.Logger
}

// NewAnimeStore creates an AnimeStore. If logger is nil, slog.Default() is used.
func NewAnimeStore(db *DB, logger *slog.Logger) (*AnimeStore, error) {
	if db == nil || db.DB == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnimeStore{
		db:      db,
		builder: db.Dialect.StatementBuilder(),
		logger:  logger.With(slog.String("component", "anime_store")),
	}, nil
}

var _ store.AnimeStore = (*AnimeStore)(nil)

// FindAllPage implements store.AnimeStore.
func (s *AnimeStore) FindAllPage(ctx context.Context, pageable domain.Pageable) ([]domain.Anime, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	countQuery, countArgs, err := s.builder.Select("COUNT(*)").From(animesTable).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := s.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		log.Error("failed to count animes", slog.String("error", err.Error()))
		return nil, 0, wrapError("anime", "find_all_page", err)
	}

	orderBy, err := animeOrderBy(pageable.Sort)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := s.builder.
		Select("id", "name").
		From(animesTable).
		OrderBy(orderBy...).
		Limit(uint64(pageable.Size)).
		Offset(uint64(pageable.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build page query: %w", err)
	}

	animes := []domain.Anime{}
	if err := s.db.SelectContext(ctx, &animes, query, args...); err != nil {
		log.Error("failed to list animes",
			slog.String("error", err.Error()),
			slog.Int("page", pageable.Page),
			slog.Int("size", pageable.Size))
		return nil, 0, wrapError("anime", "find_all_page", err)
	}

	log.Debug("listed anime page",
		slog.Int("page", pageable.Page),
		slog.Int("size", pageable.Size),
		slog.Int("returned", len(animes)),
		slog.Int64("total", total))
	return animes, total, nil
}

// animeOrderBy turns the requested sort into ORDER BY terms. id is appended
// as a tiebreaker so pages stay stable when names repeat.
func animeOrderBy(orders []domain.Order) ([]string, error) {
	terms := make([]string, 0, len(orders)+1)
	sortedByID := false
	for _, o := range orders {
		column, ok := sortableAnimeColumns[o.Property]
		if !ok {
			return nil, domain.NewValidationError("sort",
				fmt.Sprintf("unknown sort property %q", o.Property), domain.ErrInvalidSort)
		}
		direction := domain.Asc
		if o.Direction == domain.Desc {
			direction = domain.Desc
		}
		terms = append(terms, column+" "+string(direction))
		if column == "id" {
			sortedByID = true
		}
	}
	if !sortedByID {
		terms = append(terms, "id ASC")
	}
	return terms, nil
}

// FindAll implements store.AnimeStore.
func (s *AnimeStore) FindAll(ctx context.Context) ([]domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Select("id", "name").From(animesTable).OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	animes := []domain.Anime{}
	if err := s.db.SelectContext(ctx, &animes, query, args...); err != nil {
		log.Error("failed to list animes", slog.String("error", err.Error()))
		return nil, wrapError("anime", "find_all", err)
	}
	return animes, nil
}

// FindByID implements store.AnimeStore.
func (s *AnimeStore) FindByID(ctx context.Context, id int64) (*domain.Anime, error) {
	return s.findOne(ctx, s.db.DB, sq.Eq{"id": id}, slog.Int64("anime_id", id))
}

// FindByName implements store.AnimeStore. When several animes share the name
// the one with the lowest id is returned.
func (s *AnimeStore) FindByName(ctx context.Context, name string) (*domain.Anime, error) {
	return s.findOne(ctx, s.db.DB, sq.Eq{"name": name}, slog.String("anime_name", name))
}

func (s *AnimeStore) findOne(ctx context.Context, q store.DBTX, where sq.Eq, attr slog.Attr) (*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.
		Select("id", "name").
		From(animesTable).
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var anime domain.Anime
	if err := q.GetContext(ctx, &anime, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("anime not found", attr)
			return nil, store.ErrAnimeNotFound
		}
		log.Error("failed to load anime", slog.String("error", err.Error()), attr)
		return nil, wrapError("anime", "find", err)
	}
	return &anime, nil
}

// Save implements store.AnimeStore. A zero ID inserts a new row; any other ID
// updates the existing row or fails with store.ErrAnimeNotFound.
func (s *AnimeStore) Save(ctx context.Context, anime *domain.Anime) (*domain.Anime, error) {
	if anime == nil {
		return nil, fmt.Errorf("%w: anime is nil", store.ErrInvalidEntity)
	}
	if err := anime.Validate(); err != nil {
		return nil, err
	}
	if anime.ID == 0 {
		return s.insert(ctx, anime)
	}
	return s.update(ctx, anime)
}

func (s *AnimeStore) insert(ctx context.Context, anime *domain.Anime) (*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.
		Insert(animesTable).
		Columns("name").
		Values(anime.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	saved := domain.Anime{Name: anime.Name}
	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&saved.ID); err != nil {
		log.Error("failed to insert anime", slog.String("error", err.Error()))
		return nil, wrapError("anime", "save", err)
	}

	log.Info("anime created", slog.Int64("anime_id", saved.ID))
	return &saved, nil
}

func (s *AnimeStore) update(ctx context.Context, anime *domain.Anime) (*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.
		Update(animesTable).
		Set("name", anime.Name).
		Where(sq.Eq{"id": anime.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update: %w", err)
	}

	var saved *domain.Anime
	err = store.RunInTransaction(ctx, s.db.DB, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return wrapError("anime", "save", err)
		}
		if err := CheckRowsAffected(result, store.ErrAnimeNotFound); err != nil {
			return err
		}
		saved, err = s.findOne(ctx, tx, sq.Eq{"id": anime.ID}, slog.Int64("anime_id", anime.ID))
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("anime to update not found", slog.Int64("anime_id", anime.ID))
		} else {
			log.Error("failed to update anime",
				slog.String("error", err.Error()),
				slog.Int64("anime_id", anime.ID))
		}
		return nil, err
	}

	log.Info("anime updated", slog.Int64("anime_id", saved.ID))
	return saved, nil
}

// DeleteByID implements store.AnimeStore. Deleting a missing id is not an error.
func (s *AnimeStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := s.builder.Delete(animesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete anime",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", id))
		return wrapError("anime", "delete_by_id", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		log.Debug("delete matched no anime", slog.Int64("anime_id", id))
		return nil
	}
	log.Info("anime deleted", slog.Int64("anime_id", id))
	return nil
}
