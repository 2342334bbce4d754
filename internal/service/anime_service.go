package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/mapper"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/store"
)

// AnimeService holds the business rules for the anime catalogue.
type AnimeService interface {
	// ListAll returns one page of animes along with total-count metadata.
	ListAll(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Anime], error)

	// ListAllNonPaginated returns every anime ordered by id.
	ListAllNonPaginated(ctx context.Context) ([]domain.Anime, error)

	// FindByID returns ErrAnimeNotFound if no anime has id.
	FindByID(ctx context.Context, id int64) (*domain.Anime, error)

	// FindByName performs a case-sensitive exact match.
	// Returns ErrAnimeNotFound if nothing matches.
	FindByName(ctx context.Context, name string) (*domain.Anime, error)

	// Save validates and persists a new anime, returning it with its assigned id.
	Save(ctx context.Context, req domain.AnimeRequest) (*domain.Anime, error)

	// Replace overwrites the name of an existing anime.
	// The request is validated before the id is looked up, so an invalid body
	// is reported even when id does not exist. Returns ErrAnimeNotFound if id
	// does not exist.
	Replace(ctx context.Context, id int64, req domain.AnimeRequest) error

	// Delete removes the anime if present. Missing ids are not an error.
	Delete(ctx context.Context, id int64) error
}

type animeServiceImpl struct {
	animeStore store.AnimeStore
	logger     *slog.Logger
}

// NewAnimeService creates an AnimeService backed by animeStore.
func NewAnimeService(animeStore store.AnimeStore, logger *slog.Logger) (AnimeService, error) {
	if animeStore == nil {
		return nil, fmt.Errorf("animeStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &animeServiceImpl{
		animeStore: animeStore,
		logger:     logger.With(slog.String("component", "anime_service")),
	}, nil
}

func (s *animeServiceImpl) ListAll(
	ctx context.Context,
	pageable domain.Pageable,
) (domain.Page[domain.Anime], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	pageable = pageable.Normalize(domain.MaxPageSize)
	content, total, err := s.animeStore.FindAllPage(ctx, pageable)
	if err != nil {
		if domain.IsValidationError(err) {
			return domain.Page[domain.Anime]{}, err
		}
		log.Error("failed to list animes",
			slog.String("error", err.Error()),
			slog.Int("page", pageable.Page),
			slog.Int("size", pageable.Size))
		return domain.Page[domain.Anime]{}, NewAnimeServiceError("list_all", "failed to load page", err)
	}

	return domain.NewPage(content, pageable, total), nil
}

func (s *animeServiceImpl) ListAllNonPaginated(ctx context.Context) ([]domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	animes, err := s.animeStore.FindAll(ctx)
	if err != nil {
		log.Error("failed to list all animes", slog.String("error", err.Error()))
		return nil, NewAnimeServiceError("list_all_non_paginated", "failed to load animes", err)
	}
	if animes == nil {
		animes = []domain.Anime{}
	}
	return animes, nil
}

func (s *animeServiceImpl) FindByID(ctx context.Context, id int64) (*domain.Anime, error) {
	anime, err := s.animeStore.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, "find_by_id", err, slog.Int64("anime_id", id))
	}
	return anime, nil
}

func (s *animeServiceImpl) FindByName(ctx context.Context, name string) (*domain.Anime, error) {
	anime, err := s.animeStore.FindByName(ctx, name)
	if err != nil {
		return nil, s.lookupError(ctx, "find_by_name", err, slog.String("anime_name", name))
	}
	return anime, nil
}

// lookupError converts a store miss into ErrAnimeNotFound and wraps anything else.
func (s *animeServiceImpl) lookupError(ctx context.Context, op string, err error, attr slog.Attr) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if store.IsNotFoundError(err) {
		log.Debug("anime not found", slog.String("operation", op), attr)
		return ErrAnimeNotFound
	}
	log.Error("failed to load anime",
		slog.String("operation", op),
		slog.String("error", err.Error()),
		attr)
	return NewAnimeServiceError(op, "failed to load anime", err)
}

func (s *animeServiceImpl) Save(ctx context.Context, req domain.AnimeRequest) (*domain.Anime, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Debug("rejected invalid anime", slog.String("error", err.Error()))
		return nil, err
	}

	saved, err := s.animeStore.Save(ctx, mapper.ToAnime(req))
	if err != nil {
		if domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to save anime", slog.String("error", err.Error()))
		return nil, NewAnimeServiceError("save", "failed to save anime", err)
	}

	log.Info("anime saved", slog.Int64("anime_id", saved.ID))
	return saved, nil
}

func (s *animeServiceImpl) Replace(ctx context.Context, id int64, req domain.AnimeRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Debug("rejected invalid anime", slog.String("error", err.Error()))
		return err
	}

	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.animeStore.Save(ctx, mapper.ApplyAnime(existing, req)); err != nil {
		// The row can vanish between the read and the write.
		if store.IsNotFoundError(err) {
			return ErrAnimeNotFound
		}
		if domain.IsValidationError(err) {
			return err
		}
		log.Error("failed to replace anime",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", id))
		return NewAnimeServiceError("replace", "failed to save anime", err)
	}

	log.Info("anime replaced", slog.Int64("anime_id", id))
	return nil
}

func (s *animeServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.animeStore.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete anime",
			slog.String("error", err.Error()),
			slog.Int64("anime_id", id))
		return NewAnimeServiceError("delete", "failed to delete anime", err)
	}

	log.Info("anime deleted", slog.Int64("anime_id", id))
	return nil
}
