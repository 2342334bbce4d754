package store

import (
	"context"

	"github.com/phrazzld/anime-api/internal/domain"
)

// AnimeStore defines the interface for anime persistence.
// Implementations guarantee atomic single-record reads and writes.
type AnimeStore interface {
	// FindAllPage returns the requested slice of animes and the total number of records.
	// Records are ordered by pageable.Sort, falling back to ascending id.
	FindAllPage(ctx context.Context, pageable domain.Pageable) ([]domain.Anime, int64, error)

	// FindAll returns every anime ordered by id.
	FindAll(ctx context.Context) ([]domain.Anime, error)

	// FindByID retrieves an anime by id.
	// Returns ErrAnimeNotFound if no record has that id.
	FindByID(ctx context.Context, id int64) (*domain.Anime, error)

	// FindByName retrieves the anime with exactly the given name (case-sensitive).
	// When several records share a name the one with the lowest id is returned.
	// Returns ErrAnimeNotFound if there is no match.
	FindByName(ctx context.Context, name string) (*domain.Anime, error)

	// Save inserts the anime when its ID is zero and updates it otherwise.
	// The returned anime carries the storage-assigned id.
	// Returns ErrAnimeNotFound when updating an id that does not exist.
	Save(ctx context.Context, anime *domain.Anime) (*domain.Anime, error)

	// DeleteByID removes the anime with the given id. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
