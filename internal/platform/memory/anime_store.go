package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/store"
)

// AnimeStore keeps animes in a map keyed by id.
type AnimeStore struct {
	mu     sync.RWMutex
	nextID int64
	animes map[int64]domain.Anime
}

// NewAnimeStore returns an empty AnimeStore.
func NewAnimeStore() *AnimeStore {
	return &AnimeStore{animes: make(map[int64]domain.Anime)}
}

var _ store.AnimeStore = (*AnimeStore)(nil)

// sorted returns every anime ordered by orders with id ascending as the tiebreaker.
func (s *AnimeStore) sorted(orders []domain.Order) ([]domain.Anime, error) {
	for _, o := range orders {
		if o.Property != "id" && o.Property != "name" {
			return nil, domain.NewValidationError("sort",
				fmt.Sprintf("unknown sort property %q", o.Property), domain.ErrInvalidSort)
		}
	}

	all := make([]domain.Anime, 0, len(s.animes))
	for _, a := range s.animes {
		all = append(all, a)
	}
	slices.SortFunc(all, func(a, b domain.Anime) int {
		for _, o := range orders {
			var c int
			if o.Property == "name" {
				c = strings.Compare(a.Name, b.Name)
			} else {
				c = cmp.Compare(a.ID, b.ID)
			}
			if o.Direction == domain.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return all, nil
}

// FindAllPage implements store.AnimeStore.
func (s *AnimeStore) FindAllPage(ctx context.Context, pageable domain.Pageable) ([]domain.Anime, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := s.sorted(pageable.Sort)
	if err != nil {
		return nil, 0, err
	}

	start := min(pageable.Offset(), len(all))
	end := min(start+pageable.Size, len(all))
	return slices.Clone(all[start:end]), int64(len(all)), nil
}

// FindAll implements store.AnimeStore.
func (s *AnimeStore) FindAll(ctx context.Context) ([]domain.Anime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(nil)
}

// FindByID implements store.AnimeStore.
func (s *AnimeStore) FindByID(ctx context.Context, id int64) (*domain.Anime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.animes[id]
	if !ok {
		return nil, store.ErrAnimeNotFound
	}
	return &a, nil
}

// FindByName implements store.AnimeStore.
func (s *AnimeStore) FindByName(ctx context.Context, name string) (*domain.Anime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *domain.Anime
	for _, a := range s.animes {
		a := a
		if a.Name == name && (found == nil || a.ID < found.ID) {
			found = &a
		}
	}
	if found == nil {
		return nil, store.ErrAnimeNotFound
	}
	return found, nil
}

// Save implements store.AnimeStore.
func (s *AnimeStore) Save(ctx context.Context, anime *domain.Anime) (*domain.Anime, error) {
	if anime == nil {
		return nil, fmt.Errorf("%w: anime is nil", store.ErrInvalidEntity)
	}
	if err := anime.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *anime
	if saved.ID == 0 {
		s.nextID++
		saved.ID = s.nextID
	} else if _, ok := s.animes[saved.ID]; !ok {
		return nil, store.ErrAnimeNotFound
	}
	s.animes[saved.ID] = saved
	return &saved, nil
}

// DeleteByID implements store.AnimeStore.
func (s *AnimeStore) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.animes, id)
	return nil
}
