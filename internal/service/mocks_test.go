package service

import (
	"context"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockAnimeStore mocks the store.AnimeStore interface
type MockAnimeStore struct {
	mock.Mock
}

func (m *MockAnimeStore) FindAllPage(
	ctx context.Context,
	pageable domain.Pageable,
) ([]domain.Anime, int64, error) {
	args := m.Called(ctx, pageable)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Anime), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnimeStore) FindAll(ctx context.Context) ([]domain.Anime, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Anime), args.Error(1)
}

func (m *MockAnimeStore) FindByID(ctx context.Context, id int64) (*domain.Anime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anime), args.Error(1)
}

func (m *MockAnimeStore) FindByName(ctx context.Context, name string) (*domain.Anime, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anime), args.Error(1)
}

func (m *MockAnimeStore) Save(ctx context.Context, anime *domain.Anime) (*domain.Anime, error) {
	args := m.Called(ctx, anime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anime), args.Error(1)
}

func (m *MockAnimeStore) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
