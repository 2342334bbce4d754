package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAnimeService is a testify mock of service.AnimeService.
type MockAnimeService struct {
	mock.Mock
}

var _ service.AnimeService = (*MockAnimeService)(nil)

func (m *MockAnimeService) ListAll(ctx context.Context, pageable domain.Pageable) (domain.Page[domain.Anime], error) {
	args := m.Called(ctx, pageable)
	return args.Get(0).(domain.Page[domain.Anime]), args.Error(1)
}

func (m *MockAnimeService) ListAllNonPaginated(ctx context.Context) ([]domain.Anime, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Anime), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnimeService) FindByID(ctx context.Context, id int64) (*domain.Anime, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Anime), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnimeService) FindByName(ctx context.Context, name string) (*domain.Anime, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.Anime), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnimeService) Save(ctx context.Context, req domain.AnimeRequest) (*domain.Anime, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*domain.Anime), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnimeService) Replace(ctx context.Context, id int64, req domain.AnimeRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *MockAnimeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockLoginService is a testify mock of the login dependency of the auth handler.
type MockLoginService struct {
	mock.Mock
}

func (m *MockLoginService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
