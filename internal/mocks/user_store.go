package mocks

import (
	"context"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Users is keyed by username.
	Users map[string]*domain.User

	CreateError         error
	GetByUsernameError  error
	GetByUsernameCalled int
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store seeded with users.
func NewMockUserStore(users ...*domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[string]*domain.User)}
	for _, u := range users {
		m.Users[u.Username] = u
	}
	return m
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	user.ID = int64(len(m.Users) + 1)
	m.Users[user.Username] = user
	return nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.GetByUsernameCalled++
	if m.GetByUsernameError != nil {
		return nil, m.GetByUsernameError
	}
	user, ok := m.Users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}
