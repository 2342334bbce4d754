package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/store"
)

// UserStore keeps users in a map keyed by username.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]domain.User
}

// NewUserStore returns an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.Username] = *user
	return nil
}

// GetByUsername implements store.UserStore.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}
