package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingUserStore struct{ err error }

func (f failingUserStore) Create(ctx context.Context, user *domain.User) error { return f.err }

func (f failingUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, f.err
}

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()

	users := memory.NewUserStore()
	hash, err := HashPassword("academy", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		Name:           "William Suane",
		Username:       "william",
		HashedPassword: hash,
		Authorities:    "ROLE_USER,ROLE_ADMIN",
	}))

	a, err := NewAuthenticator(users, NewBcryptVerifier(), RequireTestJWTService(t), nil)
	require.NoError(t, err)
	return a
}

func TestNewAuthenticator_NilDependencies(t *testing.T) {
	jwtSvc := RequireTestJWTService(t)
	users := memory.NewUserStore()

	_, err := NewAuthenticator(nil, NewBcryptVerifier(), jwtSvc, nil)
	assert.Error(t, err)
	_, err = NewAuthenticator(users, nil, jwtSvc, nil)
	assert.Error(t, err)
	_, err = NewAuthenticator(users, NewBcryptVerifier(), nil, nil)
	assert.Error(t, err)
}

func TestAuthenticateBasic(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	principal, err := a.AuthenticateBasic(ctx, "william", "academy")
	require.NoError(t, err)
	assert.Equal(t, "william", principal.Username)
	assert.True(t, principal.HasRole(domain.RoleAdmin))

	_, err = a.AuthenticateBasic(ctx, "william", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.AuthenticateBasic(ctx, "nobody", "academy")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateBasic_StoreFailure(t *testing.T) {
	boom := errors.New("db down")
	a, err := NewAuthenticator(failingUserStore{err: boom}, NewBcryptVerifier(), RequireTestJWTService(t), nil)
	require.NoError(t, err)

	_, err = a.AuthenticateBasic(context.Background(), "william", "academy")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginThenBearer(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	token, expiresAt, err := a.Login(ctx, "william", "academy")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	principal, err := a.AuthenticateBearer(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{Username: "william", Roles: []string{domain.RoleUser, domain.RoleAdmin}}, principal)

	_, _, err = a.Login(ctx, "william", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.AuthenticateBearer(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
