package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/mocks"
	"github.com/phrazzld/anime-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	principal domain.Principal
	basicErr  error
	bearerErr error

	gotUsername string
	gotPassword string
	gotToken    string
}

func (f *fakeAuthenticator) AuthenticateBasic(_ context.Context, username, password string) (domain.Principal, error) {
	f.gotUsername, f.gotPassword = username, password
	if f.basicErr != nil {
		return domain.Principal{}, f.basicErr
	}
	return f.principal, nil
}

func (f *fakeAuthenticator) AuthenticateBearer(_ context.Context, token string) (domain.Principal, error) {
	f.gotToken = token
	if f.bearerErr != nil {
		return domain.Principal{}, f.bearerErr
	}
	return f.principal, nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	admin := domain.Principal{Username: "william", Roles: []string{domain.RoleUser, domain.RoleAdmin}}

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		basicErr       error
		bearerErr      error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "valid basic credentials",
			setupRequest:   func(r *http.Request) { r.SetBasicAuth("william", "academy") },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid bearer token",
			setupRequest:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer good-token") },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing auth header",
			setupRequest:   func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Full authentication is required to access this resource",
		},
		{
			name:           "unknown scheme",
			setupRequest:   func(r *http.Request) { r.Header.Set("Authorization", "Digest abc") },
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Invalid token",
		},
		{
			name:           "malformed basic payload",
			setupRequest:   func(r *http.Request) { r.Header.Set("Authorization", "Basic !!!") },
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Invalid username or password",
		},
		{
			name:           "wrong password",
			setupRequest:   func(r *http.Request) { r.SetBasicAuth("william", "nope") },
			basicErr:       auth.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Invalid username or password",
		},
		{
			name:           "expired token",
			setupRequest:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer old") },
			bearerErr:      auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Token expired",
		},
		{
			name:           "user store unavailable",
			setupRequest:   func(r *http.Request) { r.SetBasicAuth("william", "academy") },
			basicErr:       errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Authentication error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authenticator := &fakeAuthenticator{
				principal: admin,
				basicErr:  tt.basicErr,
				bearerErr: tt.bearerErr,
			}
			mw := NewAuthMiddleware(authenticator, nil)

			var captured domain.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, ok := GetPrincipal(r)
				require.True(t, ok)
				captured = p
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/animes", nil)
			tt.setupRequest(req)
			rr := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, admin, captured)
				return
			}

			var body shared.ExceptionDetails
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.expectedDetail, body.Details)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="animes"`, rr.Header().Get("WWW-Authenticate"))
				assert.Equal(t, shared.KindUnauthorized, body.DeveloperMessage)
			}
		})
	}
}

func TestAuthMiddleware_PassesCredentials(t *testing.T) {
	t.Parallel()

	authenticator := &fakeAuthenticator{principal: domain.Principal{Username: "devdojo"}}
	mw := NewAuthMiddleware(authenticator, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/animes", nil)
	req.SetBasicAuth("devdojo", "s3cret:with:colons")
	mw.Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "devdojo", authenticator.gotUsername)
	assert.Equal(t, "s3cret:with:colons", authenticator.gotPassword)

	req = httptest.NewRequest(http.MethodGet, "/animes", nil)
	req.Header.Set("Authorization", "bearer  abc.def.ghi ")
	mw.Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc.def.ghi", authenticator.gotToken)
}

func TestAuthMiddleware_WithAuthenticator(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore(&domain.User{
		ID:             1,
		Name:           "William",
		Username:       "william",
		HashedPassword: "$2a$10$irrelevant",
		Authorities:    "ROLE_USER,ROLE_ADMIN",
	})
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	tokens := &mocks.MockJWTService{
		Claims: &auth.Claims{Username: "devdojo", Roles: []string{domain.RoleUser}},
	}
	authenticator, err := auth.NewAuthenticator(users, verifier, tokens, nil)
	require.NoError(t, err)

	handler := NewAuthMiddleware(authenticator, nil).Authenticate(
		RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})))

	req := httptest.NewRequest(http.MethodDelete, "/animes/admin/1", nil)
	req.SetBasicAuth("william", "academy")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, verifier.CompareCallCount)

	req = httptest.NewRequest(http.MethodDelete, "/animes/admin/1", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
