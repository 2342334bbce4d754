package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginLike struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=3"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Kingdom"}`},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "wrong type", body: `{"name":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/animes", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var req domain.AnimeRequest
			err := DecodeJSON(w, r, &req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Kingdom", req.Name)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("self validation message wins", func(t *testing.T) {
		err := ValidateRequest(domain.AnimeRequest{})
		require.Error(t, err)
		assert.Equal(t, domain.EmptyAnimeNameMessage, err.Error())
	})

	t.Run("valid anime", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&domain.AnimeRequest{Name: "Kingdom"}))
	})

	t.Run("tag failure uses json field name", func(t *testing.T) {
		err := ValidateRequest(loginLike{Username: "u", Password: "x"})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, "password failed on the 'min' tag", err.Error())
	})
}
