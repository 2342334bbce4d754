package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageable(t *testing.T) {
	t.Parallel()

	cfg := config.PaginationConfig{DefaultSize: 20, MaxSize: 100}

	tests := []struct {
		name    string
		query   string
		want    domain.Pageable
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  domain.Pageable{Page: 0, Size: 20},
		},
		{
			name:  "explicit values",
			query: "page=2&size=10",
			want:  domain.Pageable{Page: 2, Size: 10},
		},
		{
			name:  "non numeric values fall back",
			query: "page=abc&size=xyz",
			want:  domain.Pageable{Page: 0, Size: 20},
		},
		{
			name:  "negative page and zero size are normalized",
			query: "page=-4&size=0",
			want:  domain.Pageable{Page: 0, Size: 20},
		},
		{
			name:  "size capped at max",
			query: "size=5000",
			want:  domain.Pageable{Page: 0, Size: 100},
		},
		{
			name:  "huge page is capped",
			query: "page=922337203685477580&size=20",
			want:  domain.Pageable{Page: math.MaxInt/20 - 1, Size: 20},
		},
		{
			name:  "repeated sort",
			query: "sort=name,desc&sort=id",
			want: domain.Pageable{Page: 0, Size: 20, Sort: []domain.Order{
				{Property: "name", Direction: domain.Desc},
				{Property: "id", Direction: domain.Asc},
			}},
		},
		{
			name:    "unknown sort property",
			query:   "sort=rating,desc",
			wantErr: true,
		},
		{
			name:    "unknown direction",
			query:   "sort=name,sideways",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/animes?"+tt.query, nil)
			got, err := parsePageable(req, cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidSort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
