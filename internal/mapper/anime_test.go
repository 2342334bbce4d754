package mapper

import (
	"testing"

	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToAnime(t *testing.T) {
	got := ToAnime(domain.AnimeRequest{Name: "Kingdom"})
	assert.Equal(t, &domain.Anime{Name: "Kingdom"}, got)
	assert.Zero(t, got.ID)
}

func TestApplyAnime(t *testing.T) {
	existing := &domain.Anime{ID: 3, Name: "A"}
	got := ApplyAnime(existing, domain.AnimeRequest{Name: "B"})

	assert.Equal(t, &domain.Anime{ID: 3, Name: "B"}, got)
	assert.Equal(t, "A", existing.Name, "input is not mutated")
}
