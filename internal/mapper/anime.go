// Package mapper converts API payloads into domain records.
package mapper

import "github.com/phrazzld/anime-api/internal/domain"

// ToAnime copies the request into a new, unsaved Anime. The ID is left zero
// for storage to assign.
func ToAnime(req domain.AnimeRequest) *domain.Anime {
	return &domain.Anime{Name: req.Name}
}

// ApplyAnime overwrites the mutable fields of existing with req.
func ApplyAnime(existing *domain.Anime, req domain.AnimeRequest) *domain.Anime {
	updated := *existing
	updated.Name = req.Name
	return &updated
}
