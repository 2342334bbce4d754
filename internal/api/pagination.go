package api

import (
	"net/http"
	"strconv"

	"github.com/phrazzld/anime-api/internal/config"
	"github.com/phrazzld/anime-api/internal/domain"
)

// SortableAnimeProperties lists the properties a client may sort animes by.
var SortableAnimeProperties = []string{"id", "name"}

// parsePageable reads page, size and sort query parameters. Missing or
// non-numeric page and size values fall back to the configured defaults;
// an unknown sort property is a validation error.
func parsePageable(r *http.Request, cfg config.PaginationConfig) (domain.Pageable, error) {
	query := r.URL.Query()

	pageable := domain.Pageable{
		Page: intParam(query.Get("page"), 0),
		Size: intParam(query.Get("size"), cfg.DefaultSize),
	}

	for _, expr := range query["sort"] {
		if expr == "" {
			continue
		}
		order, err := domain.ParseOrder(expr, SortableAnimeProperties...)
		if err != nil {
			return domain.Pageable{}, err
		}
		pageable.Sort = append(pageable.Sort, order)
	}

	if pageable.Size <= 0 && cfg.DefaultSize > 0 {
		pageable.Size = cfg.DefaultSize
	}
	return pageable.Normalize(cfg.MaxSize), nil
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
