package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/anime-api/internal/domain"
)

// getPathID extracts a positive int64 id from the URL path parameter paramName.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, fmt.Sprintf("%s is required", paramName), domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, fmt.Sprintf("%s must be a positive number", paramName), domain.ErrInvalidID)
	}
	return id, nil
}
