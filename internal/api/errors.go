package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/domain"
	"github.com/phrazzld/anime-api/internal/service"
	"github.com/phrazzld/anime-api/internal/service/auth"
	"github.com/phrazzld/anime-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Not-found
// lookups answer 400, not 404, which clients of this API rely on.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, service.ErrAnimeNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusBadRequest

	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind returns the developerMessage identifier for err.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, service.ErrAnimeNotFound), errors.Is(err, store.ErrNotFound):
		return shared.KindNotFound
	case domain.IsValidationError(err), errors.Is(err, store.ErrInvalidEntity):
		return shared.KindValidation
	case errors.Is(err, domain.ErrForbidden):
		return shared.KindForbidden
	case errors.Is(err, store.ErrDuplicate):
		return shared.KindConflict
	case MapErrorToStatusCode(err) == http.StatusUnauthorized:
		return shared.KindUnauthorized
	default:
		return shared.KindInternalError
	}
}

// GetSafeErrorMessage returns a client-safe description of err. Internal
// failures never expose their text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var ve *domain.ValidationError
	switch {
	case errors.Is(err, service.ErrAnimeNotFound):
		return service.AnimeNotFoundMessage
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, domain.ErrUnauthorized):
		return "Full authentication is required to access this resource"
	case errors.Is(err, domain.ErrForbidden):
		return "Access is denied"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error body for err with the mapped status code.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), ErrorKind(err), err)
}
