package service

import (
	"errors"
	"fmt"
)

// AnimeNotFoundMessage is the client-facing description of a failed anime lookup.
const AnimeNotFoundMessage = "Anime not Found"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to status codes.
var (
	// ErrAnimeNotFound indicates no anime matched the requested id or name.
	// The API layer maps this to HTTP 400 Bad Request.
	ErrAnimeNotFound = errors.New(AnimeNotFoundMessage) //nolint:staticcheck // client-facing text
)

// AnimeServiceError is a custom error type for unexpected anime service failures.
type AnimeServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AnimeServiceError.
func (e *AnimeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("anime service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("anime service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AnimeServiceError) Unwrap() error {
	return e.Err
}

// NewAnimeServiceError creates a new AnimeServiceError.
func NewAnimeServiceError(operation, message string, err error) *AnimeServiceError {
	return &AnimeServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
