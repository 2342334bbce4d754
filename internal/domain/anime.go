package domain

import "fmt"

// Anime is the single catalogue resource exposed by the service.
// ID is assigned by storage on creation and never changes afterwards.
type Anime struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// AnimeRequest is the payload accepted when creating or replacing an anime.
type AnimeRequest struct {
	Name string `json:"name" validate:"required"`
}

// EmptyAnimeNameMessage is reported when an anime name is missing.
const EmptyAnimeNameMessage = "The anime cannot be empty"

// Validate checks that the anime can be persisted.
func (a *Anime) Validate() error {
	if a.Name == "" {
		return NewValidationError("name", EmptyAnimeNameMessage, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName))
	}
	if a.ID < 0 {
		return NewValidationError("id", "id must not be negative", fmt.Errorf("%w: %w", ErrValidation, ErrInvalidID))
	}
	return nil
}

// Validate checks the request body before it reaches the service.
func (r AnimeRequest) Validate() error {
	if r.Name == "" {
		return NewValidationError("name", EmptyAnimeNameMessage, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName))
	}
	return nil
}
