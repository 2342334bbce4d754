// Package service contains the application use cases for the anime catalogue.
// It orchestrates domain objects and the repositories defined in
// internal/store to fulfill the HTTP API's operations.
//
// Key components:
//
// 1. AnimeService:
//   - Paged, full and by-name listing
//   - Lookup that fails with ErrAnimeNotFound for unknown ids
//   - Create, replace and idempotent delete
//
// 2. Error Handling:
//   - Store errors are translated into service-level errors such as ErrAnimeNotFound
//   - Validation errors from the domain pass through unchanged
//
// The service layer depends on domain entities and repository interfaces (from store),
// never on a specific storage implementation. Authentication lives in the auth
// subpackage.
package service
