package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrAnimeNotFound", err: ErrAnimeNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{
			name:     "wrapped ErrAnimeNotFound",
			err:      fmt.Errorf("failed to load: %w", ErrAnimeNotFound),
			expected: true,
		},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: true},
		{name: "ErrUsernameExists", err: ErrUsernameExists, expected: true},
		{
			name:     "wrapped ErrUsernameExists",
			err:      fmt.Errorf("create user: %w", ErrUsernameExists),
			expected: true,
		},
		{name: "ErrNotFound", err: ErrNotFound, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("anime", "save", "no rows", nil)
		assert.Equal(t, "save operation on anime failed: no rows", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("anime", "find_by_id", "lookup failed", ErrAnimeNotFound)
		assert.Equal(t,
			"find_by_id operation on anime failed: lookup failed: entity not found: anime",
			err.Error())
		assert.ErrorIs(t, err, ErrAnimeNotFound)
		assert.ErrorIs(t, err, ErrNotFound)

		var storeErr *StoreError
		assert.ErrorAs(t, fmt.Errorf("outer: %w", err), &storeErr)
		assert.Equal(t, "anime", storeErr.Entity)
	})
}
