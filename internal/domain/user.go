package domain

import (
	"errors"
	"slices"
	"strings"
)

// Role names understood by the authorization guard.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Common user validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyAuthorities    = errors.New("user must have at least one authority")
)

// User is an account allowed to call the API.
// Authorities holds the comma-separated role list, e.g. "ROLE_USER,ROLE_ADMIN".
type User struct {
	ID             int64  `json:"id"       db:"id"`
	Name           string `json:"name"     db:"name"`
	Username       string `json:"username" db:"username"`
	HashedPassword string `json:"-"        db:"password"` // Never expose password hash in JSON
	Authorities    string `json:"-"        db:"authorities"`
}

// Validate checks if the User has the fields required for storage.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username", "username is required", ErrEmptyUsername)
	}
	if u.Name == "" {
		return NewValidationError("name", "name is required", ErrEmptyName)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "password is required", ErrEmptyHashedPassword)
	}
	if len(u.Roles()) == 0 {
		return NewValidationError("authorities", "at least one authority is required", ErrEmptyAuthorities)
	}
	return nil
}

// Roles splits Authorities into trimmed, non-empty role names.
func (u *User) Roles() []string {
	return ParseAuthorities(u.Authorities)
}

// Principal returns the identity the user authenticates as.
func (u *User) Principal() Principal {
	return Principal{Username: u.Username, Roles: u.Roles()}
}

// ParseAuthorities splits a comma-separated authority list.
func ParseAuthorities(authorities string) []string {
	parts := strings.Split(authorities, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

// JoinAuthorities is the inverse of ParseAuthorities.
func JoinAuthorities(roles []string) string {
	return strings.Join(ParseAuthorities(strings.Join(roles, ",")), ",")
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the principal was granted role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}
