package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("academy", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "academy", hash)

	v := NewBcryptVerifier()
	assert.NoError(t, v.Compare(hash, "academy"))
	assert.Error(t, v.Compare(hash, "wrong"))

	_, err = HashPassword("", bcrypt.MinCost)
	assert.Error(t, err)

	_, err = HashPassword("academy", bcrypt.MaxCost+1)
	assert.Error(t, err)
}
