package bcrypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// bcrypt hashes are self-describing: algorithm, cost, salt, digest.
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotEqual(t, "s3cret-password", hash)
}

func TestHashPassword_Empty(t *testing.T) {
	b := NewWithCost(4)

	_, err := b.HashPassword("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestComparePassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, b.ComparePassword(hash, "correct horse battery staple"))
	assert.Error(t, b.ComparePassword(hash, "wrong password"))
	assert.Error(t, b.ComparePassword("not-a-hash", "anything"))
}
