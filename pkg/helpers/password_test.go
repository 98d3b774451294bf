package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.True(t, CompareHashAndPassword(hash, "p1"))
	assert.False(t, CompareHashAndPassword(hash, "p2"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "p1"))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("p1")
	require.NoError(t, err)
	h2, err := HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
