package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok, err := NewSessionToken()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(tok), 40, "32 random bytes should encode to 43 chars")
		assert.NotContains(t, tok, " ")
		assert.False(t, seen[tok], "tokens must not repeat")
		seen[tok] = true
	}
}
