package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	subject, text, html, err := Render("welcome", map[string]string{"name": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to MyWallet", subject)
	assert.Contains(t, text, "Ana")
	assert.Contains(t, html, "Ana")
}

func TestRenderEscapesName(t *testing.T) {
	_, _, html, err := Render("welcome", map[string]string{"name": "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}
