package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBearer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"valid", "Bearer abc123", "abc123", true},
		{"missing header", "", "", false},
		{"scheme word only", "Bearer", "", false},
		{"scheme with trailing space", "Bearer ", "", false},
		{"no scheme", "abc123", "abc123", true},
		{"token containing spaces kept verbatim", "Bearer a b", "a b", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := ParseBearer(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
