package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken mints an opaque, unguessable bearer token.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
