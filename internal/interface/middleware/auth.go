package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/pkg/response"
)

// ParseBearer extracts the token from an Authorization header value of the
// shape "Bearer <token>". It rejects an absent header, an empty remainder,
// and the degenerate header that is only the scheme word "Bearer".
func ParseBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == "Bearer" {
		return "", false
	}
	return token, true
}

// RequireBearer enforces bearer-token shape only (no session lookup) and
// stashes the token in the context under "sessionToken". Logout and
// create-movement mount this so their remaining checks keep their
// externally observable order.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := ParseBearer(c.GetHeader("Authorization"))
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "missing or malformed bearer token", nil)
			c.Abort()
			return
		}
		c.Set("sessionToken", token)
		c.Next()
	}
}

// Auth runs the full gate: bearer shape, session lookup, user lookup.
// On success it sets "authUser" (password hash already stripped) plus
// userID/userName/userEmail convenience keys.
func Auth(svc *application.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := ParseBearer(c.GetHeader("Authorization"))
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "missing or malformed bearer token", nil)
			c.Abort()
			return
		}
		u, err := svc.ResolveToken(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "invalid session"
			if !errors.Is(err, application.ErrUnauthenticated) {
				status = http.StatusInternalServerError
				msg = "internal error"
			}
			response.Error[any](c, status, msg, nil)
			c.Abort()
			return
		}
		c.Set("sessionToken", token)
		c.Set("authUser", u)
		c.Set("userID", u.ID)
		c.Set("userName", u.Name)
		c.Set("userEmail", u.Email)
		c.Next()
	}
}
