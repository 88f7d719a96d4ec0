// Package session carries the authenticated user through the request context,
// shared by every handler package.
package session

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linhao/promptmaster/internal/domain/user"
	authsvc "github.com/linhao/promptmaster/internal/service/auth"
)

const contextKey = "session"

// Middleware resolves the bearer token to a session when present. Requests
// without a valid token proceed as guest; role gates happen at the handlers.
func Middleware(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if token != "" {
			if sess, err := svc.Validate(token); err == nil {
				c.Set(contextKey, sess)
			}
		}
		c.Next()
	}
}

// Token extracts the bearer token, or "" when absent.
func Token(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// Current returns the authenticated session, or nil for guests.
func Current(c *gin.Context) *authsvc.Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*authsvc.Session)
	return sess
}

// Role returns the effective role of the request, guest when unauthenticated.
func Role(c *gin.Context) user.Role {
	if sess := Current(c); sess != nil {
		return sess.Role
	}
	return user.RoleGuest
}

// Username returns the session username, or "" for guests.
func Username(c *gin.Context) string {
	if sess := Current(c); sess != nil {
		return sess.Username
	}
	return ""
}

// UserID returns a pointer to the session user id, nil for guests.
func UserID(c *gin.Context) *int64 {
	if sess := Current(c); sess != nil {
		id := sess.UserID
		return &id
	}
	return nil
}
