package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/model"
	"task-time-tracker/pkg/response"
)

const scopeKey = "auth_scope"

// Auth resolves the bearer token to a session and stores the caller's scope
// on the request context. Missing, unknown and expired tokens all fail the
// same way.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		s, ok := mw.sessions.Get(token)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: s.UserID, Role: model.Role(s.Role)})
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after Auth.
func (mw Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !sc.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetScope returns the authenticated caller's scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
