package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
)

// Credential endpoints get a tighter per-IP budget than the rest of the API.
const credentialRatePerMinute = 10

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		limited := mw.RateLimit(credentialRatePerMinute, credentialRatePerMinute)
		authGroup.POST("/register", limited, h.Register)
		authGroup.POST("/login", limited, h.Login)
		authGroup.POST("/logout", mw.Auth(), h.Logout)
		authGroup.POST("/password/reset-request", limited, h.RequestPasswordReset)
		authGroup.POST("/password/reset", limited, h.ResetPassword)
	}

	adminGroup := rg.Group("/admin", mw.Auth(), mw.RequireAdmin())
	{
		adminGroup.GET("/users", h.ListUsers)
		adminGroup.PUT("/users/:id/role", h.UpdateRole)
		adminGroup.DELETE("/users/:id", h.DeleteUser)
	}
}
