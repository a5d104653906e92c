package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	entries := rg.Group("/time-entry")
	{
		entries.POST("/manual", mw.Auth(), h.RecordManual)
		entries.GET("/history", mw.Auth(), h.History)
		entries.GET("/:id", mw.Auth(), h.Detail)
		entries.PUT("/:id", mw.Auth(), h.Update)
		entries.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
