package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		// Registered before :id so "reorder" is not parsed as an id.
		tasks.PUT("/reorder", h.Reorder)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	rg.GET("/tags", mw.Auth(), h.ListTags)
}
