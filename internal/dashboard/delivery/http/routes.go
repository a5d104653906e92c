package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/summary", mw.Auth(), h.Summary)
		dash.GET("/total-time", mw.Auth(), h.TotalTime)
		dash.GET("/completed-tasks", mw.Auth(), h.CompletedTasks)
		dash.GET("/progress-rate", mw.Auth(), h.ProgressRate)
		dash.GET("/time-by-tag", mw.Auth(), h.TimeByTag)
		dash.GET("/time-by-project", mw.Auth(), h.TimeByProject)
		dash.GET("/top-task", mw.Auth(), h.TopTask)
	}
}
