package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
	taskHTTP "task-time-tracker/internal/task/delivery/http"
	taskRepo "task-time-tracker/internal/task/repository/mysql"
	taskUC "task-time-tracker/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(repo, srv.calendar, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
}
