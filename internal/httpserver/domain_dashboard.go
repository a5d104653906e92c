package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashHTTP "task-time-tracker/internal/dashboard/delivery/http"
	dashRepo "task-time-tracker/internal/dashboard/repository/mysql"
	dashUC "task-time-tracker/internal/dashboard/usecase"
	"task-time-tracker/internal/middleware"
)

// setupDashboardDomain initializes the dashboard domain and registers its routes.
func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := dashRepo.New(srv.db, srv.l)
	uc := dashUC.New(repo, srv.l)
	h := dashHTTP.New(srv.l, uc)
	dashHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
}
