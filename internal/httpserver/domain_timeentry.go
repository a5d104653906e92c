package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
	entryHTTP "task-time-tracker/internal/timeentry/delivery/http"
	entryRepo "task-time-tracker/internal/timeentry/repository/mysql"
	entryUC "task-time-tracker/internal/timeentry/usecase"
)

// setupTimeEntryDomain initializes the time entry domain and registers its routes.
func (srv *HTTPServer) setupTimeEntryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := entryRepo.New(srv.db, srv.l)
	uc := entryUC.New(repo, srv.l)
	h := entryHTTP.New(srv.l, uc)
	entryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Time entry domain registered")
}
