package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "task-time-tracker/internal/auth/delivery/http"
	authRepo "task-time-tracker/internal/auth/repository/mysql"
	authUC "task-time-tracker/internal/auth/usecase"
	"task-time-tracker/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.db, srv.l)
	uc := authUC.New(repo, srv.sessions, srv.mail, srv.l, srv.baseURL)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
