package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/task/usecase"
	"task-time-tracker/pkg/log"
	"task-time-tracker/pkg/mailer"
	"task-time-tracker/pkg/session"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure the domains are built on
	db       *sql.DB
	sessions *session.Manager
	mail     mailer.Mailer
	calendar usecase.CalendarClient
	baseURL  string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	Sessions *session.Manager
	Mailer   mailer.Mailer
	// Calendar may be nil when the Google Calendar integration is off.
	Calendar usecase.CalendarClient
	// BaseURL is the public address used in password reset links.
	BaseURL string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		sessions:    cfg.Sessions,
		mail:        cfg.Mailer,
		calendar:    cfg.Calendar,
		baseURL:     cfg.BaseURL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.mail == nil {
		return errors.New("mailer is required")
	}
	return nil
}
