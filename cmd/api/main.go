package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"task-time-tracker/config"
	_ "task-time-tracker/docs" // Swagger docs
	"task-time-tracker/internal/httpserver"
	"task-time-tracker/internal/migrate"
	taskUC "task-time-tracker/internal/task/usecase"
	"task-time-tracker/pkg/gcalendar"
	"task-time-tracker/pkg/log"
	"task-time-tracker/pkg/mailer"
	"task-time-tracker/pkg/session"
)

// calendarWithID routes events to the configured calendar instead of the
// account's primary one.
type calendarWithID struct {
	client *gcalendar.Client
	id     string
}

func (c calendarWithID) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if req.CalendarID == "" {
		req.CalendarID = c.id
	}
	return c.client.CreateEvent(ctx, req)
}

// @title       Task Time Tracker API
// @description Personal task management with manual time tracking and dashboard aggregation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Time Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	if err := migrate.Run(ctx, cfg.MySQL.DSN(), logger); err != nil {
		logger.Errorf(ctx, "Failed to run migrations: %v", err)
		return
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN())
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		logger.Errorf(ctx, "Failed to ping database: %v", err)
		return
	}

	// 4. Sessions and outbound integrations
	sessions := session.NewManager(cfg.Session.Size, cfg.Session.TTL)

	var mail mailer.Mailer = mailer.Nop{}
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		logger.Info(ctx, "SMTP mailer configured")
	} else {
		logger.Warn(ctx, "SMTP not configured, password reset mail disabled")
	}

	var calendar taskUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar disabled: %v", err)
		} else {
			calendar = calendarWithID{client: client, id: cfg.GoogleCalendar.CalendarID}
			logger.Info(ctx, "Google Calendar integration enabled")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Sessions:    sessions,
		Mailer:      mail,
		Calendar:    calendar,
		BaseURL:     cfg.App.BaseURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
