package usecase

import (
	"context"

	"task-time-tracker/internal/task/repository"
	"task-time-tracker/pkg/gcalendar"
	"task-time-tracker/pkg/log"
)

// CalendarClient mirrors the calendar surface the task domain touches, so
// the integration stays optional and fakeable.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	calendar CalendarClient
	l        log.Logger
}

// New creates a new task UseCase implementation. calendar may be nil when
// the Google Calendar integration is not configured.
func New(repo repository.Repository, calendar CalendarClient, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		calendar: calendar,
		l:        l,
	}
}
