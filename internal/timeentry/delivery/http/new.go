package http

import (
	"task-time-tracker/internal/timeentry"
	"task-time-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc timeentry.UseCase
}

// New creates a new HTTP handler for the timeentry domain.
func New(l log.Logger, uc timeentry.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
