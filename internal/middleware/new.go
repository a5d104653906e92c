package middleware

import (
	"task-time-tracker/pkg/log"
	"task-time-tracker/pkg/session"
)

type Middleware struct {
	l        log.Logger
	sessions *session.Manager
}

func New(l log.Logger, sessions *session.Manager) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
	}
}
