package usecase

import (
	"task-time-tracker/internal/auth/repository"
	"task-time-tracker/pkg/log"
	"task-time-tracker/pkg/mailer"
	"task-time-tracker/pkg/session"
)

// bcryptCost matches what existing password hashes were generated with.
const bcryptCost = 10

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo     repository.Repository
	sessions *session.Manager
	mail     mailer.Mailer
	l        log.Logger
	baseURL  string
}

// New creates a new auth UseCase implementation. baseURL is the public
// address used to build password reset links.
func New(repo repository.Repository, sessions *session.Manager, mail mailer.Mailer, l log.Logger, baseURL string) *implUseCase {
	return &implUseCase{
		repo:     repo,
		sessions: sessions,
		mail:     mail,
		l:        l,
		baseURL:  baseURL,
	}
}
