package usecase

import (
	"task-time-tracker/internal/timeentry/repository"
	"task-time-tracker/pkg/log"
)

// implUseCase is the private implementation of timeentry.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new timeentry UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
