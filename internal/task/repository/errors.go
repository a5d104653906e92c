package repository

import "errors"

var (
	ErrFailedToList    = errors.New("failed to list tasks")
	ErrFailedToGet     = errors.New("failed to get task")
	ErrFailedToCreate  = errors.New("failed to create task")
	ErrFailedToUpdate  = errors.New("failed to update task")
	ErrFailedToDelete  = errors.New("failed to delete task")
	ErrFailedToReorder = errors.New("failed to reorder tasks")
)
