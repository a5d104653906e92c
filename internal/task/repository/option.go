package repository

import (
	"time"

	"task-time-tracker/internal/model"
)

// ListTasksOptions filters and paginates the task listing. Nil pointers
// mean no filter.
type ListTasksOptions struct {
	Query     string
	Priority  *model.Priority
	Status    *model.Status
	Completed *bool
	DueFrom   *time.Time
	DueTo     *time.Time
	Tags      []string

	Offset int
	Limit  int
}

// CreateTaskOptions holds everything needed to insert a task. Order is the
// already-resolved manual position.
type CreateTaskOptions struct {
	UserID      int64
	Title       string
	Description string
	Priority    model.Priority
	Status      model.Status
	DueDate     *time.Time
	ProjectID   *int64
	Tags        []string
}

// UpdateTaskOptions applies the non-nil fields to the task owned by UserID.
// Tags replaces the full tag set when ReplaceTags is true.
type UpdateTaskOptions struct {
	ID     int64
	UserID int64

	Title       *string
	Description *string
	Priority    *model.Priority
	Status      *model.Status
	DueDate     *time.Time
	ClearDue    bool
	Completed   *bool
	CompletedAt *time.Time
	Progress    *int
	ProjectID   *int64

	ReplaceTags bool
	Tags        []string
}
