package task

import (
	"time"

	"task-time-tracker/internal/model"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// --- UseCase Inputs ---

// ListInput carries the task listing filters. Nil pointer fields mean
// "no filter on this field".
type ListInput struct {
	Page  int
	Limit int

	Query     string
	Priority  *model.Priority
	Status    *model.Status
	Completed *bool
	DueFrom   *time.Time
	DueTo     *time.Time
	// Tags filters to tasks carrying ANY of the named tags.
	Tags []string
}

type CreateInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Status      model.Status
	DueDate     *time.Time
	ProjectID   *int64
	Tags        []string
}

// UpdateInput updates only the fields whose pointers are set.
// Tags, when non-nil, replaces the full tag set.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Priority    *model.Priority
	Status      *model.Status
	DueDate     *time.Time
	ClearDue    bool
	Completed   *bool
	Progress    *int
	ProjectID   *int64
	Tags        []string
}

type ReorderInput struct {
	IDs []int64
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks []model.Task
	Total int
	Page  int
	Limit int
}

type DetailOutput struct {
	Task model.Task
}

type CreateOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type ListTagsOutput struct {
	Tags []model.Tag
}
