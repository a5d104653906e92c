package repository

import (
	"context"

	"task-time-tracker/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListTasks returns one page of tasks plus the unpaginated total.
	ListTasks(ctx context.Context, userID int64, opt ListTasksOptions) ([]model.Task, int, error)
	// GetTask returns the zero-value Task when absent or foreign, with its
	// tags loaded otherwise.
	GetTask(ctx context.Context, id, userID int64) (model.Task, error)
	// CreateTask inserts the task and its tag links in one transaction,
	// creating missing tags, and returns the stored task.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// UpdateTask applies the set fields and replaces tags when requested,
	// in one transaction. Returns the number of task rows affected.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (int64, error)
	// DeleteTask removes the task, its tag links and its time entries.
	// Returns the number of task rows affected.
	DeleteTask(ctx context.Context, id, userID int64) (int64, error)
	// ReorderTasks assigns ascending positions to the caller-owned subset
	// of ids, in submitted order, in one transaction.
	ReorderTasks(ctx context.Context, userID int64, ids []int64) error

	// GetProject returns the zero-value Project when absent.
	GetProject(ctx context.Context, id int64) (model.Project, error)
	// ListTags returns the distinct tags on the user's tasks, name-sorted.
	ListTags(ctx context.Context, userID int64) ([]model.Tag, error)
}
