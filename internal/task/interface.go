package task

import (
	"context"

	"task-time-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns the caller's tasks, filtered and paginated, ordered by
	// the manual order then newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Create inserts the task at the end of the caller's manual order.
	// Named tags are connected, creating any that do not exist yet.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailOutput, error)
	// Update applies the set fields. Completed flips maintain CompletedAt.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	// Delete removes the task and its time entries.
	Delete(ctx context.Context, sc model.Scope, id int64) error
	// Reorder assigns positions following the submitted id order. Ids the
	// caller does not own are ignored.
	Reorder(ctx context.Context, sc model.Scope, input ReorderInput) error

	// ListTags returns the distinct tags used by the caller's tasks.
	ListTags(ctx context.Context, sc model.Scope) (ListTagsOutput, error)
}
