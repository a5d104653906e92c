package timeentry

import (
	"context"

	"task-time-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RecordManual replaces the task's entries for the submitted range's
	// start day with per-day segments of the range.
	RecordManual(ctx context.Context, sc model.Scope, input RecordManualInput) (RecordManualOutput, error)

	// History lists the caller's entries, newest first.
	History(ctx context.Context, sc model.Scope, input ListHistoryInput) (ListHistoryOutput, error)

	Detail(ctx context.Context, sc model.Scope, id int64) (DetailEntryOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateEntryInput) error
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
