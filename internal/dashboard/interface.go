package dashboard

import (
	"context"

	"task-time-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Summary runs all dashboard queries concurrently and composes one
	// payload. Any single failure fails the whole summary.
	Summary(ctx context.Context, sc model.Scope, r Range) (SummaryOutput, error)

	TotalTime(ctx context.Context, sc model.Scope, r Range) (TotalTimeOutput, error)
	CompletedTasks(ctx context.Context, sc model.Scope, r Range) (CompletedTasksOutput, error)
	ProgressRate(ctx context.Context, sc model.Scope, r Range) (ProgressRateOutput, error)
	TimeByTag(ctx context.Context, sc model.Scope, r Range) (TimeByTagOutput, error)
	TimeByProject(ctx context.Context, sc model.Scope, r Range) (TimeByProjectOutput, error)
	TopTask(ctx context.Context, sc model.Scope, r Range) (TopTaskOutput, error)
}
