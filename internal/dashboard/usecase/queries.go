package usecase

import (
	"context"

	"task-time-tracker/internal/dashboard"
	"task-time-tracker/internal/model"
)

// TotalTime sums the caller's in-range minutes.
func (uc *implUseCase) TotalTime(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.TotalTimeOutput, error) {
	minutes, err := uc.repo.TotalMinutes(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TotalTime TotalMinutes: %v", err)
		return dashboard.TotalTimeOutput{}, err
	}
	return dashboard.TotalTimeOutput{
		TotalMinutes: minutes,
		TotalHours:   float64(minutes) / 60,
	}, nil
}

// CompletedTasks counts the caller's tasks completed in range.
func (uc *implUseCase) CompletedTasks(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.CompletedTasksOutput, error) {
	count, err := uc.repo.CompletedTaskCount(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompletedTasks CompletedTaskCount: %v", err)
		return dashboard.CompletedTasksOutput{}, err
	}
	return dashboard.CompletedTasksOutput{CompletedTasks: count}, nil
}

// ProgressRate is completed/created * 100 over the range; zero created tasks
// yield a rate of exactly 0 rather than a division error.
func (uc *implUseCase) ProgressRate(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.ProgressRateOutput, error) {
	created, err := uc.repo.CreatedTaskCount(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProgressRate CreatedTaskCount: %v", err)
		return dashboard.ProgressRateOutput{}, err
	}
	completed, err := uc.repo.CompletedTaskCount(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProgressRate CompletedTaskCount: %v", err)
		return dashboard.ProgressRateOutput{}, err
	}

	var rate float64
	if created > 0 {
		rate = float64(completed) / float64(created) * 100
	}
	return dashboard.ProgressRateOutput{ProgressRate: rate}, nil
}

// TimeByTag sums in-range minutes per tag, sorted descending.
func (uc *implUseCase) TimeByTag(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.TimeByTagOutput, error) {
	tags, err := uc.repo.MinutesByTag(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TimeByTag MinutesByTag: %v", err)
		return dashboard.TimeByTagOutput{}, err
	}
	return dashboard.TimeByTagOutput{Tags: tags}, nil
}

// TimeByProject sums in-range minutes per project, sorted descending.
func (uc *implUseCase) TimeByProject(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.TimeByProjectOutput, error) {
	projects, err := uc.repo.MinutesByProject(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TimeByProject MinutesByProject: %v", err)
		return dashboard.TimeByProjectOutput{}, err
	}
	return dashboard.TimeByProjectOutput{Projects: projects}, nil
}

// TopTask returns the task with the most in-range minutes, nil when none.
func (uc *implUseCase) TopTask(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.TopTaskOutput, error) {
	top, err := uc.repo.TopTask(ctx, sc.UserID, r.Start, r.End)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TopTask TopTask: %v", err)
		return dashboard.TopTaskOutput{}, err
	}
	out := dashboard.TopTaskOutput{Task: top}
	if top != nil {
		out.Minutes = top.Minutes
	}
	return out, nil
}
