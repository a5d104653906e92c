package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"task-time-tracker/internal/dashboard"
	"task-time-tracker/internal/model"
)

// Summary fans the dashboard queries out concurrently and composes one
// payload. The first failure cancels the group and fails the whole summary;
// no partial result is ever returned.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, r dashboard.Range) (dashboard.SummaryOutput, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		totalMinutes int
		completed    int
		created      int
		tags         []dashboard.TagTime
		projects     []dashboard.ProjectTime
		top          *dashboard.TopTask
	)

	g.Go(func() error {
		var err error
		totalMinutes, err = uc.repo.TotalMinutes(gctx, sc.UserID, r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = uc.repo.CompletedTaskCount(gctx, sc.UserID, r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		created, err = uc.repo.CreatedTaskCount(gctx, sc.UserID, r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = uc.repo.MinutesByTag(gctx, sc.UserID, r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = uc.repo.MinutesByProject(gctx, sc.UserID, r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = uc.repo.TopTask(gctx, sc.UserID, r.Start, r.End)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Summary: %v", err)
		return dashboard.SummaryOutput{}, err
	}

	var rate float64
	if created > 0 {
		rate = float64(completed) / float64(created) * 100
	}

	return dashboard.SummaryOutput{
		CompletedTasks: completed,
		TotalMinutes:   totalMinutes,
		TotalHours:     float64(totalMinutes) / 60,
		ProgressRate:   rate,
		Tags:           tags,
		Projects:       projects,
		TopTask:        top,
	}, nil
}
