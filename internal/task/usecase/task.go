package usecase

import (
	"context"
	"time"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/task"
	"task-time-tracker/internal/task/repository"
	"task-time-tracker/pkg/gcalendar"
)

// List returns one page of the caller's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = task.DefaultPageSize
	}
	if limit > task.MaxPageSize {
		limit = task.MaxPageSize
	}

	tasks, total, err := uc.repo.ListTasks(ctx, sc.UserID, repository.ListTasksOptions{
		Query:     input.Query,
		Priority:  input.Priority,
		Status:    input.Status,
		Completed: input.Completed,
		DueFrom:   input.DueFrom,
		DueTo:     input.DueTo,
		Tags:      input.Tags,
		Offset:    (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: total, Page: page, Limit: limit}, nil
}

// Create inserts the task at the end of the caller's manual order, then
// mirrors the due date to the calendar when one is configured.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if input.Status == "" {
		input.Status = model.StatusNotStarted
	}

	if input.ProjectID != nil {
		project, err := uc.repo.GetProject(ctx, *input.ProjectID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetProject: %v", err)
			return task.CreateOutput{}, err
		}
		if project.ID == 0 {
			return task.CreateOutput{}, task.ErrProjectNotFound
		}
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
		ProjectID:   input.ProjectID,
		Tags:        input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.mirrorDueDate(ctx, created)

	return task.CreateOutput{Task: created}, nil
}

// mirrorDueDate creates a calendar event for the task's due date.
// Best effort: a calendar failure never fails the task operation.
func (uc *implUseCase) mirrorDueDate(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(time.Hour),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorDueDate CreateEvent: %v", err)
	}
}

// Detail returns one owned task with its tags.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (task.DetailOutput, error) {
	t, err := uc.repo.GetTask(ctx, id, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == 0 {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies the set fields. A completed flip sets or clears
// CompletedAt accordingly.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	current, err := uc.repo.GetTask(ctx, input.ID, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if current.ID == 0 {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	if input.ProjectID != nil {
		project, err := uc.repo.GetProject(ctx, *input.ProjectID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetProject: %v", err)
			return task.UpdateOutput{}, err
		}
		if project.ID == 0 {
			return task.UpdateOutput{}, task.ErrProjectNotFound
		}
	}

	opt := repository.UpdateTaskOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
		ClearDue:    input.ClearDue,
		Completed:   input.Completed,
		Progress:    input.Progress,
		ProjectID:   input.ProjectID,
		ReplaceTags: input.Tags != nil,
		Tags:        input.Tags,
	}
	if input.Completed != nil && *input.Completed && !current.Completed {
		now := time.Now()
		opt.CompletedAt = &now
	}

	affected, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if affected == 0 {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.GetTask(ctx, input.ID, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update reload: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes the task with its tag links and time entries.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	affected, err := uc.repo.DeleteTask(ctx, id, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Reorder assigns positions following the submitted id order. Foreign ids
// are silently ignored.
func (uc *implUseCase) Reorder(ctx context.Context, sc model.Scope, input task.ReorderInput) error {
	if len(input.IDs) == 0 {
		return task.ErrEmptyReorder
	}

	if err := uc.repo.ReorderTasks(ctx, sc.UserID, input.IDs); err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ReorderTasks: %v", err)
		return err
	}
	return nil
}

// ListTags returns the distinct tags used by the caller's tasks.
func (uc *implUseCase) ListTags(ctx context.Context, sc model.Scope) (task.ListTagsOutput, error) {
	tags, err := uc.repo.ListTags(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTags: %v", err)
		return task.ListTagsOutput{}, err
	}
	return task.ListTagsOutput{Tags: tags}, nil
}
