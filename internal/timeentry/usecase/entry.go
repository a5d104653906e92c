package usecase

import (
	"context"
	"time"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/timeentry"
	repo "task-time-tracker/internal/timeentry/repository"
)

// Detail retrieves a single entry. Returns ErrEntryNotFound for absent or
// foreign entries alike.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (timeentry.DetailEntryOutput, error) {
	item, err := uc.repo.GetEntry(ctx, id, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetEntry: %v", err)
		return timeentry.DetailEntryOutput{}, err
	}
	if item.Entry.ID == 0 {
		return timeentry.DetailEntryOutput{}, timeentry.ErrEntryNotFound
	}
	return timeentry.DetailEntryOutput{Item: item}, nil
}

// Update rewrites a single entry in place. The duration is recomputed from
// the new range minus break; the row is not re-segmented across days.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input timeentry.UpdateEntryInput) error {
	if _, err := timeentry.NewTimeRange(input.Start, input.End); err != nil {
		return err
	}
	if input.BreakMinutes < 0 {
		return timeentry.ErrInvalidBreak
	}

	minutes := int(input.End.Sub(input.Start).Round(time.Minute)/time.Minute) - input.BreakMinutes
	if minutes < 0 {
		minutes = 0
	}

	affected, err := uc.repo.UpdateEntry(ctx, repo.UpdateEntryOptions{
		EntryID:         input.ID,
		UserID:          sc.UserID,
		StartTime:       input.Start,
		EndTime:         input.End,
		DurationMinutes: minutes,
		BreakMinutes:    input.BreakMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEntry: %v", err)
		return err
	}
	if affected == 0 {
		return timeentry.ErrEntryNotFound
	}
	return nil
}

// Delete removes a single entry scoped to the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	affected, err := uc.repo.DeleteEntry(ctx, id, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEntry: %v", err)
		return err
	}
	if affected == 0 {
		return timeentry.ErrEntryNotFound
	}
	return nil
}
