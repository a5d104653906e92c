package usecase

import (
	"context"
	"time"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/timeentry"
	repo "task-time-tracker/internal/timeentry/repository"
)

// RecordManual validates the submitted range, resolves task ownership, then
// atomically replaces the task's entries for the range's start day with the
// per-day segments. Validation happens before any side effect.
func (uc *implUseCase) RecordManual(ctx context.Context, sc model.Scope, input timeentry.RecordManualInput) (timeentry.RecordManualOutput, error) {
	r, err := timeentry.NewTimeRange(input.Start, input.End)
	if err != nil {
		return timeentry.RecordManualOutput{}, err
	}
	if input.BreakMinutes < 0 {
		return timeentry.RecordManualOutput{}, timeentry.ErrInvalidBreak
	}

	// Ownership and existence are indistinguishable to the caller.
	task, err := uc.repo.GetOwnedTask(ctx, input.TaskID, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordManual GetOwnedTask: %v", err)
		return timeentry.RecordManualOutput{}, err
	}
	if task.ID == 0 {
		return timeentry.RecordManualOutput{}, timeentry.ErrTaskNotFound
	}

	segments := timeentry.SplitDays(r, input.BreakMinutes, timeentry.MaxMinutesPerDay)

	// Overwrite window covers only the calendar day the new range starts on.
	dayStart, dayEnd := dayBounds(r.Start())
	err = uc.repo.ReplaceDayEntries(ctx, repo.ReplaceDayEntriesOptions{
		TaskID:   input.TaskID,
		DayStart: dayStart,
		DayEnd:   dayEnd,
		Segments: segments,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordManual ReplaceDayEntries: %v", err)
		return timeentry.RecordManualOutput{}, err
	}

	return timeentry.RecordManualOutput{
		SegmentsCreated: len(segments),
		BreakMinutes:    input.BreakMinutes,
	}, nil
}

// dayBounds returns 00:00:00.000 and 23:59:59.999 of t's calendar day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}
