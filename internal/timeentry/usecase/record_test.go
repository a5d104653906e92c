package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/timeentry"
	"task-time-tracker/internal/timeentry/repository"
	"task-time-tracker/internal/timeentry/usecase"
	"task-time-tracker/pkg/log"
)

// fakeRepo is an in-memory Repository that mimics the ownership scoping and
// overwrite semantics of the MySQL implementation.
type fakeRepo struct {
	tasks   map[int64]model.Task // id -> task (UserID set)
	entries []model.TimeEntry
	nextID  int64

	failReplace bool
	replaceOpts []repository.ReplaceDayEntriesOptions
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[int64]model.Task{}, nextID: 1}
}

func (f *fakeRepo) GetOwnedTask(ctx context.Context, taskID, userID int64) (model.Task, error) {
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != userID {
		return model.Task{}, nil
	}
	return t, nil
}

func (f *fakeRepo) ReplaceDayEntries(ctx context.Context, opt repository.ReplaceDayEntriesOptions) error {
	if f.failReplace {
		return errors.New("db down")
	}
	f.replaceOpts = append(f.replaceOpts, opt)

	kept := f.entries[:0]
	for _, e := range f.entries {
		inWindow := e.TaskID == opt.TaskID &&
			!e.StartTime.Before(opt.DayStart) && !e.StartTime.After(opt.DayEnd)
		if !inWindow {
			kept = append(kept, e)
		}
	}
	f.entries = kept

	for _, seg := range opt.Segments {
		f.entries = append(f.entries, model.TimeEntry{
			ID:              f.nextID,
			TaskID:          opt.TaskID,
			StartTime:       seg.StartTime,
			EndTime:         seg.EndTime,
			DurationMinutes: seg.DurationMinutes,
			BreakMinutes:    seg.BreakMinutes,
		})
		f.nextID++
	}
	return nil
}

func (f *fakeRepo) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]timeentry.HistoryItem, int, error) {
	var items []timeentry.HistoryItem
	for _, e := range f.entries {
		t := f.tasks[e.TaskID]
		if t.UserID != opt.UserID {
			continue
		}
		items = append(items, timeentry.HistoryItem{Entry: e, TaskID: e.TaskID, TaskTitle: t.Title})
	}
	return items, len(items), nil
}

func (f *fakeRepo) GetEntry(ctx context.Context, entryID, userID int64) (timeentry.HistoryItem, error) {
	for _, e := range f.entries {
		if e.ID == entryID && f.tasks[e.TaskID].UserID == userID {
			return timeentry.HistoryItem{Entry: e, TaskID: e.TaskID}, nil
		}
	}
	return timeentry.HistoryItem{}, nil
}

func (f *fakeRepo) UpdateEntry(ctx context.Context, opt repository.UpdateEntryOptions) (int64, error) {
	for i, e := range f.entries {
		if e.ID == opt.EntryID && f.tasks[e.TaskID].UserID == opt.UserID {
			f.entries[i].StartTime = opt.StartTime
			f.entries[i].EndTime = opt.EndTime
			f.entries[i].DurationMinutes = opt.DurationMinutes
			f.entries[i].BreakMinutes = opt.BreakMinutes
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRepo) DeleteEntry(ctx context.Context, entryID, userID int64) (int64, error) {
	for i, e := range f.entries {
		if e.ID == entryID && f.tasks[e.TaskID].UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestRecordManual(t *testing.T) {
	ctx := context.Background()
	owner := model.Scope{UserID: 1}
	other := model.Scope{UserID: 2}

	setup := func() (*fakeRepo, timeentry.UseCase) {
		repo := newFakeRepo()
		repo.tasks[10] = model.Task{ID: 10, UserID: 1, Title: "Write report"}
		repo.tasks[20] = model.Task{ID: 20, UserID: 2, Title: "Someone else's"}
		return repo, usecase.New(repo, log.NewNop())
	}

	day := func(d, h, min int) time.Time {
		return time.Date(2024, 1, d, h, min, 0, 0, time.UTC)
	}

	t.Run("single day", func(t *testing.T) {
		repo, uc := setup()
		out, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 9, 0), End: day(1, 12, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SegmentsCreated != 1 {
			t.Errorf("expected 1 segment, got %d", out.SegmentsCreated)
		}
		if len(repo.entries) != 1 || repo.entries[0].DurationMinutes != 180 {
			t.Errorf("unexpected entries: %+v", repo.entries)
		}
	})

	t.Run("overnight range with break", func(t *testing.T) {
		repo, uc := setup()
		out, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 22, 0), End: day(2, 2, 0), BreakMinutes: 30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SegmentsCreated != 2 {
			t.Fatalf("expected 2 segments, got %d", out.SegmentsCreated)
		}
		if repo.entries[0].DurationMinutes != 89 || repo.entries[1].DurationMinutes != 90 {
			t.Errorf("expected durations 89/90, got %d/%d",
				repo.entries[0].DurationMinutes, repo.entries[1].DurationMinutes)
		}
	})

	t.Run("resubmit replaces same-day entries", func(t *testing.T) {
		repo, uc := setup()
		if _, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 9, 0), End: day(1, 12, 0),
		}); err != nil {
			t.Fatalf("first record: %v", err)
		}
		if _, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 13, 0), End: day(1, 15, 0),
		}); err != nil {
			t.Fatalf("second record: %v", err)
		}
		if len(repo.entries) != 1 {
			t.Fatalf("expected overwrite, got %d entries", len(repo.entries))
		}
		if repo.entries[0].DurationMinutes != 120 {
			t.Errorf("expected the second submission to win, got %d minutes", repo.entries[0].DurationMinutes)
		}
	})

	t.Run("overwrite window is the start day only", func(t *testing.T) {
		repo, uc := setup()
		if _, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(2, 9, 0), End: day(2, 11, 0),
		}); err != nil {
			t.Fatalf("day-2 record: %v", err)
		}
		// New range starts day 1 and spills into day 2: the old day-2 entry survives.
		if _, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 22, 0), End: day(2, 2, 0),
		}); err != nil {
			t.Fatalf("overnight record: %v", err)
		}
		if len(repo.entries) != 3 {
			t.Errorf("expected day-2 entry to survive plus 2 new segments, got %d entries", len(repo.entries))
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 12, 0), End: day(1, 9, 0),
		})
		if err != timeentry.ErrInvalidRange {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("negative break", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 9, 0), End: day(1, 10, 0), BreakMinutes: -5,
		})
		if err != timeentry.ErrInvalidBreak {
			t.Errorf("expected ErrInvalidBreak, got %v", err)
		}
	})

	t.Run("foreign task looks absent", func(t *testing.T) {
		repo, uc := setup()
		_, err := uc.RecordManual(ctx, other, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 9, 0), End: day(1, 10, 0),
		})
		if err != timeentry.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound for foreign task, got %v", err)
		}
		if len(repo.replaceOpts) != 0 {
			t.Error("no persistence call should happen for a foreign task")
		}
	})

	t.Run("validation precedes side effects", func(t *testing.T) {
		repo, uc := setup()
		uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 10, 0), End: day(1, 9, 0),
		})
		if len(repo.replaceOpts) != 0 {
			t.Error("invalid input must fail before touching the store")
		}
	})

	t.Run("repo failure surfaces", func(t *testing.T) {
		repo, uc := setup()
		repo.failReplace = true
		_, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
			TaskID: 10, Start: day(1, 9, 0), End: day(1, 10, 0),
		})
		if err == nil {
			t.Error("expected persistence failure to propagate")
		}
	})
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	ctx := context.Background()
	owner := model.Scope{UserID: 1}
	other := model.Scope{UserID: 2}

	repo := newFakeRepo()
	repo.tasks[10] = model.Task{ID: 10, UserID: 1, Title: "Mine"}
	uc := usecase.New(repo, log.NewNop())

	start := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	if _, err := uc.RecordManual(ctx, owner, timeentry.RecordManualInput{
		TaskID: 10, Start: start, End: start.Add(2 * time.Hour),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	entryID := repo.entries[0].ID

	t.Run("update recomputes duration", func(t *testing.T) {
		err := uc.Update(ctx, owner, timeentry.UpdateEntryInput{
			ID: entryID, Start: start, End: start.Add(90 * time.Minute), BreakMinutes: 15,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.entries[0].DurationMinutes != 75 {
			t.Errorf("expected 75 minutes, got %d", repo.entries[0].DurationMinutes)
		}
	})

	t.Run("foreign update looks absent", func(t *testing.T) {
		err := uc.Update(ctx, other, timeentry.UpdateEntryInput{
			ID: entryID, Start: start, End: start.Add(time.Hour),
		})
		if err != timeentry.ErrEntryNotFound {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("foreign delete looks absent", func(t *testing.T) {
		if err := uc.Delete(ctx, other, entryID); err != timeentry.ErrEntryNotFound {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
		if len(repo.entries) != 1 {
			t.Error("foreign delete must not remove the row")
		}
	})

	t.Run("owner delete", func(t *testing.T) {
		if err := uc.Delete(ctx, owner, entryID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(ctx, owner, entryID); err != timeentry.ErrEntryNotFound {
			t.Errorf("expected ErrEntryNotFound after delete, got %v", err)
		}
	})
}
