package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-time-tracker/internal/dashboard"
	"task-time-tracker/internal/dashboard/usecase"
	"task-time-tracker/internal/model"
	"task-time-tracker/pkg/log"
)

// fakeRepo returns canned aggregates per user, mimicking ownership scoping.
type fakeRepo struct {
	minutesByUser   map[int64][]int
	completedByUser map[int64]int
	createdByUser   map[int64]int
	tags            []dashboard.TagTime
	projects        []dashboard.ProjectTime
	top             *dashboard.TopTask

	failTotal bool
	failTags  bool
}

func (f *fakeRepo) TotalMinutes(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	if f.failTotal {
		return 0, errors.New("aggregate failed")
	}
	sum := 0
	for _, m := range f.minutesByUser[userID] {
		sum += m
	}
	return sum, nil
}

func (f *fakeRepo) CompletedTaskCount(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	return f.completedByUser[userID], nil
}

func (f *fakeRepo) CreatedTaskCount(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	return f.createdByUser[userID], nil
}

func (f *fakeRepo) MinutesByTag(ctx context.Context, userID int64, start, end time.Time) ([]dashboard.TagTime, error) {
	if f.failTags {
		return nil, errors.New("tag aggregate failed")
	}
	return f.tags, nil
}

func (f *fakeRepo) MinutesByProject(ctx context.Context, userID int64, start, end time.Time) ([]dashboard.ProjectTime, error) {
	return f.projects, nil
}

func (f *fakeRepo) TopTask(ctx context.Context, userID int64, start, end time.Time) (*dashboard.TopTask, error) {
	return f.top, nil
}

func testRange() dashboard.Range {
	return dashboard.Range{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestTotalTime(t *testing.T) {
	repo := &fakeRepo{minutesByUser: map[int64][]int{1: {60, 45, 30}}}
	uc := usecase.New(repo, log.NewNop())

	out, err := uc.TotalTime(context.Background(), model.Scope{UserID: 1}, testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalMinutes != 135 {
		t.Errorf("expected 135 minutes, got %d", out.TotalMinutes)
	}
	if out.TotalHours != 2.25 {
		t.Errorf("expected 2.25 hours, got %v", out.TotalHours)
	}

	// Another caller's entries are invisible.
	out, err = uc.TotalTime(context.Background(), model.Scope{UserID: 2}, testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalMinutes != 0 {
		t.Errorf("expected 0 minutes for other user, got %d", out.TotalMinutes)
	}
}

func TestProgressRate(t *testing.T) {
	tests := []struct {
		name      string
		created   int
		completed int
		want      float64
	}{
		{name: "half done", created: 4, completed: 2, want: 50},
		{name: "all done", created: 3, completed: 3, want: 100},
		{name: "nothing created", created: 0, completed: 0, want: 0},
		{name: "completed but created elsewhere", created: 0, completed: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{
				createdByUser:   map[int64]int{1: tt.created},
				completedByUser: map[int64]int{1: tt.completed},
			}
			uc := usecase.New(repo, log.NewNop())

			out, err := uc.ProgressRate(context.Background(), model.Scope{UserID: 1}, testRange())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.ProgressRate != tt.want {
				t.Errorf("expected rate %v, got %v", tt.want, out.ProgressRate)
			}
		})
	}
}

func TestTopTask(t *testing.T) {
	t.Run("no entries yields nil", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop())
		out, err := uc.TopTask(context.Background(), model.Scope{UserID: 1}, testRange())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != nil {
			t.Errorf("expected nil top task, got %+v", out.Task)
		}
	})

	t.Run("with entries", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{top: &dashboard.TopTask{TaskID: 3, Title: "Design", Minutes: 200}}, log.NewNop())
		out, err := uc.TopTask(context.Background(), model.Scope{UserID: 1}, testRange())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task == nil || out.Task.Title != "Design" || out.Minutes != 200 {
			t.Errorf("unexpected top task: %+v", out)
		}
	})
}

func TestSummary(t *testing.T) {
	t.Run("composes all queries", func(t *testing.T) {
		repo := &fakeRepo{
			minutesByUser:   map[int64][]int{1: {60, 45, 30}},
			completedByUser: map[int64]int{1: 2},
			createdByUser:   map[int64]int{1: 4},
			tags:            []dashboard.TagTime{{Tag: "work", Minutes: 90}, {Tag: "study", Minutes: 45}},
			projects:        []dashboard.ProjectTime{{Project: "Apollo", Minutes: 135}},
			top:             &dashboard.TopTask{TaskID: 1, Title: "Report", Minutes: 90},
		}
		uc := usecase.New(repo, log.NewNop())

		out, err := uc.Summary(context.Background(), model.Scope{UserID: 1}, testRange())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.TotalMinutes != 135 || out.TotalHours != 2.25 {
			t.Errorf("unexpected totals: %d min / %v h", out.TotalMinutes, out.TotalHours)
		}
		if out.CompletedTasks != 2 {
			t.Errorf("expected 2 completed, got %d", out.CompletedTasks)
		}
		if out.ProgressRate != 50 {
			t.Errorf("expected rate 50, got %v", out.ProgressRate)
		}
		if len(out.Tags) != 2 || out.Tags[0].Tag != "work" {
			t.Errorf("unexpected tags: %+v", out.Tags)
		}
		if len(out.Projects) != 1 || out.Projects[0].Minutes != 135 {
			t.Errorf("unexpected projects: %+v", out.Projects)
		}
		if out.TopTask == nil || out.TopTask.Title != "Report" {
			t.Errorf("unexpected top task: %+v", out.TopTask)
		}
	})

	t.Run("any failure fails the whole summary", func(t *testing.T) {
		repo := &fakeRepo{
			minutesByUser:   map[int64][]int{1: {60}},
			completedByUser: map[int64]int{1: 1},
			createdByUser:   map[int64]int{1: 1},
			failTags:        true,
		}
		uc := usecase.New(repo, log.NewNop())

		if _, err := uc.Summary(context.Background(), model.Scope{UserID: 1}, testRange()); err == nil {
			t.Error("expected error when a sub-query fails")
		}
	})

	t.Run("total failure also fails", func(t *testing.T) {
		repo := &fakeRepo{failTotal: true,
			completedByUser: map[int64]int{}, createdByUser: map[int64]int{}}
		uc := usecase.New(repo, log.NewNop())

		if _, err := uc.Summary(context.Background(), model.Scope{UserID: 1}, testRange()); err == nil {
			t.Error("expected error when the total query fails")
		}
	})
}
