package usecase_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/task"
	"task-time-tracker/internal/task/repository"
	"task-time-tracker/internal/task/usecase"
	"task-time-tracker/pkg/gcalendar"
	"task-time-tracker/pkg/log"
)

type fakeRepo struct {
	nextID   int64
	tasks    map[int64]model.Task
	projects map[int64]model.Project
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:   1,
		tasks:    make(map[int64]model.Task),
		projects: make(map[int64]model.Project),
	}
}

func (f *fakeRepo) ownedSorted(userID int64) []model.Task {
	var out []model.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeRepo) ListTasks(ctx context.Context, userID int64, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var filtered []model.Task
	for _, t := range f.ownedSorted(userID) {
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.Priority != nil && t.Priority != *opt.Priority {
			continue
		}
		filtered = append(filtered, t)
	}
	total := len(filtered)
	if opt.Offset >= len(filtered) {
		return nil, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[opt.Offset:end], total, nil
}

func (f *fakeRepo) GetTask(ctx context.Context, id, userID int64) (model.Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return model.Task{}, nil
	}
	return t, nil
}

func (f *fakeRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	maxOrder := 0
	for _, t := range f.tasks {
		if t.UserID == opt.UserID && t.Order > maxOrder {
			maxOrder = t.Order
		}
	}

	t := model.Task{
		ID:          f.nextID,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Status:      opt.Status,
		DueDate:     opt.DueDate,
		ProjectID:   opt.ProjectID,
		Order:       maxOrder + 1,
		CreatedAt:   time.Now(),
	}
	for _, name := range opt.Tags {
		t.Tags = append(t.Tags, model.Tag{Name: name})
	}
	f.nextID++
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (int64, error) {
	t, ok := f.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return 0, nil
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
		t.CompletedAt = opt.CompletedAt
	}
	if opt.Progress != nil {
		t.Progress = *opt.Progress
	}
	if opt.ReplaceTags {
		t.Tags = nil
		for _, name := range opt.Tags {
			t.Tags = append(t.Tags, model.Tag{Name: name})
		}
	}
	f.tasks[opt.ID] = t
	return 1, nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, id, userID int64) (int64, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return 0, nil
	}
	delete(f.tasks, id)
	return 1, nil
}

func (f *fakeRepo) ReorderTasks(ctx context.Context, userID int64, ids []int64) error {
	for idx, id := range ids {
		t, ok := f.tasks[id]
		if !ok || t.UserID != userID {
			continue
		}
		t.Order = idx * 10
		f.tasks[id] = t
	}
	return nil
}

func (f *fakeRepo) GetProject(ctx context.Context, id int64) (model.Project, error) {
	return f.projects[id], nil
}

func (f *fakeRepo) ListTags(ctx context.Context, userID int64) ([]model.Tag, error) {
	seen := map[string]bool{}
	var tags []model.Tag
	for _, t := range f.tasks {
		if t.UserID != userID {
			continue
		}
		for _, tag := range t.Tags {
			if !seen[tag.Name] {
				seen[tag.Name] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

type fakeCalendar struct {
	created []gcalendar.CreateEventRequest
	err     error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{ID: "evt", Summary: req.Summary}, nil
}

var (
	alice = model.Scope{UserID: 1, Role: model.RoleUser}
	bob   = model.Scope{UserID: 2, Role: model.RoleUser}
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and ordering", func(t *testing.T) {
		repo := newFakeRepo()
		uc := usecase.New(repo, nil, log.NewNop())

		first, err := uc.Create(ctx, alice, task.CreateInput{Title: "First"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if first.Task.Priority != model.PriorityMedium || first.Task.Status != model.StatusNotStarted {
			t.Errorf("defaults not applied: %+v", first.Task)
		}

		second, err := uc.Create(ctx, alice, task.CreateInput{Title: "Second", Tags: []string{"work"}})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if second.Task.Order <= first.Task.Order {
			t.Errorf("new task not appended: first=%d second=%d", first.Task.Order, second.Task.Order)
		}
		if len(second.Task.Tags) != 1 || second.Task.Tags[0].Name != "work" {
			t.Errorf("tags not connected: %+v", second.Task.Tags)
		}
	})

	t.Run("unknown project rejected", func(t *testing.T) {
		repo := newFakeRepo()
		uc := usecase.New(repo, nil, log.NewNop())

		pid := int64(42)
		_, err := uc.Create(ctx, alice, task.CreateInput{Title: "X", ProjectID: &pid})
		if !errors.Is(err, task.ErrProjectNotFound) {
			t.Errorf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("due date mirrored to calendar", func(t *testing.T) {
		repo := newFakeRepo()
		cal := &fakeCalendar{}
		uc := usecase.New(repo, cal, log.NewNop())

		due := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		if _, err := uc.Create(ctx, alice, task.CreateInput{Title: "Demo", DueDate: &due}); err != nil {
			t.Fatalf("create: %v", err)
		}
		if len(cal.created) != 1 || cal.created[0].Summary != "Demo" {
			t.Errorf("expected one calendar event, got %+v", cal.created)
		}
	})

	t.Run("calendar failure does not fail the create", func(t *testing.T) {
		repo := newFakeRepo()
		cal := &fakeCalendar{err: errors.New("calendar down")}
		uc := usecase.New(repo, cal, log.NewNop())

		due := time.Now()
		out, err := uc.Create(ctx, alice, task.CreateInput{Title: "Demo", DueDate: &due})
		if err != nil {
			t.Fatalf("create failed on calendar error: %v", err)
		}
		if out.Task.ID == 0 {
			t.Error("task not persisted")
		}
	})
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := usecase.New(repo, nil, log.NewNop())

	for i := 0; i < 5; i++ {
		if _, err := uc.Create(ctx, alice, task.CreateInput{Title: "T"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := uc.Create(ctx, bob, task.CreateInput{Title: "Foreign"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := uc.List(ctx, alice, task.ListInput{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 5 {
		t.Errorf("foreign tasks counted: total=%d", out.Total)
	}
	if len(out.Tasks) != 2 || out.Page != 2 || out.Limit != 2 {
		t.Errorf("unexpected page: %d tasks, page=%d limit=%d", len(out.Tasks), out.Page, out.Limit)
	}

	t.Run("limit clamped", func(t *testing.T) {
		out, err := uc.List(ctx, alice, task.ListInput{Limit: 500})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if out.Limit != task.MaxPageSize {
			t.Errorf("limit not clamped: %d", out.Limit)
		}
	})
}

func TestUpdateCompletedAt(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := usecase.New(repo, nil, log.NewNop())

	created, err := uc.Create(ctx, alice, task.CreateInput{Title: "Track me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done := true
	out, err := uc.Update(ctx, alice, task.UpdateInput{ID: created.Task.ID, Completed: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !out.Task.Completed || out.Task.CompletedAt == nil {
		t.Errorf("completed flip did not set CompletedAt: %+v", out.Task)
	}

	undone := false
	out, err = uc.Update(ctx, alice, task.UpdateInput{ID: created.Task.ID, Completed: &undone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Task.Completed || out.Task.CompletedAt != nil {
		t.Errorf("uncomplete did not clear CompletedAt: %+v", out.Task)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := usecase.New(repo, nil, log.NewNop())

	created, err := uc.Create(ctx, alice, task.CreateInput{Title: "Private"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Task.ID

	if _, err := uc.Detail(ctx, bob, id); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("detail: foreign task visible: %v", err)
	}
	title := "Hijacked"
	if _, err := uc.Update(ctx, bob, task.UpdateInput{ID: id, Title: &title}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("update: foreign task writable: %v", err)
	}
	if err := uc.Delete(ctx, bob, id); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("delete: foreign task deletable: %v", err)
	}
	if _, err := uc.Detail(ctx, alice, id); err != nil {
		t.Errorf("owner lost access: %v", err)
	}
}

func TestReorder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := usecase.New(repo, nil, log.NewNop())

	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		out, err := uc.Create(ctx, alice, task.CreateInput{Title: title})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, out.Task.ID)
	}
	foreign, err := uc.Create(ctx, bob, task.CreateInput{Title: "foreign"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Reverse, with a foreign id smuggled in.
	submitted := []int64{ids[2], foreign.Task.ID, ids[0], ids[1]}
	if err := uc.Reorder(ctx, alice, task.ReorderInput{IDs: submitted}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	out, err := uc.List(ctx, alice, task.ListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{out.Tasks[0].Title, out.Tasks[1].Title, out.Tasks[2].Title}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after reorder: got %v want %v", got, want)
		}
	}

	// Foreign task untouched.
	if repo.tasks[foreign.Task.ID].Order != 1 {
		t.Errorf("foreign task reordered: %+v", repo.tasks[foreign.Task.ID])
	}

	if err := uc.Reorder(ctx, alice, task.ReorderInput{}); !errors.Is(err, task.ErrEmptyReorder) {
		t.Errorf("expected ErrEmptyReorder, got %v", err)
	}
}

func TestListTags(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := usecase.New(repo, nil, log.NewNop())

	if _, err := uc.Create(ctx, alice, task.CreateInput{Title: "a", Tags: []string{"work", "deep"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Create(ctx, alice, task.CreateInput{Title: "b", Tags: []string{"work"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Create(ctx, bob, task.CreateInput{Title: "c", Tags: []string{"secret"}}); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := uc.ListTags(ctx, alice)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(out.Tags) != 2 || out.Tags[0].Name != "deep" || out.Tags[1].Name != "work" {
		t.Errorf("unexpected tags: %+v", out.Tags)
	}
}
