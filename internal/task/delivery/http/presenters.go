package http

import (
	"net/http"
	"strings"
	"time"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/task"
	"task-time-tracker/pkg/response"
)

type listReq struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Query     string `form:"q"`
	Priority  string `form:"priority"`
	Status    string `form:"status"`
	Completed *bool  `form:"completed"`
	DueFrom   string `form:"dueFrom"`
	DueTo     string `form:"dueTo"`
	// Comma-separated tag names; a task matches when it carries any of them.
	Tags string `form:"tags"`

	input task.ListInput
}

func (r *listReq) validate() error {
	r.input = task.ListInput{
		Page:      r.Page,
		Limit:     r.Limit,
		Query:     strings.TrimSpace(r.Query),
		Completed: r.Completed,
	}

	if r.Priority != "" {
		p, err := parsePriority(r.Priority)
		if err != nil {
			return err
		}
		r.input.Priority = &p
	}
	if r.Status != "" {
		s, err := parseStatus(r.Status)
		if err != nil {
			return err
		}
		r.input.Status = &s
	}
	if r.DueFrom != "" {
		t, err := parseDateParam(r.DueFrom)
		if err != nil {
			return response.NewHTTPError(http.StatusBadRequest, "Invalid dueFrom")
		}
		r.input.DueFrom = &t
	}
	if r.DueTo != "" {
		t, err := parseDateParam(r.DueTo)
		if err != nil {
			return response.NewHTTPError(http.StatusBadRequest, "Invalid dueTo")
		}
		r.input.DueTo = &t
	}
	if r.Tags != "" {
		for _, tag := range strings.Split(r.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				r.input.Tags = append(r.input.Tags, tag)
			}
		}
	}
	return nil
}

func (r *listReq) toInput() task.ListInput {
	return r.input
}

// ---

type createReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	DueDate     *string  `json:"dueDate"`
	ProjectID   *int64   `json:"projectId"`
	Tags        []string `json:"tags"`

	input task.CreateInput
}

func (r *createReq) validate() error {
	r.input = task.CreateInput{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		ProjectID:   r.ProjectID,
		Tags:        cleanTags(r.Tags),
	}
	if r.input.Title == "" {
		return response.NewHTTPError(http.StatusBadRequest, "Title is required")
	}

	if r.Priority != "" {
		p, err := parsePriority(r.Priority)
		if err != nil {
			return err
		}
		r.input.Priority = p
	}
	if r.Status != "" {
		s, err := parseStatus(r.Status)
		if err != nil {
			return err
		}
		r.input.Status = s
	}
	if r.DueDate != nil {
		t, err := time.Parse(time.RFC3339, *r.DueDate)
		if err != nil {
			return response.NewHTTPError(http.StatusBadRequest, "Invalid dueDate")
		}
		r.input.DueDate = &t
	}
	return nil
}

func (r *createReq) toInput() task.CreateInput {
	return r.input
}

// ---

type updateReq struct {
	ID          int64    `json:"-"` // populated from URI param
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	Status      *string  `json:"status"`
	DueDate     *string  `json:"dueDate"`
	Completed   *bool    `json:"completed"`
	Progress    *int     `json:"progress"`
	ProjectID   *int64   `json:"projectId"`
	Tags        []string `json:"tags"`

	input task.UpdateInput
}

func (r *updateReq) validate() error {
	r.input = task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		ProjectID:   r.ProjectID,
	}

	if r.Priority != nil {
		p, err := parsePriority(*r.Priority)
		if err != nil {
			return err
		}
		r.input.Priority = &p
	}
	if r.Status != nil {
		s, err := parseStatus(*r.Status)
		if err != nil {
			return err
		}
		r.input.Status = &s
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			r.input.ClearDue = true
		} else {
			t, err := time.Parse(time.RFC3339, *r.DueDate)
			if err != nil {
				return response.NewHTTPError(http.StatusBadRequest, "Invalid dueDate")
			}
			r.input.DueDate = &t
		}
	}
	if r.Progress != nil {
		if *r.Progress < 0 || *r.Progress > 100 {
			return response.NewHTTPError(http.StatusBadRequest, "Progress must be between 0 and 100")
		}
		r.input.Progress = r.Progress
	}
	if r.Tags != nil {
		r.input.Tags = cleanTags(r.Tags)
	}
	return nil
}

func (r *updateReq) toInput() task.UpdateInput {
	return r.input
}

// ---

type reorderReq struct {
	IDs []int64 `json:"ids" binding:"required"`
}

func (r *reorderReq) toInput() task.ReorderInput {
	return task.ReorderInput{IDs: r.IDs}
}

// --- helpers ---

func parsePriority(s string) (model.Priority, error) {
	p := model.Priority(strings.ToUpper(s))
	switch p {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return p, nil
	}
	return "", response.NewHTTPError(http.StatusBadRequest, "Invalid priority")
}

func parseStatus(s string) (model.Status, error) {
	st := model.Status(strings.ToUpper(s))
	switch st {
	case model.StatusNotStarted, model.StatusInProgress, model.StatusDone:
		return st, nil
	}
	return "", response.NewHTTPError(http.StatusBadRequest, "Invalid status")
}

// parseDateParam accepts RFC3339 or a bare YYYY-MM-DD date.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func cleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	Progress    int        `json:"progress"`
	Order       int        `json:"order"`
	ProjectID   *int64     `json:"projectId"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	tags := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = tag.Name
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		Progress:    t.Progress,
		Order:       t.Order,
		ProjectID:   t.ProjectID,
		Tags:        tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

func newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total, Page: out.Page, Limit: out.Limit}
}

type tagResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type listTagsResp struct {
	Tags []tagResp `json:"tags"`
}

func newListTagsResp(out task.ListTagsOutput) listTagsResp {
	tags := make([]tagResp, len(out.Tags))
	for i, tag := range out.Tags {
		tags[i] = tagResp{ID: tag.ID, Name: tag.Name}
	}
	return listTagsResp{Tags: tags}
}
