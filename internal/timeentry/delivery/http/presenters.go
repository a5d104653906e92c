package http

import (
	"fmt"
	"net/http"
	"time"

	"task-time-tracker/internal/timeentry"
	"task-time-tracker/pkg/response"
)

// --- Request DTOs ---

type recordManualReq struct {
	TaskID       int64  `json:"taskId"       binding:"required,gt=0"`
	StartTime    string `json:"startTime"    binding:"required"`
	EndTime      string `json:"endTime"      binding:"required"`
	BreakMinutes int    `json:"breakMinutes"`

	start time.Time
	end   time.Time
}

func (r *recordManualReq) validate() error {
	var err error
	if r.start, err = time.Parse(time.RFC3339, r.StartTime); err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid start/end time")
	}
	if r.end, err = time.Parse(time.RFC3339, r.EndTime); err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid start/end time")
	}
	return nil
}

func (r *recordManualReq) toInput() timeentry.RecordManualInput {
	return timeentry.RecordManualInput{
		TaskID:       r.TaskID,
		Start:        r.start,
		End:          r.end,
		BreakMinutes: r.BreakMinutes,
	}
}

// ---

type historyReq struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`

	start *time.Time
	end   *time.Time
}

func (r *historyReq) validate() error {
	if r.StartDate == "" && r.EndDate == "" {
		return nil
	}
	if r.StartDate == "" || r.EndDate == "" {
		return response.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required together")
	}
	start, err := parseDateParam(r.StartDate)
	if err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid startDate")
	}
	end, err := parseDateParam(r.EndDate)
	if err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid endDate")
	}
	r.start, r.end = &start, &end
	return nil
}

func (r *historyReq) toInput() timeentry.ListHistoryInput {
	return timeentry.ListHistoryInput{
		Start: r.start,
		End:   r.end,
		Page:  r.Page,
		Limit: r.Limit,
	}
}

// ---

type updateEntryReq struct {
	ID           int64  `json:"-"` // populated from URI param
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime"   binding:"required"`
	BreakMinutes int    `json:"breakMinutes"`

	start time.Time
	end   time.Time
}

func (r *updateEntryReq) validate() error {
	var err error
	if r.start, err = time.Parse(time.RFC3339, r.StartTime); err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid date format")
	}
	if r.end, err = time.Parse(time.RFC3339, r.EndTime); err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid date format")
	}
	return nil
}

func (r *updateEntryReq) toInput() timeentry.UpdateEntryInput {
	return timeentry.UpdateEntryInput{
		ID:           r.ID,
		Start:        r.start,
		End:          r.end,
		BreakMinutes: r.BreakMinutes,
	}
}

// parseDateParam accepts RFC3339 or a bare YYYY-MM-DD date.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// --- Response DTOs ---

type recordManualResp struct {
	Message      string `json:"message"`
	BreakMinutes int    `json:"breakMinutes"`
}

func (h *handler) newRecordManualResp(out timeentry.RecordManualOutput) recordManualResp {
	plural := ""
	if out.SegmentsCreated > 1 {
		plural = "s"
	}
	return recordManualResp{
		Message:      fmt.Sprintf("Time entry recorded (%d segment%s)", out.SegmentsCreated, plural),
		BreakMinutes: out.BreakMinutes,
	}
}

type entryResp struct {
	ID              int64     `json:"id"`
	TaskID          int64     `json:"taskId"`
	TaskTitle       string    `json:"taskTitle"`
	Tags            []string  `json:"tags"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	BreakMinutes    int       `json:"breakMinutes"`
}

func newEntryResp(item timeentry.HistoryItem) entryResp {
	tags := item.TagNames
	if tags == nil {
		tags = []string{}
	}
	return entryResp{
		ID:              item.Entry.ID,
		TaskID:          item.TaskID,
		TaskTitle:       item.TaskTitle,
		Tags:            tags,
		StartTime:       item.Entry.StartTime,
		EndTime:         item.Entry.EndTime,
		DurationMinutes: item.Entry.DurationMinutes,
		BreakMinutes:    item.Entry.BreakMinutes,
	}
}

type historyResp struct {
	TimeEntries []entryResp    `json:"timeEntries"`
	Pagination  paginationResp `json:"pagination"`
}

type paginationResp struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func (h *handler) newHistoryResp(out timeentry.ListHistoryOutput) historyResp {
	entries := make([]entryResp, len(out.Items))
	for i, item := range out.Items {
		entries[i] = newEntryResp(item)
	}
	return historyResp{
		TimeEntries: entries,
		Pagination: paginationResp{
			Page:       out.Page,
			Limit:      out.Limit,
			TotalCount: out.TotalCount,
			TotalPages: out.TotalPages,
		},
	}
}
