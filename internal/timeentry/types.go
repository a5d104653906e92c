package timeentry

import (
	"time"

	"task-time-tracker/internal/model"
)

// MaxMinutesPerDay caps how many minutes a single day's segment may record.
const MaxMinutesPerDay = 8 * 60

// TimeRange is a validated start/end instant interval. Construct via
// NewTimeRange; the zero value is not usable.
type TimeRange struct {
	start time.Time
	end   time.Time
}

// NewTimeRange validates start < end and returns the range.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

// Start returns the range's start instant.
func (r TimeRange) Start() time.Time { return r.start }

// End returns the range's end instant.
func (r TimeRange) End() time.Time { return r.end }

// DaySegment is one calendar-day slice of a submitted range. EndTime carries
// the overall range end, not the day-local boundary, so the persisted record
// keeps the original submission's end alongside the per-day duration.
type DaySegment struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	BreakMinutes    int
}

// --- UseCase Inputs ---

type RecordManualInput struct {
	TaskID       int64
	Start        time.Time
	End          time.Time
	BreakMinutes int
}

type ListHistoryInput struct {
	Start *time.Time
	End   *time.Time
	Page  int
	Limit int
}

type UpdateEntryInput struct {
	ID           int64
	Start        time.Time
	End          time.Time
	BreakMinutes int
}

// --- UseCase Outputs ---

type RecordManualOutput struct {
	SegmentsCreated int
	BreakMinutes    int
}

// HistoryItem is a time entry joined with its task for display.
type HistoryItem struct {
	Entry     model.TimeEntry
	TaskID    int64
	TaskTitle string
	TagNames  []string
}

type ListHistoryOutput struct {
	Items      []HistoryItem
	Page       int
	Limit      int
	TotalCount int
	TotalPages int
}

type DetailEntryOutput struct {
	Item HistoryItem
}
