package repository

import (
	"time"

	"task-time-tracker/internal/timeentry"
)

// ReplaceDayEntriesOptions holds parameters for the overwrite-and-insert
// transaction. DayStart/DayEnd bound the calendar day being overwritten.
type ReplaceDayEntriesOptions struct {
	TaskID   int64
	DayStart time.Time
	DayEnd   time.Time
	Segments []timeentry.DaySegment
}

// ListEntriesOptions holds filter and pagination parameters for history listing.
type ListEntriesOptions struct {
	UserID int64
	Start  *time.Time
	End    *time.Time
	Limit  int
	Offset int
}

// UpdateEntryOptions holds parameters for updating a single entry, scoped by owner.
type UpdateEntryOptions struct {
	EntryID         int64
	UserID          int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	BreakMinutes    int
}
