package repository

import (
	"context"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/timeentry"
)

// Repository is the data store contract for the timeentry domain. Every
// method is scoped by the owning user; absent and foreign rows look the same.
type Repository interface {
	// GetOwnedTask returns the task only when it belongs to userID.
	// Zero-value Task (ID == 0) when absent or foreign — no error.
	GetOwnedTask(ctx context.Context, taskID, userID int64) (model.Task, error)

	// ReplaceDayEntries deletes the task's entries whose start time falls on
	// the given calendar day and inserts the segments, in one transaction.
	ReplaceDayEntries(ctx context.Context, opt ReplaceDayEntriesOptions) error

	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]timeentry.HistoryItem, int, error)

	// GetEntry returns a zero-value item (Entry.ID == 0) when absent or foreign.
	GetEntry(ctx context.Context, entryID, userID int64) (timeentry.HistoryItem, error)

	// UpdateEntry returns the number of rows touched (0 when absent or foreign).
	UpdateEntry(ctx context.Context, opt UpdateEntryOptions) (int64, error)

	// DeleteEntry returns the number of rows removed (0 when absent or foreign).
	DeleteEntry(ctx context.Context, entryID, userID int64) (int64, error)
}
