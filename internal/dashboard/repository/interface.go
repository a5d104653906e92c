package repository

import (
	"context"
	"time"

	"task-time-tracker/internal/dashboard"
)

// Repository is the read-side contract for dashboard aggregations. Every
// query is scoped to the owning user and the given inclusive date range.
type Repository interface {
	// TotalMinutes sums duration_minutes of the user's entries starting in range.
	TotalMinutes(ctx context.Context, userID int64, start, end time.Time) (int, error)

	// CompletedTaskCount counts the user's tasks completed within the range.
	CompletedTaskCount(ctx context.Context, userID int64, start, end time.Time) (int, error)

	// CreatedTaskCount counts the user's tasks created within the range.
	CreatedTaskCount(ctx context.Context, userID int64, start, end time.Time) (int, error)

	// MinutesByTag sums in-range entry minutes per tag, sorted descending.
	MinutesByTag(ctx context.Context, userID int64, start, end time.Time) ([]dashboard.TagTime, error)

	// MinutesByProject sums in-range entry minutes per project, sorted descending.
	MinutesByProject(ctx context.Context, userID int64, start, end time.Time) ([]dashboard.ProjectTime, error)

	// TopTask returns the task with the most in-range minutes, nil when the
	// range holds no entries.
	TopTask(ctx context.Context, userID int64, start, end time.Time) (*dashboard.TopTask, error)
}
