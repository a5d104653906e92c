package mysql

import (
	"context"
	"database/sql"
	"time"

	"task-time-tracker/internal/dashboard"
	repo "task-time-tracker/internal/dashboard/repository"
)

// TotalMinutes sums duration_minutes of entries owned by the user and
// starting within the range.
func (r *implRepository) TotalMinutes(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	const query = `
		SELECT COALESCE(SUM(te.duration_minutes), 0)
		FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		WHERE t.user_id = ? AND te.start_time >= ? AND te.start_time <= ?`

	var total int
	if err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TotalMinutes"), err)
		return 0, repo.ErrFailedToAggregate
	}
	return total, nil
}

// CompletedTaskCount counts tasks completed within the range.
func (r *implRepository) CompletedTaskCount(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM tasks
		WHERE user_id = ? AND completed = 1 AND completed_at >= ? AND completed_at <= ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompletedTaskCount"), err)
		return 0, repo.ErrFailedToAggregate
	}
	return count, nil
}

// CreatedTaskCount counts tasks created within the range.
func (r *implRepository) CreatedTaskCount(ctx context.Context, userID int64, start, end time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM tasks
		WHERE user_id = ? AND created_at >= ? AND created_at <= ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatedTaskCount"), err)
		return 0, repo.ErrFailedToAggregate
	}
	return count, nil
}

// MinutesByTag sums in-range minutes per tag across the user's tasks.
func (r *implRepository) MinutesByTag(ctx context.Context, userID int64, start, end time.Time) ([]dashboard.TagTime, error) {
	const query = `
		SELECT tg.name, COALESCE(SUM(te.duration_minutes), 0) AS minutes
		FROM tags tg
		JOIN task_tags tt ON tt.tag_id = tg.id
		JOIN tasks t ON t.id = tt.task_id
		JOIN time_entries te ON te.task_id = t.id
		WHERE t.user_id = ? AND te.start_time >= ? AND te.start_time <= ?
		GROUP BY tg.id, tg.name
		ORDER BY minutes DESC, tg.name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MinutesByTag"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	var result []dashboard.TagTime
	for rows.Next() {
		var tt dashboard.TagTime
		if err := rows.Scan(&tt.Tag, &tt.Minutes); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("MinutesByTag"), err)
			return nil, repo.ErrFailedToAggregate
		}
		result = append(result, tt)
	}
	return result, nil
}

// MinutesByProject sums in-range minutes per project across the user's tasks.
func (r *implRepository) MinutesByProject(ctx context.Context, userID int64, start, end time.Time) ([]dashboard.ProjectTime, error) {
	const query = `
		SELECT p.name, COALESCE(SUM(te.duration_minutes), 0) AS minutes
		FROM projects p
		JOIN tasks t ON t.project_id = p.id
		JOIN time_entries te ON te.task_id = t.id
		WHERE t.user_id = ? AND te.start_time >= ? AND te.start_time <= ?
		GROUP BY p.id, p.name
		ORDER BY minutes DESC, p.name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MinutesByProject"), err)
		return nil, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	var result []dashboard.ProjectTime
	for rows.Next() {
		var pt dashboard.ProjectTime
		if err := rows.Scan(&pt.Project, &pt.Minutes); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("MinutesByProject"), err)
			return nil, repo.ErrFailedToAggregate
		}
		result = append(result, pt)
	}
	return result, nil
}

// TopTask returns the task with the most in-range minutes; ties resolve to
// the lowest task id so the result is deterministic.
func (r *implRepository) TopTask(ctx context.Context, userID int64, start, end time.Time) (*dashboard.TopTask, error) {
	const query = `
		SELECT t.id, t.title, COALESCE(SUM(te.duration_minutes), 0) AS minutes
		FROM tasks t
		JOIN time_entries te ON te.task_id = t.id
		WHERE t.user_id = ? AND te.start_time >= ? AND te.start_time <= ?
		GROUP BY t.id, t.title
		ORDER BY minutes DESC, t.id ASC
		LIMIT 1`

	var top dashboard.TopTask
	err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&top.TaskID, &top.Title, &top.Minutes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TopTask"), err)
		return nil, repo.ErrFailedToAggregate
	}
	return &top, nil
}
