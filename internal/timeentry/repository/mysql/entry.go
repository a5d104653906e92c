package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"task-time-tracker/internal/model"
	"task-time-tracker/internal/timeentry"
	repo "task-time-tracker/internal/timeentry/repository"
)

// GetOwnedTask retrieves the task only when owned by userID.
// Returns zero-value Task when absent or foreign — do NOT return error for not-found.
func (r *implRepository) GetOwnedTask(ctx context.Context, taskID, userID int64) (model.Task, error) {
	const query = `SELECT id, user_id, title FROM tasks WHERE id = ? AND user_id = ? LIMIT 1`

	var task model.Task
	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(&task.ID, &task.UserID, &task.Title)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOwnedTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ReplaceDayEntries runs the overwrite semantics in one transaction: a crash
// between the delete and the inserts must not lose the day's record.
func (r *implRepository) ReplaceDayEntries(ctx context.Context, opt repo.ReplaceDayEntriesOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReplaceDayEntries"), err)
		return repo.ErrFailedToReplace
	}

	const deleteQuery = `
		DELETE FROM time_entries
		WHERE task_id = ? AND start_time >= ? AND start_time <= ?`
	if _, err := tx.ExecContext(ctx, deleteQuery, opt.TaskID, opt.DayStart, opt.DayEnd); err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceDayEntries"), err)
		return repo.ErrFailedToReplace
	}

	const insertQuery = `
		INSERT INTO time_entries (task_id, start_time, end_time, duration_minutes, break_minutes)
		VALUES (?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("ReplaceDayEntries"), err)
		return repo.ErrFailedToReplace
	}
	defer stmt.Close()

	for _, seg := range opt.Segments {
		if _, err := stmt.ExecContext(ctx, opt.TaskID, seg.StartTime, seg.EndTime, seg.DurationMinutes, seg.BreakMinutes); err != nil {
			tx.Rollback()
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceDayEntries"), err)
			return repo.ErrFailedToReplace
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReplaceDayEntries"), err)
		return repo.ErrFailedToReplace
	}
	return nil
}

// ListEntries returns a page of the user's entries, newest first, with the
// owning task's title and tag names, plus the unpaginated total.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]timeentry.HistoryItem, int, error) {
	where, args := r.buildListWhere(opt)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		WHERE %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEntries"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT te.id, te.task_id, te.start_time, te.end_time, te.duration_minutes, te.break_minutes,
		       t.title,
		       COALESCE(GROUP_CONCAT(DISTINCT tg.name ORDER BY tg.name SEPARATOR ','), '')
		FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		LEFT JOIN task_tags tt ON tt.task_id = t.id
		LEFT JOIN tags tg ON tg.id = tt.tag_id
		WHERE %s
		GROUP BY te.id, te.task_id, te.start_time, te.end_time, te.duration_minutes, te.break_minutes, t.title
		ORDER BY te.start_time DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []timeentry.HistoryItem
	for rows.Next() {
		item, err := scanHistoryItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEntries"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, total, nil
}

// GetEntry returns the entry only when its task is owned by userID.
// Zero-value item when absent or foreign.
func (r *implRepository) GetEntry(ctx context.Context, entryID, userID int64) (timeentry.HistoryItem, error) {
	const query = `
		SELECT te.id, te.task_id, te.start_time, te.end_time, te.duration_minutes, te.break_minutes,
		       t.title,
		       COALESCE(GROUP_CONCAT(DISTINCT tg.name ORDER BY tg.name SEPARATOR ','), '')
		FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		LEFT JOIN task_tags tt ON tt.task_id = t.id
		LEFT JOIN tags tg ON tg.id = tt.tag_id
		WHERE te.id = ? AND t.user_id = ?
		GROUP BY te.id, te.task_id, te.start_time, te.end_time, te.duration_minutes, te.break_minutes, t.title`

	row := r.db.QueryRowContext(ctx, query, entryID, userID)
	item, err := scanHistoryItem(row)
	if err == sql.ErrNoRows {
		return timeentry.HistoryItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEntry"), err)
		return timeentry.HistoryItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// UpdateEntry rewrites one entry, scoped by the owning user.
func (r *implRepository) UpdateEntry(ctx context.Context, opt repo.UpdateEntryOptions) (int64, error) {
	const query = `
		UPDATE time_entries te
		JOIN tasks t ON t.id = te.task_id
		SET te.start_time = ?, te.end_time = ?, te.duration_minutes = ?, te.break_minutes = ?
		WHERE te.id = ? AND t.user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.StartTime, opt.EndTime, opt.DurationMinutes, opt.BreakMinutes, opt.EntryID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntry"), err)
		return 0, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("UpdateEntry"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return affected, nil
}

// DeleteEntry removes one entry, scoped by the owning user.
func (r *implRepository) DeleteEntry(ctx context.Context, entryID, userID int64) (int64, error) {
	const query = `
		DELETE te FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		WHERE te.id = ? AND t.user_id = ?`

	res, err := r.db.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return 0, repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("DeleteEntry"), err)
		return 0, repo.ErrFailedToDelete
	}
	return affected, nil
}

// buildListWhere builds the WHERE clause + args for ListEntries.
func (r *implRepository) buildListWhere(opt repo.ListEntriesOptions) (string, []any) {
	conditions := []string{"t.user_id = ?"}
	args := []any{opt.UserID}

	if opt.Start != nil && opt.End != nil {
		conditions = append(conditions, "te.start_time >= ?", "te.start_time <= ?")
		args = append(args, *opt.Start, *opt.End)
	}

	return strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistoryItem(row rowScanner) (timeentry.HistoryItem, error) {
	var item timeentry.HistoryItem
	var tagNames string
	err := row.Scan(
		&item.Entry.ID, &item.Entry.TaskID, &item.Entry.StartTime, &item.Entry.EndTime,
		&item.Entry.DurationMinutes, &item.Entry.BreakMinutes,
		&item.TaskTitle, &tagNames,
	)
	if err != nil {
		return timeentry.HistoryItem{}, err
	}
	item.TaskID = item.Entry.TaskID
	if tagNames != "" {
		item.TagNames = strings.Split(tagNames, ",")
	}
	return item, nil
}
