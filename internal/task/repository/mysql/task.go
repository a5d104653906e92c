package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"task-time-tracker/internal/model"
	repo "task-time-tracker/internal/task/repository"
)

const taskColumns = `t.id, t.user_id, t.title, t.description, t.priority, t.status,
	       t.due_date, t.completed, t.completed_at, t.progress, t.` + "`order`" + `, t.project_id,
	       t.created_at, t.updated_at`

// ListTasks returns one page of the user's tasks plus the unpaginated total.
// Ordered by the manual position, then newest first.
func (r *implRepository) ListTasks(ctx context.Context, userID int64, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := buildListWhere(userID, opt)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks t WHERE %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`
		SELECT %s,
		       COALESCE(GROUP_CONCAT(DISTINCT tg.name ORDER BY tg.name SEPARATOR ','), '')
		FROM tasks t
		LEFT JOIN task_tags tt ON tt.task_id = t.id
		LEFT JOIN tags tg ON tg.id = tt.tag_id
		WHERE %s
		GROUP BY t.id
		ORDER BY t.`+"`order`"+` ASC, t.created_at DESC
		LIMIT ? OFFSET ?`, taskColumns, where)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// GetTask returns the zero-value Task when absent or foreign.
func (r *implRepository) GetTask(ctx context.Context, id, userID int64) (model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       COALESCE(GROUP_CONCAT(DISTINCT tg.name ORDER BY tg.name SEPARATOR ','), '')
		FROM tasks t
		LEFT JOIN task_tags tt ON tt.task_id = t.id
		LEFT JOIN tags tg ON tg.id = tt.tag_id
		WHERE t.id = ? AND t.user_id = ?
		GROUP BY t.id`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// CreateTask inserts the task at the end of the user's manual order and
// links its tags, creating missing ones, in a single transaction.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToCreate
	}

	var maxOrder int
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(`order`), 0) FROM tasks WHERE user_id = ?", opt.UserID,
	).Scan(&maxOrder); err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s max order: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToCreate
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO tasks (user_id, title, description, priority, status, due_date, project_id, `+"`order`"+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		opt.UserID, opt.Title, opt.Description, opt.Priority, opt.Status,
		opt.DueDate, opt.ProjectID, maxOrder+1)
	if err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToCreate
	}
	taskID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToCreate
	}

	if err := r.linkTags(ctx, tx, taskID, opt.Tags); err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s link tags: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToCreate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToCreate
	}

	return r.GetTask(ctx, taskID, opt.UserID)
}

// UpdateTask applies the set fields and optionally replaces the tag set,
// in one transaction. Returns 0 affected when the task is absent or foreign.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateTask"), err)
		return 0, repo.ErrFailedToUpdate
	}

	// Ownership check up front: MySQL reports 0 affected rows for no-op
	// updates, which must not read as not-found.
	var owned int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM tasks WHERE id = ? AND user_id = ?`, opt.ID, opt.UserID,
	).Scan(&owned)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return 0, nil
	}
	if err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s ownership: %v", r.dsn("UpdateTask"), err)
		return 0, repo.ErrFailedToUpdate
	}

	sets, args := buildUpdateSets(opt)
	if len(sets) > 0 {
		query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = ?`, strings.Join(sets, ", "))
		args = append(args, opt.ID)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tx.Rollback()
			r.l.Errorf(ctx, "%s update: %v", r.dsn("UpdateTask"), err)
			return 0, repo.ErrFailedToUpdate
		}
	}

	if opt.ReplaceTags {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM task_tags WHERE task_id = ?`, opt.ID); err != nil {
			tx.Rollback()
			r.l.Errorf(ctx, "%s clear tags: %v", r.dsn("UpdateTask"), err)
			return 0, repo.ErrFailedToUpdate
		}
		if err := r.linkTags(ctx, tx, opt.ID, opt.Tags); err != nil {
			tx.Rollback()
			r.l.Errorf(ctx, "%s link tags: %v", r.dsn("UpdateTask"), err)
			return 0, repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateTask"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return 1, nil
}

// DeleteTask removes the task; tag links and time entries go with it via
// the schema's cascading foreign keys.
func (r *implRepository) DeleteTask(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return 0, repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("DeleteTask"), err)
		return 0, repo.ErrFailedToDelete
	}
	return affected, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task     model.Task
		tagNames string
	)
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Priority, &task.Status,
		&task.DueDate, &task.Completed, &task.CompletedAt, &task.Progress, &task.Order, &task.ProjectID,
		&task.CreatedAt, &task.UpdatedAt,
		&tagNames,
	)
	if err != nil {
		return model.Task{}, err
	}
	if tagNames != "" {
		for _, name := range strings.Split(tagNames, ",") {
			task.Tags = append(task.Tags, model.Tag{Name: name})
		}
	}
	return task, nil
}

func buildListWhere(userID int64, opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"t.user_id = ?"}
	args := []any{userID}

	if opt.Query != "" {
		conditions = append(conditions, "t.title LIKE ?")
		args = append(args, "%"+opt.Query+"%")
	}
	if opt.Priority != nil {
		conditions = append(conditions, "t.priority = ?")
		args = append(args, *opt.Priority)
	}
	if opt.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, *opt.Status)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "t.completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.DueFrom != nil {
		conditions = append(conditions, "t.due_date >= ?")
		args = append(args, *opt.DueFrom)
	}
	if opt.DueTo != nil {
		conditions = append(conditions, "t.due_date <= ?")
		args = append(args, *opt.DueTo)
	}
	if len(opt.Tags) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(opt.Tags)), ",")
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM task_tags ftt
			JOIN tags ftg ON ftg.id = ftt.tag_id
			WHERE ftt.task_id = t.id AND ftg.name IN (%s))`, placeholders))
		for _, tag := range opt.Tags {
			args = append(args, tag)
		}
	}

	return strings.Join(conditions, " AND "), args
}

func buildUpdateSets(opt repo.UpdateTaskOptions) ([]string, []any) {
	var sets []string
	var args []any

	add := func(col string, val any) {
		sets = append(sets, col+" = ?")
		args = append(args, val)
	}

	if opt.Title != nil {
		add("title", *opt.Title)
	}
	if opt.Description != nil {
		add("description", *opt.Description)
	}
	if opt.Priority != nil {
		add("priority", *opt.Priority)
	}
	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.DueDate != nil {
		add("due_date", *opt.DueDate)
	} else if opt.ClearDue {
		sets = append(sets, "due_date = NULL")
	}
	if opt.Completed != nil {
		add("completed", *opt.Completed)
		if opt.CompletedAt != nil {
			add("completed_at", *opt.CompletedAt)
		} else {
			sets = append(sets, "completed_at = NULL")
		}
	}
	if opt.Progress != nil {
		add("progress", *opt.Progress)
	}
	if opt.ProjectID != nil {
		add("project_id", *opt.ProjectID)
	}

	return sets, args
}
