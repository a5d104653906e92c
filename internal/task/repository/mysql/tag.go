package mysql

import (
	"context"
	"database/sql"

	"task-time-tracker/internal/model"
	repo "task-time-tracker/internal/task/repository"
)

// linkTags connects the named tags to the task inside tx, creating tags
// that do not exist yet.
func (r *implRepository) linkTags(ctx context.Context, tx *sql.Tx, taskID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}

	for _, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT IGNORE INTO tags (name) VALUES (?)`, name); err != nil {
			return err
		}

		var tagID int64
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM tags WHERE name = ?`, name).Scan(&tagID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)`, taskID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// ListTags returns the distinct tags used by the user's tasks, name-sorted.
func (r *implRepository) ListTags(ctx context.Context, userID int64) ([]model.Tag, error) {
	const query = `
		SELECT DISTINCT tg.id, tg.name
		FROM tags tg
		JOIN task_tags tt ON tt.tag_id = tg.id
		JOIN tasks t ON t.id = tt.task_id
		WHERE t.user_id = ?
		ORDER BY tg.name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTags"), err)
			return nil, repo.ErrFailedToList
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	return tags, nil
}

// GetProject returns the zero-value Project when absent.
func (r *implRepository) GetProject(ctx context.Context, id int64) (model.Project, error) {
	const query = `SELECT id, name FROM projects WHERE id = ? LIMIT 1`

	var project model.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(&project.ID, &project.Name)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProject"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return project, nil
}
