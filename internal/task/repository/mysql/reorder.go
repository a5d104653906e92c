package mysql

import (
	"context"

	repo "task-time-tracker/internal/task/repository"
)

// Positions step by 10 so single tasks can later be wedged between two
// neighbours without renumbering everything.
const orderStep = 10

// ReorderTasks assigns ascending positions following the submitted id
// order, in one transaction. Ids the user does not own are skipped.
func (r *implRepository) ReorderTasks(ctx context.Context, userID int64, ids []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReorderTasks"), err)
		return repo.ErrFailedToReorder
	}

	stmt, err := tx.PrepareContext(ctx,
		"UPDATE tasks SET `order` = ? WHERE id = ? AND user_id = ?")
	if err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("ReorderTasks"), err)
		return repo.ErrFailedToReorder
	}
	defer stmt.Close()

	for idx, id := range ids {
		if _, err := stmt.ExecContext(ctx, idx*orderStep, id, userID); err != nil {
			tx.Rollback()
			r.l.Errorf(ctx, "%s update: %v", r.dsn("ReorderTasks"), err)
			return repo.ErrFailedToReorder
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReorderTasks"), err)
		return repo.ErrFailedToReorder
	}
	return nil
}
