package mysql

import (
	"context"
	"database/sql"

	repo "task-time-tracker/internal/auth/repository"
)

// CreateResetToken stores the token, replacing any outstanding one for the
// same user so only the latest mailed link works.
func (r *implRepository) CreateResetToken(ctx context.Context, opt repo.CreateResetTokenOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateResetToken"), err)
		return repo.ErrFailedToken
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE user_id = ?`, opt.UserID); err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("CreateResetToken"), err)
		return repo.ErrFailedToken
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO password_reset_tokens (token, user_id, expires_at) VALUES (?, ?, ?)`,
		opt.Token, opt.UserID, opt.ExpiresAt); err != nil {
		tx.Rollback()
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateResetToken"), err)
		return repo.ErrFailedToken
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateResetToken"), err)
		return repo.ErrFailedToken
	}
	return nil
}

// GetResetToken returns the zero-value token when absent.
func (r *implRepository) GetResetToken(ctx context.Context, token string) (repo.ResetToken, error) {
	const query = `
		SELECT token, user_id, expires_at
		FROM password_reset_tokens WHERE token = ? LIMIT 1`

	var rt repo.ResetToken
	err := r.db.QueryRowContext(ctx, query, token).Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt)
	if err == sql.ErrNoRows {
		return repo.ResetToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetResetToken"), err)
		return repo.ResetToken{}, repo.ErrFailedToken
	}
	return rt, nil
}

func (r *implRepository) DeleteResetToken(ctx context.Context, token string) error {
	const query = `DELETE FROM password_reset_tokens WHERE token = ?`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteResetToken"), err)
		return repo.ErrFailedToken
	}
	return nil
}
