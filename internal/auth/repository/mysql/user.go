package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	repo "task-time-tracker/internal/auth/repository"
	"task-time-tracker/internal/model"
)

const duplicateKeyErrNo = 1062

// CreateUser inserts the user row and fills in the assigned ID.
func (r *implRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, role)
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateKeyErrNo {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToCreate
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last insert id: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToCreate
	}
	user.ID = id
	return user, nil
}

// GetUserByEmail returns the zero-value User when no account matches.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	const query = `
		SELECT id, name, email, password_hash, role, created_at
		FROM users WHERE email = ? LIMIT 1`
	return r.getUser(ctx, "GetUserByEmail", query, email)
}

// GetUserByID returns the zero-value User when no account matches.
func (r *implRepository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	const query = `
		SELECT id, name, email, password_hash, role, created_at
		FROM users WHERE id = ? LIMIT 1`
	return r.getUser(ctx, "GetUserByID", query, id)
}

func (r *implRepository) getUser(ctx context.Context, method, query string, arg any) (model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `
		SELECT id, name, email, password_hash, role, created_at
		FROM users ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

func (r *implRepository) UpdateUserRole(ctx context.Context, id int64, role model.Role) (int64, error) {
	const query = `UPDATE users SET role = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, role, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUserRole"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return res.RowsAffected()
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM users WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return 0, repo.ErrFailedToDelete
	}
	return res.RowsAffected()
}

func (r *implRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePassword"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
