package usecase

import (
	"context"

	"task-time-tracker/internal/auth"
	"task-time-tracker/internal/model"
)

// ListUsers returns every account. Admin only.
func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope) (auth.ListUsersOutput, error) {
	if !sc.IsAdmin() {
		return auth.ListUsersOutput{}, auth.ErrForbidden
	}

	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUsers: %v", err)
		return auth.ListUsersOutput{}, err
	}
	return auth.ListUsersOutput{Users: users}, nil
}

// UpdateRole changes a user's role. Admin only.
func (uc *implUseCase) UpdateRole(ctx context.Context, sc model.Scope, input auth.UpdateRoleInput) error {
	if !sc.IsAdmin() {
		return auth.ErrForbidden
	}

	affected, err := uc.repo.UpdateUserRole(ctx, input.UserID, input.Role)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRole: %v", err)
		return err
	}
	if affected == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes an account and, via the schema, its tasks and entries.
// Admin only; admins cannot delete themselves.
func (uc *implUseCase) DeleteUser(ctx context.Context, sc model.Scope, userID int64) error {
	if !sc.IsAdmin() {
		return auth.ErrForbidden
	}
	if userID == sc.UserID {
		return auth.ErrForbidden
	}

	affected, err := uc.repo.DeleteUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteUser: %v", err)
		return err
	}
	if affected == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}
