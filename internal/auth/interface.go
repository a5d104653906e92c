package auth

import (
	"context"

	"task-time-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates an account. The password is stored as a bcrypt hash.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// Logout invalidates the session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// RequestPasswordReset issues a reset token and mails the reset link.
	// An unknown email succeeds silently so callers cannot probe accounts.
	RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) error
	// ResetPassword consumes a reset token and replaces the password.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// Admin-only operations; the scope's role is re-checked here.
	ListUsers(ctx context.Context, sc model.Scope) (ListUsersOutput, error)
	UpdateRole(ctx context.Context, sc model.Scope, input UpdateRoleInput) error
	DeleteUser(ctx context.Context, sc model.Scope, userID int64) error
}
