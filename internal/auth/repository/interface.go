package repository

import (
	"context"
	"time"

	"task-time-tracker/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateUser inserts the user and returns it with the assigned ID.
	// A duplicate email returns ErrDuplicateEmail.
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	// GetUserByEmail returns the zero-value User when no account matches.
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	// GetUserByID returns the zero-value User when no account matches.
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	// UpdateUserRole returns the number of rows affected.
	UpdateUserRole(ctx context.Context, id int64, role model.Role) (int64, error)
	// DeleteUser removes the user; tasks and entries cascade.
	// Returns the number of rows affected.
	DeleteUser(ctx context.Context, id int64) (int64, error)
	// UpdatePassword replaces the user's password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// CreateResetToken stores a password reset token, replacing any
	// outstanding token for the same user.
	CreateResetToken(ctx context.Context, opt CreateResetTokenOptions) error
	// GetResetToken returns the zero-value token when absent.
	GetResetToken(ctx context.Context, token string) (ResetToken, error)
	// DeleteResetToken removes a token once consumed.
	DeleteResetToken(ctx context.Context, token string) error
}

// ResetToken is one outstanding password reset grant.
type ResetToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}
