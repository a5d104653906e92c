package repository

import "time"

// CreateResetTokenOptions holds the fields for one reset token row.
type CreateResetTokenOptions struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
