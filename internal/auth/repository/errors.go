package repository

import "errors"

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrFailedToCreate = errors.New("failed to create user")
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToList   = errors.New("failed to list users")
	ErrFailedToUpdate = errors.New("failed to update user")
	ErrFailedToDelete = errors.New("failed to delete user")
	ErrFailedToken    = errors.New("failed to handle reset token")
)
