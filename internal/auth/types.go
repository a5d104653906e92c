package auth

import (
	"task-time-tracker/internal/model"
)

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type RequestPasswordResetInput struct {
	Email string
}

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

type UpdateRoleInput struct {
	UserID int64
	Role   model.Role
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type LoginOutput struct {
	Token string
	User  model.User
}

type ListUsersOutput struct {
	Users []model.User
}
