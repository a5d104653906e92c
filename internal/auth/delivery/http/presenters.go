package http

import (
	"net/http"
	"net/mail"
	"strings"

	"task-time-tracker/internal/auth"
	"task-time-tracker/internal/model"
	"task-time-tracker/pkg/response"
)

const minPasswordLength = 6

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *registerReq) validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return response.NewHTTPError(http.StatusBadRequest, "Invalid email address")
	}
	if len(r.Password) < minPasswordLength {
		return response.NewHTTPError(http.StatusBadRequest, "Password too short")
	}
	return nil
}

func (r *registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

type resetRequestReq struct {
	Email string `json:"email" binding:"required"`
}

func (r *resetRequestReq) toInput() auth.RequestPasswordResetInput {
	return auth.RequestPasswordResetInput{
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
	}
}

type resetReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (r *resetReq) validate() error {
	if len(r.NewPassword) < minPasswordLength {
		return response.NewHTTPError(http.StatusBadRequest, "Password too short")
	}
	return nil
}

func (r *resetReq) toInput() auth.ResetPasswordInput {
	return auth.ResetPasswordInput{Token: r.Token, NewPassword: r.NewPassword}
}

type updateRoleReq struct {
	UserID int64  `json:"-"`
	Role   string `json:"role" binding:"required"`
}

func (r *updateRoleReq) validate() error {
	switch model.Role(r.Role) {
	case model.RoleUser, model.RoleAdmin:
		return nil
	default:
		return response.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}
}

func (r *updateRoleReq) toInput() auth.UpdateRoleInput {
	return auth.UpdateRoleInput{UserID: r.UserID, Role: model.Role(r.Role)}
}

// --- Response DTOs ---

type userResp struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

type listUsersResp struct {
	Users []userResp `json:"users"`
}

func newListUsersResp(out auth.ListUsersOutput) listUsersResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return listUsersResp{Users: users}
}
