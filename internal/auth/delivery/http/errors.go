package http

import (
	"net/http"

	"task-time-tracker/internal/auth"
	"task-time-tracker/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailTaken:
		return response.NewHTTPError(http.StatusConflict, "Email already registered")
	case auth.ErrInvalidCredentials:
		return response.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case auth.ErrInvalidResetToken:
		return response.NewHTTPError(http.StatusBadRequest, "Invalid or expired reset token")
	case auth.ErrUserNotFound:
		return response.NewHTTPError(http.StatusNotFound, "User not found")
	case auth.ErrForbidden:
		return response.NewHTTPError(http.StatusForbidden, "Forbidden")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
