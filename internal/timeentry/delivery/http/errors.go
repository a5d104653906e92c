package http

import (
	"net/http"

	"task-time-tracker/internal/timeentry"
	"task-time-tracker/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case timeentry.ErrInvalidRange, timeentry.ErrInvalidBreak:
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case timeentry.ErrTaskNotFound:
		return response.NewHTTPError(http.StatusNotFound, "Task not found")
	case timeentry.ErrEntryNotFound:
		return response.NewHTTPError(http.StatusNotFound, "Time entry not found")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
