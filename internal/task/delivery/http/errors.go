package http

import (
	"net/http"

	"task-time-tracker/internal/task"
	"task-time-tracker/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return response.NewHTTPError(http.StatusNotFound, "Task not found")
	case task.ErrProjectNotFound:
		return response.NewHTTPError(http.StatusNotFound, "Project not found")
	case task.ErrInvalidPriority, task.ErrInvalidStatus, task.ErrEmptyReorder:
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
