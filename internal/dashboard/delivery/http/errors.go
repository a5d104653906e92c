package http

import (
	"net/http"

	"task-time-tracker/pkg/response"
)

var (
	errMissingRange = response.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required")
	errInvalidDate  = response.NewHTTPError(http.StatusBadRequest, "Invalid date format")
)

// mapError translates domain errors into HTTP errors. Every dashboard
// query is read-only, so anything past validation is a server fault.
func (h *handler) mapError(err error) error {
	return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
}
