package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task-time-tracker/pkg/response"
)

// processRecordManualReq binds and validates the manual entry request body.
func (h *handler) processRecordManualReq(c *gin.Context) (recordManualReq, error) {
	var req recordManualReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update body and the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (updateEntryReq, error) {
	var req updateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := entryID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// entryID parses the :id URI param as a positive integer.
func entryID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewHTTPError(http.StatusBadRequest, "Invalid time entry id")
	}
	return id, nil
}
