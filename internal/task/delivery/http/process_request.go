package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task-time-tracker/pkg/response"
)

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := taskID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	return req, c.ShouldBindJSON(&req)
}

// taskID parses the :id URI param as a positive integer.
func taskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewHTTPError(http.StatusBadRequest, "Invalid task id")
	}
	return id, nil
}
