package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"task-time-tracker/pkg/response"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	return req, c.ShouldBindJSON(&req)
}

func (h *handler) processResetRequestReq(c *gin.Context) (resetRequestReq, error) {
	var req resetRequestReq
	return req, c.ShouldBindJSON(&req)
}

func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateRoleReq(c *gin.Context) (updateRoleReq, error) {
	var req updateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := userID(c)
	if err != nil {
		return req, err
	}
	req.UserID = id
	return req, req.validate()
}

// userID parses the :id URI param as a positive integer.
func userID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}
	return id, nil
}

// sessionToken extracts the bearer token for logout.
func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
