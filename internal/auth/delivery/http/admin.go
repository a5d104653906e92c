package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
	"task-time-tracker/pkg/response"
)

// ListUsers godoc
// @Summary     List all accounts
// @Tags        Admin
// @Produce     json
// @Success     200 {object} listUsersResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Security    BearerAuth
// @Router      /api/v1/admin/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ListUsers(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUsers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListUsersResp(output))
}

// UpdateRole godoc
// @Summary     Change an account's role
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       id   path int           true "User ID"
// @Param       body body updateRoleReq true "New role"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "User not found"
// @Security    BearerAuth
// @Router      /api/v1/admin/users/{id}/role [PUT]
func (h *handler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateRoleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.UpdateRole(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateRole: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DeleteUser godoc
// @Summary     Delete an account
// @Description Removes the account with its tasks and time entries.
// @Tags        Admin
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "User not found"
// @Security    BearerAuth
// @Router      /api/v1/admin/users/{id} [DELETE]
func (h *handler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := userID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteUser(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
