package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
	"task-time-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, filtered and paginated, in manual order.
// @Tags        Task
// @Produce     json
// @Param       page      query int    false "Page (default 1)"
// @Param       limit     query int    false "Page size (default 20, max 50)"
// @Param       q         query string false "Title search"
// @Param       priority  query string false "LOW | MEDIUM | HIGH"
// @Param       status    query string false "NOT_STARTED | IN_PROGRESS | DONE"
// @Param       completed query bool   false "Completed filter"
// @Param       dueFrom   query string false "Due date window start"
// @Param       dueTo     query string false "Due date window end"
// @Param       tags      query string false "Comma-separated tag names (any match)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Appends the task to the caller's manual order; named tags are created as needed.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Project not found"
// @Security    BearerAuth
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Applies only the submitted fields; a tags array replaces the full tag set.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task with its time entries.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Reorder godoc
// @Summary     Reorder tasks
// @Description Assigns the manual order following the submitted id list. Ids the caller does not own are ignored.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body reorderReq true "Task ids in the desired order"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/tasks/reorder [PUT]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Reorder(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Reorder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListTags godoc
// @Summary     List the caller's tags
// @Description Distinct tags used by the caller's tasks, name-sorted.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listTagsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/v1/tags [GET]
func (h *handler) ListTags(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ListTags(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTags: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListTagsResp(output))
}
