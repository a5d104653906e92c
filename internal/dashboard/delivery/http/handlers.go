package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/dashboard"
	"task-time-tracker/internal/middleware"
	"task-time-tracker/internal/model"
	"task-time-tracker/pkg/response"
)

// withRange resolves the caller scope and the date range shared by every
// dashboard endpoint, then invokes fn with both.
func (h *handler) withRange(c *gin.Context, fn func(sc model.Scope, r dashboard.Range)) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fn(sc, req.toRange())
}

// Summary godoc
// @Summary     Dashboard summary
// @Description Composes every dashboard aggregate for the date range in one payload.
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.Summary(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.Summary: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, newSummaryResp(out))
	})
}

// TotalTime godoc
// @Summary     Total tracked time
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} totalTimeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/total-time [GET]
func (h *handler) TotalTime(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.TotalTime(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.TotalTime: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, totalTimeResp{TotalMinutes: out.TotalMinutes, TotalHours: out.TotalHours})
	})
}

// CompletedTasks godoc
// @Summary     Completed task count
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} completedTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/completed-tasks [GET]
func (h *handler) CompletedTasks(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.CompletedTasks(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.CompletedTasks: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, completedTasksResp{CompletedTasks: out.CompletedTasks})
	})
}

// ProgressRate godoc
// @Summary     Task completion rate
// @Description Percentage of tasks created in range that are completed; 0 when none were created.
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} progressRateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/progress-rate [GET]
func (h *handler) ProgressRate(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.ProgressRate(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.ProgressRate: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, progressRateResp{ProgressRate: out.ProgressRate})
	})
}

// TimeByTag godoc
// @Summary     Tracked minutes grouped by tag
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} timeByTagResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/time-by-tag [GET]
func (h *handler) TimeByTag(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.TimeByTag(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.TimeByTag: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, timeByTagResp{Tags: newTagTimes(out.Tags)})
	})
}

// TimeByProject godoc
// @Summary     Tracked minutes grouped by project
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} timeByProjectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/time-by-project [GET]
func (h *handler) TimeByProject(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.TimeByProject(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.TimeByProject: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, timeByProjectResp{Projects: newProjectTimes(out.Projects)})
	})
}

// TopTask godoc
// @Summary     Most tracked task
// @Description The task with the most recorded minutes in range; task is null when no entries exist.
// @Tags        Dashboard
// @Produce     json
// @Param       startDate query string true "Range start"
// @Param       endDate   query string true "Range end"
// @Success     200 {object} topTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/v1/dashboard/top-task [GET]
func (h *handler) TopTask(c *gin.Context) {
	ctx := c.Request.Context()

	h.withRange(c, func(sc model.Scope, r dashboard.Range) {
		out, err := h.uc.TopTask(ctx, sc, r)
		if err != nil {
			h.l.Errorf(ctx, "uc.TopTask: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, topTaskResp{Task: topTaskRef(out.Task), Minutes: out.Minutes})
	})
}

func topTaskRef(top *dashboard.TopTask) *taskRefResp {
	if top == nil {
		return nil
	}
	return &taskRefResp{ID: top.TaskID, Title: top.Title}
}
