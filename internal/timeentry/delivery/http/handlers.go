package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/middleware"
	"task-time-tracker/pkg/response"
)

// RecordManual godoc
// @Summary     Record a manual time entry
// @Description Splits the submitted range into per-day segments and replaces the task's entries for the start day.
// @Tags        TimeEntry
// @Accept      json
// @Produce     json
// @Param       body body recordManualReq true "Time range"
// @Success     200 {object} recordManualResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/time-entry/manual [POST]
func (h *handler) RecordManual(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRecordManualReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RecordManual(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RecordManual: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecordManualResp(output))
}

// History godoc
// @Summary     List time entry history
// @Description Returns the caller's time entries, newest first, with owning task info.
// @Tags        TimeEntry
// @Produce     json
// @Param       startDate query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "Range end"
// @Param       page      query int    false "Page (default 1)"
// @Param       limit     query int    false "Page size (default 20)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/v1/time-entry/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Detail godoc
// @Summary     Get a time entry
// @Tags        TimeEntry
// @Produce     json
// @Param       id path int true "Time entry ID"
// @Success     200 {object} entryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/time-entry/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := entryID(c)
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

	response.OK(c, newEntryResp(output.Item))
}

// Update godoc
// @Summary     Update a time entry
// @Description Rewrites the entry's range; duration is recomputed from range minus break.
// @Tags        TimeEntry
// @Accept      json
// @Produce     json
// @Param       id   path int            true "Time entry ID"
// @Param       body body updateEntryReq true "New range"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/time-entry/{id} [PUT]
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

	if err := h.uc.Update(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"message": "Time entry updated successfully"})
}

// Delete godoc
// @Summary     Delete a time entry
// @Tags        TimeEntry
// @Produce     json
// @Param       id path int true "Time entry ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/time-entry/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := entryID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"message": "Time entry deleted successfully"})
}
