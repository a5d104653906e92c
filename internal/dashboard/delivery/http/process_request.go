package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-time-tracker/internal/dashboard"
)

type rangeReq struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`

	start time.Time
	end   time.Time
}

func (r *rangeReq) validate() error {
	if r.StartDate == "" || r.EndDate == "" {
		return errMissingRange
	}

	var err error
	if r.start, err = parseDateParam(r.StartDate); err != nil {
		return errInvalidDate
	}
	if r.end, err = parseDateParam(r.EndDate); err != nil {
		return errInvalidDate
	}
	// A bare date as the range end means the whole of that day.
	if len(r.EndDate) == len("2006-01-02") {
		r.end = r.end.Add(24*time.Hour - time.Millisecond)
	}
	return nil
}

func (r *rangeReq) toRange() dashboard.Range {
	return dashboard.Range{Start: r.start, End: r.end}
}

// processRangeReq binds and validates the startDate/endDate query
// parameters shared by every dashboard endpoint.
func (h *handler) processRangeReq(c *gin.Context) (rangeReq, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// parseDateParam accepts RFC3339 or a bare YYYY-MM-DD date.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
