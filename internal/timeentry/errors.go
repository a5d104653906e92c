package timeentry

import "errors"

var (
	ErrInvalidRange  = errors.New("start time must be before end time")
	ErrInvalidBreak  = errors.New("break minutes must be non-negative")
	ErrTaskNotFound  = errors.New("task not found")
	ErrEntryNotFound = errors.New("time entry not found")
)
