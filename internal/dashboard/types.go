package dashboard

import "time"

// Range is the inclusive date window every dashboard query is scoped to.
type Range struct {
	Start time.Time
	End   time.Time
}

// TagTime is the summed minutes of one tag's tasks within the range.
type TagTime struct {
	Tag     string
	Minutes int
}

// ProjectTime is the summed minutes of one project's tasks within the range.
type ProjectTime struct {
	Project string
	Minutes int
}

// TopTask is the single task with the most recorded minutes in the range.
type TopTask struct {
	TaskID  int64
	Title   string
	Minutes int
}

// --- UseCase Outputs ---

type TotalTimeOutput struct {
	TotalMinutes int
	TotalHours   float64
}

type CompletedTasksOutput struct {
	CompletedTasks int
}

type ProgressRateOutput struct {
	ProgressRate float64
}

type TimeByTagOutput struct {
	Tags []TagTime
}

type TimeByProjectOutput struct {
	Projects []ProjectTime
}

// TopTaskOutput carries nil Task when no entries exist in the range.
type TopTaskOutput struct {
	Task    *TopTask
	Minutes int
}

// SummaryOutput composes every dashboard query into one payload.
type SummaryOutput struct {
	CompletedTasks int
	TotalMinutes   int
	TotalHours     float64
	ProgressRate   float64
	Tags           []TagTime
	Projects       []ProjectTime
	TopTask        *TopTask
}
