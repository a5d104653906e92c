package http

import (
	"task-time-tracker/internal/dashboard"
)

type tagTimeResp struct {
	Tag     string `json:"tag"`
	Minutes int    `json:"minutes"`
}

type projectTimeResp struct {
	Project string `json:"project"`
	Minutes int    `json:"minutes"`
}

type topTaskResp struct {
	Task    *taskRefResp `json:"task"`
	Minutes int          `json:"minutes"`
}

type taskRefResp struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type totalTimeResp struct {
	TotalMinutes int     `json:"totalMinutes"`
	TotalHours   float64 `json:"totalHours"`
}

type completedTasksResp struct {
	CompletedTasks int `json:"completedTasks"`
}

type progressRateResp struct {
	ProgressRate float64 `json:"progressRate"`
}

type timeByTagResp struct {
	Tags []tagTimeResp `json:"tags"`
}

type timeByProjectResp struct {
	Projects []projectTimeResp `json:"projects"`
}

type summaryResp struct {
	CompletedTasks int               `json:"completedTasks"`
	TotalMinutes   int               `json:"totalMinutes"`
	TotalHours     float64           `json:"totalHours"`
	ProgressRate   float64           `json:"progressRate"`
	Tags           []tagTimeResp     `json:"tags"`
	Projects       []projectTimeResp `json:"projects"`
	TopTask        *topTaskResp      `json:"topTask"`
}

func newTagTimes(tags []dashboard.TagTime) []tagTimeResp {
	out := make([]tagTimeResp, len(tags))
	for i, t := range tags {
		out[i] = tagTimeResp{Tag: t.Tag, Minutes: t.Minutes}
	}
	return out
}

func newProjectTimes(projects []dashboard.ProjectTime) []projectTimeResp {
	out := make([]projectTimeResp, len(projects))
	for i, p := range projects {
		out[i] = projectTimeResp{Project: p.Project, Minutes: p.Minutes}
	}
	return out
}

func newTopTask(top *dashboard.TopTask) *topTaskResp {
	if top == nil {
		return nil
	}
	return &topTaskResp{
		Task:    &taskRefResp{ID: top.TaskID, Title: top.Title},
		Minutes: top.Minutes,
	}
}

func newSummaryResp(out dashboard.SummaryOutput) summaryResp {
	return summaryResp{
		CompletedTasks: out.CompletedTasks,
		TotalMinutes:   out.TotalMinutes,
		TotalHours:     out.TotalHours,
		ProgressRate:   out.ProgressRate,
		Tags:           newTagTimes(out.Tags),
		Projects:       newProjectTimes(out.Projects),
		TopTask:        newTopTask(out.TopTask),
	}
}
