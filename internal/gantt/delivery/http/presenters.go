package http

import (
	"project-management/internal/gantt"
	"project-management/pkg/response"
)

// --- Request DTOs ---

type updateDatesReq struct {
	TaskID    string `json:"-"`
	TaskType  string `json:"taskType"  binding:"required,oneof=phase work_package"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"   binding:"required"`
}

// updateProgressReq.Progress is a pointer so that an explicit 0 passes "required".
type updateProgressReq struct {
	TaskID   string   `json:"-"`
	TaskType string   `json:"taskType" binding:"required,oneof=project phase work_package"`
	Progress *float64 `json:"progress" binding:"required,gte=0,lte=1"`
}

func (r updateProgressReq) toInput() (gantt.UpdateTaskProgressInput, error) {
	target, err := gantt.NewProgressTarget(gantt.TaskKind(r.TaskType), r.TaskID)
	if err != nil {
		return gantt.UpdateTaskProgressInput{}, err
	}
	return gantt.UpdateTaskProgressInput{Target: target, Progress: *r.Progress}, nil
}

// --- Response DTOs ---

// taskResp keeps start_date and end_date in snake case, the names Gantt widgets read.
type taskResp struct {
	ID           string        `json:"id"`
	Text         string        `json:"text"`
	StartDate    response.Date `json:"start_date"`
	EndDate      response.Date `json:"end_date"`
	Duration     int           `json:"duration"`
	Progress     float64       `json:"progress"`
	Parent       string        `json:"parent"`
	Type         string        `json:"type"`
	Open         bool          `json:"open,omitempty"`
	Color        string        `json:"color,omitempty"`
	Dependencies []string      `json:"dependencies,omitempty"`
}

type linkResp struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type scheduleResp struct {
	Data  []taskResp `json:"data"`
	Links []linkResp `json:"links"`
}

func (h *handler) newScheduleResp(s gantt.Schedule) scheduleResp {
	resp := scheduleResp{
		Data:  make([]taskResp, len(s.Tasks)),
		Links: make([]linkResp, len(s.Links)),
	}
	for i, t := range s.Tasks {
		resp.Data[i] = taskResp{
			ID:           t.ID,
			Text:         t.Label,
			StartDate:    response.Date(t.StartDate),
			EndDate:      response.Date(t.EndDate),
			Duration:     t.Duration,
			Progress:     t.Progress,
			Parent:       t.ParentID,
			Type:         string(t.Kind),
			Open:         t.IsOpen,
			Color:        t.Color,
			Dependencies: t.Dependencies,
		}
	}
	for i, l := range s.Links {
		resp.Links[i] = linkResp{
			ID:     l.ID,
			Source: l.SourceID,
			Target: l.TargetID,
			Type:   string(l.Kind),
		}
	}
	return resp
}

type timingResp struct {
	ES       int  `json:"es"`
	EF       int  `json:"ef"`
	LS       int  `json:"ls"`
	LF       int  `json:"lf"`
	Slack    int  `json:"slack"`
	Critical bool `json:"critical"`
}

type criticalPathResp struct {
	CriticalTasks  []string              `json:"criticalTasks"`
	TotalDuration  int                   `json:"totalDuration"`
	ProjectEndDate string                `json:"projectEndDate"`
	Slack          map[string]int        `json:"slack"`
	Timings        map[string]timingResp `json:"timings"`
	HasCycle       bool                  `json:"has_cycle"`
}

func (h *handler) newCriticalPathResp(r gantt.ScheduleResult) criticalPathResp {
	timings := make(map[string]timingResp, len(r.Timings))
	for id, t := range r.Timings {
		timings[id] = timingResp{
			ES:       t.EarlyStart,
			EF:       t.EarlyFinish,
			LS:       t.LateStart,
			LF:       t.LateFinish,
			Slack:    t.Slack,
			Critical: t.Critical,
		}
	}
	return criticalPathResp{
		CriticalTasks:  r.CriticalTaskIDs,
		TotalDuration:  r.TotalDuration,
		ProjectEndDate: r.ProjectEndDate,
		Slack:          r.SlackByTask,
		Timings:        timings,
		HasCycle:       r.HasCycle,
	}
}

type ackResp struct {
	Success bool `json:"success"`
}
