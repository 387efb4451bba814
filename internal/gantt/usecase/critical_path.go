package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"project-management/internal/cpm"
	"project-management/internal/gantt"
	"project-management/pkg/datemath"
)

// GetCriticalPath rebuilds the project's schedule and runs the critical path method over it.
func (uc *implUseCase) GetCriticalPath(ctx context.Context, projectID string) (gantt.ScheduleResult, error) {
	ctx, span := uc.tracer.Start(ctx, "gantt.GetCriticalPath")
	defer span.End()

	schedule, err := uc.GetSchedule(ctx, projectID)
	if err != nil {
		return gantt.ScheduleResult{}, err
	}

	result := AnalyzeSchedule(schedule, uc.now())
	span.SetAttributes(
		attribute.Int("gantt.tasks", len(schedule.Tasks)),
		attribute.Int("gantt.total_duration", result.TotalDuration),
		attribute.Bool("gantt.has_cycle", result.HasCycle),
	)
	if result.HasCycle {
		uc.l.Warnf(ctx, "internal.gantt.usecase.GetCriticalPath: dependency cycle in project %s", projectID)
	}
	return result, nil
}

// AnalyzeSchedule computes slack and the critical path of a schedule.
// now supplies the project end date when the schedule has no project task.
func AnalyzeSchedule(schedule gantt.Schedule, now time.Time) gantt.ScheduleResult {
	g := cpm.Graph{
		Nodes: make([]cpm.Node, 0, len(schedule.Tasks)),
		Edges: make([]cpm.Edge, 0, len(schedule.Links)),
	}
	for _, t := range schedule.Tasks {
		g.Nodes = append(g.Nodes, cpm.Node{ID: t.ID, Duration: t.Duration})
	}
	for _, l := range schedule.Links {
		g.Edges = append(g.Edges, cpm.Edge{From: l.SourceID, To: l.TargetID})
	}

	res := cpm.Analyze(g)

	out := gantt.ScheduleResult{
		CriticalTaskIDs: res.CriticalPath,
		TotalDuration:   res.TotalDuration,
		ProjectEndDate:  now.Format(time.RFC3339),
		SlackByTask:     make(map[string]int, len(res.Tasks)),
		Timings:         make(map[string]gantt.TaskTiming, len(res.Tasks)),
		HasCycle:        res.HasCycle,
	}
	if out.CriticalTaskIDs == nil {
		out.CriticalTaskIDs = []string{}
	}

	for id, ts := range res.Tasks {
		out.SlackByTask[id] = ts.Slack
		out.Timings[id] = gantt.TaskTiming{
			EarlyStart:  ts.ES,
			EarlyFinish: ts.EF,
			LateStart:   ts.LS,
			LateFinish:  ts.LF,
			Slack:       ts.Slack,
			Critical:    ts.IsCritical,
		}
	}

	for _, t := range schedule.Tasks {
		if t.Kind == gantt.KindProject {
			out.ProjectEndDate = datemath.Format(t.EndDate)
			break
		}
	}
	return out
}
