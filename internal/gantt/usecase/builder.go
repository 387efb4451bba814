package usecase

import (
	"context"
	"fmt"
	"time"

	"project-management/internal/gantt"
	"project-management/internal/model"
	"project-management/pkg/datemath"
)

// GetSchedule fetches the project hierarchy and flattens it into tasks and links.
func (uc *implUseCase) GetSchedule(ctx context.Context, projectID string) (gantt.Schedule, error) {
	ctx, span := uc.tracer.Start(ctx, "gantt.GetSchedule")
	defer span.End()

	project, err := uc.loadProject(ctx, projectID)
	if err != nil {
		span.RecordError(err)
		return gantt.Schedule{}, err
	}

	schedule, err := BuildSchedule(project)
	if err != nil {
		uc.l.Warnf(ctx, "internal.gantt.usecase.GetSchedule: %v", err)
		span.RecordError(err)
		return gantt.Schedule{}, err
	}
	return schedule, nil
}

func (uc *implUseCase) loadProject(ctx context.Context, projectID string) (model.Project, error) {
	if projectID == "" {
		return model.Project{}, gantt.ErrEmptyID
	}

	project, err := uc.repo.GetProjectHierarchy(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.gantt.usecase.loadProject.GetProjectHierarchy: %v", err)
		return model.Project{}, err
	}
	if project.ID == "" {
		return model.Project{}, gantt.ErrProjectNotFound
	}
	return project, nil
}

// BuildSchedule flattens a project hierarchy into Gantt tasks and finish-to-start links.
// Phases are chained in the given order, and work packages are chained inside their phase.
func BuildSchedule(project model.Project) (gantt.Schedule, error) {
	b := &scheduleBuilder{preds: make(map[string][]string)}

	if err := b.addTask(gantt.Task{
		ID:       project.ID,
		Label:    project.Name,
		Progress: project.ProgressPercent / 100,
		ParentID: gantt.RootParentID,
		Kind:     gantt.KindProject,
		IsOpen:   true,
		Color:    projectColor,
	}, project.PlannedStartDate, project.PlannedEndDate); err != nil {
		return gantt.Schedule{}, err
	}

	var prevPhaseID string
	for _, phase := range project.Phases {
		if err := b.addTask(gantt.Task{
			ID:       phase.ID,
			Label:    fmt.Sprintf("%d. %s", phase.PhaseNumber, phase.Name),
			Progress: phase.ProgressPercent / 100,
			ParentID: project.ID,
			Kind:     gantt.KindPhase,
			IsOpen:   true,
			Color:    phaseColor(phase.Status),
		}, phase.PlannedStartDate, phase.PlannedEndDate); err != nil {
			return gantt.Schedule{}, err
		}
		if prevPhaseID != "" {
			b.link(prevPhaseID, phase.ID)
		}
		prevPhaseID = phase.ID

		var prevWPID string
		for _, wp := range phase.WorkPackages {
			if err := b.addTask(gantt.Task{
				ID:       wp.ID,
				Label:    fmt.Sprintf("%s: %s", wp.PackageNumber, wp.Name),
				Progress: wp.ProgressPercent / 100,
				ParentID: phase.ID,
				Kind:     gantt.KindWorkPackage,
				Color:    workPackageColor(wp.Status),
			}, wp.PlannedStartDate, wp.PlannedEndDate); err != nil {
				return gantt.Schedule{}, err
			}
			if prevWPID != "" {
				b.link(prevWPID, wp.ID)
			}
			prevWPID = wp.ID
		}
	}

	for i := range b.tasks {
		b.tasks[i].Dependencies = b.preds[b.tasks[i].ID]
	}
	return gantt.Schedule{Tasks: b.tasks, Links: b.links}, nil
}

type scheduleBuilder struct {
	tasks []gantt.Task
	links []gantt.Link
	preds map[string][]string
}

func (b *scheduleBuilder) addTask(t gantt.Task, start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: %s %q", gantt.ErrMissingDates, t.Kind, t.ID)
	}
	t.StartDate = datemath.CalendarDate(start)
	t.EndDate = datemath.CalendarDate(end)
	t.Duration = datemath.DurationDays(t.StartDate, t.EndDate)
	b.tasks = append(b.tasks, t)
	return nil
}

func (b *scheduleBuilder) link(source, target string) {
	b.links = append(b.links, gantt.Link{
		ID:       fmt.Sprintf("link_%s_%s", source, target),
		SourceID: source,
		TargetID: target,
		Kind:     gantt.LinkFinishToStart,
	})
	b.preds[target] = append(b.preds[target], source)
}
