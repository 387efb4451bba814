package usecase

import (
	"context"
	"errors"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"project-management/internal/gantt"
	"project-management/internal/gantt/repository"
)

// UpdateTaskDates writes the planned range of a phase or work package. The schedule is not recomputed.
func (uc *implUseCase) UpdateTaskDates(ctx context.Context, input gantt.UpdateTaskDatesInput) error {
	ctx, span := uc.tracer.Start(ctx, "gantt.UpdateTaskDates")
	defer span.End()

	if input.Target == nil || input.Target.TaskID() == "" {
		return gantt.ErrEmptyID
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return gantt.ErrMissingDates
	}
	if input.StartDate.After(input.EndDate) {
		return gantt.ErrInvalidDateRange
	}
	span.SetAttributes(
		attribute.String("gantt.task_id", input.Target.TaskID()),
		attribute.String("gantt.task_kind", string(input.Target.Kind())),
	)

	opt := repository.UpdateDatesOptions{
		ID:               input.Target.TaskID(),
		PlannedStartDate: input.StartDate,
		PlannedEndDate:   input.EndDate,
	}

	var err error
	switch input.Target.(type) {
	case gantt.PhaseTarget:
		err = uc.repo.UpdatePhaseDates(ctx, opt)
	case gantt.WorkPackageTarget:
		err = uc.repo.UpdateWorkPackageDates(ctx, opt)
	default:
		return gantt.ErrUnsupportedTaskKind
	}
	if err != nil {
		span.RecordError(err)
		return uc.mapRepoError(ctx, "UpdateTaskDates", err)
	}
	return nil
}

// UpdateTaskProgress writes round(progress*100) as the stored percentage. Parents are not re-aggregated.
func (uc *implUseCase) UpdateTaskProgress(ctx context.Context, input gantt.UpdateTaskProgressInput) error {
	ctx, span := uc.tracer.Start(ctx, "gantt.UpdateTaskProgress")
	defer span.End()

	if input.Target == nil || input.Target.TaskID() == "" {
		return gantt.ErrEmptyID
	}
	if math.IsNaN(input.Progress) || input.Progress < 0 || input.Progress > 1 {
		return gantt.ErrInvalidProgress
	}
	span.SetAttributes(
		attribute.String("gantt.task_id", input.Target.TaskID()),
		attribute.String("gantt.task_kind", string(input.Target.Kind())),
	)

	opt := repository.UpdateProgressOptions{
		ID:              input.Target.TaskID(),
		ProgressPercent: int(math.Round(input.Progress * 100)),
	}

	var err error
	switch input.Target.(type) {
	case gantt.ProjectTarget:
		err = uc.repo.UpdateProjectProgress(ctx, opt)
	case gantt.PhaseTarget:
		err = uc.repo.UpdatePhaseProgress(ctx, opt)
	case gantt.WorkPackageTarget:
		err = uc.repo.UpdateWorkPackageProgress(ctx, opt)
	default:
		return gantt.ErrUnsupportedTaskKind
	}
	if err != nil {
		span.RecordError(err)
		return uc.mapRepoError(ctx, "UpdateTaskProgress", err)
	}
	return nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, method string, err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return gantt.ErrTaskNotFound
	}
	uc.l.Errorf(ctx, "internal.gantt.usecase.%s: %v", method, err)
	return err
}
