package gantt

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// GetSchedule rebuilds the task and link list of a project from the stored hierarchy.
	GetSchedule(ctx context.Context, projectID string) (Schedule, error)

	// GetCriticalPath runs the critical path method over the project's schedule.
	GetCriticalPath(ctx context.Context, projectID string) (ScheduleResult, error)

	// UpdateTaskDates writes new planned dates of a phase or work package to the store.
	UpdateTaskDates(ctx context.Context, input UpdateTaskDatesInput) error

	// UpdateTaskProgress writes the progress of a project, phase or work package to the store.
	UpdateTaskProgress(ctx context.Context, input UpdateTaskProgressInput) error
}
