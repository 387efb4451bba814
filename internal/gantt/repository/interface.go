package repository

import (
	"context"

	"project-management/internal/model"
)

// Repository is the composed interface for the gantt domain data store.
type Repository interface {
	HierarchyRepository
	MutationRepository
}

// HierarchyRepository reads a project's work breakdown structure.
type HierarchyRepository interface {
	// GetProjectHierarchy returns the project with phases ordered by sequence and
	// work packages ordered by creation time. A zero-value Project (ID == "") means not found.
	GetProjectHierarchy(ctx context.Context, projectID string) (model.Project, error)
}

// MutationRepository writes planned dates and progress back to single records.
// Each method returns ErrRecordNotFound when no row matched.
type MutationRepository interface {
	UpdatePhaseDates(ctx context.Context, opt UpdateDatesOptions) error
	UpdateWorkPackageDates(ctx context.Context, opt UpdateDatesOptions) error
	UpdateProjectProgress(ctx context.Context, opt UpdateProgressOptions) error
	UpdatePhaseProgress(ctx context.Context, opt UpdateProgressOptions) error
	UpdateWorkPackageProgress(ctx context.Context, opt UpdateProgressOptions) error
}
