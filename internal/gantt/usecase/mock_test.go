package usecase_test

import (
	"context"
	"errors"

	"project-management/internal/gantt/repository"
	"project-management/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// memRepo keeps a single project hierarchy in memory and records the last call.
type memRepo struct {
	project  model.Project
	getErr   error
	writeErr error
	calls    []string
}

func (r *memRepo) GetProjectHierarchy(ctx context.Context, projectID string) (model.Project, error) {
	r.calls = append(r.calls, "GetProjectHierarchy")
	if r.getErr != nil {
		return model.Project{}, r.getErr
	}
	if r.project.ID != projectID {
		return model.Project{}, nil
	}
	return r.project, nil
}

func (r *memRepo) UpdatePhaseDates(ctx context.Context, opt repository.UpdateDatesOptions) error {
	r.calls = append(r.calls, "UpdatePhaseDates")
	if r.writeErr != nil {
		return r.writeErr
	}
	ph := r.phase(opt.ID)
	if ph == nil {
		return repository.ErrRecordNotFound
	}
	ph.PlannedStartDate, ph.PlannedEndDate = opt.PlannedStartDate, opt.PlannedEndDate
	return nil
}

func (r *memRepo) UpdateWorkPackageDates(ctx context.Context, opt repository.UpdateDatesOptions) error {
	r.calls = append(r.calls, "UpdateWorkPackageDates")
	if r.writeErr != nil {
		return r.writeErr
	}
	wp := r.workPackage(opt.ID)
	if wp == nil {
		return repository.ErrRecordNotFound
	}
	wp.PlannedStartDate, wp.PlannedEndDate = opt.PlannedStartDate, opt.PlannedEndDate
	return nil
}

func (r *memRepo) UpdateProjectProgress(ctx context.Context, opt repository.UpdateProgressOptions) error {
	r.calls = append(r.calls, "UpdateProjectProgress")
	if r.writeErr != nil {
		return r.writeErr
	}
	if r.project.ID != opt.ID {
		return repository.ErrRecordNotFound
	}
	r.project.ProgressPercent = float64(opt.ProgressPercent)
	return nil
}

func (r *memRepo) UpdatePhaseProgress(ctx context.Context, opt repository.UpdateProgressOptions) error {
	r.calls = append(r.calls, "UpdatePhaseProgress")
	if r.writeErr != nil {
		return r.writeErr
	}
	ph := r.phase(opt.ID)
	if ph == nil {
		return repository.ErrRecordNotFound
	}
	ph.ProgressPercent = float64(opt.ProgressPercent)
	return nil
}

func (r *memRepo) UpdateWorkPackageProgress(ctx context.Context, opt repository.UpdateProgressOptions) error {
	r.calls = append(r.calls, "UpdateWorkPackageProgress")
	if r.writeErr != nil {
		return r.writeErr
	}
	wp := r.workPackage(opt.ID)
	if wp == nil {
		return repository.ErrRecordNotFound
	}
	wp.ProgressPercent = float64(opt.ProgressPercent)
	return nil
}

func (r *memRepo) phase(id string) *model.Phase {
	for i := range r.project.Phases {
		if r.project.Phases[i].ID == id {
			return &r.project.Phases[i]
		}
	}
	return nil
}

func (r *memRepo) workPackage(id string) *model.WorkPackage {
	for i := range r.project.Phases {
		wps := r.project.Phases[i].WorkPackages
		for j := range wps {
			if wps[j].ID == id {
				return &wps[j]
			}
		}
	}
	return nil
}

func (r *memRepo) lastCall() string {
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

var errDB = errors.New("connection reset")
