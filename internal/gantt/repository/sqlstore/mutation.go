package sqlstore

import (
	"context"
	"time"

	"project-management/internal/gantt/repository"
	"project-management/pkg/datemath"
)

const (
	updatePhaseDates = `
		UPDATE project_phases
		SET planned_start_date = ?, planned_end_date = ?, updated_at = ?
		WHERE id = ?`

	updateWorkPackageDates = `
		UPDATE work_packages
		SET planned_start_date = ?, planned_end_date = ?, updated_at = ?
		WHERE id = ?`

	updateProjectProgress = `
		UPDATE projects SET progress_percent = ?, updated_at = ? WHERE id = ?`

	updatePhaseProgress = `
		UPDATE project_phases SET progress_percent = ?, updated_at = ? WHERE id = ?`

	updateWorkPackageProgress = `
		UPDATE work_packages SET progress_percent = ?, updated_at = ? WHERE id = ?`
)

// UpdatePhaseDates sets the planned range of a phase.
func (r *implRepository) UpdatePhaseDates(ctx context.Context, opt repository.UpdateDatesOptions) error {
	return r.exec(ctx, "UpdatePhaseDates", updatePhaseDates, opt.ID,
		datemath.Format(opt.PlannedStartDate), datemath.Format(opt.PlannedEndDate), r.now())
}

// UpdateWorkPackageDates sets the planned range of a work package.
func (r *implRepository) UpdateWorkPackageDates(ctx context.Context, opt repository.UpdateDatesOptions) error {
	return r.exec(ctx, "UpdateWorkPackageDates", updateWorkPackageDates, opt.ID,
		datemath.Format(opt.PlannedStartDate), datemath.Format(opt.PlannedEndDate), r.now())
}

// UpdateProjectProgress sets the progress percentage of a project.
func (r *implRepository) UpdateProjectProgress(ctx context.Context, opt repository.UpdateProgressOptions) error {
	return r.exec(ctx, "UpdateProjectProgress", updateProjectProgress, opt.ID, opt.ProgressPercent, r.now())
}

// UpdatePhaseProgress sets the progress percentage of a phase.
func (r *implRepository) UpdatePhaseProgress(ctx context.Context, opt repository.UpdateProgressOptions) error {
	return r.exec(ctx, "UpdatePhaseProgress", updatePhaseProgress, opt.ID, opt.ProgressPercent, r.now())
}

// UpdateWorkPackageProgress sets the progress percentage of a work package.
func (r *implRepository) UpdateWorkPackageProgress(ctx context.Context, opt repository.UpdateProgressOptions) error {
	return r.exec(ctx, "UpdateWorkPackageProgress", updateWorkPackageProgress, opt.ID, opt.ProgressPercent, r.now())
}

// exec runs a single-row update keyed by id, which is bound after args.
// It reports ErrRecordNotFound when nothing matched.
func (r *implRepository) exec(ctx context.Context, method, query, id string, args ...any) error {
	if !r.matchable(id) {
		return repository.ErrRecordNotFound
	}

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), append(args, id)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repository.ErrFailedToUpdate
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn(method), err)
		return repository.ErrFailedToUpdate
	}
	if n == 0 {
		return repository.ErrRecordNotFound
	}
	return nil
}

// now is the updated_at value, as text so both dialects store it the same way.
func (r *implRepository) now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
