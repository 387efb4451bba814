package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"project-management/internal/gantt/repository"
	"project-management/internal/model"
)

const (
	selectProject = `
		SELECT id, project_number, name, status, planned_start_date, planned_end_date, progress_percent
		FROM projects
		WHERE id = ?`

	selectPhases = `
		SELECT id, project_id, phase_number, name, sequence_order, status,
		       planned_start_date, planned_end_date, progress_percent, created_at
		FROM project_phases
		WHERE project_id = ?
		ORDER BY sequence_order ASC, phase_number ASC, id ASC`

	selectWorkPackages = `
		SELECT wp.id, wp.phase_id, wp.package_number, wp.name, wp.status,
		       wp.planned_start_date, wp.planned_end_date, wp.progress_percent, wp.created_at
		FROM work_packages wp
		JOIN project_phases ph ON ph.id = wp.phase_id
		WHERE ph.project_id = ?
		ORDER BY wp.created_at ASC, wp.id ASC`
)

// GetProjectHierarchy loads a project, its phases and their work packages in three queries.
// Returns zero-value Project (ID == "") when not found.
func (r *implRepository) GetProjectHierarchy(ctx context.Context, projectID string) (model.Project, error) {
	if !r.matchable(projectID) {
		return model.Project{}, nil
	}

	var (
		p          model.Project
		start, end sql.NullString
	)
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectProject), projectID).Scan(
		&p.ID, &p.ProjectNumber, &p.Name, &p.Status, &start, &end, &p.ProgressPercent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s project: %v", r.dsn("GetProjectHierarchy"), err)
		return model.Project{}, repository.ErrFailedToGet
	}
	if p.PlannedStartDate, err = parseDate(start); err != nil {
		r.l.Errorf(ctx, "%s project start: %v", r.dsn("GetProjectHierarchy"), err)
		return model.Project{}, repository.ErrFailedToGet
	}
	if p.PlannedEndDate, err = parseDate(end); err != nil {
		r.l.Errorf(ctx, "%s project end: %v", r.dsn("GetProjectHierarchy"), err)
		return model.Project{}, repository.ErrFailedToGet
	}

	phases, err := r.listPhases(ctx, projectID)
	if err != nil {
		r.l.Errorf(ctx, "%s phases: %v", r.dsn("GetProjectHierarchy"), err)
		return model.Project{}, repository.ErrFailedToList
	}

	packages, err := r.listWorkPackages(ctx, projectID)
	if err != nil {
		r.l.Errorf(ctx, "%s work packages: %v", r.dsn("GetProjectHierarchy"), err)
		return model.Project{}, repository.ErrFailedToList
	}

	index := make(map[string]int, len(phases))
	for i := range phases {
		index[phases[i].ID] = i
	}
	for _, wp := range packages {
		if i, ok := index[wp.PhaseID]; ok {
			phases[i].WorkPackages = append(phases[i].WorkPackages, wp)
		}
	}

	p.Phases = phases
	return p, nil
}

func (r *implRepository) listPhases(ctx context.Context, projectID string) ([]model.Phase, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectPhases), projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phases []model.Phase
	for rows.Next() {
		var (
			ph                  model.Phase
			start, end, created sql.NullString
		)
		if err := rows.Scan(
			&ph.ID, &ph.ProjectID, &ph.PhaseNumber, &ph.Name, &ph.SequenceOrder, &ph.Status,
			&start, &end, &ph.ProgressPercent, &created,
		); err != nil {
			return nil, err
		}
		if ph.PlannedStartDate, err = parseDate(start); err != nil {
			return nil, err
		}
		if ph.PlannedEndDate, err = parseDate(end); err != nil {
			return nil, err
		}
		ph.CreatedAt = parseTimestamp(created)
		phases = append(phases, ph)
	}
	return phases, rows.Err()
}

func (r *implRepository) listWorkPackages(ctx context.Context, projectID string) ([]model.WorkPackage, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectWorkPackages), projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []model.WorkPackage
	for rows.Next() {
		var (
			wp                  model.WorkPackage
			start, end, created sql.NullString
		)
		if err := rows.Scan(
			&wp.ID, &wp.PhaseID, &wp.PackageNumber, &wp.Name, &wp.Status,
			&start, &end, &wp.ProgressPercent, &created,
		); err != nil {
			return nil, err
		}
		if wp.PlannedStartDate, err = parseDate(start); err != nil {
			return nil, err
		}
		if wp.PlannedEndDate, err = parseDate(end); err != nil {
			return nil, err
		}
		wp.CreatedAt = parseTimestamp(created)
		packages = append(packages, wp)
	}
	return packages, rows.Err()
}
