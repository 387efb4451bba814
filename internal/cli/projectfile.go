package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"project-management/internal/model"
	"project-management/pkg/datemath"
)

// projectFile is the YAML form of a project hierarchy. Work packages keep file order.
type projectFile struct {
	ID       string      `yaml:"id"`
	Number   string      `yaml:"number"`
	Name     string      `yaml:"name"`
	Status   string      `yaml:"status"`
	Start    string      `yaml:"start"`
	End      string      `yaml:"end"`
	Progress float64     `yaml:"progress"`
	Phases   []phaseFile `yaml:"phases"`
}

type phaseFile struct {
	ID           string            `yaml:"id"`
	Number       int               `yaml:"number"`
	Name         string            `yaml:"name"`
	Sequence     *int              `yaml:"sequence"`
	Status       string            `yaml:"status"`
	Start        string            `yaml:"start"`
	End          string            `yaml:"end"`
	Progress     float64           `yaml:"progress"`
	WorkPackages []workPackageFile `yaml:"work_packages"`
}

type workPackageFile struct {
	ID       string  `yaml:"id"`
	Number   string  `yaml:"number"`
	Name     string  `yaml:"name"`
	Status   string  `yaml:"status"`
	Start    string  `yaml:"start"`
	End      string  `yaml:"end"`
	Progress float64 `yaml:"progress"`
}

// decodeProject reads a project file into the persisted model, ordering phases by
// sequence (file position when omitted).
func decodeProject(r io.Reader) (model.Project, error) {
	var f projectFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return model.Project{}, fmt.Errorf("decode project file: %w", err)
	}
	if f.ID == "" {
		return model.Project{}, fmt.Errorf("decode project file: project id is required")
	}

	p := model.Project{
		ID:              f.ID,
		ProjectNumber:   f.Number,
		Name:            f.Name,
		Status:          f.Status,
		ProgressPercent: f.Progress,
	}
	var err error
	if p.PlannedStartDate, p.PlannedEndDate, err = parseRange(f.Start, f.End); err != nil {
		return model.Project{}, fmt.Errorf("project %s: %w", f.ID, err)
	}

	for i, ph := range f.Phases {
		phase := model.Phase{
			ID:              ph.ID,
			ProjectID:       f.ID,
			PhaseNumber:     ph.Number,
			Name:            ph.Name,
			SequenceOrder:   i + 1,
			Status:          ph.Status,
			ProgressPercent: ph.Progress,
		}
		if ph.Sequence != nil {
			phase.SequenceOrder = *ph.Sequence
		}
		if phase.PlannedStartDate, phase.PlannedEndDate, err = parseRange(ph.Start, ph.End); err != nil {
			return model.Project{}, fmt.Errorf("phase %s: %w", ph.ID, err)
		}

		for _, wp := range ph.WorkPackages {
			pkg := model.WorkPackage{
				ID:              wp.ID,
				PhaseID:         ph.ID,
				PackageNumber:   wp.Number,
				Name:            wp.Name,
				Status:          wp.Status,
				ProgressPercent: wp.Progress,
			}
			if pkg.PlannedStartDate, pkg.PlannedEndDate, err = parseRange(wp.Start, wp.End); err != nil {
				return model.Project{}, fmt.Errorf("work package %s: %w", wp.ID, err)
			}
			phase.WorkPackages = append(phase.WorkPackages, pkg)
		}
		p.Phases = append(p.Phases, phase)
	}

	sort.SliceStable(p.Phases, func(i, j int) bool {
		return p.Phases[i].SequenceOrder < p.Phases[j].SequenceOrder
	})
	return p, nil
}

// parseRange leaves a blank date as the zero time so the builder reports it as missing.
func parseRange(start, end string) (time.Time, time.Time, error) {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = datemath.ParseAbsolute(start); err != nil {
			return s, e, err
		}
	}
	if end != "" {
		if e, err = datemath.ParseAbsolute(end); err != nil {
			return s, e, err
		}
	}
	return s, e, nil
}
