package usecase

import "project-management/internal/model"

const (
	projectColor            = "#1976d2"
	defaultPhaseColor       = "#6c757d"
	defaultWorkPackageColor = "#d6d8db"
)

var phaseColors = map[string]string{
	model.PhaseStatusPending:    "#ffc107",
	model.PhaseStatusInProgress: "#17a2b8",
	model.PhaseStatusCompleted:  "#28a745",
	model.PhaseStatusOnHold:     "#6c757d",
	model.PhaseStatusCancelled:  "#dc3545",
}

var workPackageColors = map[string]string{
	model.WorkPackageStatusPending:           "#ffeeba",
	model.WorkPackageStatusInProgress:        "#bee5eb",
	model.WorkPackageStatusCompleted:         "#c3e6cb",
	model.WorkPackageStatusOnHold:            "#d6d8db",
	model.WorkPackageStatusInspectionPending: "#ffeaa7",
	model.WorkPackageStatusInspectionPassed:  "#81ecec",
	model.WorkPackageStatusInspectionFailed:  "#fab1a0",
	model.WorkPackageStatusCancelled:         "#f5c6cb",
}

func phaseColor(status string) string {
	if c, ok := phaseColors[status]; ok {
		return c
	}
	return defaultPhaseColor
}

func workPackageColor(status string) string {
	if c, ok := workPackageColors[status]; ok {
		return c
	}
	return defaultWorkPackageColor
}
