package usecase

import (
	"testing"

	"project-management/internal/model"
)

func TestWorkPackageColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{model.WorkPackageStatusPending, "#ffeeba"},
		{model.WorkPackageStatusInProgress, "#bee5eb"},
		{model.WorkPackageStatusCompleted, "#c3e6cb"},
		{model.WorkPackageStatusOnHold, "#d6d8db"},
		{model.WorkPackageStatusCancelled, "#f5c6cb"},
		{model.WorkPackageStatusInspectionPending, "#ffeaa7"},
		{model.WorkPackageStatusInspectionPassed, "#81ecec"},
		{model.WorkPackageStatusInspectionFailed, "#fab1a0"},
		{"archived", defaultWorkPackageColor},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := workPackageColor(tt.status); got != tt.want {
				t.Errorf("workPackageColor(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestPhaseColor(t *testing.T) {
	if got := phaseColor(model.PhaseStatusInProgress); got != "#17a2b8" {
		t.Errorf("in progress = %q", got)
	}
	// Inspection states belong to work packages only.
	if got := phaseColor(model.WorkPackageStatusInspectionPassed); got != defaultPhaseColor {
		t.Errorf("inspection status on a phase = %q, want default", got)
	}
}
