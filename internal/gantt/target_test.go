package gantt_test

import (
	"errors"
	"testing"

	"project-management/internal/gantt"
)

func TestNewDateTarget(t *testing.T) {
	tests := []struct {
		kind    gantt.TaskKind
		want    gantt.DateTarget
		wantErr error
	}{
		{kind: gantt.KindPhase, want: gantt.PhaseTarget{ID: "t1"}},
		{kind: gantt.KindWorkPackage, want: gantt.WorkPackageTarget{ID: "t1"}},
		{kind: gantt.KindProject, wantErr: gantt.ErrUnsupportedTaskKind},
		{kind: "milestone", wantErr: gantt.ErrUnsupportedTaskKind},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := gantt.NewDateTarget(tt.kind, "t1")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got != nil && got.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got.Kind())
			}
		})
	}
}

func TestNewProgressTarget(t *testing.T) {
	tests := []struct {
		kind    gantt.TaskKind
		want    gantt.ProgressTarget
		wantErr error
	}{
		{kind: gantt.KindProject, want: gantt.ProjectTarget{ID: "t1"}},
		{kind: gantt.KindPhase, want: gantt.PhaseTarget{ID: "t1"}},
		{kind: gantt.KindWorkPackage, want: gantt.WorkPackageTarget{ID: "t1"}},
		{kind: "", wantErr: gantt.ErrUnsupportedTaskKind},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := gantt.NewProgressTarget(tt.kind, "t1")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got != nil && got.TaskID() != "t1" {
				t.Errorf("expected task id t1, got %s", got.TaskID())
			}
		})
	}
}
