package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"project-management/internal/gantt"
	"project-management/internal/gantt/usecase"
)

func TestUpdateTaskDates(t *testing.T) {
	ctx := context.Background()
	start, end := day(time.February, 1), day(time.February, 10)

	tests := []struct {
		name     string
		input    gantt.UpdateTaskDatesInput
		writeErr error
		wantErr  error
		wantCall string
	}{
		{
			name:     "Phase",
			input:    gantt.UpdateTaskDatesInput{Target: gantt.PhaseTarget{ID: "ph-1"}, StartDate: start, EndDate: end},
			wantCall: "UpdatePhaseDates",
		},
		{
			name:     "Work Package",
			input:    gantt.UpdateTaskDatesInput{Target: gantt.WorkPackageTarget{ID: "wp-3"}, StartDate: start, EndDate: end},
			wantCall: "UpdateWorkPackageDates",
		},
		{
			name:     "Unknown Work Package",
			input:    gantt.UpdateTaskDatesInput{Target: gantt.WorkPackageTarget{ID: "wp-9"}, StartDate: start, EndDate: end},
			wantErr:  gantt.ErrTaskNotFound,
			wantCall: "UpdateWorkPackageDates",
		},
		{
			name:    "Start After End",
			input:   gantt.UpdateTaskDatesInput{Target: gantt.PhaseTarget{ID: "ph-1"}, StartDate: end, EndDate: start},
			wantErr: gantt.ErrInvalidDateRange,
		},
		{
			name:    "Missing End",
			input:   gantt.UpdateTaskDatesInput{Target: gantt.PhaseTarget{ID: "ph-1"}, StartDate: start},
			wantErr: gantt.ErrMissingDates,
		},
		{
			name:    "Nil Target",
			input:   gantt.UpdateTaskDatesInput{StartDate: start, EndDate: end},
			wantErr: gantt.ErrEmptyID,
		},
		{
			name:     "Store Failure",
			input:    gantt.UpdateTaskDatesInput{Target: gantt.PhaseTarget{ID: "ph-1"}, StartDate: start, EndDate: end},
			writeErr: errDB,
			wantErr:  errDB,
			wantCall: "UpdatePhaseDates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{project: substationProject(), writeErr: tt.writeErr}
			uc := usecase.New(&mockLogger{}, repo)

			err := uc.UpdateTaskDates(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.lastCall() != tt.wantCall {
				t.Errorf("store call = %q, want %q", repo.lastCall(), tt.wantCall)
			}
		})
	}
}

func TestUpdateTaskDates_NoRecompute(t *testing.T) {
	repo := &memRepo{project: substationProject()}
	uc := usecase.New(&mockLogger{}, repo)

	err := uc.UpdateTaskDates(context.Background(), gantt.UpdateTaskDatesInput{
		Target:    gantt.PhaseTarget{ID: "ph-1"},
		StartDate: day(time.January, 1),
		EndDate:   day(time.January, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.calls) != 1 {
		t.Errorf("expected a single write, got %v", repo.calls)
	}
	// Sibling and parent records keep their dates.
	if !repo.project.Phases[1].PlannedStartDate.Equal(day(time.January, 6)) {
		t.Error("successor phase should not be shifted")
	}
	if !repo.project.PlannedEndDate.Equal(day(time.January, 21)) {
		t.Error("project dates should not be touched")
	}
}

func TestUpdateTaskProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		target   gantt.ProgressTarget
		progress float64
		wantErr  error
		wantCall string
	}{
		{name: "Project", target: gantt.ProjectTarget{ID: "proj-1"}, progress: 0.5, wantCall: "UpdateProjectProgress"},
		{name: "Phase", target: gantt.PhaseTarget{ID: "ph-2"}, progress: 1, wantCall: "UpdatePhaseProgress"},
		{name: "Work Package", target: gantt.WorkPackageTarget{ID: "wp-3"}, progress: 0, wantCall: "UpdateWorkPackageProgress"},
		{name: "Unknown Phase", target: gantt.PhaseTarget{ID: "ph-9"}, progress: 0.1, wantErr: gantt.ErrTaskNotFound, wantCall: "UpdatePhaseProgress"},
		{name: "Above One", target: gantt.PhaseTarget{ID: "ph-1"}, progress: 1.01, wantErr: gantt.ErrInvalidProgress},
		{name: "Negative", target: gantt.PhaseTarget{ID: "ph-1"}, progress: -0.1, wantErr: gantt.ErrInvalidProgress},
		{name: "NaN", target: gantt.PhaseTarget{ID: "ph-1"}, progress: math.NaN(), wantErr: gantt.ErrInvalidProgress},
		{name: "Empty ID", target: gantt.ProjectTarget{}, progress: 0.5, wantErr: gantt.ErrEmptyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{project: substationProject()}
			uc := usecase.New(&mockLogger{}, repo)

			err := uc.UpdateTaskProgress(ctx, gantt.UpdateTaskProgressInput{Target: tt.target, Progress: tt.progress})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if repo.lastCall() != tt.wantCall {
				t.Errorf("store call = %q, want %q", repo.lastCall(), tt.wantCall)
			}
		})
	}
}

func TestUpdateTaskProgress_Rounding(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{0.5, 50},
		{0.256, 26},
		{0.333, 33},
		{1, 100},
	}

	for _, tt := range tests {
		repo := &memRepo{project: substationProject()}
		uc := usecase.New(&mockLogger{}, repo)
		err := uc.UpdateTaskProgress(context.Background(), gantt.UpdateTaskProgressInput{
			Target:   gantt.WorkPackageTarget{ID: "wp-3"},
			Progress: tt.progress,
		})
		if err != nil {
			t.Fatalf("progress %v: unexpected error: %v", tt.progress, err)
		}
		if got := repo.project.Phases[1].WorkPackages[0].ProgressPercent; got != tt.want {
			t.Errorf("progress %v stored as %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestUpdateTaskProgress_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{project: substationProject()}
	uc := usecase.New(&mockLogger{}, repo)

	if err := uc.UpdateTaskProgress(ctx, gantt.UpdateTaskProgressInput{
		Target:   gantt.PhaseTarget{ID: "ph-2"},
		Progress: 0.5,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	schedule, err := uc.GetSchedule(ctx, "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, task := range schedule.Tasks {
		if task.ID == "ph-2" && task.Progress != 0.5 {
			t.Errorf("expected progress 0.5 after round trip, got %v", task.Progress)
		}
	}
}
