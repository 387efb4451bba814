package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"project-management/internal/gantt"
	"project-management/internal/gantt/usecase"
)

func TestGetCriticalPath(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &memRepo{project: substationProject()})

	res, err := uc.GetCriticalPath(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalDuration != 20 {
		t.Errorf("total duration = %d, want 20", res.TotalDuration)
	}
	if res.ProjectEndDate != "2025-01-21" {
		t.Errorf("project end date = %q, want 2025-01-21", res.ProjectEndDate)
	}
	if res.HasCycle {
		t.Error("unexpected cycle")
	}

	wantCritical := []string{"proj-1", "ph-1", "ph-2"}
	if !reflect.DeepEqual(res.CriticalTaskIDs, wantCritical) {
		t.Errorf("critical = %v, want %v", res.CriticalTaskIDs, wantCritical)
	}

	wantSlack := map[string]int{"proj-1": 0, "ph-1": 0, "wp-1": 15, "wp-2": 15, "ph-2": 0, "wp-3": 16}
	if !reflect.DeepEqual(res.SlackByTask, wantSlack) {
		t.Errorf("slack = %v, want %v", res.SlackByTask, wantSlack)
	}

	want := gantt.TaskTiming{EarlyStart: 2, EarlyFinish: 5, LateStart: 17, LateFinish: 20, Slack: 15}
	if got := res.Timings["wp-2"]; got != want {
		t.Errorf("wp-2 timing = %+v, want %+v", got, want)
	}
	if !res.Timings["ph-2"].Critical {
		t.Error("ph-2 should be critical")
	}
}

func TestGetCriticalPath_PropagatesBuildErrors(t *testing.T) {
	p := substationProject()
	p.Phases[0].PlannedEndDate = time.Time{}
	uc := usecase.New(&mockLogger{}, &memRepo{project: p})

	_, err := uc.GetCriticalPath(context.Background(), "proj-1")
	if !errors.Is(err, gantt.ErrMissingDates) {
		t.Errorf("expected ErrMissingDates, got %v", err)
	}
}

func TestAnalyzeSchedule(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Linear Chain", func(t *testing.T) {
		schedule := gantt.Schedule{
			Tasks: []gantt.Task{
				{ID: "A", Kind: gantt.KindPhase, Duration: 5},
				{ID: "B", Kind: gantt.KindPhase, Duration: 3},
				{ID: "C", Kind: gantt.KindPhase, Duration: 2},
			},
			Links: []gantt.Link{
				{SourceID: "A", TargetID: "B"},
				{SourceID: "B", TargetID: "C"},
			},
		}
		res := usecase.AnalyzeSchedule(schedule, now)
		if res.TotalDuration != 10 {
			t.Errorf("total duration = %d, want 10", res.TotalDuration)
		}
		if !reflect.DeepEqual(res.CriticalTaskIDs, []string{"A", "B", "C"}) {
			t.Errorf("critical = %v", res.CriticalTaskIDs)
		}
	})

	t.Run("No Project Task Falls Back To Now", func(t *testing.T) {
		schedule := gantt.Schedule{Tasks: []gantt.Task{{ID: "A", Kind: gantt.KindPhase, Duration: 1}}}
		res := usecase.AnalyzeSchedule(schedule, now)
		if res.ProjectEndDate != "2025-05-01T09:30:00Z" {
			t.Errorf("project end date = %q", res.ProjectEndDate)
		}
	})

	t.Run("Cycle Is Reported", func(t *testing.T) {
		schedule := gantt.Schedule{
			Tasks: []gantt.Task{
				{ID: "x", Kind: gantt.KindPhase, Duration: 4},
				{ID: "y", Kind: gantt.KindPhase, Duration: 3},
			},
			Links: []gantt.Link{
				{SourceID: "x", TargetID: "y"},
				{SourceID: "y", TargetID: "x"},
			},
		}
		res := usecase.AnalyzeSchedule(schedule, now)
		if !res.HasCycle {
			t.Error("expected HasCycle")
		}
		if len(res.SlackByTask) != 2 {
			t.Errorf("expected both tasks scheduled, got %v", res.SlackByTask)
		}
	})

	t.Run("Empty Schedule", func(t *testing.T) {
		res := usecase.AnalyzeSchedule(gantt.Schedule{}, now)
		if res.TotalDuration != 0 || len(res.CriticalTaskIDs) != 0 {
			t.Errorf("unexpected result: %+v", res)
		}
		if res.CriticalTaskIDs == nil {
			t.Error("critical ids should be an empty slice, not nil")
		}
	})
}
