package gantt

import "time"

// TaskKind is the level of a task in the work breakdown structure.
type TaskKind string

const (
	KindProject     TaskKind = "project"
	KindPhase       TaskKind = "phase"
	KindWorkPackage TaskKind = "work_package"
)

// LinkKind is the relation of a dependency link, encoded the way Gantt widgets expect.
type LinkKind string

const (
	LinkFinishToStart  LinkKind = "0"
	LinkStartToStart   LinkKind = "1"
	LinkFinishToFinish LinkKind = "2"
	LinkStartToFinish  LinkKind = "3"
)

// RootParentID is the parent of the top-level project task.
const RootParentID = "0"

// --- Schedule ---

// Task is one schedulable row of the Gantt chart.
type Task struct {
	ID           string
	Label        string
	StartDate    time.Time
	EndDate      time.Time
	Duration     int     // whole days, >= 1
	Progress     float64 // 0-1
	ParentID     string  // containment tree, not scheduling
	Kind         TaskKind
	IsOpen       bool
	Color        string
	Dependencies []string // ids of link predecessors
}

// Link is a directed scheduling dependency between two tasks.
type Link struct {
	ID       string
	SourceID string
	TargetID string
	Kind     LinkKind
}

// Schedule is the flat task and link list rebuilt from the stored hierarchy.
type Schedule struct {
	Tasks []Task
	Links []Link
}

// TaskTiming holds the critical path bounds of a task, in days from project start.
type TaskTiming struct {
	EarlyStart  int
	EarlyFinish int
	LateStart   int
	LateFinish  int
	Slack       int
	Critical    bool
}

// ScheduleResult is the derived critical path of a project. It is never persisted.
type ScheduleResult struct {
	CriticalTaskIDs []string
	TotalDuration   int
	ProjectEndDate  string
	SlackByTask     map[string]int
	Timings         map[string]TaskTiming
	HasCycle        bool
}

// --- UseCase Inputs ---

// UpdateTaskDatesInput is a new planned range for a phase or work package.
type UpdateTaskDatesInput struct {
	Target    DateTarget
	StartDate time.Time
	EndDate   time.Time
}

// UpdateTaskProgressInput is a new progress fraction for any task.
type UpdateTaskProgressInput struct {
	Target   ProgressTarget
	Progress float64 // 0-1
}
