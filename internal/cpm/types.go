package cpm

// Node is a schedulable unit with a duration in whole days.
type Node struct {
	ID       string
	Duration int
}

// Edge is a finish-to-start dependency: To cannot start before From finishes.
type Edge struct {
	From string
	To   string
}

// Graph is the dependency DAG fed to the scheduler. Node order is significant:
// it is the iteration order of the sequencer and of the critical path listing.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// TaskSchedule holds the timing bounds computed for one node.
type TaskSchedule struct {
	TaskID     string
	Duration   int
	ES         int // early start
	EF         int // early finish
	LS         int // late start
	LF         int // late finish
	Slack      int // LS - ES
	IsCritical bool
}

// Result is the outcome of a critical path analysis.
type Result struct {
	Tasks         map[string]*TaskSchedule
	TopoOrder     []string
	CriticalPath  []string // critical node ids in Graph.Nodes order
	TotalDuration int      // project horizon, max EF
	HasCycle      bool     // a back edge was skipped while sequencing
}

// visit states of the three-colour DFS.
type mark uint8

const (
	unvisited mark = iota
	inProgress
	done
)
