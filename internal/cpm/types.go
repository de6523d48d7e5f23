package cpm

// Result holds the complete critical path analysis of one graph.
//
// CriticalPath is one representative root-to-terminal chain through the
// critical subgraph. When parallel critical chains exist the path covers
// only one of them; CriticalTasks is the authoritative critical set.
type Result struct {
	Tasks           map[string]*Schedule
	TopoOrder       []string
	ProjectDuration int
	CriticalPath    []string // ordered task ids, one illustrative path
	CriticalTasks   []string // every zero-slack task, topological order
	Waves           []Wave   // parallelizable groups
}

// Schedule holds the timing window computed for a single task.
type Schedule struct {
	TaskID         string
	EarliestStart  int
	EarliestFinish int
	LatestStart    int
	LatestFinish   int
	Slack          int
	Critical       bool
	Wave           int
}

// Wave is a group of tasks sharing the same earliest start, so they can run
// in parallel.
type Wave struct {
	Index    int
	TaskIDs  []string
	Critical bool // true if the wave contains critical tasks
}
