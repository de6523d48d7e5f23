package graph

// Node is a single task in the dependency graph. It carries only the
// caller-supplied fields; timing metrics live in the cpm package so each
// analysis starts from clean state.
type Node struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     int      `json:"duration"` // days
	Dependencies []string `json:"dependencies,omitempty"`
}

// Graph is a validated directed acyclic graph of tasks.
//
// Forward maps a prerequisite to the tasks that depend on it; Reverse maps a
// task to its resolved prerequisite nodes. Every task id has an entry in
// both maps, so callers never need to distinguish "absent" from "no edges".
type Graph struct {
	Nodes   map[string]*Node
	Order   []string // task ids in input order, used for deterministic tie-breaks
	Forward map[string][]*Node
	Reverse map[string][]*Node
	Roots   []string // tasks with no prerequisites
	Leaves  []string // tasks with no dependents
}

// Count returns the number of tasks in the graph.
func (g *Graph) Count() int {
	return len(g.Nodes)
}
