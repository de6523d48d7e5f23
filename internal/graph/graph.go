// Package graph builds and validates the task dependency graph that the cpm
// package analyzes.
package graph

import (
	"fmt"
	"strings"

	"github.com/joshharrison/slackline/internal/task"
)

// Build constructs a Graph from task specs. It rejects duplicate or empty
// ids, negative durations, dependency references to tasks not in the input,
// and cyclic dependency structures. Edge order follows input order, so the
// result is deterministic for a given spec list.
func Build(specs []task.Spec) (*Graph, error) {
	g := &Graph{
		Nodes:   make(map[string]*Node, len(specs)),
		Forward: make(map[string][]*Node, len(specs)),
		Reverse: make(map[string][]*Node, len(specs)),
	}

	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("%w (task %q)", ErrEmptyID, s.Name)
		}
		if _, exists := g.Nodes[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		if s.Duration < 0 {
			return nil, fmt.Errorf("%w: task %s has duration %d", ErrNegativeDuration, s.ID, s.Duration)
		}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		g.Nodes[s.ID] = &Node{
			ID:           s.ID,
			Name:         name,
			Duration:     s.Duration,
			Dependencies: append([]string(nil), s.Dependencies...),
		}
		g.Order = append(g.Order, s.ID)
		// Guarantee an entry for every id, edges or not.
		g.Forward[s.ID] = nil
		g.Reverse[s.ID] = nil
	}

	// Resolve dependency ids to node references. A repeated dependency entry
	// contributes a single edge.
	seen := make(map[[2]string]bool)
	for _, id := range g.Order {
		node := g.Nodes[id]
		for _, depID := range node.Dependencies {
			dep, ok := g.Nodes[depID]
			if !ok {
				return nil, fmt.Errorf("%w: task %s depends on unknown task %s", ErrInvalidReference, id, depID)
			}
			key := [2]string{depID, id}
			if seen[key] {
				continue
			}
			seen[key] = true
			g.Forward[depID] = append(g.Forward[depID], node)
			g.Reverse[id] = append(g.Reverse[id], dep)
		}
	}

	for _, id := range g.Order {
		if len(g.Reverse[id]) == 0 {
			g.Roots = append(g.Roots, id)
		}
		if len(g.Forward[id]) == 0 {
			g.Leaves = append(g.Leaves, id)
		}
	}

	if cycle := g.DetectCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
	}

	return g, nil
}

// DetectCycle returns one cycle as a forward-ordered id path, or nil if the
// graph is acyclic. Uses DFS with coloring: white (unvisited), gray (in
// progress), black (done).
func (g *Graph) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, len(g.Nodes))
	parent := make(map[string]string)

	var dfs func(id string) []string
	dfs = func(id string) []string {
		color[id] = gray
		for _, next := range g.Forward[id] {
			if color[next.ID] == gray {
				// Found a cycle — walk parents back to its entry point.
				cycle := []string{next.ID, id}
				cur := id
				for cur != next.ID {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next.ID] == white {
				parent[next.ID] = id
				if cycle := dfs(next.ID); cycle != nil {
					return cycle
				}
			}
		}
		color[id] = black
		return nil
	}

	for _, id := range g.Order {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
