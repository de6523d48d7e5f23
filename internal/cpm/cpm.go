// Package cpm implements Critical Path Method scheduling over a validated
// task graph: forward and backward timing passes, slack, the critical set,
// one representative critical path, and wave grouping.
package cpm

import (
	"fmt"
	"sort"

	"github.com/joshharrison/slackline/internal/graph"
)

// Analyze computes the full CPM schedule for a graph. The graph is not
// mutated; all derived state lives in the returned Result, so concurrent
// calls over the same graph are safe.
func Analyze(g *graph.Graph) (*Result, error) {
	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Tasks:     make(map[string]*Schedule, len(order)),
		TopoOrder: order,
	}
	for _, id := range order {
		result.Tasks[id] = &Schedule{TaskID: id}
	}

	// Forward pass: ES = max(EF of all prerequisites), 0 at roots. Topological
	// order guarantees every prerequisite is final before its dependents.
	for _, id := range order {
		s := result.Tasks[id]
		es := 0
		for _, pred := range g.Reverse[id] {
			if ef := result.Tasks[pred.ID].EarliestFinish; ef > es {
				es = ef
			}
		}
		s.EarliestStart = es
		s.EarliestFinish = es + g.Nodes[id].Duration
	}

	for _, s := range result.Tasks {
		if s.EarliestFinish > result.ProjectDuration {
			result.ProjectDuration = s.EarliestFinish
		}
	}

	// Backward pass in reverse topological order: every dependent is final
	// before its prerequisite, so the minimum over all dependents is exact
	// regardless of fan-out.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		s := result.Tasks[id]

		lf := result.ProjectDuration
		for _, succ := range g.Forward[id] {
			if ls := result.Tasks[succ.ID].LatestStart; ls < lf {
				lf = ls
			}
		}
		s.LatestFinish = lf
		s.LatestStart = lf - g.Nodes[id].Duration

		s.Slack = s.LatestStart - s.EarliestStart
		s.Critical = s.Slack == 0
	}

	for _, id := range order {
		if result.Tasks[id].Critical {
			result.CriticalTasks = append(result.CriticalTasks, id)
		}
	}

	result.CriticalPath = extractPath(g, result)
	result.Waves = computeWaves(g, result)

	return result, nil
}

// topoSort runs Kahn's algorithm over the graph. Ties break by input order:
// the ready queue is seeded in input order and drained FIFO.
func topoSort(g *graph.Graph) ([]string, error) {
	inDegree := make(map[string]int, g.Count())
	for _, id := range g.Order {
		inDegree[id] = len(g.Reverse[id])
	}

	var queue []string
	for _, id := range g.Order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, g.Count())
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, succ := range g.Forward[id] {
			inDegree[succ.ID]--
			if inDegree[succ.ID] == 0 {
				queue = append(queue, succ.ID)
			}
		}
	}

	if len(order) != g.Count() {
		return nil, fmt.Errorf("%w: %d of %d tasks sorted", graph.ErrCycle, len(order), g.Count())
	}

	return order, nil
}

// extractPath walks the critical subgraph into one ordered root-to-terminal
// chain. It starts from the critical task with no critical prerequisite and
// the smallest earliest start, then repeatedly steps to the critical direct
// dependent by the same rule. Ties break by input order.
func extractPath(g *graph.Graph, result *Result) []string {
	isCriticalPred := func(id string) bool {
		for _, pred := range g.Reverse[id] {
			if result.Tasks[pred.ID].Critical {
				return true
			}
		}
		return false
	}

	cur := ""
	for _, id := range g.Order {
		if !result.Tasks[id].Critical || isCriticalPred(id) {
			continue
		}
		if cur == "" || result.Tasks[id].EarliestStart < result.Tasks[cur].EarliestStart {
			cur = id
		}
	}
	if cur == "" {
		return nil
	}

	index := make(map[string]int, len(g.Order))
	for i, id := range g.Order {
		index[id] = i
	}

	var path []string
	for cur != "" {
		path = append(path, cur)
		next := ""
		for _, succ := range g.Forward[cur] {
			if !result.Tasks[succ.ID].Critical {
				continue
			}
			if next == "" {
				next = succ.ID
				continue
			}
			if result.Tasks[succ.ID].EarliestStart < result.Tasks[next].EarliestStart ||
				(result.Tasks[succ.ID].EarliestStart == result.Tasks[next].EarliestStart &&
					index[succ.ID] < index[next]) {
				next = succ.ID
			}
		}
		cur = next
	}
	return path
}

// computeWaves groups tasks by earliest start. Within a wave, critical tasks
// sort first; otherwise input order is preserved.
func computeWaves(g *graph.Graph, result *Result) []Wave {
	byStart := make(map[int][]string)
	var starts []int
	for _, id := range g.Order {
		es := result.Tasks[id].EarliestStart
		if _, ok := byStart[es]; !ok {
			starts = append(starts, es)
		}
		byStart[es] = append(byStart[es], id)
	}

	sort.Ints(starts)

	waves := make([]Wave, 0, len(starts))
	for i, es := range starts {
		taskIDs := byStart[es]

		critical := false
		for _, id := range taskIDs {
			result.Tasks[id].Wave = i
			if result.Tasks[id].Critical {
				critical = true
			}
		}

		// Stable partition: critical first, relative order kept.
		ordered := make([]string, 0, len(taskIDs))
		for _, id := range taskIDs {
			if result.Tasks[id].Critical {
				ordered = append(ordered, id)
			}
		}
		for _, id := range taskIDs {
			if !result.Tasks[id].Critical {
				ordered = append(ordered, id)
			}
		}

		waves = append(waves, Wave{Index: i, TaskIDs: ordered, Critical: critical})
	}

	return waves
}
