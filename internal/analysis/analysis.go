// Package analysis is the single entry point: task specs in, one complete
// serializable Analysis out, or an error and nothing else.
package analysis

import (
	"github.com/joshharrison/slackline/internal/config"
	"github.com/joshharrison/slackline/internal/cpm"
	"github.com/joshharrison/slackline/internal/graph"
	"github.com/joshharrison/slackline/internal/risk"
	"github.com/joshharrison/slackline/internal/task"
)

// TaskResult is one task with its supplied fields and computed timing
// window, flattened for serialization (id references only, no node graph).
type TaskResult struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Duration       int      `json:"duration"`
	Dependencies   []string `json:"dependencies,omitempty"`
	EarliestStart  int      `json:"earliest_start"`
	EarliestFinish int      `json:"earliest_finish"`
	LatestStart    int      `json:"latest_start"`
	LatestFinish   int      `json:"latest_finish"`
	Slack          int      `json:"slack"`
	Critical       bool     `json:"critical"`
	Wave           int      `json:"wave"`
}

// WaveResult is a parallelizable group of tasks sharing an earliest start.
type WaveResult struct {
	Index    int      `json:"index"`
	TaskIDs  []string `json:"task_ids"`
	Critical bool     `json:"critical"`
}

// Analysis is the complete result of one Run call. CriticalPath is one
// representative chain; CriticalTasks is the authoritative critical set.
type Analysis struct {
	Tasks           []TaskResult          `json:"tasks"`
	ProjectDuration int                   `json:"project_duration"`
	CriticalPath    []string              `json:"critical_path"`
	CriticalTasks   []string              `json:"critical_tasks"`
	Waves           []WaveResult          `json:"waves,omitempty"`
	Findings        []risk.Finding        `json:"findings,omitempty"`
	Bottlenecks     []string              `json:"bottlenecks,omitempty"`
	Recommendations []risk.Recommendation `json:"recommendations,omitempty"`
	Metrics         risk.Metrics          `json:"metrics"`
}

// Task returns the result for one task id, or nil.
func (a *Analysis) Task(id string) *TaskResult {
	for i := range a.Tasks {
		if a.Tasks[i].ID == id {
			return &a.Tasks[i]
		}
	}
	return nil
}

// Run performs the full analysis: graph construction and validation, both
// CPM passes, critical path extraction, and the risk pass. State is built
// fresh per call; concurrent Runs never share anything.
func Run(specs []task.Spec, th config.Thresholds) (*Analysis, error) {
	g, err := graph.Build(specs)
	if err != nil {
		return nil, err
	}

	res, err := cpm.Analyze(g)
	if err != nil {
		return nil, err
	}

	report := risk.Evaluate(g, res, th)

	a := &Analysis{
		Tasks:           make([]TaskResult, 0, g.Count()),
		ProjectDuration: res.ProjectDuration,
		CriticalPath:    res.CriticalPath,
		CriticalTasks:   res.CriticalTasks,
		Findings:        report.Findings,
		Bottlenecks:     risk.RenderFindings(report.Findings),
		Recommendations: report.Recommendations,
		Metrics:         report.Metrics,
	}

	for _, id := range g.Order {
		node := g.Nodes[id]
		s := res.Tasks[id]
		a.Tasks = append(a.Tasks, TaskResult{
			ID:             id,
			Name:           node.Name,
			Duration:       node.Duration,
			Dependencies:   node.Dependencies,
			EarliestStart:  s.EarliestStart,
			EarliestFinish: s.EarliestFinish,
			LatestStart:    s.LatestStart,
			LatestFinish:   s.LatestFinish,
			Slack:          s.Slack,
			Critical:       s.Critical,
			Wave:           s.Wave,
		})
	}

	for _, w := range res.Waves {
		a.Waves = append(a.Waves, WaveResult{Index: w.Index, TaskIDs: w.TaskIDs, Critical: w.Critical})
	}

	return a, nil
}
