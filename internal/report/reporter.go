// Package report renders a finished analysis for the terminal, as JSON, and
// as Graphviz DOT.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joshharrison/slackline/internal/analysis"
	"github.com/joshharrison/slackline/internal/risk"
	"github.com/joshharrison/slackline/internal/ui"
)

// Reporter writes human- and machine-readable views of one analysis.
type Reporter struct {
	Analysis *analysis.Analysis
}

// New creates a Reporter.
func New(a *analysis.Analysis) *Reporter {
	return &Reporter{Analysis: a}
}

// Print writes the full terminal report: summary, schedule table, findings,
// recommendations, and metrics.
func (r *Reporter) Print(w io.Writer) {
	r.PrintSummary(w)
	r.PrintSchedule(w)
	r.PrintFindings(w)
	r.PrintMetrics(w)
}

// PrintSummary writes the header block.
func (r *Reporter) PrintSummary(w io.Writer) {
	a := r.Analysis

	fmt.Fprintf(w, "🎯 %s\n", ui.BoldCyan("Schedule Analysis"))
	fmt.Fprintln(w, ui.Cyan("══════════════════"))
	fmt.Fprintf(w, "Tasks:            %s (%s critical)\n",
		ui.Bold(a.Metrics.TotalTasks), ui.Bold(a.Metrics.CriticalTasks))
	fmt.Fprintf(w, "Project duration: %s days\n", ui.Bold(a.ProjectDuration))
	if len(a.CriticalPath) > 0 {
		fmt.Fprintf(w, "⚡ Critical path:  %s\n", ui.BoldYellow(strings.Join(a.CriticalPath, " → ")))
	}
	fmt.Fprintf(w, "Risk level:       %s\n\n", ui.RiskBadge(a.Metrics.RiskLevel))
}

// PrintSchedule writes the per-task timing table grouped by wave.
func (r *Reporter) PrintSchedule(w io.Writer) {
	a := r.Analysis
	if len(a.Tasks) == 0 {
		fmt.Fprintln(w, ui.Dim("No tasks."))
		return
	}

	for _, wave := range a.Waves {
		fmt.Fprintf(w, "🌊 %s %d (%d tasks)\n", ui.BoldWhite("Wave"), wave.Index+1, len(wave.TaskIDs))
		for _, id := range wave.TaskIDs {
			t := a.Task(id)
			if t == nil {
				continue
			}
			fmt.Fprintf(w, "  %s %-10s %-28s %3d–%-3d  latest %3d–%-3d  slack %s\n",
				ui.CritMark(t.Critical), ui.BoldMagenta(t.ID), truncate(t.Name, 28),
				t.EarliestStart, t.EarliestFinish, t.LatestStart, t.LatestFinish,
				ui.SlackBadge(t.Slack))
		}
		fmt.Fprintln(w)
	}
}

// PrintTimeline writes Gantt-style bars: a solid span over the earliest
// window and a dim tail out to the latest finish showing slack.
func (r *Reporter) PrintTimeline(w io.Writer) {
	a := r.Analysis
	if len(a.Tasks) == 0 {
		fmt.Fprintln(w, ui.Dim("No tasks."))
		return
	}

	// One column per day up to 60, then scale down.
	scale := 1
	for a.ProjectDuration/scale > 60 {
		scale++
	}

	fmt.Fprintf(w, "📅 %s %s\n\n", ui.BoldCyan("Timeline"),
		ui.Dim(fmt.Sprintf("(%d days, 1 col = %dd)", a.ProjectDuration, scale)))

	for i := range a.Tasks {
		t := &a.Tasks[i]
		start := t.EarliestStart / scale
		span := (t.EarliestFinish - t.EarliestStart + scale - 1) / scale
		if span == 0 {
			span = 1 // milestones still get a visible tick
		}
		tail := (t.LatestFinish - t.EarliestFinish) / scale

		bar := strings.Repeat("█", span)
		if t.Critical {
			bar = ui.BoldYellow(bar)
		} else {
			bar = ui.Cyan(bar)
		}

		fmt.Fprintf(w, "  %-10s %s%s%s %s\n",
			ui.BoldMagenta(t.ID),
			strings.Repeat(" ", start),
			bar,
			ui.Dim(strings.Repeat("░", tail)),
			ui.Dim(fmt.Sprintf("%d–%d", t.EarliestStart, t.EarliestFinish)))
	}
	fmt.Fprintln(w)
}

// PrintFindings writes bottleneck findings and recommendations.
func (r *Reporter) PrintFindings(w io.Writer) {
	a := r.Analysis

	if len(a.Findings) > 0 {
		fmt.Fprintf(w, "🚧 %s\n", ui.BoldWhite("Bottlenecks"))
		for _, f := range a.Findings {
			fmt.Fprintf(w, "  %s %s\n", ui.SeverityIcon(string(f.Severity)), risk.RenderFinding(f))
		}
		fmt.Fprintln(w)
	}

	if len(a.Recommendations) > 0 {
		fmt.Fprintf(w, "💡 %s\n", ui.BoldWhite("Recommendations"))
		for _, rec := range a.Recommendations {
			fmt.Fprintf(w, "  %s %s\n", ui.Cyan("→"), rec.Text)
		}
		fmt.Fprintln(w)
	}
}

// PrintMetrics writes the summary metrics line.
func (r *Reporter) PrintMetrics(w io.Writer) {
	m := r.Analysis.Metrics
	fmt.Fprintf(w, "%s %d tasks, %d critical, path length %d, average slack %.1fd\n",
		ui.Dim("Σ"), m.TotalTasks, m.CriticalTasks, m.LongestPath, m.AverageSlack)
}

// JSON returns the machine-readable analysis.
func (r *Reporter) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Analysis, "", "  ")
}

// DOT writes a Graphviz digraph with the critical subgraph highlighted.
func (r *Reporter) DOT(w io.Writer) {
	a := r.Analysis

	critical := make(map[string]bool, len(a.CriticalTasks))
	for _, id := range a.CriticalTasks {
		critical[id] = true
	}

	fmt.Fprintln(w, "digraph slackline {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [shape=box, style=rounded];")
	fmt.Fprintln(w)

	for i := range a.Tasks {
		t := &a.Tasks[i]
		attrs := fmt.Sprintf(`label="%s\n%s (%dd)"`, t.ID, t.Name, t.Duration)
		if critical[t.ID] {
			attrs += `, style="rounded,bold", color=red`
		}
		fmt.Fprintf(w, "  %q [%s];\n", t.ID, attrs)
	}

	fmt.Fprintln(w)

	for i := range a.Tasks {
		t := &a.Tasks[i]
		for _, dep := range t.Dependencies {
			style := ""
			if critical[dep] && critical[t.ID] {
				style = ` [color=red, penwidth=2]`
			}
			fmt.Fprintf(w, "  %q -> %q%s;\n", dep, t.ID, style)
		}
	}

	fmt.Fprintln(w, "}")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
