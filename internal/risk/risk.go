// Package risk derives bottleneck findings, advisory recommendations, and
// summary metrics from a finished CPM result. Findings are structured data;
// render.go turns them into display strings.
package risk

import (
	"math"
	"sort"

	"github.com/joshharrison/slackline/internal/config"
	"github.com/joshharrison/slackline/internal/cpm"
	"github.com/joshharrison/slackline/internal/graph"
)

// Evaluate runs both heuristic passes and the metrics summary. It reads the
// graph and result without mutating either.
func Evaluate(g *graph.Graph, res *cpm.Result, th config.Thresholds) Report {
	report := Report{
		Findings: detectBottlenecks(g, res, th),
		Metrics:  computeMetrics(g, res),
	}
	report.Recommendations = recommend(g, res, report, th)
	return report
}

const maxOffenders = 3

func detectBottlenecks(g *graph.Graph, res *cpm.Result, th config.Thresholds) []Finding {
	var findings []Finding

	if f, ok := findOffenders(g, KindExcessiveSlack, SeverityLow, th.SlackDays, func(id string) (int, bool) {
		s := res.Tasks[id].Slack
		return s, s > th.SlackDays
	}); ok {
		findings = append(findings, f)
	}

	if f, ok := findOffenders(g, KindLongCriticalTask, SeverityHigh, th.LongTaskDays, func(id string) (int, bool) {
		d := g.Nodes[id].Duration
		return d, res.Tasks[id].Critical && d > th.LongTaskDays
	}); ok {
		findings = append(findings, f)
	}

	if f, ok := findOffenders(g, KindHighFanIn, SeverityMedium, th.MaxDependencies, func(id string) (int, bool) {
		n := len(g.Reverse[id])
		return n, n > th.MaxDependencies
	}); ok {
		findings = append(findings, f)
	}

	return findings
}

// findOffenders collects every task matching the predicate, ranks by the
// returned value descending (input order on ties), and keeps the top few.
func findOffenders(g *graph.Graph, kind Kind, sev Severity, threshold int, match func(id string) (int, bool)) (Finding, bool) {
	var offenders []AffectedTask
	for _, id := range g.Order {
		if v, ok := match(id); ok {
			offenders = append(offenders, AffectedTask{ID: id, Name: g.Nodes[id].Name, Value: v})
		}
	}
	if len(offenders) == 0 {
		return Finding{}, false
	}

	sort.SliceStable(offenders, func(i, j int) bool {
		return offenders[i].Value > offenders[j].Value
	})

	total := len(offenders)
	if len(offenders) > maxOffenders {
		offenders = offenders[:maxOffenders]
	}

	return Finding{
		Kind:      kind,
		Severity:  sev,
		Threshold: threshold,
		Tasks:     offenders,
		Total:     total,
	}, true
}

func recommend(g *graph.Graph, res *cpm.Result, report Report, th config.Thresholds) []Recommendation {
	if g.Count() == 0 {
		return nil
	}

	var recs []Recommendation
	add := func(kind RecKind) {
		recs = append(recs, Recommendation{Kind: kind, Text: recommendationText[kind]})
	}

	if len(res.CriticalPath) > 0 {
		add(RecFocusCritical)
	}
	if len(report.Findings) > 0 {
		add(RecReviewBottlenecks)
	}
	for _, id := range g.Order {
		if len(g.Reverse[id]) == 0 && res.Tasks[id].Slack > 0 {
			add(RecParallelize)
			break
		}
	}
	if len(res.CriticalTasks) > len(res.CriticalPath) {
		add(RecParallelCriticalChains)
	}
	if report.Metrics.AverageSlack < th.TightSlack {
		add(RecTightSchedule)
	}

	return recs
}

func computeMetrics(g *graph.Graph, res *cpm.Result) Metrics {
	m := Metrics{
		TotalTasks:    g.Count(),
		CriticalTasks: len(res.CriticalTasks),
		LongestPath:   len(res.CriticalPath),
		RiskLevel:     "low",
	}
	if m.TotalTasks == 0 {
		return m
	}

	sum := 0
	for _, s := range res.Tasks {
		sum += s.Slack
	}
	m.AverageSlack = math.Round(float64(sum)/float64(m.TotalTasks)*10) / 10

	ratio := float64(m.CriticalTasks) / float64(m.TotalTasks)
	switch {
	case ratio > 0.6 || m.AverageSlack < 3:
		m.RiskLevel = "high"
	case ratio > 0.4 || m.AverageSlack < 5:
		m.RiskLevel = "medium"
	}

	return m
}
