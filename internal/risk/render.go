package risk

import (
	"fmt"
	"strings"
)

var recommendationText = map[RecKind]string{
	RecFocusCritical:          "Prioritize critical path tasks: any delay on them delays the whole project.",
	RecReviewBottlenecks:      "Review the flagged bottlenecks; they carry the highest scheduling risk.",
	RecParallelize:            "Independent tasks with slack can start immediately; consider running them in parallel.",
	RecParallelCriticalChains: "Multiple critical chains run in parallel; track the full critical set, not just the reported path.",
	RecTightSchedule:          "Average slack is low; the schedule has little room to absorb delays.",
}

// RenderFinding turns a structured finding into one display string.
func RenderFinding(f Finding) string {
	parts := make([]string, len(f.Tasks))

	switch f.Kind {
	case KindExcessiveSlack:
		for i, t := range f.Tasks {
			parts[i] = fmt.Sprintf("%s (+%dd)", t.Name, t.Value)
		}
		return fmt.Sprintf("%d task(s) with excessive slack (>%dd): %s",
			f.Total, f.Threshold, strings.Join(parts, ", "))
	case KindLongCriticalTask:
		for i, t := range f.Tasks {
			parts[i] = fmt.Sprintf("%s (%dd)", t.Name, t.Value)
		}
		return fmt.Sprintf("%d long critical-path task(s) (>%dd): %s",
			f.Total, f.Threshold, strings.Join(parts, ", "))
	case KindHighFanIn:
		for i, t := range f.Tasks {
			parts[i] = fmt.Sprintf("%s (%d deps)", t.Name, t.Value)
		}
		return fmt.Sprintf("%d task(s) with complex dependencies (>%d): %s",
			f.Total, f.Threshold, strings.Join(parts, ", "))
	}
	return string(f.Kind)
}

// RenderFindings renders every finding in order.
func RenderFindings(findings []Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = RenderFinding(f)
	}
	return out
}
