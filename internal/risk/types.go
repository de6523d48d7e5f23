package risk

// Kind classifies a bottleneck finding.
type Kind string

const (
	KindExcessiveSlack   Kind = "excessive_slack"
	KindLongCriticalTask Kind = "long_critical_task"
	KindHighFanIn        Kind = "high_fan_in"
)

// Severity orders findings for display. It is fixed per kind: a long task on
// the critical path threatens the finish date directly, high fan-in is a
// coordination hazard, and excessive slack is informational.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// AffectedTask is one offender within a finding. Value is the ranking key
// for the finding's kind: slack days, duration days, or prerequisite count.
type AffectedTask struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Finding is one structured bottleneck signal. Tasks holds the top offenders
// ranked by Value descending; Total counts every task in the category.
type Finding struct {
	Kind      Kind           `json:"kind"`
	Severity  Severity       `json:"severity"`
	Threshold int            `json:"threshold"`
	Tasks     []AffectedTask `json:"tasks"`
	Total     int            `json:"total"`
}

// RecKind names an advisory template.
type RecKind string

const (
	RecFocusCritical          RecKind = "focus_critical"
	RecReviewBottlenecks      RecKind = "review_bottlenecks"
	RecParallelize            RecKind = "parallelize"
	RecParallelCriticalChains RecKind = "parallel_critical_chains"
	RecTightSchedule          RecKind = "tight_schedule"
)

// Recommendation is a condition-gated advisory. Text is a fixed template per
// kind, never derived from task identity.
type Recommendation struct {
	Kind RecKind `json:"kind"`
	Text string  `json:"text"`
}

// Metrics summarizes the schedule. LongestPath is the length of the
// representative critical path; AverageSlack is the mean slack rounded to
// one decimal; RiskLevel is one of low, medium, high.
type Metrics struct {
	TotalTasks    int     `json:"total_tasks"`
	CriticalTasks int     `json:"critical_tasks"`
	LongestPath   int     `json:"longest_path"`
	AverageSlack  float64 `json:"average_slack"`
	RiskLevel     string  `json:"risk_level"`
}

// Report is the full risk pass output.
type Report struct {
	Findings        []Finding        `json:"findings,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Metrics         Metrics          `json:"metrics"`
}
