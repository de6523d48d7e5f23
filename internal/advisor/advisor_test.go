package advisor

import (
	"strings"
	"testing"

	"github.com/joshharrison/slackline/internal/analysis"
	"github.com/joshharrison/slackline/internal/config"
	"github.com/joshharrison/slackline/internal/task"
)

func TestSummarize_ContainsScheduleData(t *testing.T) {
	a, err := analysis.Run([]task.Spec{
		{ID: "design", Name: "Design schema", Duration: 3},
		{ID: "build", Name: "Build API", Duration: 5, Dependencies: []string{"design"}},
		{ID: "docs", Name: "Write docs", Duration: 1},
	}, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := Summarize(a)

	if !strings.Contains(summary, "Project duration: 8 days") {
		t.Errorf("expected project duration line, got:\n%s", summary)
	}
	if !strings.Contains(summary, "design -> build") {
		t.Errorf("expected critical path line, got:\n%s", summary)
	}
	if !strings.Contains(summary, "* design (Design schema)") {
		t.Errorf("expected critical marker on design, got:\n%s", summary)
	}
	if !strings.Contains(summary, "slack 7d") {
		t.Errorf("expected docs slack, got:\n%s", summary)
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewClient("", ""); err == nil {
		t.Fatal("expected error when no API key is available")
	}
}
