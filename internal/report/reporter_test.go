package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshharrison/slackline/internal/analysis"
	"github.com/joshharrison/slackline/internal/config"
	"github.com/joshharrison/slackline/internal/task"
)

func init() {
	// Deterministic assertions regardless of the test terminal.
	color.NoColor = true
}

func diamondAnalysis(t *testing.T) *analysis.Analysis {
	t.Helper()
	a, err := analysis.Run([]task.Spec{
		{ID: "a", Name: "Design", Duration: 2},
		{ID: "b", Name: "Build", Duration: 3, Dependencies: []string{"a"}},
		{ID: "c", Name: "Docs", Duration: 1, Dependencies: []string{"a"}},
		{ID: "d", Name: "Ship", Duration: 2, Dependencies: []string{"b", "c"}},
	}, config.Default())
	require.NoError(t, err)
	return a
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	New(diamondAnalysis(t)).PrintSummary(&buf)

	out := buf.String()
	assert.Contains(t, out, "Project duration: 7 days")
	assert.Contains(t, out, "a → b → d")
	assert.Contains(t, out, "Risk level:")
}

func TestPrintSchedule(t *testing.T) {
	var buf bytes.Buffer
	New(diamondAnalysis(t)).PrintSchedule(&buf)

	out := buf.String()
	assert.Contains(t, out, "Wave 1")
	assert.Contains(t, out, "Wave 2")
	assert.Contains(t, out, "Design")
	// slack on the docs task
	assert.Contains(t, out, "+2d")
}

func TestPrintSchedule_Empty(t *testing.T) {
	a, err := analysis.Run(nil, config.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	New(a).PrintSchedule(&buf)
	assert.Contains(t, buf.String(), "No tasks")
}

func TestPrintTimeline(t *testing.T) {
	var buf bytes.Buffer
	New(diamondAnalysis(t)).PrintTimeline(&buf)

	out := buf.String()
	assert.Contains(t, out, "Timeline")
	assert.Contains(t, out, "█")
	// docs task has a slack tail
	assert.Contains(t, out, "░")
}

func TestPrintFindings(t *testing.T) {
	a, err := analysis.Run([]task.Spec{
		{ID: "pole", Name: "Pole", Duration: 20},
		{ID: "side", Name: "Side", Duration: 1},
	}, config.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	New(a).PrintFindings(&buf)

	out := buf.String()
	assert.Contains(t, out, "Bottlenecks")
	assert.Contains(t, out, "excessive slack")
	assert.Contains(t, out, "Recommendations")
}

func TestJSON(t *testing.T) {
	data, err := New(diamondAnalysis(t)).JSON()
	require.NoError(t, err)

	var decoded analysis.Analysis
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 7, decoded.ProjectDuration)
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	New(diamondAnalysis(t)).DOT(&buf)

	out := buf.String()
	assert.Contains(t, out, "digraph slackline")
	assert.Contains(t, out, `"a" -> "b" [color=red, penwidth=2]`)
	assert.Contains(t, out, `"a" -> "c";`)
	assert.Contains(t, out, "rankdir=LR")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very ...", truncate("a very long task name", 10))
}

func TestTruncate_Multibyte(t *testing.T) {
	// Cutting mid-rune would emit invalid UTF-8; truncation counts runes.
	got := truncate("Spécification détaillée de l'API", 10)
	assert.Equal(t, "Spécifi...", got)
	assert.True(t, utf8.ValidString(got))

	keep := "日本語のタスク名"
	assert.Equal(t, keep, truncate(keep, 10))
	assert.True(t, utf8.ValidString(truncate("日本語の長いタスク名です", 10)))
}
