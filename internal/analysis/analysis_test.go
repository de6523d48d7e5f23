package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshharrison/slackline/internal/config"
	"github.com/joshharrison/slackline/internal/graph"
	"github.com/joshharrison/slackline/internal/task"
)

func TestRun_FullPipeline(t *testing.T) {
	specs := []task.Spec{
		{ID: "a", Name: "A", Duration: 2},
		{ID: "b", Name: "B", Duration: 3, Dependencies: []string{"a"}},
		{ID: "c", Name: "C", Duration: 1, Dependencies: []string{"a"}},
		{ID: "d", Name: "D", Duration: 2, Dependencies: []string{"b", "c"}},
	}

	a, err := Run(specs, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 7, a.ProjectDuration)
	assert.Equal(t, []string{"a", "b", "d"}, a.CriticalPath)
	assert.Equal(t, []string{"a", "b", "d"}, a.CriticalTasks)
	require.Len(t, a.Tasks, 4)

	c := a.Task("c")
	require.NotNil(t, c)
	assert.Equal(t, 2, c.Slack)
	assert.False(t, c.Critical)
	assert.Equal(t, 1, c.Wave)

	assert.Len(t, a.Waves, 3)
	assert.Equal(t, "high", a.Metrics.RiskLevel)
}

func TestRun_InvalidReferenceProducesNoResult(t *testing.T) {
	specs := []task.Spec{
		{ID: "a", Name: "A", Duration: 1},
		{ID: "b", Name: "B", Duration: 1, Dependencies: []string{"missing"}},
	}

	a, err := Run(specs, config.Default())
	require.ErrorIs(t, err, graph.ErrInvalidReference)
	assert.Nil(t, a)
}

func TestRun_CycleProducesNoResult(t *testing.T) {
	specs := []task.Spec{
		{ID: "a", Name: "A", Duration: 1, Dependencies: []string{"b"}},
		{ID: "b", Name: "B", Duration: 1, Dependencies: []string{"a"}},
	}

	a, err := Run(specs, config.Default())
	require.ErrorIs(t, err, graph.ErrCycle)
	assert.Nil(t, a)
}

func TestRun_EmptyInput(t *testing.T) {
	a, err := Run(nil, config.Default())
	require.NoError(t, err)

	assert.Zero(t, a.ProjectDuration)
	assert.Empty(t, a.CriticalPath)
	assert.Empty(t, a.Bottlenecks)
	assert.Empty(t, a.Recommendations)
	assert.Equal(t, "low", a.Metrics.RiskLevel)
}

func TestRun_BottlenecksMatchFindings(t *testing.T) {
	specs := []task.Spec{
		{ID: "pole", Name: "Pole", Duration: 20},
		{ID: "side", Name: "Side", Duration: 1},
	}

	a, err := Run(specs, config.Default())
	require.NoError(t, err)

	require.Len(t, a.Findings, len(a.Bottlenecks))
	assert.Contains(t, a.Bottlenecks[0], "excessive slack")
}

func TestRun_SerializesToPlainRecord(t *testing.T) {
	specs := []task.Spec{
		{ID: "a", Name: "A", Duration: 2},
		{ID: "b", Name: "B", Duration: 3, Dependencies: []string{"a"}},
	}

	a, err := Run(specs, config.Default())
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded Analysis
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a.ProjectDuration, decoded.ProjectDuration)
	assert.Equal(t, a.CriticalPath, decoded.CriticalPath)
	require.Len(t, decoded.Tasks, 2)
	assert.Equal(t, []string{"a"}, decoded.Tasks[1].Dependencies)
}
