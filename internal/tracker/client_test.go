package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTasks(t *testing.T) {
	out := []byte(`[
		{"id": "sl-1", "title": "Design schema", "status": "open", "estimate": 960, "priority": 1},
		{"id": "sl-2", "title": "Build API", "status": "open"},
		{"id": "", "title": "junk row"}
	]`)

	specs, err := parseTasks(out)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "sl-1", specs[0].ID)
	assert.Equal(t, "Design schema", specs[0].Name)
	assert.Equal(t, 2, specs[0].Duration) // 960 min = 2 working days

	// unestimated tasks default to one day
	assert.Equal(t, 1, specs[1].Duration)
}

func TestParseTasks_NameFallsBackToID(t *testing.T) {
	specs, err := parseTasks([]byte(`[{"id": "sl-9"}]`))
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "sl-9", specs[0].Name)
}

func TestParseTasks_InvalidJSON(t *testing.T) {
	_, err := parseTasks([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseDeps(t *testing.T) {
	deps := parseDeps([]byte(`[{"id": "sl-1"}, {"id": "sl-2"}, {}]`))
	assert.Equal(t, []string{"sl-1", "sl-2"}, deps)
}

func TestEstimateDays(t *testing.T) {
	assert.Equal(t, 1, estimateDays(0))
	assert.Equal(t, 1, estimateDays(-5))
	assert.Equal(t, 1, estimateDays(60))
	assert.Equal(t, 1, estimateDays(480))
	assert.Equal(t, 2, estimateDays(481))
	assert.Equal(t, 3, estimateDays(1200))
}
