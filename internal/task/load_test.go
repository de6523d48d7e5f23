package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "tasks.json", `[
		{"id": "design", "name": "Design schema", "duration": 3},
		{"id": "build", "name": "Build API", "duration": 5, "dependencies": ["design"]}
	]`)

	specs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "design", specs[0].ID)
	assert.Equal(t, 3, specs[0].Duration)
	assert.Empty(t, specs[0].Dependencies)

	assert.Equal(t, "build", specs[1].ID)
	assert.Equal(t, []string{"design"}, specs[1].Dependencies)
}

func TestLoad_JSONMalformed(t *testing.T) {
	path := writeFile(t, "tasks.json", `{"not": "an array"}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_HCL(t *testing.T) {
	path := writeFile(t, "tasks.hcl", `
project {
  name = "release"

  task "design" {
    name     = "Design schema"
    duration = 3
  }

  task "build" {
    name       = "Build API"
    duration   = 1 * week
    depends_on = ["design"]
  }

  task "launch" {
    depends_on = ["build"]
  }
}
`)

	specs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, "design", specs[0].ID)
	assert.Equal(t, "Design schema", specs[0].Name)

	// week constant expands to 5 working days
	assert.Equal(t, 5, specs[1].Duration)

	// name defaults to the task label, duration to zero (milestone)
	assert.Equal(t, "launch", specs[2].Name)
	assert.Equal(t, 0, specs[2].Duration)
	assert.Equal(t, []string{"build"}, specs[2].Dependencies)
}

func TestLoad_HCLMissingProject(t *testing.T) {
	path := writeFile(t, "tasks.hcl", `# empty file`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project block")
}
