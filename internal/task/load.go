package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Load reads task specs from a project file. The format is chosen by
// extension: .hcl is parsed as a project block, everything else as a JSON
// array of specs.
func Load(path string) ([]Spec, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return loadHCL(path)
	}
	return loadJSON(path)
}

func loadJSON(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	var specs []Spec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}
	return specs, nil
}

// hclProjectFile is the top-level structure of a .hcl task file.
type hclProjectFile struct {
	Project *hclProject `hcl:"project,block"`
}

type hclProject struct {
	Name  string     `hcl:"name,optional"`
	Tasks []*hclTask `hcl:"task,block"`
}

type hclTask struct {
	ID           string   `hcl:"id,label"`
	Name         string   `hcl:"name,optional"`
	Duration     int      `hcl:"duration,optional"`
	Dependencies []string `hcl:"depends_on,optional"`
}

// durationContext lets duration expressions use day/week constants,
// e.g. duration = 2 * week.
func durationContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"day":  cty.NumberIntVal(1),
			"week": cty.NumberIntVal(5),
		},
	}
}

func loadHCL(path string) ([]Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL file %s: %w", path, diags)
	}

	var parsed hclProjectFile
	if diags := gohcl.DecodeBody(file.Body, durationContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode HCL file %s: %w", path, diags)
	}
	if parsed.Project == nil {
		return nil, fmt.Errorf("HCL file %s: missing project block", path)
	}

	specs := make([]Spec, 0, len(parsed.Project.Tasks))
	for _, t := range parsed.Project.Tasks {
		name := t.Name
		if name == "" {
			name = t.ID
		}
		specs = append(specs, Spec{
			ID:           t.ID,
			Name:         name,
			Duration:     t.Duration,
			Dependencies: t.Dependencies,
		})
	}
	return specs, nil
}
