// Package tracker pulls task specs out of an external bd-style issue
// tracker CLI, so a project can be analyzed straight from its backlog.
package tracker

import (
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/joshharrison/slackline/internal/task"
)

// minutesPerDay converts tracker estimates (minutes) to schedule days.
const minutesPerDay = 8 * 60

// Client wraps the tracker CLI binary.
type Client struct {
	Bin    string // tracker binary (default: "bd")
	DBPath string // --db flag value (optional)
}

// NewClient creates a Client using the given binary path and database path.
func NewClient(bin, dbPath string) *Client {
	if bin == "" {
		bin = "bd"
	}
	return &Client{Bin: bin, DBPath: dbPath}
}

func (c *Client) run(args ...string) ([]byte, error) {
	if c.DBPath != "" {
		args = append([]string{"--db", c.DBPath}, args...)
	}
	out, err := exec.Command(c.Bin, args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w\n%s", c.Bin, strings.Join(args, " "), err, string(out))
	}
	return out, nil
}

// Load lists open tasks and resolves each task's dependency edges.
func (c *Client) Load() ([]task.Spec, error) {
	out, err := c.run("list", "--json", "--status", "open", "--limit", "0")
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}

	specs, err := parseTasks(out)
	if err != nil {
		return nil, err
	}

	for i := range specs {
		depsOut, err := c.run("dep", "list", specs[i].ID, "--direction=down", "--json")
		if err != nil {
			// dep list fails when a task has no edges; treat as no deps.
			log.Printf("warning: dep list for %s: %v", specs[i].ID, err)
			continue
		}
		specs[i].Dependencies = parseDeps(depsOut)
	}

	return specs, nil
}

// parseTasks reads the tracker's list output. gjson keeps this tolerant of
// extra fields and minor schema drift across tracker versions.
func parseTasks(out []byte) ([]task.Spec, error) {
	if !gjson.ValidBytes(out) {
		return nil, fmt.Errorf("tracker output is not valid JSON")
	}

	var specs []task.Spec
	gjson.ParseBytes(out).ForEach(func(_, item gjson.Result) bool {
		id := item.Get("id").String()
		if id == "" {
			return true
		}
		name := item.Get("title").String()
		if name == "" {
			name = id
		}
		specs = append(specs, task.Spec{
			ID:       id,
			Name:     name,
			Duration: estimateDays(int(item.Get("estimate").Int())),
		})
		return true
	})
	return specs, nil
}

// parseDeps extracts dependency ids from a dep list response.
func parseDeps(out []byte) []string {
	var deps []string
	gjson.ParseBytes(out).ForEach(func(_, item gjson.Result) bool {
		if id := item.Get("id").String(); id != "" {
			deps = append(deps, id)
		}
		return true
	})
	return deps
}

// estimateDays converts an estimate in minutes to whole days, rounding up.
// Unestimated tasks count as one day so they still occupy the schedule.
func estimateDays(minutes int) int {
	if minutes <= 0 {
		return 1
	}
	return (minutes + minutesPerDay - 1) / minutesPerDay
}
