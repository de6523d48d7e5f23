// Package task defines the task specification supplied to analysis and the
// loaders that read specs from project files.
package task

// Spec is a single schedulable task as authored by the caller. Durations are
// whole days; zero-duration milestones are allowed. Dependencies name tasks
// that must finish before this one starts.
type Spec struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     int      `json:"duration"`
	Dependencies []string `json:"dependencies,omitempty"`
}
