// Package ui holds the terminal styling helpers shared by the reporter and
// the CLI.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// CritMark returns the critical-task marker, or a space for alignment.
func CritMark(critical bool) string {
	if critical {
		return BoldYellow("⚡")
	}
	return " "
}

// SlackBadge renders a task's slack: green zero for critical tasks, yellow
// for small slack, dim for comfortable float.
func SlackBadge(slack int) string {
	switch {
	case slack == 0:
		return BoldGreen("0d")
	case slack <= 2:
		return Yellow(fmt.Sprintf("+%dd", slack))
	default:
		return Dim(fmt.Sprintf("+%dd", slack))
	}
}

// RiskBadge renders a low/medium/high risk level.
func RiskBadge(level string) string {
	switch level {
	case "high":
		return BoldRed("HIGH")
	case "medium":
		return BoldYellow("MEDIUM")
	default:
		return BoldGreen("LOW")
	}
}

// SeverityIcon returns a colored marker for a finding severity.
func SeverityIcon(severity string) string {
	switch severity {
	case "high":
		return Red("▲")
	case "medium":
		return Yellow("■")
	default:
		return Dim("●")
	}
}
