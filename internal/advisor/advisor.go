// Package advisor turns a finished analysis into a short narrative risk
// assessment via the Anthropic API.
package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/joshharrison/slackline/internal/analysis"
	"github.com/joshharrison/slackline/internal/risk"
)

// Client wraps the Anthropic SDK.
type Client struct {
	inner anthropic.Client
	model anthropic.Model
}

// NewClient creates an advisor client. apiKey defaults to the
// ANTHROPIC_API_KEY env var; model defaults to Claude Sonnet.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	inner := anthropic.NewClient(option.WithAPIKey(apiKey))

	m := anthropic.ModelClaudeSonnet4_6
	if model != "" {
		m = anthropic.Model(model)
	}

	return &Client{inner: inner, model: m}, nil
}

const explainPrompt = `You are an experienced project manager reviewing a Critical Path Method analysis.

You will receive the computed schedule: project duration, the critical path,
per-task timing windows with slack, bottleneck findings, and summary metrics.

Produce a short narrative assessment covering:
- Where the schedule risk actually concentrates and why.
- Which slack is safe to spend and which is illusory.
- The two or three actions most likely to shorten the project.

Be concrete and reference tasks by name. Keep it under 300 words. Do not
restate the raw numbers back as a list.`

// Explain sends the analysis summary to Claude and returns the narrative.
func (c *Client) Explain(ctx context.Context, a *analysis.Analysis) (string, error) {
	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(1024),
		System: []anthropic.TextBlockParam{
			{Text: explainPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(Summarize(a))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude API call: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return strings.TrimSpace(text), nil
}

// Summarize renders the analysis as the plain-text prompt payload.
func Summarize(a *analysis.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project duration: %d days\n", a.ProjectDuration)
	fmt.Fprintf(&b, "Critical path: %s\n", strings.Join(a.CriticalPath, " -> "))
	fmt.Fprintf(&b, "Risk level: %s (average slack %.1fd)\n\n", a.Metrics.RiskLevel, a.Metrics.AverageSlack)

	b.WriteString("Tasks:\n")
	for i := range a.Tasks {
		t := &a.Tasks[i]
		mark := " "
		if t.Critical {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s (%s): %dd, window %d-%d, latest %d-%d, slack %dd\n",
			mark, t.ID, t.Name, t.Duration,
			t.EarliestStart, t.EarliestFinish, t.LatestStart, t.LatestFinish, t.Slack)
	}

	if len(a.Findings) > 0 {
		b.WriteString("\nBottlenecks:\n")
		for _, f := range a.Findings {
			fmt.Fprintf(&b, "- %s\n", risk.RenderFinding(f))
		}
	}

	return b.String()
}
