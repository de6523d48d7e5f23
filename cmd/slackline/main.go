package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joshharrison/slackline/internal/advisor"
	"github.com/joshharrison/slackline/internal/analysis"
	"github.com/joshharrison/slackline/internal/config"
	"github.com/joshharrison/slackline/internal/report"
	"github.com/joshharrison/slackline/internal/task"
	"github.com/joshharrison/slackline/internal/tracker"
	"github.com/joshharrison/slackline/internal/ui"
)

var (
	flagFile        string
	flagFromTracker bool
	flagTrackerBin  string
	flagDB          string
	flagConfig      string
	flagJSON        bool
	flagOutput      string
	flagFormat      string
	flagModel       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slackline",
		Short: "Critical path analysis for project task graphs",
		Long: `Slackline reads a project task graph from a file or an issue tracker,
runs Critical Path Method analysis, and reports the minimum project
duration, per-task slack, the critical path, and scheduling risk.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Task file (.json or .hcl)")
	rootCmd.PersistentFlags().BoolVar(&flagFromTracker, "from-tracker", false, "Load tasks from the bd tracker CLI")
	rootCmd.PersistentFlags().StringVar(&flagTrackerBin, "tracker-bin", "", "Tracker binary (default: bd)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Tracker database path")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Threshold config file (default: ./slackline.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(vizCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(explainCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSpecs reads task specs from the configured source.
func loadSpecs() ([]task.Spec, error) {
	if flagFromTracker {
		return tracker.NewClient(flagTrackerBin, flagDB).Load()
	}
	if flagFile == "" {
		return nil, fmt.Errorf("no task source: pass --file or --from-tracker")
	}
	return task.Load(flagFile)
}

// runAnalysis is shared by every command: specs in, full analysis out.
func runAnalysis() (*analysis.Analysis, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	th, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	a, err := analysis.Run(specs, th)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	return a, nil
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full schedule and risk analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runAnalysis()
			if err != nil {
				return err
			}

			rpt := report.New(a)

			if flagOutput != "" {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				return os.WriteFile(flagOutput, data, 0644)
			}

			if flagJSON {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			rpt.Print(os.Stdout)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagOutput, "output", "", "Save analysis JSON to file")

	return cmd
}

func timelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Print a Gantt-style timeline of the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runAnalysis()
			if err != nil {
				return err
			}

			rpt := report.New(a)
			rpt.PrintSummary(os.Stdout)
			rpt.PrintTimeline(os.Stdout)
			return nil
		},
	}
}

func vizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Print the dependency graph (ascii or Graphviz dot)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runAnalysis()
			if err != nil {
				return err
			}

			rpt := report.New(a)
			if flagFormat == "dot" {
				rpt.DOT(os.Stdout)
				return nil
			}
			printASCIIDAG(a)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "ascii", "Output format (ascii, dot)")

	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the task graph without reporting a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runAnalysis()
			if err != nil {
				return err
			}
			fmt.Printf("%s %s tasks, %s dependency edges, no cycles\n",
				ui.Green("✓"), ui.Bold(a.Metrics.TotalTasks), ui.Bold(countEdges(a)))
			return nil
		},
	}
}

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Ask Claude for a narrative risk assessment of the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runAnalysis()
			if err != nil {
				return err
			}

			client, err := advisor.NewClient("", flagModel)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			fmt.Fprintf(os.Stderr, "%s asking Claude...\n", ui.Dim("⏳"))
			narrative, err := client.Explain(ctx, a)
			if err != nil {
				return err
			}

			fmt.Println(narrative)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagModel, "model", "", "Claude model id override")

	return cmd
}

func printASCIIDAG(a *analysis.Analysis) {
	fmt.Printf("🔗 %s\n", ui.BoldCyan("Task Dependency Graph"))
	fmt.Println(ui.Cyan("═══════════════════════"))
	fmt.Println()

	dependents := make(map[string][]string)
	for i := range a.Tasks {
		t := &a.Tasks[i]
		for _, dep := range t.Dependencies {
			dependents[dep] = append(dependents[dep], t.ID)
		}
	}

	for _, wave := range a.Waves {
		fmt.Printf("%s 🌊 Wave %d %s\n", ui.Cyan("──"), wave.Index+1, ui.Cyan("──────────────────────────────"))
		for _, id := range wave.TaskIDs {
			t := a.Task(id)
			if t == nil {
				continue
			}
			fmt.Printf("  %s [%s] %s %s\n", ui.CritMark(t.Critical), ui.BoldMagenta(t.ID), t.Name,
				ui.Dim(fmt.Sprintf("(%dd)", t.Duration)))
			for _, dep := range dependents[t.ID] {
				fmt.Printf("      %s %s\n", ui.Dim("└──→"), ui.Magenta(dep))
			}
		}
		fmt.Println()
	}
}

func countEdges(a *analysis.Analysis) int {
	n := 0
	for i := range a.Tasks {
		n += len(a.Tasks[i].Dependencies)
	}
	return n
}
