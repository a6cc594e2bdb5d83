package cmd

import (
	"fmt"
	"time"

	"github.com/hashcompose/reqforge/internal/composer"
	"github.com/hashcompose/reqforge/internal/writer"
)

// printComposeSummary prints the human-readable outcome of one run.
func printComposeSummary(result *composer.Result, outcomes []writer.Outcome, duration time.Duration) {
	cls := result.Classification

	fmt.Println()
	fmt.Println("Composition complete!")
	fmt.Printf("  Run ID:          %s\n", result.ID)
	fmt.Printf("  Intent:          %s\n", cls.BusinessIntent.Primary)
	if cls.Industry.Industry != "" {
		fmt.Printf("  Industry:        %s\n", cls.Industry.Industry)
	}
	fmt.Printf("  Compliance:      %s\n", cls.Compliance.Level)
	fmt.Printf("  Strategy:        %s\n", result.Strategy.Approach)
	fmt.Printf("  Confidence:      %d\n", cls.ConfidenceScore.Overall)
	fmt.Printf("  Quality score:   %d (after %d refinement round(s))\n",
		result.Quality.OverallScore, result.RefinementRounds)
	fmt.Printf("  Source:          %s\n", cls.Source)
	fmt.Printf("  Duration:        %s\n", duration.Round(time.Millisecond))

	fmt.Println()
	fmt.Printf("Artifacts (%d):\n", len(result.Artifacts))
	for _, a := range result.Artifacts {
		fmt.Printf("  %-50s %s (confidence %d)\n", a.FilePath, a.Method, a.Confidence)
	}

	if len(outcomes) > 0 {
		fmt.Println()
		fmt.Println("Written:")
		for _, o := range outcomes {
			line := fmt.Sprintf("  %s (%s)", o.Path, o.Action)
			if o.Backup != "" {
				line += " backup: " + o.Backup
			}
			fmt.Println(line)
		}
	}

	if len(result.Quality.Issues) > 0 {
		fmt.Println()
		fmt.Printf("Open issues (%d):\n", len(result.Quality.Issues))
		for _, issue := range result.Quality.Issues {
			fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.File, issue.Message)
		}
	}

	if len(result.LimitationAcknowledgment) > 0 {
		fmt.Println()
		fmt.Println("Limitations:")
		for _, l := range result.LimitationAcknowledgment {
			fmt.Printf("  - %s\n", l)
		}
	}
}
