package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	"github.com/hashcompose/reqforge/internal/requirement"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [requirement]",
	Short: "Classify a requirement without generating code",
	Long: `Analyzes a business requirement and prints its classification: business
intent, industry context, technical complexity, compliance needs, the
confidence breakdown, and the recommended composition strategy.`,
	Args: cobra.ArbitraryArgs,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Bool("json", false, "print the full classification as JSON")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return fmt.Errorf("a requirement is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := buildLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	providers := llm.Chain(log, cfg.Providers, cfg.Model)
	lad := ladder.New(log, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	classify := classifier.New(knowledge.Default(), providers, lad, cfg.Model)

	enterprise, err := requirement.LoadContext(cfg.ContextFile)
	if err != nil {
		enterprise = nil
	}

	cls := classify.Classify(context.Background(), requirement.Requirement{
		Description: description,
		Context:     enterprise,
	})

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(cls, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding classification: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Intent:       %s", cls.BusinessIntent.Primary)
	if len(cls.BusinessIntent.Secondary) > 0 {
		secondary := make([]string, len(cls.BusinessIntent.Secondary))
		for i, s := range cls.BusinessIntent.Secondary {
			secondary[i] = string(s)
		}
		fmt.Printf(" (secondary: %s)", strings.Join(secondary, ", "))
	}
	fmt.Println()
	fmt.Printf("Industry:     %s\n", cls.Industry.Industry)
	if len(cls.Industry.RegulatoryFrameworks) > 0 {
		fmt.Printf("Frameworks:   %s\n", strings.Join(cls.Industry.RegulatoryFrameworks, ", "))
	}
	fmt.Printf("Complexity:   %d\n", cls.TechnicalComplexity.OverallScore)
	fmt.Printf("Compliance:   %s\n", cls.Compliance.Level)
	fmt.Printf("Strategy:     %s\n", cls.RecommendedApproach.Strategy)
	fmt.Printf("Confidence:   %d (intent %d, feasibility %d, regulatory %d, templates %d, capability %d)\n",
		cls.ConfidenceScore.Overall,
		cls.ConfidenceScore.Breakdown.BusinessIntentMatch,
		cls.ConfidenceScore.Breakdown.TechnicalFeasibility,
		cls.ConfidenceScore.Breakdown.RegulatoryCompliance,
		cls.ConfidenceScore.Breakdown.TemplateAvailability,
		cls.ConfidenceScore.Breakdown.AICapability)
	fmt.Printf("Source:       %s\n", cls.Source)
	if len(cls.RecommendedServices) > 0 {
		fmt.Printf("Services:     %s\n", strings.Join(cls.RecommendedServices, ", "))
	}
	return nil
}
