package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hashcompose/reqforge/internal/progress"
	"github.com/hashcompose/reqforge/internal/requirement"
	"github.com/hashcompose/reqforge/internal/writer"
)

var composeCmd = &cobra.Command{
	Use:   "compose [requirement]",
	Short: "Compose deployable code from a business requirement",
	Long: `Runs the full pipeline for one requirement: classification, strategy
selection, artifact generation, quality assessment, and bounded
refinement. Artifacts are written under the configured output directory
and the run is stored in the local history database.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().String("file", "", "read the requirement text from a file")
	composeCmd.Flags().String("context-file", "", "path to an enterprise context JSON file (overrides config)")
	composeCmd.Flags().String("output", "", "output directory for artifacts (overrides config)")
	composeCmd.Flags().Bool("no-write", false, "do not write artifacts to disk")
	composeCmd.Flags().Bool("json", false, "print the full result as JSON instead of a summary")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()

	description := strings.TrimSpace(strings.Join(args, " "))
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading requirement file: %w", err)
		}
		description = strings.TrimSpace(string(data))
	}
	if description == "" {
		return fmt.Errorf("a requirement is required: pass it as an argument or via --file")
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

	// Enterprise context: explicit flag first, then the configured path.
	contextPath, _ := cmd.Flags().GetString("context-file")
	explicit := contextPath != ""
	if contextPath == "" {
		contextPath = cfg.ContextFile
	}
	enterprise, err := requirement.LoadContext(contextPath)
	if err != nil && explicit {
		return fmt.Errorf("loading context file: %w", err)
	}
	if enterprise != nil && verbose {
		fmt.Fprintf(os.Stderr, "Loaded enterprise context from %s\n", contextPath)
	}

	comp := buildComposer(cfg, log)

	result, err := comp.Compose(ctx, requirement.Requirement{
		Description: description,
		Context:     enterprise,
	})
	if err != nil {
		return fmt.Errorf("composing: %w", err)
	}

	// Persist the run before writing files so a write failure cannot lose it.
	database, store, err := openHistory(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer database.Close()
		if err := store.Save(ctx, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
		}
	}

	noWrite, _ := cmd.Flags().GetBool("no-write")
	var outcomes []writer.Outcome
	if !noWrite {
		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}

		w := writer.New(outputDir, cfg.ConflictPolicy, log)
		w.Reporter = progress.NewReporter()
		outcomes, err = w.WriteAll(result.Artifacts)
		if err != nil {
			return fmt.Errorf("writing artifacts: %w", err)
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printComposeSummary(result, outcomes, time.Since(start))
	return nil
}
