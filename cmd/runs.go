package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hashcompose/reqforge/internal/history"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse past composition runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		intent, _ := cmd.Flags().GetString("intent")
		industry, _ := cmd.Flags().GetString("industry")
		limit, _ := cmd.Flags().GetInt("limit")

		summaries, err := store.List(context.Background(), history.ListFilter{
			Intent:   intent,
			Industry: industry,
			Limit:    limit,
		})
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No stored runs. Compose a requirement first with `reqforge compose`.")
			return nil
		}

		for _, sum := range summaries {
			fmt.Printf("%s  %s\n", sum.ID, sum.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("  %s\n", sum.Requirement)
			fmt.Printf("  intent=%s industry=%s approach=%s confidence=%d quality=%d artifacts=%d\n\n",
				sum.Intent, sum.Industry, sum.Approach,
				sum.OverallConfidence, sum.QualityScore, sum.ArtifactCount)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one stored run as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		result, err := store.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding run: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

var runsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than a retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		days, _ := cmd.Flags().GetInt("older-than")
		if days <= 0 {
			return fmt.Errorf("--older-than must be a positive number of days")
		}

		deleted, err := store.DeleteBefore(context.Background(), time.Now().AddDate(0, 0, -days))
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d run(s) older than %d day(s)\n", deleted, days)
		return nil
	},
}

func init() {
	runsListCmd.Flags().String("intent", "", "only show runs with this business intent")
	runsListCmd.Flags().String("industry", "", "only show runs classified into this industry")
	runsListCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	runsPruneCmd.Flags().Int("older-than", 90, "delete runs older than this many days")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsPruneCmd)
	rootCmd.AddCommand(runsCmd)
}
