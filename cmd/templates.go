package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashcompose/reqforge/internal/embeddings"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/templateindex"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the template inventory",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every template in the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb := knowledge.Default()
		for _, t := range kb.Templates {
			fmt.Printf("%-30s %s\n", t.Name, t.Description)
			fmt.Printf("%-30s intent=%s keywords=%s\n\n", "", t.Intent, strings.Join(t.Keywords, ","))
		}
		return nil
	},
}

var templatesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search templates semantically",
	Long: `Embeds the template inventory and runs a vector search for the given
query. Requires an embedding provider; without one, use the keyword
matching that classification already applies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := embeddings.New(cfg.EmbeddingProvider, cfg.EmbeddingModel)
		if err != nil {
			if errors.Is(err, embeddings.ErrNotConfigured) {
				return fmt.Errorf("%w\nSet the embedding provider's API key, or use `reqforge templates list`", err)
			}
			return err
		}

		ctx := context.Background()
		ix, err := templateindex.New(ctx, knowledge.Default(), embedder)
		if err != nil {
			return fmt.Errorf("building template index: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		matches, err := ix.Search(ctx, strings.Join(args, " "), limit)
		if err != nil {
			return fmt.Errorf("searching templates: %w", err)
		}
		if len(matches) == 0 {
			fmt.Println("No matching templates.")
			return nil
		}

		for _, m := range matches {
			fmt.Printf("%5.1f%%  %-30s %s\n", m.Similarity*100, m.Template.Name, m.Template.Description)
		}
		return nil
	},
}

func init() {
	templatesSearchCmd.Flags().Int("limit", 5, "maximum number of matches")
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesSearchCmd)
	rootCmd.AddCommand(templatesCmd)
}
