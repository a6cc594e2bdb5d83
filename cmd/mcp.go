package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hashcompose/reqforge/internal/classifier"
	"github.com/hashcompose/reqforge/internal/knowledge"
	"github.com/hashcompose/reqforge/internal/ladder"
	"github.com/hashcompose/reqforge/internal/llm"
	mcpserver "github.com/hashcompose/reqforge/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio, exposing
requirement composition tools (compose_requirement, classify_requirement,
list_runs, get_run) for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Stdout carries MCP protocol messages; zap already writes to stderr.
		log, err := buildLogger()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		providers := llm.Chain(log, cfg.Providers, cfg.Model)
		lad := ladder.New(log, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)

		comp := buildComposer(cfg, log)
		classify := classifier.New(knowledge.Default(), providers, lad, cfg.Model)

		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "reqforge MCP server started on stdio (providers=%d)\n", len(providers))

		srv := mcpserver.NewServer(comp, classify, store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
