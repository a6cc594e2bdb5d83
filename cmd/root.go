package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "reqforge",
	Short: "Compose deployable code from business requirements",
	Long: `Reqforge turns free-text business requirements into deployable code.
It classifies each requirement across business intent, industry context,
technical complexity, and compliance needs, selects a composition
strategy, generates artifacts from templates and reasoning providers,
and refines them until a quality threshold is met. Every stage degrades
to a deterministic fallback when no provider is reachable.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".reqforge.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
