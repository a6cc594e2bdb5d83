package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hashcompose/reqforge/internal/analyzer"
	"github.com/hashcompose/reqforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize reqforge configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure reqforge for your project and
generates a .reqforge.yml file. The current directory is also scanned
to pre-fill the enterprise context with the detected tech stack.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}

		// Seed the enterprise context from whatever the project reveals.
		root, err := os.Getwd()
		if err != nil {
			return nil
		}
		detected, err := analyzer.DetectContext(root)
		if err != nil || detected == nil {
			return nil
		}

		if err := detected.Save(cfg.ContextFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save detected context: %v\n", err)
			return nil
		}
		fmt.Printf("Detected tech stack (%s) saved to %s\n",
			strings.Join(detected.TechStack, ", "), cfg.ContextFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
