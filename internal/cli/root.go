// Package cli provides the Cobra-based command surface for the
// validate-docs linter: the root validation command plus utility
// commands for inspecting the registered rule tables and the build
// version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "validate-docs <path>...",
	Short: "Validate documentation files against category schemas",
	Long: `validate-docs structured documentation linting

Parses documentation files into a normalized model (frontmatter header
plus heading sections), classifies each as a skill, standards, or
reference document, validates it against the rule table for its
category, and reports diagnostics with a deterministic summary.

Directories are expanded to the documentation files they contain.`,
	Example: `  # Validate a directory of docs
  validate-docs docs/

  # Validate specific files
  validate-docs docs/SKILL.md docs/review-format.md

  # Force a category for all given paths
  validate-docs --category=reference docs/components/

  # Machine-readable output, warnings failing
  validate-docs --format=json --strict docs/`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runValidate(cmd, args, configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute runs the root command and maps errors onto CLI exit codes.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(*exitError); !ok {
			// Flag and usage errors from cobra are invocation errors.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return NewExitError(ExitUsage)
		}
		return err
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".validate-docs/config.json", "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Validation flags
	rootCmd.Flags().String("category", "", "Override the inferred category for all given paths (skill|standards|reference)")
	rootCmd.Flags().String("format", "", "Report output format (text|json)")
	rootCmd.Flags().Bool("strict", false, "Treat warning-severity diagnostics as failing")
}
