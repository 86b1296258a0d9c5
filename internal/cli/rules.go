package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/validate-docs/internal/document"
	"github.com/ariel-frischer/validate-docs/internal/validation"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [category]",
	Short: "Print the registered validation rules",
	Long: `Print the registered validation rules, grouped by document category.

With a category argument, only that category's rules are shown.

Categories:
  skill      - documents declaring name/description frontmatter
  standards  - documents defining a required format or schema
  reference  - catalog-style documents describing external entities`,
	Example: `  # All rules
  validate-docs rules

  # Rules for one category
  validate-docs rules skill`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRules(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(args []string, out, errOut io.Writer) error {
	registry := validation.NewRegistry()

	categories := []document.Category{
		document.CategorySkill,
		document.CategoryStandards,
		document.CategoryReference,
	}
	if len(args) == 1 {
		cat, err := document.ParseCategory(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return NewExitError(ExitUsage)
		}
		categories = []document.Category{cat}
	}

	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Rules for %s documents\n", cat)
		fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))
		for _, rule := range registry.RulesFor(cat) {
			fmt.Fprintf(out, "%-32s %s\n", rule.ID, rule.Severity)
			fmt.Fprintf(out, "  # %s\n", rule.Description)
		}
	}
	return nil
}
