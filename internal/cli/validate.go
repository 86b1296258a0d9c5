package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/validate-docs/internal/config"
	"github.com/ariel-frischer/validate-docs/internal/document"
	"github.com/ariel-frischer/validate-docs/internal/progress"
	"github.com/ariel-frischer/validate-docs/internal/report"
	"github.com/ariel-frischer/validate-docs/internal/validation"
)

// runValidate executes the validation pipeline: expand paths, parse
// each file, validate against the registry, aggregate, and report.
func runValidate(cmd *cobra.Command, args []string, configPath string, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitUsage)
	}

	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			fmt.Fprintf(errOut, "Error: invalid format: %s (valid formats: text, json)\n", format)
			return NewExitError(ExitUsage)
		}
		cfg.Format = format
	}

	var forced document.Category
	if cmd.Flags().Changed("category") {
		raw, _ := cmd.Flags().GetString("category")
		forced, err = document.ParseCategory(raw)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return NewExitError(ExitUsage)
		}
	}

	files, err := expandPaths(args, cfg.Include)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitUsage)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	registry := validation.NewRegistry()

	var display *progress.Display
	if cfg.ShowProgress && cfg.Format == "text" && len(files) > 1 {
		display = progress.NewDisplay(progress.DetectTerminalCapabilities())
		display.Start(fmt.Sprintf("Validating %d documents...", len(files)))
	}

	results := make([]*validation.DocumentResult, 0, len(files))
	for i, path := range files {
		if display != nil {
			display.Update(fmt.Sprintf("Validating %s (%d/%d)", path, i+1, len(files)))
		}

		data, err := os.ReadFile(path)
		if err != nil {
			// Unreadable input makes a partial run meaningless.
			if display != nil {
				display.Stop()
			}
			fmt.Fprintf(errOut, "Error: cannot read %s: %v\n", path, err)
			return NewExitError(ExitUsage)
		}

		doc, err := document.Parse(path, data)
		if err != nil {
			results = append(results, validation.ParseFailureResult(path, err))
			continue
		}

		if forced != "" {
			doc.Category = forced
		} else if override, ok := cfg.CategoryFor(path); ok {
			doc.Category = override
		}

		results = append(results, validation.ValidateDocument(registry, doc))
	}
	if display != nil {
		display.Stop()
	}

	run := report.Aggregate(results, report.Options{Strict: cfg.Strict})

	switch cfg.Format {
	case "json":
		if err := report.WriteJSON(out, run); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return NewExitError(ExitUsage)
		}
	default:
		if verbose {
			report.WriteVerboseText(out, run)
		} else {
			report.WriteText(out, run)
		}
	}

	if run.Summary.ExitCode != 0 {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
