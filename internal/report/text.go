package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ariel-frischer/validate-docs/internal/validation"
)

// WriteText renders the run result in text mode: one line per
// diagnostic followed by a summary line. fatih/color disables itself
// automatically when output is not a terminal or NO_COLOR is set.
func WriteText(w io.Writer, run *RunResult) {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, doc := range run.Documents {
		for _, d := range doc.Diagnostics {
			sev := string(d.Severity)
			switch d.Severity {
			case validation.SeverityError:
				sev = red(sev)
			case validation.SeverityWarning:
				sev = yellow(sev)
			}
			loc := d.DocumentPath
			if d.Line > 0 {
				loc = fmt.Sprintf("%s:%d", d.DocumentPath, d.Line)
			}
			fmt.Fprintf(w, "%s %s [%s] %s\n", sev, loc, d.RuleID, d.Message)
		}
	}

	if run.Summary.Documents == 0 {
		return
	}
	fmt.Fprintf(w, "%d documents, %d errors, %d warnings\n",
		run.Summary.Documents, run.Summary.Errors, run.Summary.Warnings)
}

// WriteVerboseText renders the run result with per-document status and
// hints, in the detailed style used for interactive runs.
func WriteVerboseText(w io.Writer, run *RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, doc := range run.Documents {
		switch doc.Status {
		case validation.StatusPassed:
			fmt.Fprintf(w, "%s %s (%s)\n", green("✓"), doc.Path, doc.Category)
		case validation.StatusFailed:
			fmt.Fprintf(w, "%s %s (%s)\n", red("✗"), doc.Path, doc.Category)
		case validation.StatusSkipped:
			fmt.Fprintf(w, "%s %s skipped\n", yellow("•"), doc.Path)
		}
		for _, d := range doc.Diagnostics {
			fmt.Fprintf(w, "  %s\n", d.String())
			if d.Hint != "" {
				fmt.Fprintf(w, "    %s %s\n", yellow("Hint:"), d.Hint)
			}
		}
	}

	if run.Summary.Documents == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d documents, %d errors, %d warnings\n",
		run.Summary.Documents, run.Summary.Errors, run.Summary.Warnings)
}
