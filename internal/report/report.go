// Package report aggregates per-document validation results into a
// deterministic run summary with a CI-friendly exit code. Output is
// stably ordered so repeated runs over unchanged input are
// byte-identical.
package report

import (
	"sort"

	"github.com/ariel-frischer/validate-docs/internal/validation"
)

// Summary holds aggregate counts for one run.
type Summary struct {
	Documents int `json:"documents"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Skipped   int `json:"skipped"`
	ExitCode  int `json:"exit_code"`
}

// RunResult is the aggregate of all diagnostics for one invocation.
type RunResult struct {
	Documents []*validation.DocumentResult `json:"documents"`
	Summary   Summary                      `json:"summary"`
}

// Options controls aggregation policy.
type Options struct {
	// Strict treats warning-severity diagnostics as failing.
	Strict bool
}

// Aggregate collects document results into a RunResult. Documents are
// sorted by path and diagnostics within each document by severity
// (errors first), then rule ID, then line, regardless of the order the
// per-document work completed in. Zero documents is not an error and
// yields exit code 0.
func Aggregate(results []*validation.DocumentResult, opts Options) *RunResult {
	sorted := make([]*validation.DocumentResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	run := &RunResult{Documents: sorted}
	run.Summary.Documents = len(sorted)

	for _, doc := range sorted {
		sortDiagnostics(doc.Diagnostics)
		if doc.Status == validation.StatusSkipped {
			run.Summary.Skipped++
		}
		for _, d := range doc.Diagnostics {
			switch d.Severity {
			case validation.SeverityError:
				run.Summary.Errors++
			case validation.SeverityWarning:
				run.Summary.Warnings++
			}
		}
	}

	if run.Summary.Errors > 0 || (opts.Strict && run.Summary.Warnings > 0) {
		run.Summary.ExitCode = 1
	}
	return run
}

func sortDiagnostics(diags []*validation.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Line < b.Line
	})
}
