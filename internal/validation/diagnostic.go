package validation

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic. Errors block success; warnings are
// reported but non-blocking unless strict mode is set.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rank orders severities for reporting (errors before warnings).
func (s Severity) Rank() int {
	if s == SeverityError {
		return 0
	}
	return 1
}

// Diagnostic is one reported outcome of a validation rule against a
// document. Created by the validator, collected by the reporter,
// immutable once emitted.
type Diagnostic struct {
	DocumentPath string   `json:"path"`
	RuleID       string   `json:"rule"`
	Severity     Severity `json:"severity"`
	Line         int      `json:"line,omitempty"`
	Message      string   `json:"message"`
	Hint         string   `json:"hint,omitempty"`
}

// String renders the diagnostic as a single report line.
func (d *Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(string(d.Severity))
	sb.WriteString(" ")
	sb.WriteString(d.DocumentPath)
	if d.Line > 0 {
		sb.WriteString(fmt.Sprintf(":%d", d.Line))
	}
	sb.WriteString(fmt.Sprintf(" [%s] %s", d.RuleID, d.Message))
	return sb.String()
}

// Diagnostic IDs emitted by the engine itself rather than by a
// registered rule.
const (
	// RuleIDParse is attached to documents whose structure could not be
	// parsed at all.
	RuleIDParse = "parser/malformed"
	// RuleIDUnknownCategory is attached to documents whose category has
	// no registered rules; such documents are skipped, never passed.
	RuleIDUnknownCategory = "validator/unknown-category"
)
