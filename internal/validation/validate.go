// Package validation applies category rule tables to parsed documents
// and produces diagnostics. Evaluation is deterministic, follows rule
// registration order, and isolates failures: one bad document or one
// misbehaving rule never blocks validation of the rest.
package validation

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/validate-docs/internal/document"
)

// Status is the per-document validation outcome.
type Status string

const (
	// StatusPassed means the document violated no error-severity rules.
	StatusPassed Status = "passed"
	// StatusFailed means at least one error-severity diagnostic.
	StatusFailed Status = "failed"
	// StatusSkipped means no rules applied to the document's category.
	// Skipped is never reported as passed, to avoid false confidence.
	StatusSkipped Status = "skipped"
)

// DocumentResult is the validation outcome for a single document.
type DocumentResult struct {
	Path        string            `json:"path"`
	Category    document.Category `json:"category,omitempty"`
	Status      Status            `json:"status"`
	Diagnostics []*Diagnostic     `json:"diagnostics"`
}

// Validate evaluates each rule whose category matches the document and
// returns one diagnostic per violated rule, in registration order.
// A rule whose check errors or panics yields a single error-severity
// diagnostic blaming the rule, and evaluation continues.
func Validate(doc *document.Document, rules []Rule) []*Diagnostic {
	var diags []*Diagnostic
	for _, rule := range rules {
		if rule.AppliesTo != doc.Category {
			continue
		}
		v, err := runCheck(rule, doc)
		if err != nil {
			diags = append(diags, &Diagnostic{
				DocumentPath: doc.Path,
				RuleID:       rule.ID,
				Severity:     SeverityError,
				Message:      fmt.Sprintf("rule evaluation failed: %v", err),
				Hint:         "This is a defect in the rule or an unexpected document shape, not a rule violation",
			})
			continue
		}
		if v == nil {
			continue
		}
		msg := v.Message
		if msg == "" {
			msg = rule.Description
		}
		diags = append(diags, &Diagnostic{
			DocumentPath: doc.Path,
			RuleID:       rule.ID,
			Severity:     rule.Severity,
			Line:         v.Line,
			Message:      msg,
			Hint:         v.Hint,
		})
	}
	return diags
}

// runCheck evaluates a single rule, converting panics into errors so a
// defective predicate cannot abort the run.
func runCheck(rule Rule, doc *document.Document) (v *Violation, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("panic in rule %s: %v", rule.ID, r)
		}
	}()
	return rule.Check(doc)
}

// ValidateDocument validates a document against the registry and
// computes its status. A category with no registered rules yields a
// skipped result carrying a single warning diagnostic.
func ValidateDocument(reg *Registry, doc *document.Document) *DocumentResult {
	rules := reg.RulesFor(doc.Category)
	if len(rules) == 0 {
		return &DocumentResult{
			Path:     doc.Path,
			Category: doc.Category,
			Status:   StatusSkipped,
			Diagnostics: []*Diagnostic{{
				DocumentPath: doc.Path,
				RuleID:       RuleIDUnknownCategory,
				Severity:     SeverityWarning,
				Message:      fmt.Sprintf("no rules registered for category %q; document skipped", doc.Category),
				Hint:         "Override the category with --category or a config override",
			}},
		}
	}

	diags := Validate(doc, rules)
	status := StatusPassed
	for _, d := range diags {
		if d.Severity == SeverityError {
			status = StatusFailed
			break
		}
	}
	return &DocumentResult{
		Path:        doc.Path,
		Category:    doc.Category,
		Status:      status,
		Diagnostics: diags,
	}
}

// ParseFailureResult wraps a parse error as a failed document result so
// one malformed document is surfaced without aborting the run.
func ParseFailureResult(path string, err error) *DocumentResult {
	line := 0
	var perr *document.ParseError
	if errors.As(err, &perr) {
		line = perr.Line
	}
	return &DocumentResult{
		Path:   path,
		Status: StatusFailed,
		Diagnostics: []*Diagnostic{{
			DocumentPath: path,
			RuleID:       RuleIDParse,
			Severity:     SeverityError,
			Line:         line,
			Message:      err.Error(),
			Hint:         "Fix the document structure before rules can be evaluated",
		}},
	}
}
