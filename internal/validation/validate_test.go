package validation

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/ariel-frischer/validate-docs/internal/document"
)

func TestValidateDeterministic(t *testing.T) {
	doc := mustParse(t, "skill_missing_description.md")
	rules := NewRegistry().RulesFor(doc.Category)

	first := Validate(doc, rules)
	second := Validate(doc, rules)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation produced different diagnostics:\n%v\n%v", first, second)
	}
}

// Permuting rule order must not change the set of diagnostics produced.
func TestValidateRuleOrderIndependent(t *testing.T) {
	doc := mustParse(t, "skill_unpaired_example.md")
	rules := NewRegistry().RulesFor(doc.Category)

	reversed := make([]Rule, len(rules))
	for i, r := range rules {
		reversed[len(rules)-1-i] = r
	}

	byID := func(diags []*Diagnostic) []string {
		ids := make([]string, len(diags))
		for i, d := range diags {
			ids[i] = d.RuleID + ":" + d.Message
		}
		sort.Strings(ids)
		return ids
	}

	forward := byID(Validate(doc, rules))
	backward := byID(Validate(doc, reversed))
	if !reflect.DeepEqual(forward, backward) {
		t.Errorf("rule order changed the diagnostic set:\n%v\n%v", forward, backward)
	}
}

func TestValidatePanickingRuleIsIsolated(t *testing.T) {
	doc := mustParse(t, "skill_valid.md")

	rules := []Rule{
		{
			ID:        "test/panics",
			AppliesTo: document.CategorySkill,
			Severity:  SeverityWarning,
			Check: func(d *document.Document) (*Violation, error) {
				panic("unexpected document shape")
			},
		},
		{
			ID:        "test/after-panic",
			AppliesTo: document.CategorySkill,
			Severity:  SeverityWarning,
			Check: func(d *document.Document) (*Violation, error) {
				return &Violation{Message: "still evaluated"}, nil
			},
		},
	}

	diags := Validate(doc, rules)
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].RuleID != "test/panics" || diags[0].Severity != SeverityError {
		t.Errorf("panic should become an error diagnostic blaming the rule, got %s", diags[0].String())
	}
	if diags[1].RuleID != "test/after-panic" {
		t.Error("evaluation should continue after a panicking rule")
	}
}

func TestValidateErroringRule(t *testing.T) {
	doc := mustParse(t, "skill_valid.md")

	rules := []Rule{{
		ID:        "test/errors",
		AppliesTo: document.CategorySkill,
		Severity:  SeverityWarning,
		Check: func(d *document.Document) (*Violation, error) {
			return nil, errors.New("unreadable heading hierarchy")
		},
	}}

	diags := Validate(doc, rules)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Severity != SeverityError {
		t.Errorf("check errors are error severity regardless of rule severity, got %q", diags[0].Severity)
	}
}

func TestValidateDocumentUnknownCategory(t *testing.T) {
	doc := &document.Document{Path: "odd.md", Category: "mystery"}
	result := ValidateDocument(NewRegistry(), doc)

	if result.Status != StatusSkipped {
		t.Errorf("status = %q, want %q (never passed)", result.Status, StatusSkipped)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(result.Diagnostics))
	}
	d := result.Diagnostics[0]
	if d.RuleID != RuleIDUnknownCategory {
		t.Errorf("RuleID = %q, want %q", d.RuleID, RuleIDUnknownCategory)
	}
	if d.Severity != SeverityWarning {
		t.Errorf("Severity = %q, want %q", d.Severity, SeverityWarning)
	}
}

func TestParseFailureResult(t *testing.T) {
	perr := &document.ParseError{Path: "broken.md", Line: 1, Message: "frontmatter block is opened but never closed"}
	result := ParseFailureResult("broken.md", perr)

	if result.Status != StatusFailed {
		t.Errorf("status = %q, want %q", result.Status, StatusFailed)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(result.Diagnostics))
	}
	d := result.Diagnostics[0]
	if d.RuleID != RuleIDParse {
		t.Errorf("RuleID = %q, want %q", d.RuleID, RuleIDParse)
	}
	if d.Line != 1 {
		t.Errorf("Line = %d, want 1", d.Line)
	}
}

// Every diagnostic must reference a rule registered for the document's
// category (no orphan diagnostics).
func TestNoOrphanDiagnostics(t *testing.T) {
	reg := NewRegistry()
	fixtures := []string{
		"skill_missing_description.md",
		"skill_unpaired_example.md",
		"standards_missing_validation.md",
		"reference_unusable_entry.md",
	}
	for _, name := range fixtures {
		doc := mustParse(t, name)
		registered := make(map[string]bool)
		for _, r := range reg.RulesFor(doc.Category) {
			registered[r.ID] = true
		}
		for _, d := range Validate(doc, reg.RulesFor(doc.Category)) {
			if !registered[d.RuleID] {
				t.Errorf("%s: diagnostic %q references a rule not registered for %s", name, d.RuleID, doc.Category)
			}
		}
	}
}
