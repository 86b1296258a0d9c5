package validation

import (
	"fmt"
	"regexp"

	"github.com/ariel-frischer/validate-docs/internal/document"
)

// skillNameRe is the naming convention used by skill loaders across the
// ecosystem: lowercase letters, digits, and hyphens.
var skillNameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func skillRules() []Rule {
	return []Rule{
		{
			ID:          "skill/required-name",
			AppliesTo:   document.CategorySkill,
			Severity:    SeverityError,
			Description: "skill docs must declare non-empty name metadata",
			Check:       checkRequiredMeta("name"),
		},
		{
			ID:          "skill/required-description",
			AppliesTo:   document.CategorySkill,
			Severity:    SeverityError,
			Description: "skill docs must declare non-empty description metadata",
			Check:       checkRequiredMeta("description"),
		},
		{
			ID:          "skill/name-format",
			AppliesTo:   document.CategorySkill,
			Severity:    SeverityWarning,
			Description: "skill names should use lowercase letters, digits, and hyphens",
			Check:       checkSkillNameFormat,
		},
		{
			ID:          "doc/example-pairing",
			AppliesTo:   document.CategorySkill,
			Severity:    SeverityError,
			Description: "every bad example must be paired with a good example in the same section scope",
			Check:       checkExamplePairing,
		},
	}
}

// checkRequiredMeta returns a check asserting the named frontmatter
// field is declared and non-empty.
func checkRequiredMeta(field string) CheckFunc {
	return func(doc *document.Document) (*Violation, error) {
		if !doc.Meta.Has(field) {
			return &Violation{
				Line:    1,
				Message: fmt.Sprintf("missing required metadata: %s", field),
				Hint:    fmt.Sprintf("Declare '%s' in the frontmatter header", field),
			}, nil
		}
		if doc.Meta.Get(field) == "" {
			return &Violation{
				Line:    doc.Meta.Line(field),
				Message: fmt.Sprintf("metadata field '%s' is empty", field),
				Hint:    fmt.Sprintf("Give '%s' a non-empty value", field),
			}, nil
		}
		return nil, nil
	}
}

func checkSkillNameFormat(doc *document.Document) (*Violation, error) {
	name := doc.Meta.Get("name")
	if name == "" {
		// Absence is skill/required-name territory; do not double-report.
		return nil, nil
	}
	if !skillNameRe.MatchString(name) {
		return &Violation{
			Line:    doc.Meta.Line("name"),
			Message: fmt.Sprintf("skill name %q does not match the expected format", name),
			Hint:    "Use lowercase letters, digits, and hyphens (e.g. code-reviewer)",
		}, nil
	}
	return nil, nil
}

// checkExamplePairing verifies that any section containing a fenced
// block labeled "bad" also contains a block labeled "good" before the
// next heading of equal or higher level.
func checkExamplePairing(doc *document.Document) (*Violation, error) {
	for i, sec := range doc.Sections {
		bad := firstBlockLabeled(sec, "bad")
		if bad == nil {
			continue
		}
		if scopeHasLabel(doc, i, "good") {
			continue
		}
		return &Violation{
			Line:    bad.Line,
			Message: "bad example has no corresponding good example",
			Hint:    "Add a good example before the next heading of equal or higher level",
		}, nil
	}
	return nil, nil
}

func firstBlockLabeled(sec *document.Section, label string) *document.FencedBlock {
	for i := range sec.Blocks {
		if sec.Blocks[i].Label == label {
			return &sec.Blocks[i]
		}
	}
	return nil
}

// scopeHasLabel reports whether the section at index start, or any
// following deeper subsection, contains a block with the given label.
// The scope ends at the next heading of equal or higher level.
func scopeHasLabel(doc *document.Document, start int, label string) bool {
	level := doc.Sections[start].Level
	for i := start; i < len(doc.Sections); i++ {
		if i > start && doc.Sections[i].Level <= level {
			break
		}
		if firstBlockLabeled(doc.Sections[i], label) != nil {
			return true
		}
	}
	return false
}
