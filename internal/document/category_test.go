package document

import (
	"strings"
	"testing"
)

func classify(t *testing.T, lines ...string) Category {
	t.Helper()
	doc, err := Parse("test.md", []byte(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc.Category
}

func TestClassifySkill(t *testing.T) {
	got := classify(t,
		"---",
		"name: reviewer",
		"description: Reviews things.",
		"---",
		"# Reviewer",
	)
	if got != CategorySkill {
		t.Errorf("category = %q, want %q", got, CategorySkill)
	}
}

// A header declaring only a name is still a skill doc; the missing
// description is a rule violation, not a classification change.
func TestClassifySkillWithIncompleteHeader(t *testing.T) {
	got := classify(t,
		"---",
		"name: reviewer",
		"---",
		"# Reviewer",
	)
	if got != CategorySkill {
		t.Errorf("category = %q, want %q", got, CategorySkill)
	}
}

func TestClassifyStandards(t *testing.T) {
	got := classify(t,
		"# Review Finding Format",
		"",
		"Findings must follow this structure.",
	)
	if got != CategoryStandards {
		t.Errorf("category = %q, want %q", got, CategoryStandards)
	}
}

func TestClassifyReference(t *testing.T) {
	got := classify(t,
		"# Component Catalog",
		"",
		"## Button",
		"",
		"### Attributes",
	)
	if got != CategoryReference {
		t.Errorf("category = %q, want %q", got, CategoryReference)
	}
}

// Headerless docs with no formatting-requirement sections default to
// reference, even when they look like prose guides.
func TestClassifyPlainProse(t *testing.T) {
	got := classify(t, "# Design Principles", "", "Prefer small interfaces.")
	if got != CategoryReference {
		t.Errorf("category = %q, want %q", got, CategoryReference)
	}
}

func TestParseCategory(t *testing.T) {
	for _, valid := range ValidCategories() {
		if _, err := ParseCategory(valid); err != nil {
			t.Errorf("ParseCategory(%q) = %v", valid, err)
		}
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("ParseCategory(bogus) should fail")
	}
}
