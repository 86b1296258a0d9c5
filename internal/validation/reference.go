package validation

import (
	"fmt"
	"regexp"

	"github.com/ariel-frischer/validate-docs/internal/document"
)

var (
	// interactiveTitleRe matches catalog entries for interactive UI
	// elements, which are unusable as reference material without usage
	// details.
	interactiveTitleRe = regexp.MustCompile(`(?i)\b(button|dialog|modal|dropdown|menu|input|select|checkbox|radio|tabs?|tooltip|toggle|slider|accordion|combobox)\b`)
	usageDetailRe      = regexp.MustCompile(`(?i)\b(attributes?|props?|properties|slots?|events?)\b`)
)

func referenceRules() []Rule {
	return []Rule{
		{
			ID:          "reference/entry-usability",
			AppliesTo:   document.CategoryReference,
			Severity:    SeverityError,
			Description: "interactive element entries must document attributes, slots, or events",
			Check:       checkEntryUsability,
		},
		{
			ID:          "reference/untitled-sections",
			AppliesTo:   document.CategoryReference,
			Severity:    SeverityWarning,
			Description: "reference sections should carry non-empty titles",
			Check:       checkUntitledSections,
		},
	}
}

// checkEntryUsability requires each interactive element entry (a
// heading naming an interactive element) to document at least one of
// attributes, slots, or events within its section scope.
func checkEntryUsability(doc *document.Document) (*Violation, error) {
	for i, sec := range doc.Sections {
		if sec.Level < 2 || !interactiveTitleRe.MatchString(sec.Title) {
			continue
		}
		if scopeHasUsageDetail(doc, i) {
			continue
		}
		return &Violation{
			Line:    sec.Line,
			Message: fmt.Sprintf("entry %q documents no attributes, slots, or events", sec.Title),
			Hint:    "Document the entry's key attributes, slots, or events so it is usable as a reference",
		}, nil
	}
	return nil, nil
}

func scopeHasUsageDetail(doc *document.Document, start int) bool {
	level := doc.Sections[start].Level
	for i := start; i < len(doc.Sections); i++ {
		if i > start && doc.Sections[i].Level <= level {
			break
		}
		if usageDetailRe.MatchString(doc.Sections[i].Body) {
			return true
		}
		if i > start && usageDetailRe.MatchString(doc.Sections[i].Title) {
			return true
		}
	}
	return false
}

func checkUntitledSections(doc *document.Document) (*Violation, error) {
	for _, sec := range doc.Sections {
		if sec.Level > 0 && sec.Title == "" {
			return &Violation{
				Line:    sec.Line,
				Message: "section heading has no title",
				Hint:    "Give every heading a descriptive title",
			}, nil
		}
	}
	return nil, nil
}
