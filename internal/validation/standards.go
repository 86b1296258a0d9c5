package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ariel-frischer/validate-docs/internal/document"
)

// findingSubsections are the subsections a documented finding format
// must enumerate, in their canonical order.
var findingSubsections = []string{
	"Current Code",
	"Problem",
	"Impact",
	"Suggested Fix",
	"Why This Fix Works",
	"Validation",
}

var (
	findingTitleRe  = regexp.MustCompile(`(?i)\bfinding\b`)
	severityWordRe  = regexp.MustCompile(`(?i)\b(severity|critical|blocker|major|minor)\b`)
	severityTitleRe = regexp.MustCompile(`(?i)\bseverit`)
)

func standardsRules() []Rule {
	return []Rule{
		{
			ID:          "standards/finding-subsections",
			AppliesTo:   document.CategoryStandards,
			Severity:    SeverityError,
			Description: "a finding format must enumerate all required subsections",
			Check:       checkFindingSubsections,
		},
		{
			ID:          "standards/severity-taxonomy",
			AppliesTo:   document.CategoryStandards,
			Severity:    SeverityWarning,
			Description: "standards mentioning severities should declare an explicit severity scale",
			Check:       checkSeverityTaxonomy,
		},
		{
			ID:          "doc/example-pairing",
			AppliesTo:   document.CategoryStandards,
			Severity:    SeverityError,
			Description: "every bad example must be paired with a good example in the same section scope",
			Check:       checkExamplePairing,
		},
	}
}

// checkFindingSubsections applies only to standards docs that define a
// finding format (a section titled with "finding"). Such a document
// must carry a section for every required subsection.
func checkFindingSubsections(doc *document.Document) (*Violation, error) {
	var findingSec *document.Section
	for _, sec := range doc.Sections {
		if sec.Title != "" && findingTitleRe.MatchString(sec.Title) {
			findingSec = sec
			break
		}
	}
	if findingSec == nil {
		return nil, nil
	}

	var missing []string
	for _, want := range findingSubsections {
		if !hasSectionContaining(doc, want) {
			missing = append(missing, want)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}
	return &Violation{
		Line:    findingSec.Line,
		Message: fmt.Sprintf("finding format is missing required subsections: %s", strings.Join(missing, ", ")),
		Hint:    "Document every subsection of the finding format, including " + strings.Join(findingSubsections, ", "),
	}, nil
}

func hasSectionContaining(doc *document.Document, title string) bool {
	want := strings.ToLower(title)
	for _, sec := range doc.Sections {
		if strings.Contains(strings.ToLower(sec.Title), want) {
			return true
		}
	}
	return false
}

// checkSeverityTaxonomy warns when a standards doc talks about
// severities in prose without a dedicated severity section defining
// the scale.
func checkSeverityTaxonomy(doc *document.Document) (*Violation, error) {
	var mentionLine int
	for _, sec := range doc.Sections {
		if severityTitleRe.MatchString(sec.Title) {
			return nil, nil
		}
		if mentionLine == 0 && severityWordRe.MatchString(sec.Body) {
			mentionLine = sec.Line
		}
	}
	if mentionLine == 0 {
		return nil, nil
	}
	return &Violation{
		Line:    mentionLine,
		Message: "severities are referenced but no severity scale section is defined",
		Hint:    "Add a section defining the severity taxonomy and when each level applies",
	}, nil
}
