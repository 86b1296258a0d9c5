package document

import "regexp"

// standardsTitleRe matches section titles that carry formatting
// requirement language, e.g. "Required Finding Format" or
// "Severity Levels". This is a heuristic; explicit per-path overrides
// in configuration take precedence over classification.
var standardsTitleRe = regexp.MustCompile(`(?i)\b(format|required|severity|schema|checklist)\b`)

// Classify infers the category of a parsed document from its shape.
//
// A document whose header declares name or description metadata is a
// skill doc: the header is the contract, and a skill doc with a missing
// description is still a skill doc (the omission is a rule violation,
// not a classification change). A headerless document with a section
// titled with formatting-requirement language is a standards doc.
// Everything else is a reference doc.
func Classify(doc *Document) Category {
	if doc.Meta.Has("name") || doc.Meta.Has("description") {
		return CategorySkill
	}
	for _, s := range doc.Sections {
		if s.Title != "" && standardsTitleRe.MatchString(s.Title) {
			return CategoryStandards
		}
	}
	return CategoryReference
}
