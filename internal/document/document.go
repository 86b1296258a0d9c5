// Package document parses documentation files into a normalized model:
// an optional YAML frontmatter header plus an ordered sequence of
// sections split on heading boundaries. Fenced code blocks are extracted
// as typed nodes so validation rules can match on structure instead of
// scanning raw text.
package document

import "fmt"

// Category identifies which schema a document is validated against.
type Category string

const (
	// CategorySkill is a document declaring structured metadata
	// (name, description) describing an instructable behavior pattern.
	CategorySkill Category = "skill"
	// CategoryStandards is a document defining a required format or
	// schema for some other artifact (e.g. review findings).
	CategoryStandards Category = "standards"
	// CategoryReference is a catalog-style document describing external
	// library entities and their usage.
	CategoryReference Category = "reference"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "skill":
		return CategorySkill, nil
	case "standards":
		return CategoryStandards, nil
	case "reference":
		return CategoryReference, nil
	default:
		return "", fmt.Errorf("invalid category: %s (valid categories: %s)", s, "skill, standards, reference")
	}
}

// ValidCategories returns the list of valid category strings.
func ValidCategories() []string {
	return []string{"skill", "standards", "reference"}
}

// MetaEntry is one key/value pair from the frontmatter header.
// Only scalar values carry a Value; nested mappings and sequences are
// recorded with an empty Value so presence checks still work.
type MetaEntry struct {
	Key   string
	Value string
	Line  int // 1-based line in the source file
}

// Meta is the ordered frontmatter mapping of a document.
type Meta struct {
	entries []MetaEntry
}

// Has reports whether the key was declared in the header.
func (m *Meta) Has(key string) bool {
	for _, e := range m.entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Get returns the scalar value for key, or "" if absent or non-scalar.
func (m *Meta) Get(key string) string {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}

// Line returns the source line of the key's entry, or 0 if absent.
func (m *Meta) Line(key string) int {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Line
		}
	}
	return 0
}

// Entries returns the header entries in declaration order.
func (m *Meta) Entries() []MetaEntry {
	return m.entries
}

// Len returns the number of declared header entries.
func (m *Meta) Len() int {
	return len(m.entries)
}

// FencedBlock is one fenced code block inside a section.
type FencedBlock struct {
	Lang  string // language tag from the fence info string ("" if none)
	Label string // normalized example label ("bad", "good", "" if none)
	Line  int    // 1-based line of the opening fence
	Code  string // block contents without the fences
}

// Section is one heading plus the body text up to the next heading.
// The text before the first heading belongs to an implicit root section
// with Level 0 and an empty title.
type Section struct {
	Level  int // heading level (1-6), 0 for the implicit root
	Title  string
	Line   int // 1-based line of the heading (1 for the root)
	Body   string
	Blocks []FencedBlock
}

// Document is one parsed source file. Immutable after parsing.
type Document struct {
	Path     string
	Category Category
	Meta     Meta
	Sections []*Section
}

// SectionTitled returns the first section whose title equals title, or nil.
func (d *Document) SectionTitled(title string) *Section {
	for _, s := range d.Sections {
		if s.Title == title {
			return s
		}
	}
	return nil
}

// ParseError reports a malformed document structure. It is fatal only
// for the document that produced it, never for the whole run.
type ParseError struct {
	Path    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
