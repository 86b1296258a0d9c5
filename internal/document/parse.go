package document

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses raw file contents into a Document. Parsing is pure: the
// same input always yields the same Document. The category is inferred
// from the parsed shape; callers may override it afterwards via
// configuration before validation.
func Parse(path string, data []byte) (*Document, error) {
	lines := splitLines(string(data))

	meta, bodyStart, err := parseFrontmatter(path, lines)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Path: path,
		Meta: meta,
	}
	doc.Sections = parseSections(lines, bodyStart)
	doc.Category = Classify(doc)
	return doc, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// parseFrontmatter extracts the leading "---" delimited YAML header.
// Returns the parsed header and the index of the first body line.
// A header that is opened but never closed is a ParseError, as is a
// header whose YAML does not form a mapping.
func parseFrontmatter(path string, lines []string) (Meta, int, error) {
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return Meta{}, 0, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return Meta{}, 0, &ParseError{
			Path:    path,
			Line:    1,
			Message: "frontmatter block is opened but never closed",
		}
	}

	raw := strings.Join(lines[1:closing], "\n")

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return Meta{}, 0, &ParseError{
			Path:    path,
			Line:    1,
			Message: fmt.Sprintf("invalid frontmatter YAML: %v", err),
		}
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 {
		// Empty header is legal; it just declares nothing.
		return Meta{}, closing + 1, nil
	}
	if root.Kind != yaml.MappingNode {
		return Meta{}, 0, &ParseError{
			Path:    path,
			Line:    2,
			Message: "frontmatter must be a YAML mapping of key: value pairs",
		}
	}

	var meta Meta
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]
		entry := MetaEntry{
			Key: key.Value,
			// Header lines are offset by the opening "---" line.
			Line: key.Line + 1,
		}
		if val.Kind == yaml.ScalarNode {
			entry.Value = val.Value
		}
		meta.entries = append(meta.entries, entry)
	}
	return meta, closing + 1, nil
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)

// parseSections splits the body into sections on ATX heading boundaries.
// Body text between headings belongs to the preceding heading; text
// before the first heading belongs to the implicit root section.
// Heading-like lines inside fenced code blocks are not headings.
func parseSections(lines []string, start int) []*Section {
	root := &Section{Level: 0, Line: 1}
	sections := []*Section{root}
	current := root

	var body []string
	var block *FencedBlock
	var code []string

	flush := func() {
		current.Body = strings.TrimRight(strings.Join(body, "\n"), "\n")
		body = nil
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]

		if block != nil {
			if isFenceLine(line) {
				block.Code = strings.Join(code, "\n")
				current.Blocks = append(current.Blocks, *block)
				block = nil
				code = nil
			} else {
				code = append(code, line)
			}
			body = append(body, line)
			continue
		}

		if isFenceLine(line) {
			lang, label := parseFenceInfo(line)
			if label == "" {
				label = labelFromContext(body)
			}
			block = &FencedBlock{Lang: lang, Label: label, Line: i + 1}
			body = append(body, line)
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Section{
				Level: len(m[1]),
				Title: m[2],
				Line:  i + 1,
			}
			sections = append(sections, current)
			continue
		}

		body = append(body, line)
	}

	// Unterminated fence: keep what we saw as a block rather than
	// losing it, so structural rules still see the example.
	if block != nil {
		block.Code = strings.Join(code, "\n")
		current.Blocks = append(current.Blocks, *block)
	}
	flush()

	return sections
}

func isFenceLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// parseFenceInfo extracts the language tag and an optional example
// label from a fence info string, e.g. "```go bad" -> ("go", "bad").
func parseFenceInfo(line string) (lang, label string) {
	trimmed := strings.TrimLeft(line, " \t")
	info := strings.TrimLeft(trimmed, "`~")
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return "", ""
	}
	lang = strings.ToLower(fields[0])
	for _, f := range fields[1:] {
		if l := normalizeLabel(f); l != "" {
			return lang, l
		}
	}
	return lang, ""
}

var labelMarkerRe = regexp.MustCompile(`(?i)^[*_]{0,2}(bad|good|incorrect|correct|wrong|right)\b`)

// labelFromContext inspects the nearest preceding non-empty body line
// for an example marker such as "**Bad:**" or "Good example:".
func labelFromContext(body []string) string {
	for i := len(body) - 1; i >= 0; i-- {
		line := strings.TrimSpace(body[i])
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "#> ")
		if m := labelMarkerRe.FindStringSubmatch(line); m != nil {
			return normalizeLabel(m[1])
		}
		return ""
	}
	return ""
}

// normalizeLabel maps marker words onto the canonical bad/good pair.
func normalizeLabel(word string) string {
	switch strings.ToLower(strings.Trim(word, "*_:.,()")) {
	case "bad", "incorrect", "wrong":
		return "bad"
	case "good", "correct", "right":
		return "good"
	default:
		return ""
	}
}
