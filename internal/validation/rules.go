package validation

import (
	"github.com/ariel-frischer/validate-docs/internal/document"
)

// Violation describes why a rule check failed. A nil Violation means
// the document satisfies the rule. Line and Hint are optional.
type Violation struct {
	Line    int
	Message string
	Hint    string
}

// CheckFunc evaluates one rule against a document. It is pure: it must
// not mutate the document or depend on any other rule's outcome, so
// rule evaluation order never affects the set of violations.
// A returned error means the check itself could not run (a structural
// defect, not a rule violation) and is reported as an error diagnostic
// attributing blame to the rule.
type CheckFunc func(doc *document.Document) (*Violation, error)

// Rule is a named check bound to a document category. Rules are
// statically defined at registry construction and never mutated.
type Rule struct {
	ID          string
	AppliesTo   document.Category
	Severity    Severity
	Description string
	Check       CheckFunc
}

// Registry is the immutable set of validation rules, constructed once
// at process start and passed explicitly to the validator. There is no
// ambient global rule table.
type Registry struct {
	rules      []Rule
	byCategory map[document.Category][]Rule
}

// NewRegistry builds the registry with the built-in rule tables.
// Registration order is evaluation order within a category.
func NewRegistry() *Registry {
	r := &Registry{byCategory: make(map[document.Category][]Rule)}
	r.register(skillRules()...)
	r.register(standardsRules()...)
	r.register(referenceRules()...)
	return r
}

func (r *Registry) register(rules ...Rule) {
	for _, rule := range rules {
		r.rules = append(r.rules, rule)
		r.byCategory[rule.AppliesTo] = append(r.byCategory[rule.AppliesTo], rule)
	}
}

// RulesFor returns the rules registered for a category in registration
// order. Unknown categories yield an empty slice; the validator is
// responsible for surfacing that as a warning.
func (r *Registry) RulesFor(category document.Category) []Rule {
	return r.byCategory[category]
}

// Rules returns every registered rule in registration order.
func (r *Registry) Rules() []Rule {
	return r.rules
}
