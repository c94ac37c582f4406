package domain

import "sort"

// Kind tags the concrete variant of a built Test
type Kind int

const (
	// KindPlainCase is a directly instantiated test with no provided data
	KindPlainCase Kind = iota
	// KindParameterizedCase is a test instantiated with one data set row
	KindParameterizedCase
	// KindWarning is a pseudo-test reporting a warning
	KindWarning
	// KindSkipped is a pseudo-test reporting a skip
	KindSkipped
	// KindIncomplete is a pseudo-test reporting an incomplete test
	KindIncomplete
	// KindSuite is a named composite of child tests
	KindSuite
)

// String returns the human-readable kind label
func (k Kind) String() string {
	switch k {
	case KindPlainCase:
		return "case"
	case KindParameterizedCase:
		return "parameterized case"
	case KindWarning:
		return "warning"
	case KindSkipped:
		return "skipped"
	case KindIncomplete:
		return "incomplete"
	case KindSuite:
		return "suite"
	}
	return "unknown"
}

// Test is the polymorphic result of a build: a single case, a diagnostic
// pseudo-test, or a composite suite. Runners switch on Kind.
type Test interface {
	Kind() Kind
	Name() string
}

// Diagnostic is a pseudo-test that, when run, reports a fixed outcome
// (warning, skipped, or incomplete) instead of exercising real test logic.
type Diagnostic struct {
	kind    Kind
	message string
}

// NewWarning creates a warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{kind: KindWarning, message: message}
}

// NewSkipped creates a skipped diagnostic
func NewSkipped(message string) *Diagnostic {
	return &Diagnostic{kind: KindSkipped, message: message}
}

// NewIncomplete creates an incomplete diagnostic
func NewIncomplete(message string) *Diagnostic {
	return &Diagnostic{kind: KindIncomplete, message: message}
}

// Kind returns the diagnostic's variant tag
func (d *Diagnostic) Kind() Kind {
	return d.kind
}

// Name returns a fixed display name derived from the diagnostic's kind
func (d *Diagnostic) Name() string {
	switch d.kind {
	case KindSkipped:
		return "Skipped"
	case KindIncomplete:
		return "Incomplete"
	}
	return "Warning"
}

// Message returns the human-readable message the diagnostic reports
func (d *Diagnostic) Message() string {
	return d.message
}

// Suite is a named composite of child tests, each tagged with group labels
// for selection by the runner.
type Suite struct {
	name   string
	tests  []Test
	groups map[string][]Test
}

// NewSuite creates an empty suite with the given name
func NewSuite(name string) *Suite {
	return &Suite{
		name:   name,
		groups: make(map[string][]Test),
	}
}

// Kind returns KindSuite
func (s *Suite) Kind() Kind {
	return KindSuite
}

// Name returns the suite's name
func (s *Suite) Name() string {
	return s.name
}

// AddTest appends a child test, preserving insertion order, and indexes it
// under each of the given groups
func (s *Suite) AddTest(t Test, groups []string) {
	s.tests = append(s.tests, t)
	for _, group := range groups {
		s.groups[group] = append(s.groups[group], t)
	}
}

// Tests returns the child tests in insertion order
func (s *Suite) Tests() []Test {
	return s.tests
}

// GroupTests returns the child tests tagged with the given group
func (s *Suite) GroupTests(group string) []Test {
	return s.groups[group]
}

// Groups returns the group labels children are tagged with, sorted for
// consistent output
func (s *Suite) Groups() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count walks a test tree and tallies case-like tests and diagnostics
func Count(t Test) (cases, diagnostics int) {
	switch v := t.(type) {
	case nil:
		return 0, 0
	case *Suite:
		for _, child := range v.Tests() {
			c, d := Count(child)
			cases += c
			diagnostics += d
		}
	case *Diagnostic:
		diagnostics++
	default:
		cases++
	}
	return cases, diagnostics
}
