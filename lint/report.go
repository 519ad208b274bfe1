// Package lint carries the report shapes the lint layer hands back to
// the core. Rule bodies and autofix heuristics are out of scope here;
// this package only defines the contract a rule engine built on top of
// token/text/format would use to report findings.
package lint

import "github.com/sv-tools/svfmt/token"

// Edit is one autofix replacement: fragment identifies both the
// position and length of the text being replaced (a substring of the
// owning buffer), and replacement is what to put there instead.
type Edit struct {
	FragmentStart int
	FragmentEnd   int
	Replacement   string
}

// Autofix is an ordered list of edits that together resolve one
// violation. Edits within a single autofix are assumed disjoint and
// sorted by FragmentStart.
type Autofix []Edit

// Severity classifies how serious a violation is, mirroring common lint
// engine conventions (error blocks CI, warning does not).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Violation is one reported lint finding: the
// offending token, a human-readable reason, a documentation URL, the
// rule that fired, its severity, and zero or more candidate autofixes.
type Violation struct {
	Token    token.Token
	Reason   string
	URL      string
	RuleName string
	Severity Severity
	Autofixes []Autofix
}

// Report is the full set of violations for one file.
type Report struct {
	Filename   string
	Violations []Violation
}
