// Package lsp converts lint violations and formatter lexical errors
// into the Language Server Protocol's diagnostic and edit shapes. The protocol transport itself (JSON-RPC
// framing, capability negotiation) is out of scope; this package only
// owns the conversion.
package lsp

import (
	"github.com/sv-tools/svfmt/format"
	"github.com/sv-tools/svfmt/lint"
	"github.com/sv-tools/svfmt/text"
)

// Severity mirrors the LSP DiagnosticSeverity enum (1-indexed, most to
// least severe).
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

// Position is a zero-indexed line/character pair, as LSP requires
// (text.LineIndex is already zero-indexed internally).
type Position struct {
	Line      int
	Character int
}

// Range is a half-open [Start, End) span of positions.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is one LSP diagnostic entry.
type Diagnostic struct {
	Range    Range
	Severity Severity
	Code     string
	Source   string
	Message  string
}

// TextEdit is one LSP text replacement.
type TextEdit struct {
	Range   Range
	NewText string
}

func toRange(idx *text.LineIndex, begin, end int) Range {
	bl, bc := idx.LineColumn(begin)
	el, ec := idx.LineColumn(end)
	return Range{
		Start: Position{Line: bl, Character: bc},
		End:   Position{Line: el, Character: ec},
	}
}

func toSeverity(s lint.Severity) Severity {
	if s == lint.SeverityError {
		return SeverityError
	}
	return SeverityWarning
}

// FromViolations converts a lint report into diagnostics, truncating to
// at most maxDiagnostics entries. maxDiagnostics <= 0 means no cap.
func FromViolations(idx *text.LineIndex, violations []lint.Violation, maxDiagnostics int) []Diagnostic {
	n := len(violations)
	if maxDiagnostics > 0 && n > maxDiagnostics {
		n = maxDiagnostics
	}
	out := make([]Diagnostic, 0, n)
	for _, v := range violations[:n] {
		out = append(out, Diagnostic{
			Range:    toRange(idx, v.Token.Start, v.Token.End),
			Severity: toSeverity(v.Severity),
			Code:     v.RuleName,
			Source:   "svfmt",
			Message:  v.Reason,
		})
	}
	return out
}

// FromLexErrors converts formatter-surfaced lexical errors into
// diagnostics.
func FromLexErrors(idx *text.LineIndex, errs []format.LexError) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		pos := Position{Line: e.Line, Character: e.Column}
		out = append(out, Diagnostic{
			Range:    Range{Start: pos, End: pos},
			Severity: SeverityError,
			Source:   "svfmt",
			Message:  e.Message,
		})
	}
	return out
}

// FromAutofix converts a single lint autofix into the text edits that
// apply it.
func FromAutofix(idx *text.LineIndex, src string, fix lint.Autofix) []TextEdit {
	out := make([]TextEdit, 0, len(fix))
	for _, e := range fix {
		out = append(out, TextEdit{
			Range:   toRange(idx, e.FragmentStart, e.FragmentEnd),
			NewText: e.Replacement,
		})
	}
	return out
}
