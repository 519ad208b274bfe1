package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-tools/svfmt/format"
	"github.com/sv-tools/svfmt/lint"
	"github.com/sv-tools/svfmt/text"
	"github.com/sv-tools/svfmt/token"
)

func TestFromViolationsConvertsPositionAndSeverity(t *testing.T) {
	src := "module m;\nassign x = 1;\nendmodule\n"
	idx := text.BuildLineIndex(src)

	violations := []lint.Violation{
		{
			Token:    token.Token{Start: 10, End: 16, Kind: token.Identifier},
			Reason:   "avoid blocking assignment in this context",
			RuleName: "no-blocking-assign",
			Severity: lint.SeverityWarning,
		},
	}

	diags := FromViolations(&idx, violations, 0)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Range.Start.Line)
	assert.Equal(t, 0, diags[0].Range.Start.Character)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Equal(t, "no-blocking-assign", diags[0].Code)
}

func TestFromViolationsHonorsCap(t *testing.T) {
	src := "a b c\n"
	idx := text.BuildLineIndex(src)

	violations := []lint.Violation{
		{Token: token.Token{Start: 0, End: 1}, RuleName: "a"},
		{Token: token.Token{Start: 2, End: 3}, RuleName: "b"},
		{Token: token.Token{Start: 4, End: 5}, RuleName: "c"},
	}

	diags := FromViolations(&idx, violations, 2)
	assert.Len(t, diags, 2)

	uncapped := FromViolations(&idx, violations, 0)
	assert.Len(t, uncapped, 3)
}

func TestFromLexErrorsProducesZeroWidthRange(t *testing.T) {
	src := "x = \"unterminated\n"
	idx := text.BuildLineIndex(src)

	errs := []format.LexError{{Filename: "t.sv", Line: 0, Column: 4, Message: "unterminated string literal"}}
	diags := FromLexErrors(&idx, errs)
	require.Len(t, diags, 1)
	assert.Equal(t, diags[0].Range.Start, diags[0].Range.End)
	assert.Equal(t, SeverityError, diags[0].Severity)
}

func TestFromAutofixConvertsEdits(t *testing.T) {
	src := "assign a=b;\n"
	idx := text.BuildLineIndex(src)

	fix := lint.Autofix{{FragmentStart: 8, FragmentEnd: 9, Replacement: " = "}}
	edits := FromAutofix(&idx, src, fix)
	require.Len(t, edits, 1)
	assert.Equal(t, " = ", edits[0].NewText)
}
