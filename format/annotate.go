package format

import (
	"github.com/sv-tools/svfmt/text"
	"github.com/sv-tools/svfmt/token"
)

// headerKeywords introduce a declaration whose parenthesized list is a
// "header" rather than a call -- the `(` that follows gets one leading
// space instead of zero.
var headerKeywords = map[string]struct{}{
	"module": {}, "interface": {}, "program": {}, "function": {}, "task": {},
	"property": {}, "sequence": {}, "class": {},
}

// Annotate computes the before-spacing decision for every token in toks.
// src is the buffer the tokens' offsets refer to, used to measure
// original spacing/newlines for Preserve and comment rules. ctxPath,
// when non-nil, supplies the right token's syntax-tree context
// (outermost to innermost nonterminal tag) for the context-override
// layer; a nil ctxPath skips that layer entirely, since no grammar or
// parser is part of this package -- callers that do have a tree may
// supply it to get the fuller behavior.
func Annotate(toks []token.Token, src string, ctxPath func(i int) []int) []FormatToken {
	out := make([]FormatToken, len(toks))
	lines := text.BuildLineIndex(src)

	prevUnary := false // whether the immediately preceding UnaryOrBinary token was read as unary
	var prevReal int = -1

	for i, tok := range toks {
		ft := FormatToken{Token: tok}

		if prevReal >= 0 {
			prev := toks[prevReal]
			startLine, _ := lines.LineColumn(prev.End)
			curLine, _ := lines.LineColumn(tok.Start)
			ft.OriginalNewlinesBefore = curLine - startLine
			if ft.OriginalNewlinesBefore == 0 {
				ft.OriginalSpacesBefore = tok.Start - prev.End
			}
			annotatePair(&ft, prev, tok, prevUnary, src)
		} else {
			ft.Break = Undecided
		}

		if ctxPath != nil {
			applyContextOverrides(&ft, tok, ctxPath(i))
		}

		if tok.Kind == token.UnaryOrBinary {
			prevUnary = isUnaryPosition(toks, i)
		} else if !tok.IsWhitespace() {
			prevUnary = false
		}

		out[i] = ft
		if !tok.IsWhitespace() {
			prevReal = i
		}
	}
	return out
}

// annotatePair implements spacing layers 1 (pair rules), 3 (unary/binary)
// 4 (comments) and 5 (preprocessor), in that override order -- a later
// layer's applicable rule always wins over an earlier one.
func annotatePair(ft *FormatToken, prev, cur token.Token, prevWasUnary bool, src string) {
	// layer 1: pair rules.
	switch {
	case prev.Kind == token.Keyword && cur.Kind == token.Identifier:
		ft.SpacesRequired = 1
	case cur.Kind == token.Comma:
		ft.SpacesRequired = 0
	case prev.Kind == token.Comma:
		ft.SpacesRequired = 1
		ft.Break = Undecided
	case cur.Kind == token.LeftParen:
		if prev.Kind == token.Keyword && isHeaderKeyword(src[prev.Start:prev.End]) {
			ft.SpacesRequired = 1
		} else {
			ft.SpacesRequired = 0
		}
	case cur.Kind == token.LeftBracket:
		ft.SpacesRequired = 0
	case cur.Kind == token.Semicolon:
		ft.SpacesRequired = 0
	case prev.Kind == token.LeftParen || prev.Kind == token.LeftBracket || prev.Kind == token.LeftBrace:
		ft.SpacesRequired = 0
	case cur.Kind == token.RightParen || cur.Kind == token.RightBracket:
		ft.SpacesRequired = 0
	case cur.Kind == token.Dot || prev.Kind == token.Dot:
		ft.SpacesRequired = 0
	default:
		ft.SpacesRequired = 1
	}

	// break_penalty baseline: breaking right after a comma (before the
	// next list item) or before a UnaryOrBinary token ('-', '&', '|', '^',
	// '~', whichever way it reads) costs 1; breaking a dotted reference
	// chain apart costs 4; every other boundary, including one before an
	// Operator token such as '+' or '==', costs 2.
	switch {
	case cur.Kind == token.Dot:
		ft.BreakPenalty = 4
	case prev.Kind == token.Comma, cur.Kind == token.UnaryOrBinary:
		ft.BreakPenalty = 1
	default:
		ft.BreakPenalty = 2
	}

	// layer 3: unary vs. binary. A UnaryOrBinary token read as unary
	// attaches to its operand: the space before that operand collapses
	// to zero, overriding whatever layer 1 decided.
	if prevWasUnary {
		ft.SpacesRequired = 0
	}

	// layer 4: comment rules.
	switch {
	case prev.Kind == token.BlockComment:
		if ft.OriginalNewlinesBefore > 0 {
			ft.Break = MustWrap
		} else {
			ft.SpacesRequired = ft.OriginalSpacesBefore
			ft.Break = BreakPreserve
		}
	case prev.Kind == token.LineComment:
		ft.Break = MustWrap
	case prev.Kind == token.RightParen && cur.Kind == token.LineComment:
		ft.SpacesRequired = 1
	}

	// layer 5: preprocessor rules.
	switch {
	case cur.Kind == token.PPDirective:
		ft.Break = MustWrap
	case prev.Kind == token.PPDirective && cur.Kind == token.Identifier:
		ft.SpacesRequired = 1
		ft.Break = MustAppend
	case cur.Kind == token.DefineBody:
		if cur.Empty() {
			ft.SpacesRequired = 0
		} else {
			ft.SpacesRequired = 1
		}
	}
}

// isUnaryPosition decides whether a UnaryOrBinary token at index i
// reads as unary: true when what precedes it (skipping trivia) cannot end an
// expression -- the start of a statement, an open bracket, a comma, an
// operator, or another unary operator.
func isUnaryPosition(toks []token.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if toks[j].IsTrivia() {
			continue
		}
		switch toks[j].Kind {
		case token.LeftParen, token.LeftBracket, token.LeftBrace,
			token.Comma, token.Semicolon, token.Colon,
			token.Operator, token.UnaryOrBinary,
			token.LogicalImplies, token.ConstraintImplies,
			token.EventTrigger, token.NonBlockingEventTrigger:
			return true
		case token.Keyword:
			return true
		default:
			return false
		}
	}
	return true // nothing precedes it: start of the unit
}

// applyContextOverrides handles the small set of nonterminal tags a
// caller-supplied parser chooses to report; tags are caller-defined
// ints, and we only special-case the handful of colon contexts that
// need spacing different from the plain pair rules, identified by the
// caller's own tag values surfaced through ctxPath (a caller is free to
// pass an all-nil path and skip this layer entirely).
func applyContextOverrides(ft *FormatToken, cur token.Token, path []int) {
	if len(path) == 0 {
		return
	}
	// The path is a stack of caller-chosen nonterminal tags; this
	// package does not know their numeric meaning (no grammar is part of
	// it), so the override hook is a no-op unless the FormatToken
	// already carries a Colon, which is the one case distinguishable by
	// token kind alone (DimensionRange / ConditionExpression /
	// CaseItem colons): callers encode that distinction by tag value 1
	// (DimensionRange-like, zero-space), 2 (ConditionExpression-like,
	// one-space), 3 (CaseItem-like, zero-space-left) at path's top.
	if cur.Kind != token.Colon {
		return
	}
	switch path[len(path)-1] {
	case 1:
		ft.SpacesRequired = 0
	case 2:
		ft.SpacesRequired = 1
	case 3:
		ft.SpacesRequired = 0
	}
}

func isHeaderKeyword(text string) bool {
	_, ok := headerKeywords[text]
	return ok
}
