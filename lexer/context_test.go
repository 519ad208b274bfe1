package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-tools/svfmt/token"
)

// arrowKinds returns, in source order, the kind every Arrow/NonBlockingArrow
// raw token was rewritten to.
func arrowKinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	raw := Lex(src)
	rewritten := Rewrite(raw, src)
	var out []token.Kind
	for _, tok := range rewritten {
		switch tok.Kind {
		case token.LogicalImplies, token.ConstraintImplies,
			token.EventTrigger, token.NonBlockingEventTrigger:
			out = append(out, tok.Kind)
		}
	}
	return out
}

// scenario 1: the first `->` sits inside the `if (...)` header -- general
// depth is nonzero there, so it must read as logical implication. The
// second `->` is the lone token of its own statement, directly inside the
// function body, so it must read as an event trigger.
func TestRewriteEventTriggerVsLogicalImplies(t *testing.T) {
	src := "function void f; if (a -> b) -> c; endfunction"
	got := arrowKinds(t, src)
	require.Len(t, got, 2)
	assert.Equal(t, token.LogicalImplies, got[0])
	assert.Equal(t, token.EventTrigger, got[1])
}

// scenario 6: a constraint block's own arrows start in statement position.
// The first `->` is nested inside a parenthesized sub-expression, so it
// reads as logical implication regardless of statement position. The
// second `->`, back at the constraint block's own statement position,
// reads as a constraint implication and the `{` that follows opens a new
// nested constraint set (not a set-literal concatenation).
func TestRewriteConstraintImpliesInsideRandomizeWith(t *testing.T) {
	src := "randomize() with { (x -> y) -> { a inside {[1:2]}; } }"
	got := arrowKinds(t, src)
	require.Len(t, got, 2)
	assert.Equal(t, token.LogicalImplies, got[0])
	assert.Equal(t, token.ConstraintImplies, got[1])
}

func TestRewriteNonBlockingEventTrigger(t *testing.T) {
	src := "task t; ->> done; endtask"
	got := arrowKinds(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, token.NonBlockingEventTrigger, got[0])
}

// An arrow on the right-hand side of an assignment, even inside a
// function body and at general depth zero, is not the first token of its
// statement, so it must not be read as an event trigger.
func TestRewriteArrowMidStatementIsLogicalImplies(t *testing.T) {
	src := "function void f; ok = a -> b; endfunction"
	got := arrowKinds(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, token.LogicalImplies, got[0])
}

// Outside any function/task body or initial/always/final construct (e.g.
// a plain module-level continuous assignment), an arrow is never an
// event trigger.
func TestRewriteArrowOutsideProceduralContextIsLogicalImplies(t *testing.T) {
	src := "module m; assign x = a -> b; endmodule"
	got := arrowKinds(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, token.LogicalImplies, got[0])
}

func TestRewriteEventTriggerInsideInitialBlock(t *testing.T) {
	src := "module m; initial begin -> go; end endmodule"
	got := arrowKinds(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, token.EventTrigger, got[0])
}

// A single-statement initial construct (no begin/end) still counts as
// procedural context for its one statement, and in_initial_always_final
// clears again once that statement's `;` is seen.
func TestRewriteSingleStatementInitialClearsAfterSemicolon(t *testing.T) {
	src := "module m; initial -> go; assign y = c -> d; endmodule"
	got := arrowKinds(t, src)
	require.Len(t, got, 2)
	assert.Equal(t, token.EventTrigger, got[0])
	assert.Equal(t, token.LogicalImplies, got[1])
}

// Nested if/begin/end inside an always block keeps in_initial_always_final
// set until the outer matching end, and each arrow that starts its own
// statement there is an event trigger.
func TestRewriteEventTriggerInsideNestedBeginEnd(t *testing.T) {
	src := "module m; always @(posedge clk) begin if (en) begin -> tick; end end endmodule"
	got := arrowKinds(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, token.EventTrigger, got[0])
}

func TestRewriteExternFunctionSuppressesBodyContext(t *testing.T) {
	src := "extern function void f(); module m; initial -> go; endmodule"
	got := arrowKinds(t, src)
	require.Len(t, got, 1)
	assert.Equal(t, token.EventTrigger, got[0])
}

// The property's own header ';' (after "property p") is not a
// declaration-boundary semicolon and must stay a plain Semicolon; of the
// two remaining ones (after "int x" and after "x |-> y"), the rewriter
// must pick the *last* one seen before endproperty -- the one after
// "x |-> y" -- as the AssertionVarsSemicolon.
func TestRewriteAssertionVarsSemicolon(t *testing.T) {
	src := "property p; int x; x |-> y; endproperty"
	raw := Lex(src)
	rewritten := Rewrite(raw, src)
	var semis []token.Kind
	for _, tok := range rewritten {
		if tok.Kind == token.Semicolon || tok.Kind == token.AssertionVarsSemicolon {
			semis = append(semis, tok.Kind)
		}
	}
	require.Len(t, semis, 3)
	assert.Equal(t, token.Semicolon, semis[0])           // property p;
	assert.Equal(t, token.Semicolon, semis[1])           // int x;
	assert.Equal(t, token.AssertionVarsSemicolon, semis[2]) // x |-> y;
}

// With only one semicolon inside the property body (no local variable
// declarations), that sole semicolon is both the first and the last one
// recorded since the header closed, so it becomes the AssertionVarsSemicolon.
func TestRewriteAssertionVarsSemicolonSingleStatement(t *testing.T) {
	src := "property p; x |-> y; endproperty"
	raw := Lex(src)
	rewritten := Rewrite(raw, src)
	var semis []token.Kind
	for _, tok := range rewritten {
		if tok.Kind == token.Semicolon || tok.Kind == token.AssertionVarsSemicolon {
			semis = append(semis, tok.Kind)
		}
	}
	require.Len(t, semis, 2)
	assert.Equal(t, token.Semicolon, semis[0])           // property p;
	assert.Equal(t, token.AssertionVarsSemicolon, semis[1])
}

// Rewrite must never change the number of tokens or their byte ranges,
// only the Kind of the rewrite-target tokens.
func TestRewritePreservesTokenSpans(t *testing.T) {
	src := "function void f; if (a -> b) -> c; endfunction"
	raw := Lex(src)
	rewritten := Rewrite(raw, src)
	require.Len(t, rewritten, len(raw))
	for i := range raw {
		assert.Equal(t, raw[i].Start, rewritten[i].Start)
		assert.Equal(t, raw[i].End, rewritten[i].End)
	}
}
