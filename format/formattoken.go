package format

import "github.com/sv-tools/svfmt/token"

// BreakDecision is the annotator's verdict on the boundary before a
// token: whether a line break there is forbidden, forced, or
// left to the wrap search, and whether the original spacing must be
// kept untouched.
type BreakDecision int

const (
	Undecided BreakDecision = iota
	MustAppend
	MustWrap
	BreakPreserve
)

// SpacingPolicy is the partition/render-level counterpart of
// BreakDecision: once the wrap search has picked a column for each
// partition boundary, every FormatToken ends up tagged with exactly one
// of these six placements.
type SpacingPolicy int

const (
	SpacingAppend SpacingPolicy = iota
	SpacingAppendAligned
	SpacingMustAppend
	SpacingMustWrap
	SpacingWrap
	SpacingPreserve
)

// FormatToken wraps one raw token with the annotator's spacing verdict
// and, once alignment/wrap have run, the final decision actually
// applied.
type FormatToken struct {
	Token token.Token

	// OriginalSpacesBefore is the literal space count between this
	// token's previous sibling and itself in the source, used by
	// Preserve policies and by InferUserIntent's deltas.
	OriginalSpacesBefore int
	// OriginalNewlinesBefore counts '\n' between the previous token and
	// this one; a block comment with a preceding newline forces MustWrap.
	OriginalNewlinesBefore int

	SpacesRequired int
	Break          BreakDecision
	// BreakPenalty is the cost WrapLine's search charges for choosing to
	// break before this token; higher values discourage wrapping at this
	// boundary relative to others. Only consulted for Undecided
	// boundaries, where the search actually has a choice.
	BreakPenalty int

	// SpacesApplied is set once the wrap search or alignment engine commits a
	// final placement; Policy reflects which of the six placements
	// happened.
	Policy        SpacingPolicy
	SpacesApplied int
}

// Text returns the token's text given the owning buffer contents.
func (f FormatToken) Text(src string) string {
	return src[f.Token.Start:f.Token.End]
}
