package text

import (
	"sort"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sv-tools/svfmt/token"
)

// TokenRange is a half-open range of indices into a TextStructure's full
// token sequence. It plays the role the reference's iterator-range
// adaptors play: a lightweight, index-based "iterator pair".
type TokenRange struct {
	Begin, End int
}

func (r TokenRange) Len() int   { return r.End - r.Begin }
func (r TokenRange) Empty() bool { return r.Begin >= r.End }

// ChildAnalysis is the unit ExpandSubtrees splices into a parent's leaf
// positions: a fully analyzed child text structure (its own buffer,
// tokens and tree) to be spliced at the offset of a placeholder token in
// the parent.
type ChildAnalysis struct {
	Tokens []token.Token
	View   []int
	Tree   *Tree
	Buffer *Buffer
}

// TextStructure owns the buffer and every structure derived from it for
// one analysis unit (one file, or one expanded child of a file). It
// guarantees its token/view/tree invariants hold after every mutating
// operation it exposes.
type TextStructure struct {
	UnitID uuid.UUID
	Log    *logrus.Entry

	buffer *Buffer
	tokens []token.Token // full sequence, contiguous, EOF-terminated
	view   []int         // indices into tokens; strictly increasing
	pred   func(token.Token) bool

	lines      LineIndex
	lineTokens []int // per-line token index; lineTokens[i] = index of first token on/after line i; last = len(tokens)

	tree *Tree
}

// New builds a TextStructure from a buffer and its full, contiguous,
// EOF-terminated token sequence. The view initially includes every
// token except trivia (whitespace/comments), matching the parser's
// usual needs; callers may re-Filter immediately if they want something
// else.
func New(buf *Buffer, tokens []token.Token) *TextStructure {
	id, _ := uuid.NewV4()
	s := &TextStructure{
		UnitID: id,
		Log:    logrus.WithField("unit_id", id.String()),
		buffer: buf,
		tokens: tokens,
		lines:  BuildLineIndex(buf.Contents()),
	}
	s.pred = func(t token.Token) bool { return !t.IsTrivia() }
	s.rebuildView()
	s.rebuildLineTokens()
	s.checkInvariants()
	return s
}

// Buffer returns the owning buffer.
func (s *TextStructure) Buffer() *Buffer { return s.buffer }

// Tokens returns the full token sequence (read-only use expected).
func (s *TextStructure) Tokens() []token.Token { return s.tokens }

// View returns the current filtered view as indices into Tokens().
func (s *TextStructure) View() []int { return s.view }

// Tree returns the syntax tree root (nil until the parser assigns one).
func (s *TextStructure) Tree() *Tree { return s.tree }

// SetTree assigns the parser's result. Re-checks invariants since leaf
// tokens must lie within the buffer.
func (s *TextStructure) SetTree(t *Tree) {
	s.tree = t
	s.checkInvariants()
}

// Contents returns the whole buffer as a string).
func (s *TextStructure) Contents() string { return s.buffer.Contents() }

// LineColumn converts a byte offset to a {line, column} pair; column
// counts characters).
func (s *TextStructure) LineColumn(offset int) (line, column int) {
	return s.lines.LineColumn(offset)
}

// RangeFor returns a token's [start, end) byte range. For a real token
// this is simply its own Start/End; for EOF (empty text) both endpoints
// collapse to the buffer's end).
func (s *TextStructure) RangeFor(t token.Token) (start, end int) {
	if t.Kind == token.EOF {
		n := s.buffer.Len()
		return n, n
	}
	return t.Start, t.End
}

// TokensSpanning returns the minimal range of tokens whose text fully
// fits inside [lo, hi): two binary searches over the (byte-offset
// sorted) token sequence).
func (s *TextStructure) TokensSpanning(lo, hi int) TokenRange {
	begin := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start >= lo })
	end := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start >= hi || s.tokens[i].End > hi })
	if end < begin {
		end = begin
	}
	return TokenRange{Begin: begin, End: end}
}

// TokensOnLine returns the token-index range for line n, using the
// per-line token index).
func (s *TextStructure) TokensOnLine(n int) TokenRange {
	if n < 0 {
		n = 0
	}
	if n+1 >= len(s.lineTokens) {
		return TokenRange{Begin: len(s.tokens) - 1, End: len(s.tokens) - 1}
	}
	return TokenRange{Begin: s.lineTokens[n], End: s.lineTokens[n+1]}
}

// FindTokenAt does a linear scan over the tokens of the given line to
// find the one spanning the requested column, returning the trailing
// EOF token if none matches).
func (s *TextStructure) FindTokenAt(line, column int) token.Token {
	r := s.TokensOnLine(line)
	lineStart := s.lines.LineStart(line)
	for i := r.Begin; i < r.End; i++ {
		t := s.tokens[i]
		_, startCol := s.lines.LineColumn(t.Start)
		_, endCol := s.lines.LineColumn(t.End)
		if t.Start < lineStart {
			startCol = 0
		}
		if column >= startCol && column < endCol {
			return t
		}
	}
	return s.tokens[len(s.tokens)-1]
}

// Filter restricts the view in place to tokens satisfying predicate,
// preserving order. Idempotent when called twice with the same
// predicate composition).
func (s *TextStructure) Filter(predicate func(token.Token) bool) {
	prev := s.pred
	s.pred = func(t token.Token) bool { return prev(t) && predicate(t) }
	s.rebuildView()
	s.checkInvariants()
}

func (s *TextStructure) rebuildView() {
	view := make([]int, 0, len(s.tokens))
	for i, t := range s.tokens {
		if s.pred(t) {
			view = append(view, i)
		}
	}
	s.view = view
}

func (s *TextStructure) rebuildLineTokens() {
	n := s.lines.NumLines()
	idx := make([]int, n+1)
	ti := 0
	for line := 0; line < n; line++ {
		lineStart := s.lines.LineStart(line)
		for ti < len(s.tokens) && s.tokens[ti].Start < lineStart {
			ti++
		}
		idx[line] = ti
	}
	idx[n] = len(s.tokens)
	s.lineTokens = idx
}

// Rebase updates every token to point into newBuffer, shifting every
// offset by `offset` (after this analysis's content has been moved into
// a larger enclosing buffer).
func (s *TextStructure) Rebase(newBuffer *Buffer, offset int) {
	for i := range s.tokens {
		s.tokens[i].Start += offset
		s.tokens[i].End += offset
	}
	if s.tree != nil {
		s.tree.Walk(func(n *Tree, _ int) {
			if n.IsLeaf() {
				n.Token.Start += offset
				n.Token.End += offset
			}
		})
	}
	s.buffer = newBuffer
	s.lines = BuildLineIndex(newBuffer.Contents())
	s.rebuildLineTokens()
	s.checkInvariants()
}

// Focus narrows this TextStructure to the sub-range [offset,
// offset+length): it trims the tree to the largest subtree wholly
// contained in the range (or an empty node if none exists), trims the
// token sequence, clipping a straddling final token and appending a
// synthesized EOF, rebuilds the view and the line index).
func (s *TextStructure) Focus(offset, length int) {
	lo, hi := offset, offset+length
	var find func(t *Tree) (*Tree, int)
	find = func(t *Tree) (*Tree, int) {
		if start, end, ok := t.Span(); ok && start >= lo && end <= hi {
			return t, end - start
		}
		var best *Tree
		bestLen := -1
		for _, c := range t.Children {
			if f, n := find(c); f != nil && n > bestLen {
				best, bestLen = f, n
			}
		}
		return best, bestLen
	}
	if s.tree != nil {
		if sub, _ := find(s.tree); sub != nil {
			s.tree = sub
		} else {
			s.tree = NewEmptyNode()
		}
	}

	var kept []token.Token
	for _, t := range s.tokens {
		if t.Kind == token.EOF {
			continue
		}
		if t.Start >= hi {
			break
		}
		if t.Start < lo {
			continue
		}
		if t.End > hi {
			t.End = hi
		}
		kept = append(kept, t)
	}
	kept = append(kept, token.Token{Kind: token.EOF, Start: hi, End: hi})

	newData := s.buffer.Slice(0, hi)
	s.buffer = NewBuffer(newData)
	s.tokens = kept
	s.lines = BuildLineIndex(s.buffer.Contents())
	s.rebuildView()
	s.rebuildLineTokens()
	s.checkInvariants()
}

// Expand consumes a map from parent-buffer offset to child analysis and
// splices each child's tokens and tree into place at that offset, in
// order of offset: tokens up to the offset are copied into a new
// combined sequence, the child's tokens are transferred in (rebased
// onto the parent buffer), the child's tree root takes over the leaf
// position at that offset, and one token (the placeholder) is skipped
// in the parent. The view and the per-line token index are rebuilt
// afterward; any outstanding indices into the previous token sequence
// are invalidated.
func (s *TextStructure) Expand(children map[int]ChildAnalysis) *Buffer {
	offsets := make([]int, 0, len(children))
	for off := range children {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	var combinedData []byte
	var combinedTokens []token.Token
	shiftOf := make(map[int]int, len(s.tokens)) // original token Start -> byte shift applied
	spliced := make(map[int]*Tree, len(children))

	srcTokens := s.tokens
	ti := 0

	copyParentThrough := func(byteEnd int) {
		for ti < len(srcTokens) && srcTokens[ti].Start < byteEnd {
			t := srcTokens[ti]
			if t.Kind != token.EOF {
				text := s.buffer.Slice(t.Start, t.End)
				newStart := len(combinedData)
				combinedData = append(combinedData, text...)
				shiftOf[t.Start] = newStart - t.Start
				combinedTokens = append(combinedTokens, token.Token{Kind: t.Kind, Start: newStart, End: newStart + len(text)})
			}
			ti++
		}
	}

	for _, off := range offsets {
		copyParentThrough(off)
		// skip exactly one placeholder token reserved at this offset
		if ti < len(srcTokens) && srcTokens[ti].Start == off && srcTokens[ti].Kind != token.EOF {
			shiftOf[srcTokens[ti].Start] = len(combinedData) - srcTokens[ti].Start
			ti++
		}

		child := children[off]
		childShift := len(combinedData) - firstChildTokenStart(child.Tokens)
		for _, ct := range child.Tokens {
			if ct.Kind == token.EOF {
				continue
			}
			text := child.Buffer.Slice(ct.Start, ct.End)
			newStart := len(combinedData)
			combinedData = append(combinedData, text...)
			combinedTokens = append(combinedTokens, token.Token{Kind: ct.Kind, Start: newStart, End: newStart + len(text)})
		}
		if child.Tree != nil {
			rebased := rebaseTree(child.Tree, childShift)
			spliced[off] = rebased
		}
	}
	copyParentThrough(len(s.buffer.Contents()))
	if ti < len(srcTokens) && srcTokens[len(srcTokens)-1].Kind == token.EOF {
		// trailing bytes past the last real token, if any, belong to no
		// token and are not expected in a well-formed buffer; nothing to
		// copy beyond what copyParentThrough already consumed.
	}

	newBuf := NewBuffer(string(combinedData))
	combinedTokens = append(combinedTokens, token.Token{Kind: token.EOF, Start: newBuf.Len(), End: newBuf.Len()})

	if s.tree != nil {
		s.tree = spliceTree(s.tree, shiftOf, spliced)
	}

	s.buffer = newBuf
	s.tokens = combinedTokens
	s.lines = BuildLineIndex(newBuf.Contents())
	s.rebuildView()
	s.rebuildLineTokens()
	s.checkInvariants()
	return newBuf
}

func firstChildTokenStart(tokens []token.Token) int {
	for _, t := range tokens {
		if t.Kind != token.EOF {
			return t.Start
		}
	}
	return 0
}

// rebaseTree shifts every leaf token of t by the given byte delta.
func rebaseTree(t *Tree, shift int) *Tree {
	if t == nil {
		return nil
	}
	if t.IsLeaf() {
		nt := *t
		nt.Token.Start += shift
		nt.Token.End += shift
		return &nt
	}
	children := make([]*Tree, len(t.Children))
	for i, c := range t.Children {
		children[i] = rebaseTree(c, shift)
	}
	return &Tree{Tag: t.Tag, Children: children}
}

// spliceTree rewrites every leaf of t: leaves whose original offset is a
// splice point are replaced wholesale by the already-rebased child
// tree; all other leaves are shifted per shiftOf.
func spliceTree(t *Tree, shiftOf map[int]int, spliced map[int]*Tree) *Tree {
	if t.IsLeaf() {
		if repl, ok := spliced[t.Token.Start]; ok {
			return repl
		}
		nt := *t
		nt.Token.Start += shiftOf[t.Token.Start]
		nt.Token.End += shiftOf[t.Token.Start]
		return &nt
	}
	children := make([]*Tree, len(t.Children))
	for i, c := range t.Children {
		children[i] = spliceTree(c, shiftOf, spliced)
	}
	return &Tree{Tag: t.Tag, Children: children}
}

// checkInvariants verifies the consistency invariants that must hold at
// every observable state. Violations are programmer errors, not
// recoverable input errors, and abort the process.
func (s *TextStructure) checkInvariants() {
	n := s.buffer.Len()
	for _, t := range s.tokens {
		if t.Start < 0 || t.End > n || t.Start > t.End {
			panic("text: token out of buffer bounds")
		}
	}
	for i := 1; i < len(s.tokens); i++ {
		if s.tokens[i-1].Kind != token.EOF && s.tokens[i-1].End != s.tokens[i].Start {
			panic("text: token sequence is not contiguous")
		}
	}
	for _, idx := range s.view {
		if idx < 0 || idx >= len(s.tokens) {
			panic("text: view index out of [tokens.begin, tokens.end)")
		}
	}
	for i := 1; i < len(s.view); i++ {
		if s.view[i-1] >= s.view[i] {
			panic("text: view is not strictly increasing")
		}
	}
	if len(s.lines.offsets) == 0 || s.lines.offsets[0] != 0 {
		panic("text: line index must start at 0")
	}
	if s.lines.offsets[len(s.lines.offsets)-1] != n {
		panic("text: line index must end at buffer length")
	}
	if len(s.lineTokens) > 0 {
		if s.lineTokens[0] != 0 && len(s.tokens) > 0 {
			// first entry must equal tokens.begin() (index 0)
			if s.lineTokens[0] != 0 {
				panic("text: per-line token index must start at tokens.begin()")
			}
		}
		if s.lineTokens[len(s.lineTokens)-1] != len(s.tokens) {
			panic("text: per-line token index must end at tokens.end()")
		}
	}
	if s.tree != nil {
		start, end, ok := s.tree.Span()
		if ok && (start < 0 || end > n) {
			panic("text: tree leaf out of buffer bounds")
		}
	}
}
