package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-tools/svfmt/token"
)

func lexSimple(s string) []token.Token {
	// A tiny hand-rolled tokenizer for plain words/punctuation/whitespace,
	// good enough for structure tests that do not need real SystemVerilog
	// lexical rules.
	var out []token.Token
	i := 0
	for i < len(s) {
		start := i
		switch {
		case s[i] == ' ':
			for i < len(s) && s[i] == ' ' {
				i++
			}
			out = append(out, token.Token{Kind: token.Whitespace, Start: start, End: i})
		case s[i] == ',':
			i++
			out = append(out, token.Token{Kind: token.Comma, Start: start, End: i})
		default:
			for i < len(s) && s[i] != ' ' && s[i] != ',' {
				i++
			}
			out = append(out, token.Token{Kind: token.Identifier, Start: start, End: i})
		}
	}
	out = append(out, token.Token{Kind: token.EOF, Start: len(s), End: len(s)})
	return out
}

func TestFocusNarrowsToSingleLeaf(t *testing.T) {
	src := "hello, world"
	buf := NewBuffer(src)
	toks := lexSimple(src)
	s := New(buf, toks)

	leaf := NewLeaf(toks[0]) // "hello"
	s.SetTree(leaf)

	s.Focus(0, 5)

	assert.Equal(t, "hello", s.Contents())
	require.Len(t, s.Tokens(), 2) // "hello" + synthesized EOF
	assert.Equal(t, token.Identifier, s.Tokens()[0].Kind)
	assert.Equal(t, token.EOF, s.Tokens()[1].Kind)
	assert.True(t, s.Tree().IsLeaf())
}

func TestFocusWithNoContainingSubtreeYieldsEmptyNode(t *testing.T) {
	src := "hello, world"
	buf := NewBuffer(src)
	toks := lexSimple(src)
	s := New(buf, toks)
	// tree only covers "hello, " (tokens 0-2); asking to focus on "world"
	// falls entirely outside that subtree's span.
	s.SetTree(NewNode(1, NewLeaf(toks[0]), NewLeaf(toks[1]), NewLeaf(toks[2])))

	s.Focus(7, 5)

	assert.Equal(t, src, s.Contents())
	assert.Equal(t, -1, s.Tree().Tag)
}

func TestFilterIsCumulative(t *testing.T) {
	src := "hello, world"
	s := New(NewBuffer(src), lexSimple(src))
	require.Len(t, s.View(), 4) // hello, comma, world, EOF (whitespace dropped by default pred)

	s.Filter(func(tok token.Token) bool { return tok.Kind != token.Comma })
	assert.Len(t, s.View(), 3) // hello, world, EOF
}

func TestTokensSpanning(t *testing.T) {
	src := "hello, world"
	s := New(NewBuffer(src), lexSimple(src))
	r := s.TokensSpanning(0, 5)
	assert.Equal(t, TokenRange{Begin: 0, End: 1}, r)
}

func TestLineColumnRoundTrips(t *testing.T) {
	src := "aa\nbbb\nc"
	li := BuildLineIndex(src)
	require.Equal(t, 3, li.NumLines())

	line, col := li.LineColumn(0)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)

	line, col = li.LineColumn(4) // second 'b' of "bbb", line 1 col 1
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = li.LineColumn(len(src))
	assert.Equal(t, 2, line)
}

func TestRebaseShiftsOffsets(t *testing.T) {
	src := "ab"
	s := New(NewBuffer(src), lexSimple(src))
	bigger := NewBuffer("xx" + src)
	s.Rebase(bigger, 2)
	assert.Equal(t, 2, s.Tokens()[0].Start)
}
