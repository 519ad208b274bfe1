package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sv-tools/svfmt/token"
)

func leaf(kind token.Kind, start, end int) *Tree {
	return NewLeaf(token.Token{Kind: kind, Start: start, End: end})
}

func TestTreeLeftmostAndRightmostDescendLeaves(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	b := leaf(token.Identifier, 2, 3)
	node := NewNode(1, NewNode(2, a), NewNode(3, b))

	assert.Same(t, a, node.Leftmost())
	assert.Same(t, b, node.Rightmost())
}

func TestTreeSpanCoversAllLeaves(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	b := leaf(token.Identifier, 5, 9)
	node := NewNode(1, a, b)

	start, end, ok := node.Span()
	assert.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 9, end)
}

func TestTreeSpanOnEmptyNodeIsNotOK(t *testing.T) {
	_, _, ok := NewEmptyNode().Span()
	assert.False(t, ok)
}

func TestTreeWalkVisitsInPreOrderWithDepth(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	node := NewNode(1, NewNode(2, a))

	var depths []int
	node.Walk(func(n *Tree, depth int) {
		depths = append(depths, depth)
	})
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestFindSubtreeSpanningReturnsInnermostContainingNode(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	b := leaf(token.Identifier, 2, 3)
	inner := NewNode(2, a, b)
	outer := NewNode(1, inner)

	found := outer.FindSubtreeSpanning(0, 3)
	assert.Same(t, inner, found)
}

func TestFindSubtreeSpanningFallsBackToSelfWhenNoChildMatches(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	b := leaf(token.Identifier, 2, 3)
	// neither individual leaf spans [0,3); the node itself is the best fit.
	root := NewNode(1, a, b)

	found := root.FindSubtreeSpanning(0, 3)
	assert.Same(t, root, found)
}

func TestFindSubtreeSpanningReturnsNilWhenRootDoesNotContainRange(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	root := NewNode(1, a)

	assert.Nil(t, root.FindSubtreeSpanning(5, 10))
}
