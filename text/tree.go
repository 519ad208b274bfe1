package text

import "github.com/sv-tools/svfmt/token"

// Tree is a syntax-tree node. It is either a leaf wrapping exactly one
// token, or an interior node carrying a tag (an opaque nonterminal kind
// assigned by the external grammar/parser) and an ordered list of
// children. Parent back-pointers are deliberately not stored here:
// callers that need upward navigation carry an explicit stack while
// visiting, rather than the tree owning cycles.
type Tree struct {
	Tag      int // meaningless for leaves; interpreted by callers for nodes
	Token    token.Token
	isLeaf   bool
	Children []*Tree
}

// NewLeaf wraps a single token.
func NewLeaf(t token.Token) *Tree {
	return &Tree{Token: t, isLeaf: true}
}

// NewNode builds an interior node over the given children, in order.
func NewNode(tag int, children ...*Tree) *Tree {
	return &Tree{Tag: tag, Children: children}
}

// NewEmptyNode is the placeholder tree used when Focus cannot find any
// subtree wholly contained in the requested range.
func NewEmptyNode() *Tree {
	return &Tree{Tag: -1}
}

func (t *Tree) IsLeaf() bool { return t.isLeaf }

// Leftmost returns the leftmost leaf descendant, or nil for an empty
// interior node.
func (t *Tree) Leftmost() *Tree {
	n := t
	for !n.isLeaf {
		if len(n.Children) == 0 {
			return nil
		}
		n = n.Children[0]
	}
	return n
}

// Rightmost returns the rightmost leaf descendant, or nil for an empty
// interior node.
func (t *Tree) Rightmost() *Tree {
	n := t
	for !n.isLeaf {
		if len(n.Children) == 0 {
			return nil
		}
		n = n.Children[len(n.Children)-1]
	}
	return n
}

// Span returns the [start, end) byte range this subtree covers, derived
// from its leftmost and rightmost descendants.
func (t *Tree) Span() (start, end int, ok bool) {
	l, r := t.Leftmost(), t.Rightmost()
	if l == nil || r == nil {
		return 0, 0, false
	}
	return l.Token.Start, r.Token.End, true
}

// Walk visits every node of the subtree, leaves and interior nodes
// alike, calling visit(node, depth) in pre-order.
func (t *Tree) Walk(visit func(n *Tree, depth int)) {
	var rec func(n *Tree, depth int)
	rec = func(n *Tree, depth int) {
		visit(n, depth)
		for _, c := range n.Children {
			rec(c, depth+1)
		}
	}
	rec(t, 0)
}

// FindSubtreeSpanning returns the smallest subtree (innermost node)
// whose span wholly contains [lo, hi), or nil if none does.
func (t *Tree) FindSubtreeSpanning(lo, hi int) *Tree {
	start, end, ok := t.Span()
	if !ok || start > lo || end < hi {
		return nil
	}
	for _, c := range t.Children {
		if best := c.FindSubtreeSpanning(lo, hi); best != nil {
			return best
		}
	}
	return t
}
