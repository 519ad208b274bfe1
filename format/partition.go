package format

// PartitionPolicy is the rendering strategy for one token partition.
type PartitionPolicy int

const (
	PolicyFlushLeft PartitionPolicy = iota
	PolicyInline
	PolicyAlreadyFormatted
	PolicyAlwaysExpand
	PolicyFitOnLineElseExpand
	PolicyAppendFittingSubpartitions
)

// Partition is one node of the token partition tree. Ranges are
// token-index half-open ranges into the owning format's []FormatToken,
// not pointers -- no parent back-pointers are stored here; a visitor that needs upward navigation carries an explicit
// stack.
type Partition struct {
	Begin, End int // [Begin, End) into the flat FormatToken sequence
	Indent     int
	Policy     PartitionPolicy
	Children   []*Partition
}

func NewPartition(begin, end int, policy PartitionPolicy, children ...*Partition) *Partition {
	return &Partition{Begin: begin, End: end, Policy: policy, Children: children}
}

// MergeConsecutiveSiblings merges child i and i+1 of p; their token
// ranges must already be adjacent.
func (p *Partition) MergeConsecutiveSiblings(i int) bool {
	if i < 0 || i+1 >= len(p.Children) {
		return false
	}
	a, b := p.Children[i], p.Children[i+1]
	if a.End != b.Begin {
		return false
	}
	merged := &Partition{Begin: a.Begin, End: b.End, Indent: a.Indent, Policy: a.Policy, Children: append(a.Children, b.Children...)}
	p.Children = append(append(append([]*Partition{}, p.Children[:i]...), merged), p.Children[i+2:]...)
	return true
}

// MergeLeafIntoPrevious merges a leaf partition into its immediately
// preceding leaf sibling at any depth, maintaining range invariants up
// to the nearest common ancestor.
func MergeLeafIntoPrevious(root *Partition, leaf *Partition) bool {
	var prevLeaf *Partition
	var found bool
	var visit func(p *Partition)
	visit = func(p *Partition) {
		if found {
			return
		}
		if len(p.Children) == 0 {
			if p == leaf {
				found = true
				return
			}
			prevLeaf = p
			return
		}
		for _, c := range p.Children {
			visit(c)
			if found {
				return
			}
		}
	}
	visit(root)
	if !found || prevLeaf == nil {
		return false
	}
	prevLeaf.End = leaf.End
	leaf.Begin = leaf.End
	fixAncestorRanges(root)
	return true
}

// MergeLeafIntoNext merges a leaf partition into its immediately
// following leaf sibling at any depth.
func MergeLeafIntoNext(root *Partition, leaf *Partition) bool {
	var nextLeaf *Partition
	var afterLeaf bool
	var visit func(p *Partition)
	visit = func(p *Partition) {
		if nextLeaf != nil {
			return
		}
		if len(p.Children) == 0 {
			if afterLeaf {
				nextLeaf = p
			}
			if p == leaf {
				afterLeaf = true
			}
			return
		}
		for _, c := range p.Children {
			visit(c)
			if nextLeaf != nil {
				return
			}
		}
	}
	visit(root)
	if nextLeaf == nil {
		return false
	}
	nextLeaf.Begin = leaf.Begin
	leaf.End = leaf.Begin
	fixAncestorRanges(root)
	return true
}

// fixAncestorRanges re-derives every interior node's range from its
// children, bottom-up, restoring the strict containment invariant after
// a merge.
func fixAncestorRanges(p *Partition) (begin, end int) {
	if len(p.Children) == 0 {
		return p.Begin, p.End
	}
	first := true
	for _, c := range p.Children {
		b, e := fixAncestorRanges(c)
		if first {
			p.Begin = b
			first = false
		}
		p.End = e
	}
	return p.Begin, p.End
}

// AdjustIndentation updates the indentation of every partition in the
// subtree, either to an absolute value (abs=true) or by a relative
// delta.
func (p *Partition) AdjustIndentation(amount int, abs bool) {
	if abs {
		p.Indent = amount
	} else {
		p.Indent += amount
	}
	for _, c := range p.Children {
		c.AdjustIndentation(amount, abs)
	}
}

// HoistOnlyChild replaces p's single child with p itself taking over
// that child's contents, preserving the child's own indentation and
// policy on the replacement (not the hoisting parent).
func (p *Partition) HoistOnlyChild() bool {
	if len(p.Children) != 1 {
		return false
	}
	only := p.Children[0]
	p.Begin, p.End = only.Begin, only.End
	p.Indent = only.Indent
	p.Policy = only.Policy
	p.Children = only.Children
	return true
}
