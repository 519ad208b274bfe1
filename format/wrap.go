package format

// wrapState is one partial decision sequence in the wrap search: did we
// break before token tokenIndex, and what column did that choice leave
// us at. parent is an index into the shared states slice (not a
// pointer), so the winning chain can be walked back to front once the
// search converges -- grounded on verible's state-node.cc StateNode,
// which threads its chain of choices the same index-based way.
type wrapState struct {
	tokenIndex int
	column     int
	wraps      int
	penalty    float64 // cumulative FormatToken.BreakPenalty of every wrap chosen along this chain
	parent     int     // index into states, or -1 for the initial state
	choseWrap  bool
	cost       float64
}

// WrapLine decides, for each Undecided spacing boundary in
// toks[begin:end), whether to break the line there, searching for the
// assignment that minimizes the overflow past style.ColumnLimit, summed
// over every token, and then the sum of the BreakPenalty of every wrap
// chosen, in that priority order. Fixed boundaries
// (MustAppend/MustWrap/BreakPreserve) are not search decisions; they are
// applied as given. Returns, for each index in [begin, end), whether a
// line break precedes it.
func WrapLine(toks []FormatToken, src string, begin, end, indent int, style Style) []bool {
	n := end - begin
	breakBefore := make([]bool, n)
	if n == 0 {
		return breakBefore
	}

	states := []wrapState{{tokenIndex: begin - 1, column: indent, parent: -1}}
	frontier := []int{0}

	for i := begin; i < end; i++ {
		top := NewTopN[int](maxInt(style.WrapSearchTopN, 1))
		width := DisplayWidth(toks[i].Text(src))
		isFirst := i == begin

		for _, si := range frontier {
			s := states[si]
			for _, wrap := range decisionsFor(toks[i], isFirst) {
				col := s.column
				wraps := s.wraps
				penalty := s.penalty
				if wrap {
					col = indent + width
					wraps++
					penalty += float64(toks[i].BreakPenalty)
				} else {
					if !isFirst {
						col += toks[i].SpacesRequired
					}
					col += width
				}
				overflow := 0
				if col > style.ColumnLimit {
					overflow = col - style.ColumnLimit
				}
				cost := s.cost + float64(overflow)*1000 + (penalty - s.penalty)
				states = append(states, wrapState{tokenIndex: i, column: col, wraps: wraps, penalty: penalty, parent: si, choseWrap: wrap, cost: cost})
				top.Push(cost, len(states)-1)
			}
		}
		frontier = top.Values()
	}

	best := frontier[0]
	for _, si := range frontier {
		if states[si].cost < states[best].cost {
			best = si
		}
	}

	for s := best; s != -1 && states[s].tokenIndex >= begin; s = states[s].parent {
		breakBefore[states[s].tokenIndex-begin] = states[s].choseWrap
	}
	return breakBefore
}

// decisionsFor returns the set of wrap/no-wrap choices legal at this
// token's boundary given its fixed Break decision.
func decisionsFor(ft FormatToken, isFirst bool) []bool {
	if isFirst {
		return []bool{false}
	}
	switch ft.Break {
	case MustAppend:
		return []bool{false}
	case MustWrap:
		return []bool{true}
	case BreakPreserve:
		return []bool{ft.OriginalNewlinesBefore > 0}
	default:
		return []bool{false, true}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
