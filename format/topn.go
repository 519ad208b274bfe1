package format

// TopN keeps the N entries with the lowest score seen so far, evicting
// the worst entry once full. Grounded on verible's common/util/top-n.h,
// which the wrap search (wrap.go) uses to bound its frontier so a
// pathologically long line cannot blow up search time.
type TopN[T any] struct {
	limit   int
	entries []topNEntry[T]
}

type topNEntry[T any] struct {
	score float64
	value T
}

func NewTopN[T any](limit int) *TopN[T] {
	if limit < 1 {
		limit = 1
	}
	return &TopN[T]{limit: limit}
}

// Push offers (score, value); lower score is better. Returns true if the
// value was kept (the frontier had room, or it beat the current worst
// entry).
func (t *TopN[T]) Push(score float64, value T) bool {
	if len(t.entries) < t.limit {
		t.entries = append(t.entries, topNEntry[T]{score: score, value: value})
		t.bubbleUp(len(t.entries) - 1)
		return true
	}
	if score >= t.entries[0].score {
		return false
	}
	t.entries[0] = topNEntry[T]{score: score, value: value}
	t.siftDown(0)
	return true
}

// Len reports how many entries are currently kept.
func (t *TopN[T]) Len() int { return len(t.entries) }

// Values returns the kept values in no particular order.
func (t *TopN[T]) Values() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.value
	}
	return out
}

// entries is a max-heap on score so the worst kept entry (index 0) is
// the cheapest to find and evict.
func (t *TopN[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if t.entries[parent].score >= t.entries[i].score {
			break
		}
		t.entries[parent], t.entries[i] = t.entries[i], t.entries[parent]
		i = parent
	}
}

func (t *TopN[T]) siftDown(i int) {
	n := len(t.entries)
	for {
		l, r := 2*i+1, 2*i+2
		largest := i
		if l < n && t.entries[l].score > t.entries[largest].score {
			largest = l
		}
		if r < n && t.entries[r].score > t.entries[largest].score {
			largest = r
		}
		if largest == i {
			return
		}
		t.entries[i], t.entries[largest] = t.entries[largest], t.entries[i]
		i = largest
	}
}
