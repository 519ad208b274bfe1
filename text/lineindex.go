package text

import (
	"sort"
	"unicode/utf8"
)

// LineIndex is a sorted sequence of byte offsets, each the position
// immediately after a newline. Offset 0 is always the first entry and
// the buffer's total length is always the last.
type LineIndex struct {
	offsets []int
	source  string // retained only to compute character (not byte) columns
}

// BuildLineIndex scans s once and records the offset just past every
// '\n'. Both bare "\n" and "\r\n" line endings advance the index the
// same way: the offset recorded is always immediately after the '\n'.
func BuildLineIndex(s string) LineIndex {
	offsets := make([]int, 0, 1+len(s)/40)
	offsets = append(offsets, 0)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	if last := len(offsets) - 1; offsets[last] != len(s) {
		offsets = append(offsets, len(s))
	}
	return LineIndex{offsets: offsets, source: s}
}

// NumLines returns the number of lines the index covers (one more than
// the number of newlines seen, unless the buffer already ended exactly
// on a newline).
func (li LineIndex) NumLines() int {
	if len(li.offsets) == 0 {
		return 0
	}
	return len(li.offsets) - 1
}

// LineStart returns the byte offset where line n (0-indexed) begins.
func (li LineIndex) LineStart(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= len(li.offsets) {
		n = len(li.offsets) - 1
	}
	return li.offsets[n]
}

// LineColumn converts a byte offset into a {line, column} pair via
// binary search over the recorded newline offsets: O(log lines). column
// counts characters, not bytes, to respect multi-byte UTF-8 code points.
func (li LineIndex) LineColumn(offset int) (line, column int) {
	// sort.Search finds the first offsets[i] > offset; the line
	// containing `offset` is i-1.
	i := sort.Search(len(li.offsets), func(i int) bool { return li.offsets[i] > offset })
	line = i - 1
	if line < 0 {
		line = 0
	}
	// The final entry is only a length sentinel, not a line start, when
	// the buffer does not end in a newline.
	if last := len(li.offsets) - 1; line == last && line > 0 && li.source[len(li.source)-1] != '\n' {
		line--
	}
	start := li.offsets[line]
	if start > len(li.source) {
		start = len(li.source)
	}
	end := offset
	if end > len(li.source) {
		end = len(li.source)
	}
	if end < start {
		end = start
	}
	column = utf8.RuneCountInString(li.source[start:end])
	return line, column
}
