// Package text owns the single source buffer and every structure derived
// from it: the token sequence, the filtered view, the line index, the
// per-line token index and the syntax tree. See TextStructure for the
// operations that must preserve the invariants of the model across
// filter/focus/expand.
package text

import "fmt"

// Buffer is an immutable byte sequence with a defined lifetime. Every
// other structure in this package carries byte-offset ranges into a
// Buffer rather than raw pointers or substrings, per the "do not store
// raw pointers" design note: offsets are regenerated into slices on
// demand, and are only ever valid relative to the Buffer that produced
// them.
type Buffer struct {
	data string
}

// NewBuffer takes ownership of data; callers must not mutate the string
// afterwards (Go strings are immutable, so this is automatic).
func NewBuffer(data string) *Buffer {
	return &Buffer{data: data}
}

// Len returns the buffer's byte length.
func (b *Buffer) Len() int { return len(b.data) }

// Contents returns the whole buffer as a string.
func (b *Buffer) Contents() string { return b.data }

// Slice returns data[start:end], panicking if the range falls outside
// the buffer. A consistency violation here is always a programmer
// error, never a user-input problem.
func (b *Buffer) Slice(start, end int) string {
	if start < 0 || end > len(b.data) || start > end {
		panic(fmt.Sprintf("text: slice [%d:%d) out of bounds for buffer of length %d", start, end, len(b.data)))
	}
	return b.data[start:end]
}

// Contains reports whether the half-open range [start, end) lies wholly
// within the buffer.
func (b *Buffer) Contains(start, end int) bool {
	return start >= 0 && end <= len(b.data) && start <= end
}
