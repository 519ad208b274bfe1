package format

import "golang.org/x/text/width"

// DisplayWidth reports the on-screen column width of s: East-Asian wide
// and fullwidth runes count as 2 cells, everything else as 1. Used by
// the alignment engine's column sizing and the wrap search's column
// budget; deliberately distinct from text.LineIndex's
// character-count columns.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
