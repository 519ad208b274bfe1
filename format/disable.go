package format

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sv-tools/svfmt/token"
)

// DisabledRange is a [Begin, End) byte span the formatter must emit
// verbatim.
type DisabledRange struct {
	Begin, End int
}

// markerOff/markerOn accept the bare `// verilog_format: off|on` spelling
// plus the variants verible's comment-controls_test.cc exercises:
// optional surrounding whitespace, a `/* ... */` spelling, and an
// optional trailing `:reason` or `// reason` suffix.
var (
	markerOff = regexp.MustCompile(`^\s*(?://|/\*)\s*verilog_format\s*:\s*off\b.*$`)
	markerOn  = regexp.MustCompile(`^\s*(?://|/\*)\s*verilog_format\s*:\s*on\b.*$`)
)

// lineEnd returns the byte offset right after the next newline at or
// after pos, or len(src) if pos's line runs to end of file.
func lineEnd(src string, pos int) int {
	if idx := strings.IndexByte(src[pos:], '\n'); idx >= 0 {
		return pos + idx + 1
	}
	return len(src)
}

// ScanDisabledRanges walks toks looking for format-off/format-on
// comments and returns the sorted, non-overlapping ranges they disable.
// The disabled span starts after the off-marker's own line (the marker's
// line itself still formats normally) and, when an "on" marker closes it,
// extends through that marker's own comment text. An "off" with no
// matching "on" disables to end of file. Nested markers of the same kind
// are idempotent (a second "off" before any "on" has no additional
// effect). A marker whose own line runs to end of file with nothing
// following disables nothing.
func ScanDisabledRanges(toks []token.Token, src string) []DisabledRange {
	var ranges []DisabledRange
	disabledSince := -1

	for _, t := range toks {
		if !t.IsComment() {
			continue
		}
		text := src[t.Start:t.End]
		switch {
		case markerOff.MatchString(text):
			if disabledSince < 0 {
				disabledSince = lineEnd(src, t.End)
			}
		case markerOn.MatchString(text):
			if disabledSince >= 0 {
				if t.End > disabledSince {
					ranges = append(ranges, DisabledRange{Begin: disabledSince, End: t.End})
				}
				disabledSince = -1
			}
		}
	}
	if disabledSince >= 0 && disabledSince < len(src) {
		ranges = append(ranges, DisabledRange{Begin: disabledSince, End: len(src)})
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Begin < ranges[j].Begin })
	return ranges
}

// Overlaps reports whether [begin, end) intersects any disabled range.
func Overlaps(ranges []DisabledRange, begin, end int) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].End > begin })
	return i < len(ranges) && ranges[i].Begin < end
}
