// Package format implements the formatting core: turning a filtered
// token sequence into token partitions, deciding inter-token spacing,
// aligning tabular constructs, searching for line-wrap points and
// rendering the final text.
package format

import "fmt"

// AlignmentPolicy selects how a sibling run of partitions is aligned.
type AlignmentPolicy int

const (
	Align AlignmentPolicy = iota
	FlushLeft
	Preserve
	InferUserIntent
)

func (p AlignmentPolicy) String() string {
	switch p {
	case Align:
		return "Align"
	case FlushLeft:
		return "FlushLeft"
	case Preserve:
		return "Preserve"
	case InferUserIntent:
		return "InferUserIntent"
	default:
		return "Unknown"
	}
}

// ParseAlignmentPolicy parses the four policy names accepted in style
// config files, case-sensitive and matching String()'s spelling.
func ParseAlignmentPolicy(s string) (AlignmentPolicy, error) {
	switch s {
	case "Align":
		return Align, nil
	case "FlushLeft":
		return FlushLeft, nil
	case "Preserve":
		return Preserve, nil
	case "InferUserIntent":
		return InferUserIntent, nil
	default:
		return 0, fmt.Errorf("unknown alignment policy %q", s)
	}
}

// Style is the formatter's single configuration record, threaded
// explicitly through every stage rather than read from a global.
type Style struct {
	ColumnLimit int `yaml:"column_limit"`
	IndentWidth int `yaml:"indent_width"`

	AlignmentPolicy AlignmentPolicy `yaml:"-"`

	// InferUserIntent's three tunable thresholds: D_align <=
	// AlignMaxDelta forces alignment; D_flush <= FlushMaxDelta or
	// D_flush >= FlushMinForceDelta decide flush-left vs. forced
	// alignment on the other side.
	AlignMaxDelta     int `yaml:"align_max_delta"`
	FlushMaxDelta     int `yaml:"flush_max_delta"`
	FlushMinForceDelta int `yaml:"flush_min_force_delta"`

	// WrapSearchTopN bounds the wrap-search frontier: at most this many
	// partial states are kept after each token.
	WrapSearchTopN int `yaml:"wrap_search_top_n"`
}

// DefaultStyle mirrors verible's defaults for the alignment thresholds
// (2 and 4) plus a conventional 100 column limit and two-space
// indentation.
func DefaultStyle() Style {
	return Style{
		ColumnLimit:        100,
		IndentWidth:        2,
		AlignmentPolicy:    InferUserIntent,
		AlignMaxDelta:      2,
		FlushMaxDelta:      2,
		FlushMinForceDelta: 4,
		WrapSearchTopN:     8,
	}
}
