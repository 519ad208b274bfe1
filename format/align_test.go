package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-tools/svfmt/token"
)

// buildPortRows constructs three "rows" each shaped `logic NAME ;` so a
// single-column scanner can align the NAME column, as in port-list
// alignment.
func buildPortRows(t *testing.T) ([]*Partition, []FormatToken, string) {
	t.Helper()
	names := []string{"a", "longname", "bb"}
	var src string
	var toks []FormatToken
	var rows []*Partition
	pos := 0
	for _, name := range names {
		line := "logic " + name + ";\n"
		begin := len(toks)
		kw := token.Token{Kind: token.Keyword, Start: pos, End: pos + 5}
		pos += 6 // "logic "
		id := token.Token{Kind: token.Identifier, Start: pos, End: pos + len(name)}
		pos += len(name)
		semi := token.Token{Kind: token.Semicolon, Start: pos, End: pos + 1}
		pos += 2 // ";\n"

		toks = append(toks,
			FormatToken{Token: kw, SpacesRequired: 0},
			FormatToken{Token: id, SpacesRequired: 1},
			FormatToken{Token: semi, SpacesRequired: 0},
		)
		rows = append(rows, NewPartition(begin, begin+3, PolicyFitOnLineElseExpand))
		src += line
	}
	return rows, toks, src
}

func nameColumnScanner(row *Partition) []CellEntry {
	// token at row.Begin+1 is always the identifier in buildPortRows.
	return []CellEntry{{Path: []int{0}, StartToken: row.Begin + 1}}
}

func TestAlignCommitsWidensShortCellsToColumnWidth(t *testing.T) {
	rows, toks, src := buildPortRows(t)
	style := DefaultStyle()

	applied := Align(rows, toks, src, nameColumnScanner, nil, Align, style)
	require.True(t, applied)

	// "longname" (8 chars) is the widest; "a" and "bb" must be padded
	// out to the same compact width via extra SpacesApplied.
	assert.Greater(t, toks[1].SpacesApplied, toks[4].SpacesApplied)
	for _, r := range rows {
		assert.Equal(t, PolicyAlreadyFormatted, r.Policy)
	}
}

func TestAlignFlushLeftNeverCommits(t *testing.T) {
	rows, toks, src := buildPortRows(t)
	applied := Align(rows, toks, src, nameColumnScanner, nil, FlushLeft, DefaultStyle())
	assert.False(t, applied)
}

func TestAlignPreserveKeepsOriginalSpacing(t *testing.T) {
	rows, toks, src := buildPortRows(t)
	toks[1].OriginalSpacesBefore = 3

	applied := Align(rows, toks, src, nameColumnScanner, nil, Preserve, DefaultStyle())
	require.True(t, applied)
	assert.Equal(t, 3, toks[1].SpacesApplied)
	assert.Equal(t, SpacingPreserve, toks[1].Policy)
}

func TestAlignIgnoreRowExcludesRowFromColumnSizing(t *testing.T) {
	rows, toks, src := buildPortRows(t)
	ignoreLast := func(p *Partition) bool { return p == rows[len(rows)-1] }

	applied := Align(rows, toks, src, nameColumnScanner, ignoreLast, Align, DefaultStyle())
	require.True(t, applied)
	// the ignored row's own partition policy is left untouched.
	assert.NotEqual(t, PolicyAlreadyFormatted, rows[len(rows)-1].Policy)
}

func TestAlignInferUserIntentFlushLeftWhenDeltaSmall(t *testing.T) {
	rows, toks, src := buildPortRows(t)
	// original spacing already matches a flush-left layout (one space).
	for _, name := range []string{"a", "longname", "bb"} {
		_ = name
	}
	toks[1].OriginalSpacesBefore = 1
	toks[4].OriginalSpacesBefore = 1
	toks[7].OriginalSpacesBefore = 1

	style := DefaultStyle()
	applied := Align(rows, toks, src, nameColumnScanner, nil, InferUserIntent, style)
	assert.False(t, applied)
}
