package format

import (
	"sort"
	"strings"
)

// ColumnProperties are the per-column flags the scanner attaches to an
// entry of the sparse column-position tree.
type ColumnProperties struct {
	FlushLeft          bool
	ContainsDelimiter  bool
	LeftBorderOverride int
}

// CellEntry is one sparse column-position-tree entry the scanner emits
// for a single row: the syntax-tree path identifying the column, the
// index (into the row's FormatToken range) where the column's cell
// begins, and the column's properties.
type CellEntry struct {
	Path        []int
	StartToken  int
	Properties  ColumnProperties
}

// AlignmentCellScanner turns one unwrapped line (a leaf row partition)
// into its sparse column-position tree.
type AlignmentCellScanner func(row *Partition) []CellEntry

func pathKey(p []int) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(string(rune('0' + v%10)))
	}
	return b.String()
}

type column struct {
	path              []int
	width             int
	leftBorder        int
	flushLeft         bool
	containsDelimiter bool
	override          int
}

type cell struct {
	begin, end   int // FormatToken index range, or empty if unbound
	bound        bool
	compactWidth int
	leftBorder   int
}

// Align runs the column-alignment algorithm over rows (a sibling range of leaf
// partitions) using the given scanner, ignore predicate and policy.
// toks is the flat FormatToken sequence the rows index into; src is the
// owning buffer. Returns true if alignment was applied (false means the
// caller should render with its existing, unaligned spacing).
func Align(rows []*Partition, toks []FormatToken, src string, scanner AlignmentCellScanner, ignoreRow func(*Partition) bool, policy AlignmentPolicy, style Style) bool {
	switch policy {
	case FlushLeft:
		return false // downstream default renderer already flushes left
	case Preserve:
		applyPreserve(rows, toks, src)
		return true
	case InferUserIntent:
		return alignInferIntent(rows, toks, src, scanner, ignoreRow, style)
	default:
		return alignCommit(rows, toks, src, scanner, ignoreRow, style)
	}
}

// kept filters out ignored rows, preserving order.
func kept(rows []*Partition, ignoreRow func(*Partition) bool) []*Partition {
	if ignoreRow == nil {
		return rows
	}
	var out []*Partition
	for _, r := range rows {
		if !ignoreRow(r) {
			out = append(out, r)
		}
	}
	return out
}

// buildColumns collects the sparse column-position entries into a dense
// matrix and computes per-column widths, returning the column list, the
// per-row cell matrix, and whether the whole alignment fits within
// style.ColumnLimit.
func buildColumns(rows []*Partition, toks []FormatToken, src string, scanner AlignmentCellScanner, style Style) ([]column, [][]cell, bool) {
	type rowEntries struct {
		row     *Partition
		entries []CellEntry
	}
	var perRow []rowEntries
	colIndex := map[string]int{}
	var cols []column

	for _, r := range rows {
		entries := scanner(r)
		sort.Slice(entries, func(i, j int) bool { return pathKey(entries[i].Path) < pathKey(entries[j].Path) })
		for _, e := range entries {
			k := pathKey(e.Path)
			if _, ok := colIndex[k]; !ok {
				colIndex[k] = len(cols)
				cols = append(cols, column{path: e.Path, flushLeft: e.Properties.FlushLeft,
					containsDelimiter: e.Properties.ContainsDelimiter, override: e.Properties.LeftBorderOverride})
			}
		}
		perRow = append(perRow, rowEntries{row: r, entries: entries})
	}

	matrix := make([][]cell, len(perRow))
	for ri, pr := range perRow {
		row := make([]cell, len(cols))
		sorted := append([]CellEntry(nil), pr.entries...)
		for ei, e := range sorted {
			ci := colIndex[pathKey(e.Path)]
			begin := e.StartToken
			end := pr.row.End
			if ei+1 < len(sorted) {
				end = sorted[ei+1].StartToken
			}
			w, lb := cellWidths(toks, src, begin, end)
			row[ci] = cell{begin: begin, end: end, bound: true, compactWidth: w, leftBorder: lb}
		}
		matrix[ri] = row
	}

	for ci := range cols {
		maxW, maxLB := 0, 0
		lastRowLongest := -1
		for ri, row := range matrix {
			if !row[ci].bound {
				continue
			}
			if row[ci].compactWidth > maxW {
				maxW = row[ci].compactWidth
				lastRowLongest = ri
			}
			if row[ci].leftBorder > maxLB {
				maxLB = row[ci].leftBorder
			}
		}
		if cols[ci].override > maxLB {
			maxLB = cols[ci].override
		}
		if ci == 0 {
			maxLB = 0 // leftmost column's border belongs to indentation
		}
		if cols[ci].containsDelimiter && lastRowLongest == len(matrix)-1 {
			maxW, maxLB = 0, 0
		}
		cols[ci].width = maxW
		cols[ci].leftBorder = maxLB
	}

	fits := true
	for ri, row := range matrix {
		pRow := perRow[ri].row
		total := pRow.Indent
		last := pRow.Begin
		for ci := range cols {
			c := row[ci]
			if !c.bound {
				continue
			}
			total += cols[ci].leftBorder
			if cols[ci].flushLeft {
				total += c.compactWidth
			} else {
				total += cols[ci].width
			}
			if c.end > last {
				last = c.end
			}
		}
		// epilog: any trailing tokens past the last column this row binds,
		// not accounted for by any column width above.
		if last < pRow.End {
			epilogWidth, epilogBorder := cellWidths(toks, src, last, pRow.End)
			total += epilogBorder + epilogWidth
		}
		if total > style.ColumnLimit {
			fits = false
			break
		}
	}
	return cols, matrix, fits
}

func cellWidths(toks []FormatToken, src string, begin, end int) (compactWidth, leftBorder int) {
	if begin >= end || begin < 0 || end > len(toks) {
		return 0, 0
	}
	leftBorder = toks[begin].SpacesRequired
	width := 0
	for i := begin; i < end; i++ {
		width += DisplayWidth(toks[i].Text(src))
		if i > begin {
			width += toks[i].SpacesRequired
		}
	}
	return width, leftBorder
}

func alignCommit(rows []*Partition, toks []FormatToken, src string, scanner AlignmentCellScanner, ignoreRow func(*Partition) bool, style Style) bool {
	active := kept(rows, ignoreRow)
	if len(active) == 0 {
		return false
	}
	cols, matrix, fits := buildColumns(active, toks, src, scanner, style)
	if !fits {
		return false
	}
	for ri, row := range active {
		for ci := range cols {
			c := matrix[ri][ci]
			if !c.bound || c.begin >= c.end {
				continue
			}
			leading := cols[ci].leftBorder
			if cols[ci].flushLeft {
				toks[c.begin].SpacesApplied = leading
			} else {
				toks[c.begin].SpacesApplied = leading + (cols[ci].width - c.compactWidth)
			}
			toks[c.begin].Policy = SpacingAppendAligned
		}
		row.Policy = PolicyAlreadyFormatted
	}
	return true
}

func applyPreserve(rows []*Partition, toks []FormatToken, src string) {
	for _, r := range rows {
		for i := r.Begin; i < r.End && i < len(toks); i++ {
			toks[i].SpacesApplied = toks[i].OriginalSpacesBefore
			toks[i].Policy = SpacingPreserve
		}
		r.Policy = PolicyAlreadyFormatted
	}
}

// alignInferIntent implements the InferUserIntent policy: a dry run at
// Align spacing vs. a dry run at FlushLeft spacing, then one of four
// outcomes chosen by the two configurable deltas.
func alignInferIntent(rows []*Partition, toks []FormatToken, src string, scanner AlignmentCellScanner, ignoreRow func(*Partition) bool, style Style) bool {
	active := kept(rows, ignoreRow)
	if len(active) == 0 {
		return false
	}
	cols, matrix, fits := buildColumns(active, toks, src, scanner, style)
	if !fits {
		applyPreserve(active, toks, src)
		return true
	}

	dAlign, dFlush := 0, 0
	for ri := range active {
		for ci := range cols {
			c := matrix[ri][ci]
			if !c.bound || c.begin >= c.end {
				continue
			}
			aligned := cols[ci].leftBorder + (cols[ci].width - c.compactWidth)
			flush := cols[ci].leftBorder
			original := toks[c.begin].OriginalSpacesBefore
			if d := abs(aligned - flush); d > dAlign {
				dAlign = d
			}
			if d := original - flush; d > dFlush {
				dFlush = d
			}
		}
	}

	switch {
	case dAlign <= style.AlignMaxDelta:
		return alignCommit(rows, toks, src, scanner, ignoreRow, style)
	case dFlush <= style.FlushMaxDelta:
		return false // flush-left: downstream default renderer handles it
	case dFlush >= style.FlushMinForceDelta:
		return alignCommit(rows, toks, src, scanner, ignoreRow, style)
	default:
		applyPreserve(active, toks, src)
		return true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
