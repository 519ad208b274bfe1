package format

import "strings"

// Render concatenates toks into the final formatted text. src is the
// buffer the tokens' byte offsets refer to. disabled ranges are copied
// through verbatim, byte for byte; everywhere else, spacing comes from each FormatToken's
// committed decision (alignment's SpacesApplied where alignment ran,
// otherwise the annotator's SpacesRequired, with MustWrap/wrap-search
// breaks becoming a newline).
func Render(src string, toks []FormatToken, disabled []DisabledRange) string {
	var b strings.Builder
	i := 0

	for _, dr := range disabled {
		for i < len(toks) && toks[i].Token.End <= dr.Begin {
			emitFormatted(&b, toks[i], i == 0, src)
			i++
		}
		if i > 0 && toks[i-1].Token.End < dr.Begin && strings.Contains(src[toks[i-1].Token.End:dr.Begin], "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(src[dr.Begin:dr.End])
		for i < len(toks) && toks[i].Token.Start < dr.End {
			i++
		}
	}
	for ; i < len(toks); i++ {
		emitFormatted(&b, toks[i], i == 0, src)
	}
	return b.String()
}

func emitFormatted(b *strings.Builder, ft FormatToken, first bool, src string) {
	if !first {
		switch {
		case ft.Break == MustWrap || ft.Policy == SpacingMustWrap || ft.Policy == SpacingWrap:
			b.WriteByte('\n')
		case ft.Policy == SpacingAppendAligned || ft.Policy == SpacingPreserve:
			writeSpaces(b, ft.SpacesApplied)
		default:
			writeSpaces(b, ft.SpacesRequired)
		}
	}
	b.WriteString(ft.Text(src))
}

func writeSpaces(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}
