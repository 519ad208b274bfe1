// Package format's top-level entry points: Format for one already-loaded
// source buffer, FormatFiles for a batch of files formatted in parallel.
package format

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sv-tools/svfmt/token"
)

// Format runs one source buffer through the full pipeline except parsing
// (lex -> rewrite -> filter -> annotate -> wrap -> render; alignment and
// partitioning are available as a library to callers that have their own
// syntax tree, see Align/Partition) and returns the formatted text plus
// any lexical errors collected along the way. A lexical error never
// aborts the file: the offending bytes are preserved as-is and
// formatting continues around them.
func Format(filename, source string, style Style) (string, []error) {
	analysis, errs := Analyze(filename, source)

	full := analysis.Structure.Tokens()
	kept := make([]token.Token, 0, len(full))
	for _, t := range full {
		if t.Kind == token.Whitespace || t.Kind == token.EOF {
			continue
		}
		kept = append(kept, t)
	}

	fts := Annotate(kept, source, nil)
	disabled := ScanDisabledRanges(kept, source)

	for _, dr := range disabled {
		markPreservedRange(fts, dr)
	}

	breaks := WrapLine(fts, source, 0, len(fts), 0, style)
	for i, brk := range breaks {
		if brk {
			fts[i].Policy = SpacingWrap
		}
	}

	return Render(source, fts, disabled), errs
}

// markPreservedRange forces every FormatToken whose token overlaps a
// disabled range onto the Preserve policy with its original spacing.
// These tokens still take part in the wrap search; Render skips them and
// copies the range's raw source bytes instead.
func markPreservedRange(fts []FormatToken, dr DisabledRange) {
	for i := range fts {
		if fts[i].Token.Start < dr.End && fts[i].Token.End > dr.Begin {
			fts[i].Policy = SpacingPreserve
			fts[i].SpacesApplied = fts[i].OriginalSpacesBefore
		}
	}
}

// FileResult is one file's outcome from FormatFiles.
type FileResult struct {
	Filename string
	Output   string
	Errors   []error
}

// FormatFiles formats every named file concurrently, each independent of
// the others: a failure or diagnostic in one file never affects
// another's result. read loads one file's contents.
func FormatFiles(ctx context.Context, filenames []string, read func(string) (string, error), style Style) ([]FileResult, error) {
	results := make([]FileResult, len(filenames))
	g, ctx := errgroup.WithContext(ctx)

	for i, name := range filenames {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := logrus.WithField("file", name)
			contents, err := read(name)
			if err != nil {
				log.WithError(err).Warn("failed to read file")
				results[i] = FileResult{Filename: name, Errors: []error{err}}
				return nil
			}
			out, errs := Format(name, contents, style)
			results[i] = FileResult{Filename: name, Output: out, Errors: errs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
