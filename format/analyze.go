package format

import (
	"fmt"

	"github.com/sv-tools/svfmt/lexer"
	"github.com/sv-tools/svfmt/text"
	"github.com/sv-tools/svfmt/token"
)

// Analysis is the result of running one file through lex, rewrite and
// text-structure construction: the owning structure plus any lexical
// error tokens encountered along the way. There is no syntax tree here
// -- a grammar/parser is explicitly out of scope for this module; the
// tree field of the resulting TextStructure stays nil until a caller's
// own parser assigns one via TextStructure.SetTree.
//
// Grounded on verible's common/analysis/file-analyzer.{h,cc}, which ties
// the lexer, rewriter and text structure together the same way before
// lint/formatting consume the result.
type Analysis struct {
	Filename  string
	Structure *text.TextStructure
	Rejected  []token.Token
}

// LexError is a positional lexical error. Error() renders as
// "file:line:col: message".
type LexError struct {
	Filename     string
	Line, Column int
	Message      string
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line+1, e.Column+1, e.Message)
}

// Analyze lexes and context-rewrites contents, builds the TextStructure
// and collects any lexical error tokens as rejected tokens.
func Analyze(filename, contents string) (*Analysis, []error) {
	raw := lexer.Lex(contents)
	toks := lexer.Rewrite(raw, contents)

	buf := text.NewBuffer(contents)
	structure := text.New(buf, toks)

	var errs []error
	var rejected []token.Token
	for _, t := range toks {
		if t.IsError() {
			rejected = append(rejected, t)
			line, col := structure.LineColumn(t.Start)
			errs = append(errs, LexError{Filename: filename, Line: line, Column: col, Message: lexErrorMessage(t.Kind)})
		}
	}

	return &Analysis{Filename: filename, Structure: structure, Rejected: rejected}, errs
}

func lexErrorMessage(k token.Kind) string {
	switch k {
	case token.UnterminatedStringError:
		return "unterminated string literal"
	case token.UnterminatedMacroTextError:
		return "unterminated macro text"
	case token.NonUTF8Error:
		return "invalid UTF-8 byte sequence"
	case token.Unrecognized:
		return "unrecognized character"
	default:
		return "lexical error"
	}
}
