package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sv-tools/svfmt/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func nonTrivia(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if t.IsTrivia() {
			continue
		}
		out = append(out, t)
	}
	return out
}

func TestLexBasicPunctuation(t *testing.T) {
	toks := Lex("a.b,c;")
	got := kinds(nonTrivia(toks))
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Dot, token.Identifier, token.Comma,
		token.Identifier, token.Semicolon, token.EOF,
	}, got)
}

func TestLexArrowsAreRaw(t *testing.T) {
	toks := nonTrivia(Lex("a -> b ->> c"))
	assert.Equal(t, token.Arrow, toks[1].Kind)
	assert.Equal(t, token.NonBlockingArrow, toks[3].Kind)
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	toks := nonTrivia(Lex("module foo;"))
	assert.Equal(t, token.Keyword, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
}

func TestLexNumber(t *testing.T) {
	toks := nonTrivia(Lex("8'hFF"))
	require := assert.New(t)
	require.Equal(token.Number, toks[0].Kind)
}

func TestLexStringLiteral(t *testing.T) {
	toks := nonTrivia(Lex(`"hello \" world"`))
	assert.Equal(t, token.StringLiteral, toks[0].Kind)
	assert.Equal(t, len(`"hello \" world"`), toks[0].Len())
}

func TestLexUnterminatedString(t *testing.T) {
	toks := nonTrivia(Lex("\"abc\nend"))
	assert.Equal(t, token.UnterminatedStringError, toks[0].Kind)
}

func TestLexLineComment(t *testing.T) {
	toks := nonTrivia(Lex("// a comment\nx"))
	assert.Equal(t, token.LineComment, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
}

func TestLexBlockComment(t *testing.T) {
	toks := nonTrivia(Lex("/* a\nb */x"))
	assert.Equal(t, token.BlockComment, toks[0].Kind)
}

func TestLexPreprocessorDirectiveVsMacroRef(t *testing.T) {
	toks := nonTrivia(Lex("`define FOO `FOO"))
	assert.Equal(t, token.PPDirective, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
	assert.Equal(t, token.MacroRef, toks[2].Kind)
}

func TestLexNonUTF8Byte(t *testing.T) {
	toks := nonTrivia(Lex("a\xffb"))
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, token.NonUTF8Error, toks[1].Kind)
	assert.Equal(t, token.Identifier, toks[2].Kind)
}

func TestLexEveryTokenCoversContiguousInput(t *testing.T) {
	src := "module m; initial begin x <= y -> z; end endmodule"
	toks := Lex(src)
	pos := 0
	for _, tok := range toks {
		assert.Equal(t, pos, tok.Start)
		pos = tok.End
	}
	assert.Equal(t, len(src), pos)
}

func TestScanMacroBodyHonorsLineContinuation(t *testing.T) {
	src := "a + \\\nb\nafter"
	end := ScanMacroBody(src, 0)
	assert.Equal(t, "a + \\\nb", src[:end])
}
