// Package token defines the lexical categories shared by the lexer, the
// context rewriter and the formatter. A Token never owns its text; it
// carries byte offsets into whatever buffer produced it.
package token

// Kind identifies the category of a Token.
type Kind int

const (
	Invalid Kind = iota
	EOF

	Whitespace
	LineComment
	BlockComment

	Identifier
	Keyword
	Number
	StringLiteral

	// Preprocessor tokens. The lexer emits PPDirective or MacroRef for the
	// backtick name and lexes the rest of the line as ordinary tokens; it
	// never emits MacroText, and Rewrite does not produce DefineBody.
	PPDirective
	MacroRef
	MacroText

	// Structural punctuation. Kept as distinct kinds (rather than one
	// generic "punctuation" bucket plus text comparison) because the
	// spacing annotator and the context rewriter both dispatch on these
	// directly and constantly.
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Dot
	Colon
	Semicolon

	// Arrow and NonBlockingArrow are raw, ambiguous tokens. The lexer
	// emits only these two; the context rewriter is the sole producer of
	// LogicalImplies / ConstraintImplies / EventTrigger /
	// NonBlockingEventTrigger.
	Arrow
	NonBlockingArrow

	ShiftLeft  // <<
	ShiftRight // >>

	// UnaryOrBinary covers '-', '&', '|', '^', '~': operators whose
	// unary/binary reading is context-dependent. The kind does
	// not change; the annotator disambiguates by looking back at the
	// preceding tokens.
	UnaryOrBinary

	// Operator is the catch-all for every other SystemVerilog operator
	// punctuation (+, *, /, %, ==, !=, &&, ||, etc). The exact operator
	// is recovered from the token text when needed.
	Operator

	// Rewrite targets. The lexer must never emit these; only the
	// context rewriter (lexer.Rewrite) may.
	LogicalImplies
	ConstraintImplies
	EventTrigger
	NonBlockingEventTrigger
	AssertionVarsSemicolon
	MacroCallCloseEOL
	DefineBody

	// Lexical error tokens.
	UnterminatedStringError
	UnterminatedMacroTextError
	NonUTF8Error
	Unrecognized
)

func (k Kind) String() string { return kindDescription[k] }
func (k Kind) GoString() string { return kindDescription[k] }

func init() {
	for k := Invalid + 1; k <= Unrecognized; k++ {
		if kindDescription[k] == "" {
			panic("token: kindDescription is missing an entry")
		}
	}
}

var kindDescription = map[Kind]string{
	Invalid: "Invalid",
	EOF:     "EOF",

	Whitespace:   "Whitespace",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",

	Identifier:    "Identifier",
	Keyword:       "Keyword",
	Number:        "Number",
	StringLiteral: "StringLiteral",

	PPDirective: "PPDirective",
	MacroRef:    "MacroRef",
	MacroText:   "MacroText",

	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Colon:        "Colon",
	Semicolon:    "Semicolon",

	Arrow:            "Arrow",
	NonBlockingArrow: "NonBlockingArrow",

	ShiftLeft:  "ShiftLeft",
	ShiftRight: "ShiftRight",

	UnaryOrBinary: "UnaryOrBinary",
	Operator:      "Operator",

	LogicalImplies:          "LogicalImplies",
	ConstraintImplies:       "ConstraintImplies",
	EventTrigger:            "EventTrigger",
	NonBlockingEventTrigger: "NonBlockingEventTrigger",
	AssertionVarsSemicolon:  "AssertionVarsSemicolon",
	MacroCallCloseEOL:       "MacroCallCloseEOL",
	DefineBody:              "DefineBody",

	UnterminatedStringError:    "UnterminatedStringError",
	UnterminatedMacroTextError: "UnterminatedMacroTextError",
	NonUTF8Error:               "NonUTF8Error",
	Unrecognized:               "Unrecognized",
}

// Token is a single lexical token: a kind plus the half-open byte range
// [Start, End) of the buffer that owns it. Token never stores a copy of
// the text or a pointer into it — see text.Buffer for why.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Len reports the byte length of the token's text.
func (t Token) Len() int { return t.End - t.Start }

// Empty reports whether the token's text is empty, which is only
// expected for the terminating EOF token.
func (t Token) Empty() bool { return t.Start == t.End }

// categories used by filtering predicates.
func (t Token) IsWhitespace() bool {
	return t.Kind == Whitespace
}

func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

func (t Token) IsTrivia() bool {
	return t.IsWhitespace() || t.IsComment()
}

func (t Token) IsError() bool {
	switch t.Kind {
	case UnterminatedStringError, UnterminatedMacroTextError, NonUTF8Error, Unrecognized:
		return true
	default:
		return false
	}
}
