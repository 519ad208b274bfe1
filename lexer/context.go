package lexer

import (
	"strings"

	"github.com/sv-tools/svfmt/token"
)

// Rewrite walks the raw token sequence once, tracking a running lexical
// context, and rewrites the small set of ambiguous tokens — `->`,
// `->>`, and the closing `;` of a property's variable-declaration region
// — to the specific enum their context demands. The lexer must never
// have produced these rewrite-target kinds itself; Rewrite is their
// only source.
//
// Rewrite operates on a copy of toks and returns it; src is the buffer
// the offsets in toks refer to (needed to compare keyword spellings).
func Rewrite(toks []token.Token, src string) []token.Token {
	out := append([]token.Token(nil), toks...)
	r := &rewriter{toks: out, src: src}
	r.run()
	return out
}

// declFrame tracks one function/task/module declaration on the way from
// its opening keyword to its own `end*` keyword. headerClosed flips true
// at the `;` that ends the header, which is also the point the matching
// "_body" flag turns on.
type declFrame struct {
	kind         string // "function", "task", "module"
	endKeyword   string
	headerClosed bool
}

type constraintFrame struct {
	statement bool
}

type propertyFrame struct {
	headerClosed  bool // whether the property's own header ';' has been seen
	declSemicolon int  // index into r.toks of the last ';' seen since headerClosed, or -1
}

type rewriter struct {
	toks []token.Token
	src  string

	declStack []declFrame

	inFunctionBody bool
	inTaskBody     bool
	inModuleBody   bool

	inInitialAlwaysFinal bool
	iafEnteredBlock      bool
	iafBlockDepth        int

	inExternDeclaration bool

	atStatementStart bool
	generalDepth     int // unmatched ( or [ since the last statement boundary, outside any constraint block

	// randomize-call tracker: inactive -> armed (saw `randomize`) ->
	// in-constraint-block (saw `with` then `{`, with an optional
	// "(variables)" list in between).
	randomizeArmed    bool
	randomizeSawWith  bool
	inRandomizeParens int

	constraintStack         []constraintFrame
	expectStatementBrace    bool // whether the next `{` opens a new statement-position frame
	closedFlowControlHeader bool // an if(...)/foreach(...) header inside the constraint block just closed

	propertyStack []propertyFrame
}

func (r *rewriter) text(i int) string {
	t := r.toks[i]
	if t.Start < 0 || t.End > len(r.src) || t.Start > t.End {
		return ""
	}
	return r.src[t.Start:t.End]
}

func (r *rewriter) run() {
	r.atStatementStart = true
	for i := range r.toks {
		r.step(i)
	}
}

func (r *rewriter) inConstraintBlock() bool { return len(r.constraintStack) > 0 }

func (r *rewriter) step(i int) {
	t := r.toks[i]
	if t.IsTrivia() || t.Kind == token.EOF {
		return
	}

	switch t.Kind {
	case token.Arrow, token.NonBlockingArrow:
		r.rewriteArrow(i)
		r.atStatementStart = false
	case token.Semicolon:
		r.handleSemicolon(i)
	case token.LeftParen, token.LeftBracket:
		r.handleOpen(i)
		r.atStatementStart = false
	case token.RightParen, token.RightBracket:
		r.handleClose(i)
		r.atStatementStart = false
	case token.LeftBrace:
		r.handleOpenBrace(i)
		r.atStatementStart = false
	case token.RightBrace:
		r.handleCloseBrace(i)
		r.atStatementStart = false
	case token.Keyword:
		r.handleKeyword(i)
	default:
		r.atStatementStart = false
	}
}

func (r *rewriter) rewriteArrow(i int) {
	nonBlocking := r.toks[i].Kind == token.NonBlockingArrow

	if r.inConstraintBlock() {
		top := r.constraintStack[len(r.constraintStack)-1]
		if top.statement && !nonBlocking {
			r.toks[i].Kind = token.ConstraintImplies
			r.expectStatementBrace = true
		} else {
			r.toks[i].Kind = token.LogicalImplies
		}
		return
	}

	// An arrow right after an if/for/foreach/while header begins its body statement.
	atStart, j, depth := r.atStatementStart, i-1, 0
	for ; j >= 0 && (depth > 0 || r.toks[j].IsTrivia() || r.toks[j].Kind == token.RightParen); j-- {
		switch r.toks[j].Kind {
		case token.RightParen:
			depth++
		case token.LeftParen:
			depth--
		}
	}
	if j >= 0 && r.toks[j].Kind == token.Keyword {
		switch strings.ToLower(r.text(j)) {
		case "if", "for", "foreach", "while":
			atStart = true
		}
	}

	if r.generalDepth == 0 && atStart && (r.inFunctionBody || r.inTaskBody || r.inInitialAlwaysFinal) {
		if nonBlocking {
			r.toks[i].Kind = token.NonBlockingEventTrigger
		} else {
			r.toks[i].Kind = token.EventTrigger
		}
		return
	}

	r.toks[i].Kind = token.LogicalImplies
}

func (r *rewriter) handleOpen(i int) {
	if r.inConstraintBlock() {
		r.constraintStack = append(r.constraintStack, constraintFrame{statement: false})
		return
	}
	if r.randomizeArmed && r.randomizeSawWith {
		r.inRandomizeParens++
		return
	}
	r.generalDepth++
}

func (r *rewriter) handleClose(i int) {
	if r.inConstraintBlock() {
		if len(r.constraintStack) > 0 {
			r.constraintStack = r.constraintStack[:len(r.constraintStack)-1]
		}
		if r.closedFlowControlHeader {
			r.expectStatementBrace = true
			r.closedFlowControlHeader = false
		}
		return
	}
	if r.inRandomizeParens > 0 {
		r.inRandomizeParens--
		return
	}
	if r.generalDepth > 0 {
		r.generalDepth--
	}
}

func (r *rewriter) handleOpenBrace(i int) {
	if r.randomizeArmed && r.randomizeSawWith && r.inRandomizeParens == 0 {
		r.randomizeArmed = false
		r.randomizeSawWith = false
		r.constraintStack = []constraintFrame{{statement: true}}
		r.expectStatementBrace = false
		return
	}
	if r.inConstraintBlock() {
		stmt := r.expectStatementBrace
		r.expectStatementBrace = false
		r.constraintStack = append(r.constraintStack, constraintFrame{statement: stmt})
	}
}

func (r *rewriter) handleCloseBrace(i int) {
	if r.inConstraintBlock() {
		r.constraintStack = r.constraintStack[:len(r.constraintStack)-1]
	}
}

func (r *rewriter) handleSemicolon(i int) {
	if len(r.propertyStack) > 0 {
		top := len(r.propertyStack) - 1
		if !r.propertyStack[top].headerClosed {
			r.propertyStack[top].headerClosed = true
		} else {
			r.propertyStack[top].declSemicolon = i
		}
	}
	if r.inConstraintBlock() {
		top := len(r.constraintStack) - 1
		r.constraintStack[top].statement = true
	}
	if r.inExternDeclaration {
		r.inExternDeclaration = false
	}
	if n := len(r.declStack); n > 0 {
		top := &r.declStack[n-1]
		if !top.headerClosed {
			top.headerClosed = true
			switch top.kind {
			case "function":
				r.inFunctionBody = true
			case "task":
				r.inTaskBody = true
			case "module":
				r.inModuleBody = true
			}
		}
	}
	if r.inInitialAlwaysFinal && !r.iafEnteredBlock {
		r.inInitialAlwaysFinal = false
	}
	r.atStatementStart = true
}

func (r *rewriter) handleKeyword(i int) {
	kw := strings.ToLower(r.text(i))
	switch kw {
	case "extern":
		r.inExternDeclaration = true
	case "function":
		if !r.inExternDeclaration {
			r.declStack = append(r.declStack, declFrame{kind: "function", endKeyword: "endfunction"})
		}
	case "task":
		if !r.inExternDeclaration {
			r.declStack = append(r.declStack, declFrame{kind: "task", endKeyword: "endtask"})
		}
	case "module":
		if !r.inExternDeclaration {
			r.declStack = append(r.declStack, declFrame{kind: "module", endKeyword: "endmodule"})
		}
	case "endfunction":
		r.popDecl("endfunction")
		r.inFunctionBody = false
	case "endtask":
		r.popDecl("endtask")
		r.inTaskBody = false
	case "endmodule":
		r.popDecl("endmodule")
		r.inModuleBody = false
	case "initial", "always", "always_comb", "always_ff", "always_latch", "final":
		r.inInitialAlwaysFinal = true
		r.iafEnteredBlock = false
		r.iafBlockDepth = 0
		// the token right after initial/always/final may itself begin the
		// construct's single statement (no intervening begin), so leave
		// atStatementStart exactly as it was instead of forcing it false.
		return
	case "begin", "fork":
		if r.inInitialAlwaysFinal {
			r.iafEnteredBlock = true
			r.iafBlockDepth++
		}
		r.atStatementStart = true
		return
	case "end", "join", "join_any", "join_none":
		if r.inInitialAlwaysFinal && r.iafEnteredBlock {
			r.iafBlockDepth--
			if r.iafBlockDepth <= 0 {
				r.inInitialAlwaysFinal = false
				r.iafEnteredBlock = false
			}
		}
		r.atStatementStart = true
		return
	case "if", "for", "foreach", "while":
		if r.inConstraintBlock() {
			r.closedFlowControlHeader = true
		}
	case "else":
		if r.inConstraintBlock() {
			r.expectStatementBrace = true
		}
	case "property":
		r.propertyStack = append(r.propertyStack, propertyFrame{headerClosed: false, declSemicolon: -1})
	case "endproperty":
		if len(r.propertyStack) > 0 {
			top := r.propertyStack[len(r.propertyStack)-1]
			r.propertyStack = r.propertyStack[:len(r.propertyStack)-1]
			if top.declSemicolon >= 0 {
				r.toks[top.declSemicolon].Kind = token.AssertionVarsSemicolon
			}
		}
	case "randomize":
		r.randomizeArmed = true
		r.randomizeSawWith = false
	case "with":
		if r.randomizeArmed {
			r.randomizeSawWith = true
		}
	}
	r.atStatementStart = false
}

func (r *rewriter) popDecl(endKw string) {
	for len(r.declStack) > 0 {
		top := r.declStack[len(r.declStack)-1]
		r.declStack = r.declStack[:len(r.declStack)-1]
		if top.endKeyword == endKw {
			return
		}
	}
}
