package sat

import "github.com/rsms/sat/intern"

// Status reports what a Step call produced (spec §5 "Status").
type Status int

const (
	// StatusError means parsing cannot continue; Err returns why.
	StatusError Status = iota
	// StatusResult means at least one expression is ready; drain with
	// NextResult before calling Step again.
	StatusResult
	// StatusMore means the parser consumed everything committed so
	// far and needs another AcquireBuffer/Commit round.
	StatusMore
	// StatusDone means there is nothing left to parse.
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "ERROR"
	case StatusResult:
		return "RESULT"
	case StatusMore:
		return "MORE"
	case StatusDone:
		return "DONE"
	default:
		return "UNDEFINED"
	}
}

// readState is the tokenizer's state (spec §4.6 "Read states").
type readState int

const (
	stROOT readState = iota
	stCOMMENT
	stLINEBREAK
	stNAME
	stQUALNAME
	stASSIGNMENT
)

type token int

const (
	tokComment token = iota
	tokName
	tokQualname
	tokAssignment
)

// endOfInputMarker is the sentinel symbol that manually truncates input
// (spec §9 "__END__ marker"): once it is read as a name, the parser
// treats input as ended and discards every byte committed after it.
const endOfInputMarker = "__END__"

// Parser incrementally converts a pushed byte stream into a sequence of
// top-level expressions (spec §1). It never blocks on I/O: the caller
// drives it by alternating AcquireBuffer/Commit (supplying bytes) with
// Step/NextResult (draining parsed expressions).
//
// Grounded on _examples/original_source/src/sat.cc's Parser struct. The
// goto-based state machine (SWITCH_TO/TRANSITION_TO macros jumping back
// to one read_loop label) becomes a for loop around a state switch,
// following the teacher's own base_parser.go cursor-driven loop style
// rather than literal gotos, which Go idiom avoids for anything but
// tight error-recovery jumps.
type Parser struct {
	cfg Config
	buf buffer

	line       int // current line, 0-based
	prevIndent int // -1 sentinel: no line seen yet
	currIndent int
	indentChar byte

	state   readState
	stack   []*scope
	results []*Expr

	strings *intern.WeakSet
	rootNS  *namespace

	err *ParseError
}

// New creates a Parser ready to accept input.
func New(opts ...Option) *Parser {
	cfg := newConfig(opts)

	p := &Parser{
		cfg:        cfg,
		prevIndent: -1,
		state:      stLINEBREAK,
	}
	p.buf = *newBuffer(cfg.PageSize)

	qualifiedName := cfg.RootNamespace + ":"
	p.rootNS = newNamespace(qualifiedName)

	p.strings = intern.NewWeakSet(
		intern.NewConst(cfg.RootNamespace),
		intern.NewConst(qualifiedName),
	)

	root := newScope(BLOCK, 0, p.rootNS)
	p.stack = []*scope{root}
	return p
}

// AcquireBuffer returns the writable region past all previously
// committed input, along with its length (the caller's write headroom
// before the next Commit). Growing the buffer if necessary is the
// parser's job, not the caller's (spec §4.6 "Buffer").
func (p *Parser) AcquireBuffer() (buf []byte, headroom int) {
	return p.buf.acquireBuffer()
}

// Commit tells the parser that n bytes were written into the slice
// AcquireBuffer most recently returned, making them visible to Step.
// endOfInput marks that no further Commit calls will follow.
func (p *Parser) Commit(n int, endOfInput bool) {
	p.buf.commit(n, endOfInput)
}

// Err returns the error that caused the most recent Step to return
// StatusError, or nil.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// NextResult pops one completed top-level expression from the FIFO.
// Call it in a loop after StatusResult until it returns false.
func (p *Parser) NextResult() (*Expr, bool) {
	if len(p.results) == 0 {
		return nil, false
	}
	e := p.results[0]
	p.results = p.results[1:]
	return e, true
}

func (p *Parser) top() *scope { return p.stack[len(p.stack)-1] }

func (p *Parser) scopeAt(depthFromTop int) *scope {
	return p.stack[len(p.stack)-1-depthFromTop]
}

func (p *Parser) isRootScope(s *scope) bool { return s == p.stack[0] }

// currentNS returns the namespace new scopes and assignments should
// use: the top frame's namespace, which every enterScope call
// inherited from whatever was on top at the time. Every scope shares
// the root's namespace today (nothing here ever diverges it), but a
// future import/sub-namespace feature would only need to give some
// scope a different ns for this to matter.
func (p *Parser) currentNS() *namespace {
	return p.top().ns
}

func (p *Parser) pos() Position {
	return Position{Line: p.line + 1, Column: p.buf.column()}
}

func (p *Parser) span() Span {
	pos := p.pos()
	return Span{Start: pos, End: pos, Text: p.buf.currentLineText()}
}

// fail records err as the reason a Step call is about to return
// StatusError. It always returns false so call sites read as
// `if !p.parseErrorf(...) { return StatusError }`.
func (p *Parser) fail(kind ErrorKind, message string) bool {
	p.err = &ParseError{Kind: kind, Message: message, Pos: p.pos(), Span: p.span()}
	return false
}

func (p *Parser) parseErrorf(message string) bool  { return p.fail(ErrParse, message) }
func (p *Parser) syntaxErrorf(message string) bool { return p.fail(ErrSyntax, message) }
func (p *Parser) indentErrorf(message string) bool { return p.fail(ErrIndentation, message) }

// scopeDescr names a scope kind the way a dedent/close mismatch error
// should refer to it, mirroring sat.cc's report_error lambda.
func scopeDescr(t Type) string {
	switch t {
	case LIST:
		return "linebreak to same indentation level or ';'"
	case BLOCK:
		return "block dedentation"
	case INLINE_BLOCK:
		return "'}'"
	case GROUP:
		return "')'"
	default:
		return t.String()
	}
}

// enterScope pushes a new frame of the given kind at the current
// indentation level, inheriting the enclosing frame's namespace.
func (p *Parser) enterScope(kind Type) {
	p.stack = append(p.stack, newScope(kind, p.currIndent, p.currentNS()))
	if p.cfg.Trace != nil {
		p.cfg.Trace("%*senter %s @%d", 2*(len(p.stack)-1), "", kind, p.currIndent)
	}
}

// popScope removes the top frame, attaching its accumulated expression
// list to the new top's list (or, if the new top is the root, to the
// result FIFO).
func (p *Parser) popScope() {
	prev := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if p.cfg.Trace != nil {
		p.cfg.Trace("%*sleave %s @%d", 2*len(p.stack), "", prev.kind, prev.indentLevel)
	}

	if list := prev.exprList(); list != nil {
		if p.isRootScope(p.top()) {
			p.results = append(p.results, list)
		} else {
			p.top().appendExpr(list)
		}
	}
}

// leaveScope closes the top frame, which must be of type want. Closing
// a BLOCK may cascade through several nested BLOCK/LIST pairs in one
// call, continuing until the indentation level the caller already set
// in currIndent is reached, or landing directly inside a GROUP.
//
// Grounded on sat.cc's leave_scope, whose do/while loop pops once
// unconditionally and then keeps popping (without re-checking frame
// type) as long as the running indentation comparison says to — a
// multi-level dedent collapses several frames in one leaveScope(BLOCK)
// call.
func (p *Parser) leaveScope(want Type) bool {
	if p.top().kind != want {
		return p.indentErrorf("Unexpected " + scopeDescr(want) + " when expecting " + scopeDescr(p.top().kind) + ".")
	}

	for {
		p.popScope()
		if want != BLOCK {
			return true
		}

		top := p.top()
		if top.kind == GROUP {
			return true
		}
		if p.currIndent > top.indentLevel {
			break
		}
		if p.currIndent == top.indentLevel {
			return true
		}
		// p.currIndent < top.indentLevel: keep collapsing frames.
	}

	return p.indentErrorf("unindent does not match any outer indentation level")
}

// leaveBlockScopeFromEndParen handles the special case of a ')' closing
// a BLOCK scope that was entered without an intervening linebreak back
// to the enclosing GROUP's own indentation — e.g.:
//
//	a
//	  (b
//	   c)
//
// Grounded on sat.cc's LEAVE_BLOCK_SCOPE_FROM_ENDPAREN macro.
func (p *Parser) leaveBlockScopeFromEndParen() bool {
	if len(p.stack) < 3 {
		return p.syntaxErrorf("Unexpected ')'")
	}
	p.currIndent = p.scopeAt(2).indentLevel
	if !p.leaveScope(LIST) {
		return false
	}
	if !p.leaveScope(BLOCK) {
		return false
	}
	p.prevIndent = p.currIndent
	return true
}

func (p *Parser) enterLinebreak() {
	p.currIndent = 0
	p.line++
	p.buf.lineStart = p.buf.pos + 1 // +1: the '\n' itself hasn't been consumed yet
}

func (p *Parser) actOnSpace(b byte) bool {
	if p.indentChar == 0 {
		p.indentChar = b
	} else if p.indentChar != b {
		return p.indentErrorf("Mixed line indentation")
	}
	p.currIndent++
	return true
}

// handleIndent runs when LINEBREAK state reaches the first non-space,
// non-control byte of a line: it compares currIndent against
// prevIndent and opens/closes scope frames accordingly (spec §4.5
// "Indent handler").
func (p *Parser) handleIndent() bool {
	if p.cfg.Trace != nil {
		p.cfg.Trace("indent: prev=%d curr=%d", p.prevIndent, p.currIndent)
	}
	switch {
	case p.prevIndent == -1:
		// First non-blank line of input (a comment line counts).
		if p.currIndent != 0 {
			return p.indentErrorf("Unexpected indent")
		}
		p.enterScope(LIST)

	case p.prevIndent < p.currIndent:
		p.enterScope(BLOCK)
		p.enterScope(LIST)

	case p.prevIndent > p.currIndent:
		if !p.leaveScope(LIST) {
			return false
		}
		if !p.leaveScope(BLOCK) {
			return false
		}
		if !p.leaveScope(LIST) {
			return false
		}
		p.enterScope(LIST)

	default:
		// Same indentation: a new sibling line.
		if !p.leaveScope(LIST) {
			return false
		}
		p.enterScope(LIST)
	}

	p.prevIndent = p.currIndent
	return true
}

// onToken finishes the token delimited by buf.tokenStart:tokenEnd and
// appends the resulting expression to the current scope.
func (p *Parser) onToken(t token) bool {
	text := p.buf.tokenText()

	var typ Type
	switch t {
	case tokComment:
		typ = COMMENT
	case tokAssignment:
		text = text[:len(text)-1] // drop the trailing ':'
		typ = ASSIGNMENT
	default:
		typ = SYM
	}

	var str *intern.String
	if t == tokComment {
		str = intern.NewOwned(text) // comment text is never looked up by value
	} else {
		str = p.strings.Get(text)
	}

	expr := NewStrExpr(typ, str)
	p.top().appendExpr(expr) // records the name in the scope's namespace for ASSIGNMENT
	if p.cfg.Trace != nil {
		p.cfg.Trace("token %s %q", typ, str.CStr())
	}
	return true
}

func isCtrl(b byte) bool {
	return b < 0x9 || b == 0xb || b == 0xc || (b > 0xd && b < 0x20)
}

func isNameByte(b byte) bool {
	return b > 0x20 && b != '\\' &&
		!(b > 0x7e && b < 0xa1) &&
		b != '(' && b != ')' &&
		b != '{' && b != '}' &&
		b != ';'
}

// Step runs the tokenizer until it has a result to report, needs more
// input, hits an error, or reaches the end of input.
func (p *Parser) Step() Status {
	for !p.buf.atEnd() {
		switch p.state {

		case stROOT:
			if len(p.results) > 0 {
				return StatusResult
			}
			b := p.buf.current()
			switch b {
			case '\n':
				p.enterLinebreak()
				p.buf.consume()
				p.state = stLINEBREAK

			case '#':
				p.buf.consume()
				p.buf.setTokenStart()
				p.state = stCOMMENT

			case '(':
				p.enterScope(GROUP)
				p.enterScope(LIST)
				p.buf.consume()

			case ')':
				if p.scopeAt(1).kind == BLOCK {
					// Closing a BLOCK entered inside a GROUP without a
					// trailing linebreak back to its own indentation.
					if !p.leaveBlockScopeFromEndParen() {
						return StatusError
					}
				}
				if !p.leaveScope(LIST) {
					return StatusError
				}
				if !p.leaveScope(GROUP) {
					return StatusError
				}
				p.buf.consume()

			case '{':
				p.enterScope(INLINE_BLOCK)
				p.enterScope(LIST)
				p.buf.consume()

			case '}':
				if !p.leaveScope(LIST) {
					return StatusError
				}
				if !p.leaveScope(INLINE_BLOCK) {
					return StatusError
				}
				p.buf.consume()

			case ';':
				if !p.leaveScope(LIST) {
					return StatusError
				}
				p.enterScope(LIST)
				p.buf.consume()

			default:
				if b < 0x21 {
					p.buf.consume()
					break
				}
				if isNameByte(b) {
					p.buf.setTokenStart()
					p.buf.consume()
					p.state = stNAME
					break
				}
				p.parseErrorf("Unexpected input byte")
				return StatusError
			}

		case stNAME:
			b := p.buf.current()
			switch {
			case !isNameByte(b):
				p.buf.setTokenEnd()
				if p.buf.tokenText() == endOfInputMarker {
					p.buf.isEnd = true
					p.buf.data = p.buf.data[:p.buf.pos]
					break
				}
				if !p.onToken(tokName) {
					return StatusError
				}
				p.state = stROOT
			case b == ':':
				p.buf.consume()
				p.state = stASSIGNMENT
			default:
				p.buf.consume()
			}

		case stASSIGNMENT:
			b := p.buf.current()
			switch {
			case !isNameByte(b):
				p.buf.setTokenEnd()
				if !p.onToken(tokAssignment) {
					return StatusError
				}
				p.state = stROOT
			case b == ':':
				p.syntaxErrorf("Unexpected extra ':'")
				return StatusError
			default:
				p.buf.consume()
				p.state = stQUALNAME
			}

		case stQUALNAME:
			b := p.buf.current()
			switch {
			case !isNameByte(b):
				p.buf.setTokenEnd()
				if !p.onToken(tokQualname) {
					return StatusError
				}
				p.state = stROOT
			case b == ':':
				p.buf.consume()
				p.state = stASSIGNMENT
			default:
				p.buf.consume()
			}

		case stLINEBREAK:
			b := p.buf.current()
			switch b {
			case '\n':
				p.enterLinebreak()
				p.buf.consume()

			case ' ', '\t', 0xa0:
				if !p.actOnSpace(b) {
					return StatusError
				}
				p.buf.consume()

			case ')':
				if !p.leaveBlockScopeFromEndParen() {
					return StatusError
				}
				p.state = stROOT // reprocess this same ')' at ROOT, unconsumed

			default:
				if isCtrl(b) {
					p.buf.consume()
					break
				}
				p.buf.setTokenEnd()
				if !p.handleIndent() {
					return StatusError
				}
				p.state = stROOT // reprocess this same byte at ROOT, unconsumed
			}

		case stCOMMENT:
			b := p.buf.current()
			if b == '\n' {
				p.buf.setTokenEnd()
				if !p.onToken(tokComment) {
					return StatusError
				}
				p.state = stROOT
			} else {
				p.buf.consume()
			}
		}
	}

	if p.buf.isEnd {
		if !p.isRootScope(p.top()) {
			// The source ends inside an open scope. A scope opened by
			// indentation alone (BLOCK) closes the same way a dedent to
			// level 0 would: leaveScope(BLOCK) already cascades through
			// as many nested BLOCK/LIST pairs as are open. A scope
			// opened by an explicit bracket (GROUP, INLINE_BLOCK) left
			// unclosed is a genuine Parse error (spec §7).
			p.currIndent = 0
			if p.prevIndent != -1 {
				if !p.leaveScope(LIST) {
					return StatusError
				}
			}
			if !p.isRootScope(p.top()) {
				if p.top().kind != BLOCK {
					p.parseErrorf("Unexpected end of input: unclosed " + scopeDescr(p.top().kind))
					return StatusError
				}
				if !p.leaveScope(BLOCK) {
					return StatusError
				}
				if !p.isRootScope(p.top()) {
					if !p.leaveScope(LIST) {
						return StatusError
					}
				}
			}
			if !p.isRootScope(p.top()) {
				p.parseErrorf("Unexpected end of input")
				return StatusError
			}
		}
		if len(p.results) == 0 {
			return StatusDone
		}
		return StatusResult
	}

	return StatusMore
}
