package lexer

import "github.com/arborjs/jsparse/internal/arena"

// handler scans one token starting at l.pos (which equals the start
// position passed in) and returns its TokenType, leaving l.pos at the byte
// following the lexeme. The 256-entry dispatch table below maps the first
// raw byte of a token to the handler responsible for it.
type handler func(l *Lexer, start int) TokenType

var dispatch [256]handler

func init() {
	for b := 0; b < 256; b++ {
		switch {
		case b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'):
			dispatch[b] = (*Lexer).readIdentifier
		case b >= '1' && b <= '9':
			dispatch[b] = (*Lexer).readNumber
		case b == '0':
			dispatch[b] = (*Lexer).readZeroLeadingNumber
		case b >= 0x80:
			dispatch[b] = (*Lexer).readIdentifier // permissive non-ASCII stub
		}
	}

	dispatch['"'] = (*Lexer).readString
	dispatch['\''] = (*Lexer).readString
	dispatch['`'] = (*Lexer).readTemplateFromBacktick

	dispatch['('] = single(LParen)
	dispatch[')'] = single(RParen)
	dispatch['['] = single(LBrack)
	dispatch[']'] = single(RBrack)
	dispatch['{'] = single(LBrace)
	dispatch['}'] = single(RBrace)
	dispatch[','] = single(Comma)
	dispatch[';'] = single(Semicolon)
	dispatch[':'] = single(Colon)
	dispatch['~'] = single(BitNot)

	dispatch['.'] = (*Lexer).readPeriod
	dispatch['?'] = (*Lexer).readQuestion
	dispatch['='] = (*Lexer).readEquals
	dispatch['!'] = (*Lexer).readBang
	dispatch['<'] = (*Lexer).readLt
	dispatch['>'] = (*Lexer).readGt
	dispatch['+'] = (*Lexer).readPlus
	dispatch['-'] = (*Lexer).readMinus
	dispatch['*'] = (*Lexer).readStar
	dispatch['/'] = (*Lexer).readSlash
	dispatch['%'] = (*Lexer).readPercent
	dispatch['&'] = (*Lexer).readAmp
	dispatch['|'] = (*Lexer).readPipe
	dispatch['^'] = (*Lexer).readCaret
}

func single(t TokenType) handler {
	return func(l *Lexer, start int) TokenType {
		l.pos++
		return t
	}
}

// Lexer tokenizes JavaScript source code, one call to Advance at a time.
// Besides the current token and the byte cursor it tracks the line count,
// the start of the last slash token, the bounds of the last quasi, and the
// first lexical error; the arena owns the null-terminated source buffer the
// cursor walks.
type Lexer struct {
	arena *arena.Arena
	src   []byte
	pos   int
	line  int

	tok Token

	// prevEndLine is the source line the previous token ended on, recorded
	// by Advance. Whether the upcoming token crosses a newline is decided by
	// skipWhitespaceAndComments, not from this field.
	prevEndLine int

	// lastSlashStart is where ReadRegularExpression rewinds to; it is
	// always the start of the `/`/`/=` token just produced.
	lastSlashStart int

	// quasiStart/quasiEnd bound the most recently scanned template quasi
	// segment, exclusive of its surrounding backtick/`${`/`}` delimiters.
	quasiStart int
	quasiEnd   int

	firstError *Token
}

// New scans the null-terminated source copy that arena.New placed in a,
// positions the lexer at offset 0, and pre-loads the first token.
func New(a *arena.Arena) *Lexer {
	l := &Lexer{
		arena:          a,
		src:            a.Source(),
		line:           1,
		lastSlashStart: -1,
	}
	l.tok = l.scan()
	return l
}

// Token returns the current token. It is never "none": lexical failures
// surface as UnexpectedToken / UnexpectedEndOfProgram.
func (l *Lexer) Token() Token { return l.tok }

// Start returns the current token's start offset.
func (l *Lexer) Start() int { return l.tok.Start }

// End returns the current token's end offset.
func (l *Lexer) End() int { return l.tok.End }

// Loc returns the current token's (start, end) pair.
func (l *Lexer) Loc() (int, int) { return l.tok.Start, l.tok.End }

// TokenText materializes the current token's source slice.
func (l *Lexer) TokenText() string {
	return l.arena.Text(l.tok.Start, l.tok.End)
}

// AccessorText is TokenText for an AccessorIdentifier token (an
// identifier-shaped slice read after `.` that may collide with a keyword:
// `foo.function` is valid, so ReadAccessor never consults the keyword map).
func (l *Lexer) AccessorText() string {
	return l.TokenText()
}

// FirstError returns the first lexical error token produced, if any.
func (l *Lexer) FirstError() (Token, bool) {
	if l.firstError == nil {
		return Token{}, false
	}
	return *l.firstError, true
}

// Advance consumes the current token, updates ASI, and sets the next token.
func (l *Lexer) Advance() {
	l.prevEndLine = l.line
	l.tok = l.scan()
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)-1 // last byte is the nul terminator
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	p := l.pos + offset
	if p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

// scan skips whitespace/comments (tracking whether a newline was crossed),
// dispatches on the next raw byte, and computes the resulting ASI state.
func (l *Lexer) scan() Token {
	crossedNewline := l.skipWhitespaceAndComments()

	start := l.pos
	if l.atEnd() {
		return l.finish(EOF, start, crossedNewline)
	}

	ch := l.src[l.pos]
	h := dispatch[ch]
	var typ TokenType
	if h == nil {
		l.pos++
		typ = UnexpectedToken
	} else {
		typ = h(l, start)
	}
	tok := l.finish(typ, start, crossedNewline)
	if typ == UnexpectedToken || typ == UnexpectedEndOfProgram {
		if l.firstError == nil {
			cp := tok
			l.firstError = &cp
		}
	}
	return tok
}

func (l *Lexer) finish(typ TokenType, start int, crossedNewline bool) Token {
	asi := ASINone
	switch {
	case typ == Semicolon:
		asi = ASIExplicit
	case typ == EOF || typ == RBrace || typ == RParen:
		asi = ASIImplicit
	case crossedNewline:
		asi = ASIImplicit
	}
	return Token{Type: typ, Start: start, End: l.pos, Line: l.line, asi: asi}
}

func (l *Lexer) skipWhitespaceAndComments() bool {
	crossed := false
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == '\n':
			crossed = true
			l.line++
			l.pos++
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f':
			l.pos++
		case ch == '/' && l.peekAt(1) == '/':
			l.pos += 2
			for !l.atEnd() && l.peek() != '\n' {
				l.pos++
			}
		case ch == '/' && l.peekAt(1) == '*':
			l.pos += 2
			for !l.atEnd() && !(l.peek() == '*' && l.peekAt(1) == '/') {
				if l.peek() == '\n' {
					crossed = true
					l.line++
				}
				l.pos++
			}
			if l.atEnd() {
				break
			}
			l.pos += 2
		default:
			return crossed
		}
	}
	return crossed
}

func isIdentifierPart(ch byte) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch >= 0x80
}

func (l *Lexer) readIdentifier(start int) TokenType {
	for !l.atEnd() && isIdentifierPart(l.peek()) {
		l.pos++
	}
	word := l.arena.Text(start, l.pos)
	if kw, ok := keywords[word]; ok {
		return kw
	}
	return Identifier
}

// ReadAccessor reads an identifier-shaped slice without consulting the
// keyword table, used by the parser immediately after it consumes `.`, so
// that `foo.function` parses `function` as a property name rather than the
// `function` keyword.
func (l *Lexer) ReadAccessor() Token {
	start := l.pos
	if l.atEnd() || !isIdentifierStart(l.peek()) {
		tok := l.finish(UnexpectedToken, start, false)
		l.tok = tok
		return tok
	}
	for !l.atEnd() && isIdentifierPart(l.peek()) {
		l.pos++
	}
	tok := l.finish(AccessorIdentifier, start, false)
	l.tok = tok
	return tok
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func (l *Lexer) readZeroLeadingNumber(start int) TokenType {
	switch l.peekAt(1) {
	case 'b', 'B':
		l.pos += 2
		for !l.atEnd() && (l.peek() == '0' || l.peek() == '1' || l.peek() == '_') {
			l.pos++
		}
		return LiteralBinary
	case 'o', 'O':
		l.pos += 2
		for !l.atEnd() && ((l.peek() >= '0' && l.peek() <= '7') || l.peek() == '_') {
			l.pos++
		}
		return LiteralOctal
	case 'x', 'X':
		l.pos += 2
		for !l.atEnd() && (isHexDigit(l.peek()) || l.peek() == '_') {
			l.pos++
		}
		return LiteralHex
	default:
		return l.readNumber(start)
	}
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func (l *Lexer) readNumber(start int) TokenType {
	for !l.atEnd() && (isDigit(l.peek()) || l.peek() == '_') {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.pos++
		for !l.atEnd() && (isDigit(l.peek()) || l.peek() == '_') {
			l.pos++
		}
	} else if l.peek() == '.' && !isDigit(l.peekAt(1)) && l.peekAt(1) != '.' {
		l.pos++
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		save := l.pos
		l.pos++
		if l.peek() == '+' || l.peek() == '-' {
			l.pos++
		}
		if isDigit(l.peek()) {
			for !l.atEnd() && isDigit(l.peek()) {
				l.pos++
			}
		} else {
			l.pos = save
		}
	}
	return LiteralNumber
}

func (l *Lexer) readString(start int) TokenType {
	quote := l.src[l.pos]
	l.pos++
	for {
		if l.atEnd() {
			return UnexpectedEndOfProgram
		}
		ch := l.peek()
		if ch == quote {
			l.pos++
			return LiteralString
		}
		if ch == '\\' {
			l.pos += 2 // `\x` is an escape of width 2, whatever x is
			continue
		}
		if ch == '\n' {
			return UnexpectedToken
		}
		l.pos++
	}
}

// readTemplateFromBacktick handles the opening backtick of a template
// literal encountered through the normal dispatch table.
func (l *Lexer) readTemplateFromBacktick(start int) TokenType {
	l.pos++ // consume `
	return l.scanQuasi()
}

// ReadTemplateKind re-reads in template mode starting at the byte after a
// closing `}` inside a template expression. The parser calls this after
// consuming the `}` that ended an interpolation, instead of a normal
// Advance, because the continuation quasi is not valid JavaScript token
// syntax and the main dispatch table cannot recover it.
func (l *Lexer) ReadTemplateKind() Token {
	typ := l.scanQuasi()
	tok := l.finish(typ, l.quasiStart, false)
	l.tok = tok
	return tok
}

func (l *Lexer) scanQuasi() TokenType {
	l.quasiStart = l.pos
	for {
		if l.atEnd() {
			return UnexpectedEndOfProgram
		}
		ch := l.peek()
		if ch == '`' {
			end := l.pos
			l.pos++
			l.quasiEnd = end
			return TemplateClosed
		}
		if ch == '$' && l.peekAt(1) == '{' {
			end := l.pos
			l.pos += 2
			l.quasiEnd = end
			return TemplateOpen
		}
		if ch == '\\' {
			l.pos += 2
			continue
		}
		if ch == '\n' {
			l.line++
		}
		l.pos++
	}
}

// QuasiText returns the raw text of the most recently scanned quasi segment
// (the literal run between backtick/`}` and `${`/backtick), excluding the
// delimiters on either side.
func (l *Lexer) QuasiText() string {
	return l.arena.Text(l.quasiStart, l.quasiEnd)
}

// ReadRegularExpression re-reads the byte stream in regex mode beginning at
// the slash that was last consumed as `/` or `/=`, used by the parser when
// it has determined from context that a slash starts a regex literal rather
// than a division operator.
func (l *Lexer) ReadRegularExpression() Token {
	start := l.lastSlashStart
	l.pos = start + 1
	inClass := false
	for {
		if l.atEnd() {
			tok := l.finish(UnexpectedEndOfProgram, start, false)
			l.tok = tok
			return tok
		}
		ch := l.peek()
		if ch == '\n' {
			tok := l.finish(UnexpectedToken, start, false)
			l.tok = tok
			return tok
		}
		if ch == '\\' {
			l.pos += 2
			continue
		}
		if ch == '[' {
			inClass = true
		} else if ch == ']' {
			inClass = false
		} else if ch == '/' && !inClass {
			l.pos++
			break
		}
		l.pos++
	}
	for !l.atEnd() && isRegexFlag(l.peek()) {
		l.pos++
	}
	tok := l.finish(LiteralRegex, start, false)
	l.tok = tok
	return tok
}

func isRegexFlag(ch byte) bool {
	switch ch {
	case 'g', 'i', 'm', 'u', 'y':
		return true
	}
	return false
}

func (l *Lexer) readPeriod(start int) TokenType {
	if isDigit(l.peekAt(1)) {
		return l.readNumber(start)
	}
	if l.peekAt(1) == '.' && l.peekAt(2) == '.' {
		l.pos += 3
		return Spread
	}
	l.pos++
	return Period
}

func (l *Lexer) readQuestion(start int) TokenType {
	l.pos++
	return Question
}

func (l *Lexer) readEquals(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '=':
		l.pos++
		if l.peek() == '=' {
			l.pos++
			return StrictEq
		}
		return Eq
	case '>':
		l.pos++
		return Arrow
	}
	return Assign
}

func (l *Lexer) readBang(start int) TokenType {
	l.pos++
	if l.peek() == '=' {
		l.pos++
		if l.peek() == '=' {
			l.pos++
			return StrictNeq
		}
		return Neq
	}
	return LogicalNot
}

func (l *Lexer) readLt(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '=':
		l.pos++
		return Lte
	case '<':
		l.pos++
		if l.peek() == '=' {
			l.pos++
			return AssignShl
		}
		return Shl
	}
	return Lt
}

func (l *Lexer) readGt(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '=':
		l.pos++
		return Gte
	case '>':
		l.pos++
		switch l.peek() {
		case '>':
			l.pos++
			if l.peek() == '=' {
				l.pos++
				return AssignSar
			}
			return Sar
		case '=':
			l.pos++
			return AssignShr
		}
		return Shr
	}
	return Gt
}

func (l *Lexer) readPlus(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '+':
		l.pos++
		return Increment
	case '=':
		l.pos++
		return AssignAdd
	}
	return Add
}

func (l *Lexer) readMinus(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '-':
		l.pos++
		return Decrement
	case '=':
		l.pos++
		return AssignSub
	}
	return Sub
}

func (l *Lexer) readStar(start int) TokenType {
	l.pos++
	if l.peek() == '*' {
		l.pos++
		if l.peek() == '=' {
			l.pos++
			return AssignExp
		}
		return Exp
	}
	if l.peek() == '=' {
		l.pos++
		return AssignMul
	}
	return Mul
}

// readSlash produces `/` or `/=`. A forward slash is always tokenized this
// way by the main dispatch table; the parser asks the lexer to back up and
// rescan in regex mode via ReadRegularExpression when context says a slash
// starts a regex literal instead. The slash's start offset is remembered so
// that rescan knows where to rewind to.
func (l *Lexer) readSlash(start int) TokenType {
	l.lastSlashStart = start
	l.pos++
	if l.peek() == '=' {
		l.pos++
		return AssignDiv
	}
	return Div
}

func (l *Lexer) readPercent(start int) TokenType {
	l.pos++
	if l.peek() == '=' {
		l.pos++
		return AssignMod
	}
	return Mod
}

func (l *Lexer) readAmp(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '&':
		l.pos++
		return LogicalAnd
	case '=':
		l.pos++
		return AssignBitAnd
	}
	return BitAnd
}

func (l *Lexer) readPipe(start int) TokenType {
	l.pos++
	switch l.peek() {
	case '|':
		l.pos++
		return LogicalOr
	case '=':
		l.pos++
		return AssignBitOr
	}
	return BitOr
}

func (l *Lexer) readCaret(start int) TokenType {
	l.pos++
	if l.peek() == '=' {
		l.pos++
		return AssignBitXor
	}
	return BitXor
}
