// Package parser implements a table-driven Pratt parser over the token
// stream produced by internal/lexer, building the arena-resident AST
// defined in pkg/ast.
package parser

import (
	"fmt"

	"github.com/arborjs/jsparse/internal/arena"
	"github.com/arborjs/jsparse/internal/lexer"
	"github.com/arborjs/jsparse/pkg/ast"
)

// Error is one recorded parse failure: the offending token's kind, its
// span, and the raw source slice between them.
type Error struct {
	Kind    lexer.TokenType
	Start   int
	End     int
	Source  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Start, e.End, e.Message)
}

// Options configures parsing behavior.
type Options struct {
	Tolerant bool // not consulted: parsing always continues best-effort after an error, and the first error is the one returned
	Loc      bool // reserved for consumers that want line/column computed alongside Start/End
	Range    bool // reserved for consumers that want [Start,End) always populated (it always is here)
}

// Parser holds the mutable state of a single parse.
type Parser struct {
	arena   *arena.Arena
	lex     *lexer.Lexer
	options Options
	errors  []*Error
}

// New creates a Parser reading from src, allocating its AST into a itself.
func New(a *arena.Arena, src string, opts Options) *Parser {
	return &Parser{
		arena:   a,
		lex:     lexer.New(a),
		options: opts,
	}
}

// Parse parses source into a Module. It returns the first recorded error,
// if any, alongside the (possibly partial) module.
func Parse(source string) (*ast.Module, error) {
	return ParseWithOptions(source, Options{})
}

// ParseWithOptions parses source under the given Options.
func ParseWithOptions(source string, opts Options) (*ast.Module, error) {
	a := arena.New(source)
	p := New(a, source, opts)

	start := p.tok().Start
	body := arena.Empty[ast.Stmt](a)
	for p.tok().Type != lexer.EOF {
		before := p.tok().Start
		stmt := p.parseStatement()
		body.Push(stmt)
		if p.tok().Start == before && p.tok().Type != lexer.EOF {
			// a statement parse produced a node without consuming any
			// input (a malformed construct at a position parsePrimary's
			// fallback did not cover) — skip to the next likely boundary
			// so the best-effort tree keeps making progress.
			p.synchronize()
		}
	}
	end := p.tok().End

	mod := ast.NewModule(a, body, start, end)

	if len(p.errors) > 0 {
		return mod, p.errors[0]
	}
	return mod, nil
}

// tok returns the current lookahead token.
func (p *Parser) tok() lexer.Token {
	return p.lex.Token()
}

// advance consumes the current token and returns it.
func (p *Parser) advance() lexer.Token {
	cur := p.lex.Token()
	if cur.Type != lexer.EOF {
		p.lex.Advance()
	}
	return cur
}

// check reports whether the current token has type t.
func (p *Parser) check(t lexer.TokenType) bool {
	return p.tok().Type == t
}

// text returns the current token's raw source slice.
func (p *Parser) text() string {
	tok := p.tok()
	return p.arena.Text(tok.Start, tok.End)
}

// expect consumes the current token if it has type t, else records an
// error and returns the token unconsumed so the caller's synchronization
// logic can decide how to proceed.
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.addErrorf("expected %s, got %s", t, p.tok().Type)
	return p.tok()
}

// addErrorf appends a formatted parse error, annotated with the current
// token's kind, span and source slice.
func (p *Parser) addErrorf(format string, args ...any) {
	tok := p.tok()
	p.errors = append(p.errors, &Error{
		Kind:    tok.Type,
		Start:   tok.Start,
		End:     tok.End,
		Source:  p.arena.Text(tok.Start, tok.End),
		Message: fmt.Sprintf(format, args...),
	})
}

// hole returns a filler node positioned at the current token, used when a
// parsing helper cannot produce a meaningful node after recording an error.
func (p *Parser) hole() ast.Expr {
	tok := p.tok()
	n := ast.Alloc(p.arena, ast.Hole{Base: ast.Base{Type: ast.KindHole}})
	n.SetSpan(tok.Start, tok.Start)
	return n
}

// consumeStatementTerminator ends a statement according to the current ASI
// state: it consumes an explicit `;`, accepts an Implicit terminator without
// consuming anything, and records an error otherwise.
func (p *Parser) consumeStatementTerminator() {
	switch p.tok().ASI() {
	case lexer.ASIExplicit:
		p.advance()
	case lexer.ASIImplicit:
		// nothing to consume: EOF, `}`, `)`, or a newline was crossed
	default:
		p.addErrorf("expected ';' or a line break, got %s", p.tok().Type)
	}
}

// synchronize skips tokens until a likely statement boundary. The top-level
// loop calls it whenever a statement parse consumed no input, so the
// best-effort tree keeps making progress after an error.
func (p *Parser) synchronize() {
	for p.tok().Type != lexer.EOF {
		if p.tok().Type == lexer.Semicolon {
			p.advance()
			return
		}
		switch p.tok().Type {
		case lexer.KeywordFunction, lexer.KeywordClass, lexer.KeywordVar, lexer.KeywordLet, lexer.KeywordConst,
			lexer.KeywordIf, lexer.KeywordFor, lexer.KeywordWhile, lexer.KeywordReturn, lexer.RBrace:
			return
		}
		p.advance()
	}
}
