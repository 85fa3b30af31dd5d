package parser

import (
	"github.com/arborjs/jsparse/internal/arena"
	"github.com/arborjs/jsparse/internal/lexer"
	"github.com/arborjs/jsparse/pkg/ast"
)

// parsePattern recognizes a pattern directly at declarator/parameter/catch
// positions: a bare identifier, an array-destructuring pattern, or an
// object-destructuring pattern. Defaults (`= expr`) are layered on by the
// caller, since the places a default is legal differ (parameters and
// declarators, but not catch clauses).
func (p *Parser) parsePattern() ast.Pattern {
	switch p.tok().Type {
	case lexer.LBrack:
		return p.parseArrayPattern()
	case lexer.LBrace:
		return p.parseObjectPattern()
	default:
		if !p.check(lexer.Identifier) {
			p.addErrorf("expected a binding identifier or pattern, got %s", p.tok().Type)
			tok := p.tok()
			id := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: ""})
			id.SetSpan(tok.Start, tok.Start)
			return id
		}
		tok := p.advance()
		id := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
		id.SetSpan(tok.Start, tok.End)
		return id
	}
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	start := p.advance() // `[`
	elements := arena.Empty[ast.Pattern](p.arena)
	for !p.check(lexer.RBrack) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Comma) {
			elements.Push(p.hole().(ast.Pattern))
			p.advance()
			continue
		}
		if p.check(lexer.Spread) {
			restStart := p.advance()
			arg := p.parsePattern()
			rest := ast.Alloc(p.arena, ast.RestElement{Base: ast.Base{Type: ast.KindRestElement}, Argument: arg})
			_, end := arg.Span()
			rest.SetSpan(restStart.Start, end)
			elements.Push(rest)
		} else {
			pat := p.parsePattern()
			if p.check(lexer.Assign) {
				p.advance()
				def := p.parseExpression(TierAssignment)
				ap := ast.Alloc(p.arena, ast.AssignmentPattern{Base: ast.Base{Type: ast.KindAssignmentPattern}, Left: pat, Right: def})
				s, _ := pat.Span()
				_, e := def.Span()
				ap.SetSpan(s, e)
				pat = ap
			}
			elements.Push(pat)
		}
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBrack)
	n := ast.Alloc(p.arena, ast.ArrayPattern{Base: ast.Base{Type: ast.KindArrayPattern}, Elements: elements})
	n.SetSpan(start.Start, end.End)
	return n
}

func (p *Parser) parseObjectPattern() ast.Pattern {
	start := p.advance() // `{`
	props := arena.Empty[*ast.ObjectPatternProperty](p.arena)
	for !p.check(lexer.RBrace) && p.tok().Type != lexer.EOF {
		props.Push(p.parseObjectPatternProperty())
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBrace)
	n := ast.Alloc(p.arena, ast.ObjectPattern{Base: ast.Base{Type: ast.KindObjectPattern}, Properties: props})
	n.SetSpan(start.Start, end.End)
	return n
}

func (p *Parser) parseObjectPatternProperty() *ast.ObjectPatternProperty {
	start := p.tok()
	key, computed := p.parsePropertyKey()
	var value ast.Pattern
	shorthand := false
	if p.check(lexer.Colon) {
		p.advance()
		value = p.parsePattern()
	} else {
		shorthand = true
		if id, ok := key.(*ast.Identifier); ok {
			shV := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: id.Name})
			shV.SetSpan(id.Start, id.End)
			value = shV
		} else {
			p.addErrorf("invalid shorthand pattern property")
			value = p.hole().(ast.Pattern)
		}
	}
	end := value
	if p.check(lexer.Assign) {
		p.advance()
		def := p.parseExpression(TierAssignment)
		ap := ast.Alloc(p.arena, ast.AssignmentPattern{Base: ast.Base{Type: ast.KindAssignmentPattern}, Left: value, Right: def})
		s, _ := value.Span()
		_, e := def.Span()
		ap.SetSpan(s, e)
		value = ap
	} else {
		_ = end
	}
	n := ast.Alloc(p.arena, ast.ObjectPatternProperty{Base: ast.Base{Type: ast.KindObjectPatternProperty}, Key: key, Value: value, Computed: computed, Shorthand: shorthand})
	_, e := value.Span()
	n.SetSpan(start.Start, e)
	return n
}

// exprToPattern coerces an already-parsed expression (from an arrow
// function's parenthesized parameter list) into a pattern, rejecting forms
// that have no valid pattern interpretation.
func (p *Parser) exprToPattern(e ast.Expr) ast.Pattern {
	switch v := e.(type) {
	case *ast.Identifier:
		return v
	case *ast.Hole:
		return v
	case *ast.SpreadExpr:
		rest := ast.Alloc(p.arena, ast.RestElement{Base: ast.Base{Type: ast.KindRestElement}, Argument: p.exprToPattern(v.Argument)})
		s, _ := v.Span()
		_, e2 := v.Argument.Span()
		rest.SetSpan(s, e2)
		return rest
	case *ast.BinaryExpr:
		if v.Operator == "=" {
			ap := ast.Alloc(p.arena, ast.AssignmentPattern{Base: ast.Base{Type: ast.KindAssignmentPattern}, Left: p.exprToPattern(v.Left), Right: v.Right})
			s, _ := v.Span()
			_, en := v.Span()
			ap.SetSpan(s, en)
			return ap
		}
	case *ast.ArrayExpr:
		elements := arena.Empty[ast.Pattern](p.arena)
		for _, el := range v.Elements.Slice() {
			elements.Push(p.exprToPattern(el))
		}
		n := ast.Alloc(p.arena, ast.ArrayPattern{Base: ast.Base{Type: ast.KindArrayPattern}, Elements: elements})
		s, en := v.Span()
		n.SetSpan(s, en)
		return n
	case *ast.ObjectExpr:
		props := arena.Empty[*ast.ObjectPatternProperty](p.arena)
		for _, m := range v.Properties.Slice() {
			if prop, ok := m.(*ast.Property); ok {
				pp := ast.Alloc(p.arena, ast.ObjectPatternProperty{
					Base:      ast.Base{Type: ast.KindObjectPatternProperty},
					Key:       prop.Key,
					Value:     p.exprToPattern(prop.Value),
					Computed:  prop.Computed,
					Shorthand: prop.Shorthand,
				})
				s, en := prop.Span()
				pp.SetSpan(s, en)
				props.Push(pp)
			}
		}
		n := ast.Alloc(p.arena, ast.ObjectPattern{Base: ast.Base{Type: ast.KindObjectPattern}, Properties: props})
		s, en := v.Span()
		n.SetSpan(s, en)
		return n
	}
	p.addErrorf("invalid destructuring target")
	s, en := e.Span()
	h := ast.Alloc(p.arena, ast.Hole{Base: ast.Base{Type: ast.KindHole}})
	h.SetSpan(s, en)
	return h
}
