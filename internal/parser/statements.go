package parser

import (
	"github.com/arborjs/jsparse/internal/arena"
	"github.com/arborjs/jsparse/internal/lexer"
	"github.com/arborjs/jsparse/pkg/ast"
)

// parseStatement dispatches on the current token to produce one statement.
// Tokens with no dedicated statement form fall through to an expression
// parsed at full tier (admitting the comma operator) and wrapped as an
// ExpressionStmt.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.tok().Type {
	case lexer.Semicolon:
		return p.parseEmptyStmt()
	case lexer.LBrace:
		return p.parseBlock()
	case lexer.KeywordVar, lexer.KeywordLet, lexer.KeywordConst:
		return p.parseVariableStatement()
	case lexer.KeywordReturn:
		return p.parseReturnStmt()
	case lexer.KeywordBreak:
		return p.parseBreakStmt()
	case lexer.KeywordContinue:
		return p.parseContinueStmt()
	case lexer.KeywordThrow:
		return p.parseThrowStmt()
	case lexer.KeywordIf:
		return p.parseIfStmt()
	case lexer.KeywordWhile:
		return p.parseWhileStmt()
	case lexer.KeywordDo:
		return p.parseDoWhileStmt()
	case lexer.KeywordFor:
		return p.parseForStmt()
	case lexer.KeywordTry:
		return p.parseTryStmt()
	case lexer.KeywordSwitch:
		return p.parseSwitchStmt()
	case lexer.KeywordFunction:
		return p.parseFunctionDeclaration()
	case lexer.KeywordClass:
		return p.parseClassDeclaration()
	case lexer.Identifier:
		return p.parseIdentifierLeadStmt()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseEmptyStmt() ast.Stmt {
	tok := p.advance()
	n := ast.Alloc(p.arena, ast.EmptyStmt{Base: ast.Base{Type: ast.KindEmptyStmt}})
	n.SetSpan(tok.Start, tok.End)
	return n
}

func (p *Parser) parseExpressionStmt() ast.Stmt {
	start := p.tok().Start
	expr := p.parseExpression(TierNone)
	p.consumeStatementTerminator()
	_, end := expr.Span()
	n := ast.Alloc(p.arena, ast.ExpressionStmt{Base: ast.Base{Type: ast.KindExpressionStmt}, Expression: expr})
	n.SetSpan(start, end)
	return n
}

// parseIdentifierLeadStmt handles the one ambiguity a single-token-lookahead
// parser has to resolve explicitly: an identifier at statement position is
// either the start of a labeled statement (`label: body`) or of an ordinary
// expression statement. The identifier is consumed once; if a `:` follows,
// it is a label, otherwise the already-built Identifier node is fed into
// the ordinary infix loop as if it had just come out of parsePrimary.
func (p *Parser) parseIdentifierLeadStmt() ast.Stmt {
	tok := p.advance()
	if p.check(lexer.Colon) {
		p.advance()
		label := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
		label.SetSpan(tok.Start, tok.End)
		body := p.parseStatement()
		n := ast.Alloc(p.arena, ast.LabeledStmt{Base: ast.Base{Type: ast.KindLabeledStmt}, Label: label, Body: body})
		_, end := body.Span()
		n.SetSpan(tok.Start, end)
		return n
	}

	id := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
	id.SetSpan(tok.Start, tok.End)

	var expr ast.Expr
	if p.check(lexer.Arrow) {
		expr = p.finishArrow(tok.Start, arena.FromSingle[ast.Pattern](p.arena, ast.Pattern(id)))
	} else {
		expr = p.nestedExpression(id, TierNone)
	}
	p.consumeStatementTerminator()
	_, end := expr.Span()
	n := ast.Alloc(p.arena, ast.ExpressionStmt{Base: ast.Base{Type: ast.KindExpressionStmt}, Expression: expr})
	n.SetSpan(tok.Start, end)
	return n
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.expect(lexer.LBrace)
	body := arena.Empty[ast.Stmt](p.arena)
	for !p.check(lexer.RBrace) && p.tok().Type != lexer.EOF {
		body.Push(p.parseStatement())
	}
	end := p.expect(lexer.RBrace)
	n := ast.Alloc(p.arena, ast.BlockStmt{Base: ast.Base{Type: ast.KindBlockStmt}, Body: body})
	n.SetSpan(start.Start, end.End)
	return n
}

func (p *Parser) parseVariableStatement() ast.Stmt {
	decl := p.parseVariableDeclaration()
	p.consumeStatementTerminator()
	return decl
}

// parseVariableDeclaration parses `kind declarators...` without consuming a
// statement terminator, so for-headers can reuse it directly.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	start := p.advance() // var/let/const
	kind := start.Type.String()
	decls := arena.Empty[*ast.VariableDeclarator](p.arena)
	for {
		d := p.parseVariableDeclarator()
		decls.Push(d)
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	last := decls.Slice()[decls.Len()-1]
	_, end := last.Span()
	n := ast.Alloc(p.arena, ast.VariableDeclaration{Base: ast.Base{Type: ast.KindVariableDeclaration}, DeclKind: kind, Declarations: decls})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	id := p.parsePattern()
	var init ast.Expr
	start, end := id.Span()
	if p.check(lexer.Assign) {
		p.advance()
		init = p.parseExpression(TierArgument)
		_, end = init.Span()
	}
	d := ast.Alloc(p.arena, ast.VariableDeclarator{Base: ast.Base{Type: ast.KindVariableDeclarator}, ID: id, Init: init})
	d.SetSpan(start, end)
	return d
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance()
	var arg ast.Expr
	end := start.End
	switch p.tok().ASI() {
	case lexer.ASIImplicit, lexer.ASIExplicit:
		// no argument
	default:
		arg = p.parseExpression(TierNone)
		_, end = arg.Span()
	}
	p.consumeStatementTerminator()
	n := ast.Alloc(p.arena, ast.ReturnStmt{Base: ast.Base{Type: ast.KindReturnStmt}, Argument: arg})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	start := p.advance()
	var label *ast.Identifier
	end := start.End
	if p.tok().ASI() == lexer.ASINone && p.check(lexer.Identifier) {
		tok := p.advance()
		label = ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
		label.SetSpan(tok.Start, tok.End)
		end = tok.End
	}
	p.consumeStatementTerminator()
	n := ast.Alloc(p.arena, ast.BreakStmt{Base: ast.Base{Type: ast.KindBreakStmt}, Label: label})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	start := p.advance()
	var label *ast.Identifier
	end := start.End
	if p.tok().ASI() == lexer.ASINone && p.check(lexer.Identifier) {
		tok := p.advance()
		label = ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
		label.SetSpan(tok.Start, tok.End)
		end = tok.End
	}
	p.consumeStatementTerminator()
	n := ast.Alloc(p.arena, ast.ContinueStmt{Base: ast.Base{Type: ast.KindContinueStmt}, Label: label})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseThrowStmt() ast.Stmt {
	start := p.advance()
	arg := p.parseExpression(TierNone)
	p.consumeStatementTerminator()
	_, end := arg.Span()
	n := ast.Alloc(p.arena, ast.ThrowStmt{Base: ast.Base{Type: ast.KindThrowStmt}, Argument: arg})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance()
	p.expect(lexer.LParen)
	test := p.parseExpression(TierNone)
	p.expect(lexer.RParen)
	consequent := p.parseStatement()
	var alternate ast.Stmt
	_, end := consequent.Span()
	if p.check(lexer.KeywordElse) {
		p.advance()
		alternate = p.parseStatement()
		_, end = alternate.Span()
	}
	n := ast.Alloc(p.arena, ast.IfStmt{Base: ast.Base{Type: ast.KindIfStmt}, Test: test, Consequent: consequent, Alternate: alternate})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance()
	p.expect(lexer.LParen)
	test := p.parseExpression(TierNone)
	p.expect(lexer.RParen)
	body := p.parseStatement()
	_, end := body.Span()
	n := ast.Alloc(p.arena, ast.WhileStmt{Base: ast.Base{Type: ast.KindWhileStmt}, Test: test, Body: body})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	start := p.advance()
	body := p.parseStatement()
	p.expect(lexer.KeywordWhile)
	p.expect(lexer.LParen)
	test := p.parseExpression(TierNone)
	end := p.expect(lexer.RParen)
	p.consumeStatementTerminator()
	n := ast.Alloc(p.arena, ast.DoWhileStmt{Base: ast.Base{Type: ast.KindDoWhileStmt}, Body: body, Test: test})
	n.SetSpan(start.Start, end.End)
	return n
}

// parseForStmt implements the for-header disambiguation: speculatively
// parse an init clause, then decide between classic/for-in/for-of based on
// what follows.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance()
	p.expect(lexer.LParen)

	var init ast.Node

	switch {
	case p.check(lexer.Semicolon):
		// no init
	case p.check(lexer.KeywordVar) || p.check(lexer.KeywordLet) || p.check(lexer.KeywordConst):
		decl := p.parseVariableDeclaration()
		init = decl
		if decl.Declarations.Len() == 1 {
			sole := decl.Declarations.Slice()[0]
			if sole.Init != nil {
				if bin, ok := sole.Init.(*ast.BinaryExpr); ok && bin.Operator == "in" {
					// `for (let i = 0 in obj)`: the known oddity preserved
					// verbatim — the declarator keeps its `= 0` initializer
					// and the loop becomes a for-in over bin.Right.
					sole.Init = bin.Left
					return p.finishForIn(start.Start, decl, bin.Right)
				}
			}
		}
	default:
		expr := p.parseExpression(TierSequence)
		if bin, ok := expr.(*ast.BinaryExpr); ok && bin.Operator == "in" {
			return p.finishForIn(start.Start, bin.Left, bin.Right)
		}
		init = expr
	}

	if p.check(lexer.KeywordIn) {
		if decl, ok := init.(*ast.VariableDeclaration); ok && decl.Declarations.Len() != 1 {
			p.addErrorf("a for-in declaration must have exactly one declarator")
		}
		p.advance()
		right := p.parseExpression(TierNone)
		return p.finishForIn(start.Start, init, right)
	}
	if p.check(lexer.KeywordOf) {
		p.advance()
		right := p.parseExpression(TierAssignment)
		p.expect(lexer.RParen)
		body := p.parseStatement()
		_, end := body.Span()
		n := ast.Alloc(p.arena, ast.ForOfStmt{Base: ast.Base{Type: ast.KindForOfStmt}, Left: init, Right: right, Body: body})
		n.SetSpan(start.Start, end)
		return n
	}

	p.expect(lexer.Semicolon)
	var test ast.Expr
	if !p.check(lexer.Semicolon) {
		test = p.parseExpression(TierNone)
	}
	p.expect(lexer.Semicolon)
	var update ast.Expr
	if !p.check(lexer.RParen) {
		update = p.parseExpression(TierNone)
	}
	p.expect(lexer.RParen)
	body := p.parseStatement()
	_, end := body.Span()
	n := ast.Alloc(p.arena, ast.ForStmt{Base: ast.Base{Type: ast.KindForStmt}, Init: init, Test: test, Update: update, Body: body})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) finishForIn(start int, left ast.Node, right ast.Expr) ast.Stmt {
	p.expect(lexer.RParen)
	body := p.parseStatement()
	_, end := body.Span()
	n := ast.Alloc(p.arena, ast.ForInStmt{Base: ast.Base{Type: ast.KindForInStmt}, Left: left, Right: right, Body: body})
	n.SetSpan(start, end)
	return n
}

func (p *Parser) parseTryStmt() ast.Stmt {
	start := p.advance()
	block := p.parseBlock()
	var handler *ast.CatchClause
	var finalizer *ast.BlockStmt
	if p.check(lexer.KeywordCatch) {
		catchStart := p.advance()
		var param ast.Pattern
		if p.check(lexer.LParen) {
			p.advance()
			param = p.parsePattern()
			p.expect(lexer.RParen)
		}
		catchBody := p.parseBlock()
		handler = ast.Alloc(p.arena, ast.CatchClause{Base: ast.Base{Type: ast.KindCatchClause}, Param: param, Body: catchBody})
		_, end := catchBody.Span()
		handler.SetSpan(catchStart.Start, end)
	}
	if p.check(lexer.KeywordFinally) {
		p.advance()
		finalizer = p.parseBlock()
	}
	if handler == nil && finalizer == nil {
		p.addErrorf("missing catch or finally after try")
	}
	end := block.End
	if finalizer != nil {
		end = finalizer.End
	} else if handler != nil {
		end = handler.End
	}
	n := ast.Alloc(p.arena, ast.TryStmt{Base: ast.Base{Type: ast.KindTryStmt}, Block: block, Handler: handler, Finalizer: finalizer})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	start := p.advance()
	p.expect(lexer.LParen)
	disc := p.parseExpression(TierNone)
	p.expect(lexer.RParen)
	p.expect(lexer.LBrace)
	cases := arena.Empty[*ast.SwitchCase](p.arena)
	for !p.check(lexer.RBrace) && p.tok().Type != lexer.EOF {
		cases.Push(p.parseSwitchCase())
	}
	end := p.expect(lexer.RBrace)
	n := ast.Alloc(p.arena, ast.SwitchStmt{Base: ast.Base{Type: ast.KindSwitchStmt}, Discriminant: disc, Cases: cases})
	n.SetSpan(start.Start, end.End)
	return n
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.tok()
	var test ast.Expr
	if p.check(lexer.KeywordCase) {
		p.advance()
		test = p.parseExpression(TierNone)
	} else {
		p.expect(lexer.KeywordDefault)
	}
	p.expect(lexer.Colon)
	body := arena.Empty[ast.Stmt](p.arena)
	for !p.check(lexer.KeywordCase) && !p.check(lexer.KeywordDefault) && !p.check(lexer.RBrace) && p.tok().Type != lexer.EOF {
		body.Push(p.parseStatement())
	}
	end := start.End
	if slice := body.Slice(); len(slice) > 0 {
		_, end = slice[len(slice)-1].Span()
	}
	n := ast.Alloc(p.arena, ast.SwitchCase{Base: ast.Base{Type: ast.KindSwitchCase}, Test: test, Consequent: body})
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseFunctionDeclaration() ast.Stmt {
	start := p.advance()
	generator := false
	if p.check(lexer.Mul) {
		p.advance()
		generator = true
	}
	if !p.check(lexer.Identifier) {
		p.addErrorf("function declaration requires a name")
	}
	tok := p.advance()
	name := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
	name.SetSpan(tok.Start, tok.End)
	params := p.parseParamList()
	body := p.parseBlock()
	n := ast.Alloc(p.arena, ast.FunctionDeclaration{Base: ast.Base{Type: ast.KindFunctionDeclaration}, Name: name, Generator: generator, Params: params, Body: body})
	n.SetSpan(start.Start, body.End)
	return n
}

func (p *Parser) parseClassDeclaration() ast.Stmt {
	start := p.advance()
	if !p.check(lexer.Identifier) {
		p.addErrorf("class declaration requires a name")
	}
	tok := p.advance()
	name := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
	name.SetSpan(tok.Start, tok.End)
	var super ast.Expr
	if p.check(lexer.KeywordExtends) {
		p.advance()
		super = p.parseExpression(TierCall)
	}
	body := p.parseClassBody()
	n := ast.Alloc(p.arena, ast.ClassDeclaration{Base: ast.Base{Type: ast.KindClassDeclaration}, Name: name, SuperClass: super, Body: body})
	_, end := body.Span()
	n.SetSpan(start.Start, end)
	return n
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	start := p.expect(lexer.LBrace)
	members := arena.Empty[ast.ClassMember](p.arena)
	seenConstructor := false
	for !p.check(lexer.RBrace) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Semicolon) {
			p.advance()
			continue
		}
		m := p.parseClassMember()
		if md, ok := m.(*ast.MethodDefinition); ok && md.Kind == "constructor" {
			if seenConstructor {
				p.addErrorf("a class may have only one constructor")
			}
			seenConstructor = true
		}
		members.Push(m)
	}
	end := p.expect(lexer.RBrace)
	n := ast.Alloc(p.arena, ast.ClassBody{Base: ast.Base{Type: ast.KindClassBody}, Body: members})
	n.SetSpan(start.Start, end.End)
	return n
}

func (p *Parser) parseClassMember() ast.ClassMember {
	start := p.tok()
	static := false
	if p.check(lexer.KeywordStatic) {
		save := p.tok()
		p.advance()
		if p.check(lexer.LParen) || p.check(lexer.Assign) || p.check(lexer.Semicolon) {
			// `static` itself used as a plain member name
			return p.finishPropertyDefinitionFromKey(save, false)
		}
		static = true
	}

	kind := "method"
	if (p.check(lexer.Identifier)) && (p.text() == "get" || p.text() == "set") {
		save := p.tok()
		p.advance()
		if p.check(lexer.LParen) || p.check(lexer.Assign) || p.check(lexer.Semicolon) {
			return p.finishPropertyDefinitionFromKeyStatic(save, static)
		}
		kind = p.arena.Text(save.Start, save.End)
	}

	key, computed := p.parsePropertyKey()
	if p.check(lexer.LParen) {
		fn := p.parseFunctionTail(nil, false)
		if idKey, ok := key.(*ast.Identifier); ok && idKey.Name == "constructor" && !static {
			kind = "constructor"
		} else if kind == "method" {
			kind = "method"
		}
		m := ast.Alloc(p.arena, ast.MethodDefinition{Base: ast.Base{Type: ast.KindMethodDefinition}, Static: static, Kind: kind, Key: key, Computed: computed, Value: fn.(*ast.FunctionExpr)})
		_, end := fn.Span()
		m.SetSpan(start.Start, end)
		return m
	}

	// property definition
	var value ast.Expr
	end := key
	if p.check(lexer.Assign) {
		p.advance()
		value = p.parseExpression(TierArgument)
	}
	p.consumeStatementTerminator()
	m := ast.Alloc(p.arena, ast.PropertyDefinition{Base: ast.Base{Type: ast.KindPropertyDefinition}, Static: static, Key: key, Computed: computed, Value: value})
	s, _ := key.Span()
	e := s
	if value != nil {
		_, e = value.Span()
	} else {
		_, e = end.Span()
	}
	m.SetSpan(s, e)
	return m
}

func (p *Parser) finishPropertyDefinitionFromKey(keyTok lexer.Token, static bool) ast.ClassMember {
	return p.finishPropertyDefinitionFromKeyStatic(keyTok, static)
}

func (p *Parser) finishPropertyDefinitionFromKeyStatic(keyTok lexer.Token, static bool) ast.ClassMember {
	key := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(keyTok.Start, keyTok.End)})
	key.SetSpan(keyTok.Start, keyTok.End)
	if p.check(lexer.LParen) {
		fn := p.parseFunctionTail(nil, false)
		m := ast.Alloc(p.arena, ast.MethodDefinition{Base: ast.Base{Type: ast.KindMethodDefinition}, Static: static, Kind: "method", Key: key, Value: fn.(*ast.FunctionExpr)})
		_, end := fn.Span()
		m.SetSpan(keyTok.Start, end)
		return m
	}
	var value ast.Expr
	end := keyTok.End
	if p.check(lexer.Assign) {
		p.advance()
		value = p.parseExpression(TierArgument)
		_, end = value.Span()
	}
	p.consumeStatementTerminator()
	m := ast.Alloc(p.arena, ast.PropertyDefinition{Base: ast.Base{Type: ast.KindPropertyDefinition}, Static: static, Key: key, Value: value})
	m.SetSpan(keyTok.Start, end)
	return m
}
