package parser

import (
	"github.com/arborjs/jsparse/internal/arena"
	"github.com/arborjs/jsparse/internal/lexer"
	"github.com/arborjs/jsparse/pkg/ast"
)

type prefixHandler func(p *Parser) ast.Expr

// infixEntry is one cell of the infix/postfix dispatch table: the tier an
// operator binds at, its associativity, and the handler that consumes it.
type infixEntry struct {
	tier       Tier
	rightAssoc bool
	build      func(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr
}

var prefixTable [lexer.TokenCount]prefixHandler
var infixTable [lexer.TokenCount]*infixEntry

func init() {
	prefixTable[lexer.Identifier] = parseIdentifierPrimary
	prefixTable[lexer.KeywordThis] = parseThisPrimary
	prefixTable[lexer.KeywordSuper] = parseSuperPrimary
	prefixTable[lexer.LiteralString] = parseStringLiteral
	prefixTable[lexer.LiteralNumber] = parseNumberLiteral(ast.LiteralNumber)
	prefixTable[lexer.LiteralBinary] = parseNumberLiteral(ast.LiteralNumber)
	prefixTable[lexer.LiteralOctal] = parseNumberLiteral(ast.LiteralNumber)
	prefixTable[lexer.LiteralHex] = parseNumberLiteral(ast.LiteralNumber)
	prefixTable[lexer.KeywordTrue] = parseBoolLiteral(true)
	prefixTable[lexer.KeywordFalse] = parseBoolLiteral(false)
	prefixTable[lexer.KeywordNull] = parseSimpleLiteral(ast.LiteralNull)
	prefixTable[lexer.KeywordUndefined] = parseSimpleLiteral(ast.LiteralUndefined)
	prefixTable[lexer.TemplateOpen] = parseTemplateLiteral
	prefixTable[lexer.TemplateClosed] = parseTemplateLiteral
	prefixTable[lexer.LBrack] = parseArrayExpr
	prefixTable[lexer.LBrace] = parseObjectExpr
	prefixTable[lexer.LParen] = parseParenOrArrow
	prefixTable[lexer.KeywordFunction] = parseFunctionExpr
	prefixTable[lexer.KeywordClass] = parseClassExpr
	prefixTable[lexer.KeywordNew] = parseNewExpr
	prefixTable[lexer.Div] = parseRegexLiteral

	for _, t := range []lexer.TokenType{
		lexer.LogicalNot, lexer.BitNot, lexer.KeywordTypeof, lexer.KeywordVoid, lexer.KeywordDelete,
		lexer.Add, lexer.Sub,
	} {
		prefixTable[t] = parsePrefixUnary
	}
	prefixTable[lexer.Increment] = parsePrefixUpdate
	prefixTable[lexer.Decrement] = parsePrefixUpdate

	registerInfix(lexer.Comma, TierSequence, false, buildSequence)

	registerAssign(lexer.Assign, "=")
	registerAssign(lexer.AssignAdd, "+=")
	registerAssign(lexer.AssignSub, "-=")
	registerAssign(lexer.AssignMul, "*=")
	registerAssign(lexer.AssignDiv, "/=")
	registerAssign(lexer.AssignMod, "%=")
	registerAssign(lexer.AssignExp, "**=")
	registerAssign(lexer.AssignShl, "<<=")
	registerAssign(lexer.AssignShr, ">>=")
	registerAssign(lexer.AssignSar, ">>>=")
	registerAssign(lexer.AssignBitAnd, "&=")
	registerAssign(lexer.AssignBitOr, "|=")
	registerAssign(lexer.AssignBitXor, "^=")

	registerInfix(lexer.Question, TierConditional, true, buildConditional)

	registerBinary(lexer.LogicalOr, TierLogicalOr, "||")
	registerBinary(lexer.LogicalAnd, TierLogicalAnd, "&&")
	registerBinary(lexer.BitOr, TierBitOr, "|")
	registerBinary(lexer.BitXor, TierBitXor, "^")
	registerBinary(lexer.BitAnd, TierBitAnd, "&")
	registerBinary(lexer.StrictEq, TierEquality, "===")
	registerBinary(lexer.StrictNeq, TierEquality, "!==")
	registerBinary(lexer.Eq, TierEquality, "==")
	registerBinary(lexer.Neq, TierEquality, "!=")
	registerBinary(lexer.Lt, TierRelational, "<")
	registerBinary(lexer.Gt, TierRelational, ">")
	registerBinary(lexer.Lte, TierRelational, "<=")
	registerBinary(lexer.Gte, TierRelational, ">=")
	registerBinary(lexer.KeywordInstanceof, TierRelational, "instanceof")
	registerBinary(lexer.KeywordIn, TierRelational, "in")
	registerBinary(lexer.Shl, TierShift, "<<")
	registerBinary(lexer.Shr, TierShift, ">>")
	registerBinary(lexer.Sar, TierShift, ">>>")
	registerBinary(lexer.Add, TierAdditive, "+")
	registerBinary(lexer.Sub, TierAdditive, "-")
	registerBinary(lexer.Mul, TierMultiplicative, "*")
	registerBinary(lexer.Div, TierMultiplicative, "/")
	registerBinary(lexer.Mod, TierMultiplicative, "%")
	registerInfix(lexer.Exp, TierExponent, true, buildBinaryOp("**"))

	registerInfix(lexer.Increment, TierPostfix, false, buildPostfixUpdate)
	registerInfix(lexer.Decrement, TierPostfix, false, buildPostfixUpdate)
	registerInfix(lexer.Period, TierCall, false, buildMember)
	registerInfix(lexer.LBrack, TierCall, false, buildComputedMember)
	registerInfix(lexer.LParen, TierCall, false, buildCall)
	registerInfix(lexer.TemplateOpen, TierCall, false, buildTaggedTemplate)
	registerInfix(lexer.TemplateClosed, TierCall, false, buildTaggedTemplate)
}

func registerInfix(t lexer.TokenType, tier Tier, rightAssoc bool, build func(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr) {
	infixTable[t] = &infixEntry{tier: tier, rightAssoc: rightAssoc, build: build}
}

func registerBinary(t lexer.TokenType, tier Tier, op string) {
	registerInfix(t, tier, false, buildBinaryOp(op))
}

func registerAssign(t lexer.TokenType, op string) {
	registerInfix(t, TierAssignment, true, buildAssignment(op))
}

// parseExpression is the Pratt entry point: parse a primary/prefix form,
// then fold in infix/postfix operators whose tier is >= minTier.
func (p *Parser) parseExpression(minTier Tier) ast.Expr {
	left := p.parsePrimary()
	return p.nestedExpression(left, minTier)
}

// nestedExpression implements precedence-climbing: it consumes operators at
// or above minTier, recursing at tier+1 for left-associative operators and
// at the same tier for right-associative ones.
func (p *Parser) nestedExpression(left ast.Expr, minTier Tier) ast.Expr {
	for {
		tok := p.tok()
		entry := infixTable[tok.Type]
		if entry == nil || entry.tier < minTier {
			return left
		}
		if (tok.Type == lexer.Increment || tok.Type == lexer.Decrement) && tok.ASI() == lexer.ASIImplicit {
			// a line terminator separates the operand from ++/--: not postfix here.
			return left
		}

		if tok.Type == lexer.TemplateOpen || tok.Type == lexer.TemplateClosed {
			// buildTaggedTemplate re-scans the still-current quasi token via
			// parseTemplateBody; advancing past it first (as the generic
			// path below does for ordinary operator tokens) would lose it.
			left = entry.build(p, left, tok, nil)
			continue
		}

		opStart := p.advance()
		nextTier := entry.tier
		if !entry.rightAssoc {
			nextTier++
		}
		if tok.Type == lexer.Question {
			// the consequent between `?` and `:` is bounded only by
			// assignment level, not by the conditional's own tier.
			nextTier = TierAssignment
		}
		var rhs ast.Expr
		switch tok.Type {
		case lexer.Increment, lexer.Decrement, lexer.Period, lexer.LBrack, lexer.LParen:
			// these handlers consume their own right-hand material.
		default:
			rhs = p.parseExpression(nextTier)
		}
		left = entry.build(p, left, opStart, rhs)
	}
}

func parseIdentifierPrimary(p *Parser) ast.Expr {
	tok := p.advance()
	id := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
	id.SetSpan(tok.Start, tok.End)
	if p.check(lexer.Arrow) {
		return p.finishArrow(tok.Start, arena.FromSingle[ast.Pattern](p.arena, ast.Pattern(id)))
	}
	return id
}

func parseThisPrimary(p *Parser) ast.Expr {
	tok := p.advance()
	n := ast.Alloc(p.arena, ast.ThisExpr{Base: ast.Base{Type: ast.KindThisExpr}})
	n.SetSpan(tok.Start, tok.End)
	return n
}

func parseSuperPrimary(p *Parser) ast.Expr {
	tok := p.advance()
	id := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: "super"})
	id.SetSpan(tok.Start, tok.End)
	return id
}

func parseStringLiteral(p *Parser) ast.Expr {
	tok := p.advance()
	raw := p.arena.Text(tok.Start, tok.End)
	cooked := raw
	if len(raw) >= 2 {
		cooked = raw[1 : len(raw)-1]
	}
	n := ast.Alloc(p.arena, ast.Literal{Base: ast.Base{Type: ast.KindLiteral}, LitKind: ast.LiteralString, Raw: raw, Value: cooked})
	n.SetSpan(tok.Start, tok.End)
	return n
}

func parseNumberLiteral(kind ast.LiteralKind) prefixHandler {
	return func(p *Parser) ast.Expr {
		tok := p.advance()
		n := ast.Alloc(p.arena, ast.Literal{Base: ast.Base{Type: ast.KindLiteral}, LitKind: kind, Raw: p.arena.Text(tok.Start, tok.End)})
		n.SetSpan(tok.Start, tok.End)
		return n
	}
}

func parseBoolLiteral(value bool) prefixHandler {
	kind := ast.LiteralFalse
	if value {
		kind = ast.LiteralTrue
	}
	return parseSimpleLiteral(kind)
}

func parseSimpleLiteral(kind ast.LiteralKind) prefixHandler {
	return func(p *Parser) ast.Expr {
		tok := p.advance()
		n := ast.Alloc(p.arena, ast.Literal{Base: ast.Base{Type: ast.KindLiteral}, LitKind: kind, Raw: p.arena.Text(tok.Start, tok.End)})
		n.SetSpan(tok.Start, tok.End)
		return n
	}
}

func parseRegexLiteral(p *Parser) ast.Expr {
	tok := p.lex.ReadRegularExpression()
	p.advance() // ReadRegularExpression only sets the current token; consume it
	raw := p.arena.Text(tok.Start, tok.End)
	pattern, flags := splitRegex(raw)
	n := ast.Alloc(p.arena, ast.RegexLiteral{Base: ast.Base{Type: ast.KindRegexLiteral}, Pattern: pattern, Flags: flags})
	n.SetSpan(tok.Start, tok.End)
	return n
}

func splitRegex(raw string) (pattern, flags string) {
	if len(raw) < 2 {
		return raw, ""
	}
	end := len(raw) - 1
	for end > 0 && raw[end] != '/' {
		end--
	}
	return raw[1:end], raw[end+1:]
}

// parseTemplateLiteral parses a standalone (untagged) template literal,
// starting from whatever quasi token the lexer currently holds.
func parseTemplateLiteral(p *Parser) ast.Expr {
	start := p.tok().Start
	tpl := p.parseTemplateBody()
	_, end := tpl.Span()
	tpl.SetSpan(start, end)
	return tpl
}

// parseTemplateBody consumes the sequence of quasis/expressions making up a
// template literal; the current token must be TemplateOpen or
// TemplateClosed.
func (p *Parser) parseTemplateBody() *ast.TemplateLiteral {
	quasis := arena.Empty[*ast.TemplateElement](p.arena)
	exprs := arena.Empty[ast.Expr](p.arena)
	start, end := p.tok().Start, p.tok().End

	for {
		tok := p.tok()
		el := ast.Alloc(p.arena, ast.TemplateElement{
			Raw:    p.lex.QuasiText(),
			Cooked: p.lex.QuasiText(),
			Tail:   tok.Type == lexer.TemplateClosed,
		})
		el.Type = ast.KindTemplateElement
		el.SetSpan(tok.Start, tok.End)
		quasis.Push(el)

		if tok.Type == lexer.TemplateClosed {
			end = tok.End
			p.advance()
			break
		}
		p.advance() // consume TemplateOpen, landing on the embedded expression
		exprs.Push(p.parseExpression(TierAssignment))
		if !p.check(lexer.RBrace) {
			p.addErrorf("expected '}' to close template interpolation, got %s", p.tok().Type)
		}
		// Do not use the normal advance/expect path here: the lexer's main
		// dispatch table would try to tokenize the quasi bytes that follow
		// `}` as JavaScript. ReadTemplateKind resumes quasi-mode scanning
		// from exactly where the `}` token's scan left the cursor.
		p.lex.ReadTemplateKind()
	}

	n := ast.Alloc(p.arena, ast.TemplateLiteral{Base: ast.Base{Type: ast.KindTemplateLiteral}, Quasis: quasis, Expressions: exprs})
	n.SetSpan(start, end)
	return n
}

func parseArrayExpr(p *Parser) ast.Expr {
	start := p.advance() // consume `[`
	elements := arena.Empty[ast.Expr](p.arena)
	for !p.check(lexer.RBrack) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Comma) {
			hole := p.hole()
			elements.Push(hole)
			p.advance()
			continue
		}
		if p.check(lexer.Spread) {
			spreadStart := p.advance()
			arg := p.parseExpression(TierArgument)
			sp := ast.Alloc(p.arena, ast.SpreadExpr{Base: ast.Base{Type: ast.KindSpreadExpr}, Argument: arg})
			_, end := arg.Span()
			sp.SetSpan(spreadStart.Start, end)
			elements.Push(sp)
		} else {
			elements.Push(p.parseExpression(TierArgument))
		}
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBrack)
	n := ast.Alloc(p.arena, ast.ArrayExpr{Base: ast.Base{Type: ast.KindArrayExpr}, Elements: elements})
	n.SetSpan(start.Start, end.End)
	return n
}

func parseObjectExpr(p *Parser) ast.Expr {
	start := p.advance() // consume `{`
	props := arena.Empty[ast.ObjectMember](p.arena)
	for !p.check(lexer.RBrace) && p.tok().Type != lexer.EOF {
		props.Push(p.parseObjectMember())
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBrace)
	n := ast.Alloc(p.arena, ast.ObjectExpr{Base: ast.Base{Type: ast.KindObjectExpr}, Properties: props})
	n.SetSpan(start.Start, end.End)
	return n
}

func (p *Parser) parseObjectMember() ast.ObjectMember {
	if p.check(lexer.Spread) {
		spreadStart := p.advance()
		arg := p.parseExpression(TierArgument)
		sp := ast.Alloc(p.arena, ast.SpreadExpr{Base: ast.Base{Type: ast.KindSpreadExpr}, Argument: arg})
		_, end := arg.Span()
		sp.SetSpan(spreadStart.Start, end)
		return sp
	}

	start := p.tok()
	getOrSet := ""
	if (p.tok().Type == lexer.Identifier) && (p.text() == "get" || p.text() == "set") {
		maybeKind := p.text()
		save := p.tok()
		p.advance()
		if !p.check(lexer.Colon) && !p.check(lexer.Comma) && !p.check(lexer.RBrace) && !p.check(lexer.LParen) {
			getOrSet = maybeKind
		} else {
			// was actually a plain shorthand/key named "get"/"set"; rewind by
			// treating save as the key below.
			return p.finishObjectShorthandOrValue(save)
		}
	}

	key, computed := p.parsePropertyKey()
	if p.check(lexer.LParen) || getOrSet != "" {
		fn := p.parseFunctionTail(nil, false)
		kind := "init"
		if getOrSet != "" {
			kind = getOrSet
		}
		prop := ast.Alloc(p.arena, ast.Property{Base: ast.Base{Type: ast.KindProperty}, Key: key, Value: fn, Computed: computed, Method: getOrSet == "", Kind: kind})
		_, end := fn.Span()
		prop.SetSpan(start.Start, end)
		return prop
	}
	if p.check(lexer.Colon) {
		p.advance()
		value := p.parseExpression(TierArgument)
		prop := ast.Alloc(p.arena, ast.Property{Base: ast.Base{Type: ast.KindProperty}, Key: key, Value: value, Computed: computed, Kind: "init"})
		_, end := value.Span()
		prop.SetSpan(start.Start, end)
		return prop
	}
	// shorthand `{x}` or `{x = default}` (the latter only valid as a pattern,
	// tolerated here and left for the assignment-pattern conversion pass).
	var value ast.Expr = key
	if p.check(lexer.Assign) {
		p.advance()
		def := p.parseExpression(TierArgument)
		asg := ast.Alloc(p.arena, ast.BinaryExpr{Base: ast.Base{Type: ast.KindBinaryExpr}, Operator: "=", Left: key, Right: def})
		ks, _ := key.Span()
		_, de := def.Span()
		asg.SetSpan(ks, de)
		value = asg
	}
	_, end := value.Span()
	prop := ast.Alloc(p.arena, ast.Property{Base: ast.Base{Type: ast.KindProperty}, Key: key, Value: value, Shorthand: true, Kind: "init"})
	prop.SetSpan(start.Start, end)
	return prop
}

func (p *Parser) finishObjectShorthandOrValue(keyTok lexer.Token) ast.ObjectMember {
	key := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(keyTok.Start, keyTok.End)})
	key.SetSpan(keyTok.Start, keyTok.End)
	if p.check(lexer.LParen) {
		fn := p.parseFunctionTail(nil, false)
		prop := ast.Alloc(p.arena, ast.Property{Base: ast.Base{Type: ast.KindProperty}, Key: key, Value: fn, Method: true, Kind: "init"})
		_, end := fn.Span()
		prop.SetSpan(keyTok.Start, end)
		return prop
	}
	if p.check(lexer.Colon) {
		p.advance()
		value := p.parseExpression(TierArgument)
		prop := ast.Alloc(p.arena, ast.Property{Base: ast.Base{Type: ast.KindProperty}, Key: key, Value: value, Kind: "init"})
		_, end := value.Span()
		prop.SetSpan(keyTok.Start, end)
		return prop
	}
	prop := ast.Alloc(p.arena, ast.Property{Base: ast.Base{Type: ast.KindProperty}, Key: key, Value: key, Shorthand: true, Kind: "init"})
	prop.SetSpan(keyTok.Start, keyTok.End)
	return prop
}

// parsePropertyKey reads an object/class member key: an identifier,
// accessor-shaped keyword, string, number, or a computed `[expr]` key.
func (p *Parser) parsePropertyKey() (ast.Expr, bool) {
	if p.check(lexer.LBrack) {
		p.advance()
		key := p.parseExpression(TierAssignment)
		p.expect(lexer.RBrack)
		return key, true
	}
	if p.check(lexer.LiteralString) {
		return parseStringLiteral(p), false
	}
	if p.check(lexer.LiteralNumber) {
		return parseNumberLiteral(ast.LiteralNumber)(p), false
	}
	tok := p.advance()
	id := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
	id.SetSpan(tok.Start, tok.End)
	return id, false
}

// parseParenOrArrow handles `(` in expression position: either a
// parenthesized expression/sequence, or — when `=>` follows the closing
// paren — an arrow function's parameter list.
func parseParenOrArrow(p *Parser) ast.Expr {
	start := p.advance() // consume `(`
	items := arena.Empty[ast.Expr](p.arena)
	for !p.check(lexer.RParen) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Spread) {
			spreadStart := p.advance()
			arg := p.parseExpression(TierArgument)
			sp := ast.Alloc(p.arena, ast.SpreadExpr{Base: ast.Base{Type: ast.KindSpreadExpr}, Argument: arg})
			_, end := arg.Span()
			sp.SetSpan(spreadStart.Start, end)
			items.Push(sp)
		} else {
			items.Push(p.parseExpression(TierArgument))
		}
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.RParen)

	if p.check(lexer.Arrow) {
		params := arena.Empty[ast.Pattern](p.arena)
		for _, it := range items.Slice() {
			params.Push(p.exprToPattern(it))
		}
		return p.finishArrow(start.Start, params)
	}

	slice := items.Slice()
	switch len(slice) {
	case 0:
		p.addErrorf("unexpected empty parentheses")
		return p.hole()
	case 1:
		return slice[0]
	default:
		seq := ast.Alloc(p.arena, ast.SequenceExpr{Base: ast.Base{Type: ast.KindSequenceExpr}, Expressions: items})
		first := slice[0]
		last := slice[len(slice)-1]
		fs, _ := first.Span()
		_, le := last.Span()
		seq.SetSpan(fs, le)
		return seq
	}
}

// finishArrow parses `=> body` given an already-consumed parameter list.
func (p *Parser) finishArrow(start int, params arena.List[ast.Pattern]) ast.Expr {
	p.expect(lexer.Arrow)
	var body ast.Node
	exprBody := false
	if p.check(lexer.LBrace) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression(TierAssignment)
		exprBody = true
	}
	_, end := body.Span()
	fn := ast.Alloc(p.arena, ast.ArrowFunctionExpr{Base: ast.Base{Type: ast.KindArrowFunctionExpr}, Params: params, Body: body, ExprBody: exprBody})
	fn.SetSpan(start, end)
	return fn
}

func parseFunctionExpr(p *Parser) ast.Expr {
	start := p.advance() // consume `function`
	generator := false
	if p.check(lexer.Mul) {
		p.advance()
		generator = true
	}
	var name *ast.Identifier
	if p.check(lexer.Identifier) {
		tok := p.advance()
		name = ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
		name.SetSpan(tok.Start, tok.End)
	}
	fn := p.parseFunctionTail(name, generator)
	_, end := fn.Span()
	fn.(*ast.FunctionExpr).SetSpan(start.Start, end)
	return fn
}

// parseFunctionTail parses `(params) { body }` given an already-consumed
// `function` keyword (and optional name/generator flag).
func (p *Parser) parseFunctionTail(name *ast.Identifier, generator bool) ast.Expr {
	params := p.parseParamList()
	body := p.parseBlock()
	fn := ast.Alloc(p.arena, ast.FunctionExpr{Base: ast.Base{Type: ast.KindFunctionExpr}, Name: name, Generator: generator, Params: params, Body: body})
	start := body.Start
	if name != nil {
		start = name.Start
	}
	fn.SetSpan(start, body.End)
	return fn
}

func (p *Parser) parseParamList() arena.List[ast.Pattern] {
	p.expect(lexer.LParen)
	params := arena.Empty[ast.Pattern](p.arena)
	for !p.check(lexer.RParen) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Spread) {
			restStart := p.advance()
			arg := p.parsePattern()
			rest := ast.Alloc(p.arena, ast.RestElement{Base: ast.Base{Type: ast.KindRestElement}, Argument: arg})
			_, end := arg.Span()
			rest.SetSpan(restStart.Start, end)
			params.Push(rest)
			if p.check(lexer.Comma) {
				p.addErrorf("rest parameter must be last")
			}
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
			params.Push(pat)
		}
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.RParen)
	return params
}

func parseClassExpr(p *Parser) ast.Expr {
	start := p.advance() // consume `class`
	var name *ast.Identifier
	if p.check(lexer.Identifier) {
		tok := p.advance()
		name = ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
		name.SetSpan(tok.Start, tok.End)
	}
	var super ast.Expr
	if p.check(lexer.KeywordExtends) {
		p.advance()
		super = p.parseExpression(TierCall)
	}
	body := p.parseClassBody()
	n := ast.Alloc(p.arena, ast.ClassExpr{Base: ast.Base{Type: ast.KindClassExpr}, Name: name, SuperClass: super, Body: body})
	_, end := body.Span()
	n.SetSpan(start.Start, end)
	return n
}

func parseNewExpr(p *Parser) ast.Expr {
	start := p.advance() // consume `new`
	if p.check(lexer.Period) {
		p.advance()
		// as in buildMember, the property was already scanned as the
		// current token by the Period's own consumption above.
		prop := p.advance()
		propName := p.arena.Text(prop.Start, prop.End)
		if propName != "target" {
			p.addErrorf("the only valid new meta property is new.target")
		}
		n := ast.Alloc(p.arena, ast.MetaProperty{Base: ast.Base{Type: ast.KindMetaProperty}, Meta: "new", Property: propName})
		n.SetSpan(start.Start, prop.End)
		return n
	}

	callee := p.parseMemberChainNoCall()
	args := arena.Empty[ast.Expr](p.arena)
	end := callee.(ast.Node)
	_, endPos := end.Span()
	if p.check(lexer.LParen) {
		var argsTok lexer.Token
		args, argsTok = p.parseArguments()
		endPos = argsTok.End
	}
	call := ast.Alloc(p.arena, ast.CallExpr{Base: ast.Base{Type: ast.KindCallExpr}, Callee: callee, Arguments: args})
	cs, _ := callee.Span()
	call.SetSpan(cs, endPos)

	n := ast.Alloc(p.arena, ast.PrefixExpr{Base: ast.Base{Type: ast.KindPrefixExpr}, Operator: "new", Argument: call})
	n.SetSpan(start.Start, endPos)
	return n
}

// parseMemberChainNoCall parses a primary expression followed by dotted and
// computed member accesses, but stops before any `(` call — used for a
// `new` expression's callee, where call parens belong to `new` itself.
func (p *Parser) parseMemberChainNoCall() ast.Expr {
	left := p.parsePrimary()
	for {
		switch p.tok().Type {
		case lexer.Period:
			opStart := p.advance()
			left = buildMember(p, left, opStart, nil)
		case lexer.LBrack:
			opStart := p.advance()
			left = buildComputedMember(p, left, opStart, nil)
		default:
			return left
		}
	}
}

func parsePrefixUnary(p *Parser) ast.Expr {
	tok := p.advance()
	op := lexer.TokenType(tok.Type).String()
	arg := p.parseExpression(TierPrefix)
	n := ast.Alloc(p.arena, ast.PrefixExpr{Base: ast.Base{Type: ast.KindPrefixExpr}, Operator: op, Argument: arg})
	_, end := arg.Span()
	n.SetSpan(tok.Start, end)
	return n
}

func parsePrefixUpdate(p *Parser) ast.Expr {
	tok := p.advance()
	op := tok.Type.String()
	arg := p.parseExpression(TierPrefix)
	if !isLvalue(arg) {
		p.addErrorf("invalid operand for prefix %s", op)
	}
	n := ast.Alloc(p.arena, ast.PrefixExpr{Base: ast.Base{Type: ast.KindPrefixExpr}, Operator: op, Argument: arg})
	_, end := arg.Span()
	n.SetSpan(tok.Start, end)
	return n
}

func buildSequence(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	var seq *ast.SequenceExpr
	if s, ok := left.(*ast.SequenceExpr); ok {
		seq = s
		seq.Expressions.Push(rhs)
	} else {
		exprs := arena.FromSingle[ast.Expr](p.arena, left)
		exprs.Push(rhs)
		seq = ast.Alloc(p.arena, ast.SequenceExpr{Base: ast.Base{Type: ast.KindSequenceExpr}, Expressions: exprs})
	}
	s, _ := left.Span()
	_, e := rhs.Span()
	seq.SetSpan(s, e)
	return seq
}

func buildConditional(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	// rhs was already parsed at TierAssignment (nestedExpression's special
	// case for `?`); reinterpret it as the consequent, then parse the `:`
	// alternate explicitly.
	consequent := rhs
	p.expect(lexer.Colon)
	alternate := p.parseExpression(TierAssignment)
	n := ast.Alloc(p.arena, ast.ConditionalExpr{Base: ast.Base{Type: ast.KindConditionalExpr}, Test: left, Consequent: consequent, Alternate: alternate})
	s, _ := left.Span()
	_, e := alternate.Span()
	n.SetSpan(s, e)
	return n
}

func buildBinaryOp(op string) func(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	return func(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
		n := ast.Alloc(p.arena, ast.BinaryExpr{Base: ast.Base{Type: ast.KindBinaryExpr}, Operator: op, Left: left, Right: rhs})
		s, _ := left.Span()
		_, e := rhs.Span()
		n.SetSpan(s, e)
		return n
	}
}

func buildAssignment(op string) func(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	return func(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
		if !isLvalue(left) {
			p.addErrorf("invalid assignment target")
		}
		n := ast.Alloc(p.arena, ast.BinaryExpr{Base: ast.Base{Type: ast.KindBinaryExpr}, Operator: op, Left: left, Right: rhs})
		s, _ := left.Span()
		_, e := rhs.Span()
		n.SetSpan(s, e)
		return n
	}
}

func buildPostfixUpdate(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	if !isLvalue(left) {
		p.addErrorf("invalid operand for postfix %s", opStart.Type)
	}
	n := ast.Alloc(p.arena, ast.PostfixExpr{Base: ast.Base{Type: ast.KindPostfixExpr}, Operator: opStart.Type.String(), Argument: left})
	s, _ := left.Span()
	n.SetSpan(s, opStart.End)
	return n
}

func buildMember(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	// the property name was already scanned as the lexer's current token
	// when opStart's consumption (p.advance()) pre-loaded it; ReadAccessor
	// would rescan from the cursor's current position, which by now sits
	// past the property, not at its start.
	tok := p.advance()
	prop := ast.Alloc(p.arena, ast.Identifier{Base: ast.Base{Type: ast.KindIdentifier}, Name: p.arena.Text(tok.Start, tok.End)})
	prop.SetSpan(tok.Start, tok.End)
	n := ast.Alloc(p.arena, ast.MemberExpr{Base: ast.Base{Type: ast.KindMemberExpr}, Object: left, Property: prop})
	s, _ := left.Span()
	n.SetSpan(s, tok.End)
	return n
}

func buildComputedMember(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	prop := p.parseExpression(TierNone)
	end := p.expect(lexer.RBrack)
	n := ast.Alloc(p.arena, ast.ComputedMemberExpr{Base: ast.Base{Type: ast.KindComputedMemberExpr}, Object: left, Property: prop})
	s, _ := left.Span()
	n.SetSpan(s, end.End)
	return n
}

// parseArguments parses a `(args...)` list, consuming both the opening and
// the closing paren itself. The new-expression parser calls it while `(` is
// still the current token; ordinary calls go through buildCall instead,
// which the infix loop reaches after it has consumed `(`.
func (p *Parser) parseArguments() (arena.List[ast.Expr], lexer.Token) {
	args := arena.Empty[ast.Expr](p.arena)
	p.expect(lexer.LParen)
	for !p.check(lexer.RParen) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Spread) {
			spreadStart := p.advance()
			arg := p.parseExpression(TierArgument)
			sp := ast.Alloc(p.arena, ast.SpreadExpr{Base: ast.Base{Type: ast.KindSpreadExpr}, Argument: arg})
			_, end := arg.Span()
			sp.SetSpan(spreadStart.Start, end)
			args.Push(sp)
		} else {
			args.Push(p.parseExpression(TierArgument))
		}
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RParen)
	return args, end
}

func buildCall(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	args := arena.Empty[ast.Expr](p.arena)
	for !p.check(lexer.RParen) && p.tok().Type != lexer.EOF {
		if p.check(lexer.Spread) {
			spreadStart := p.advance()
			arg := p.parseExpression(TierArgument)
			sp := ast.Alloc(p.arena, ast.SpreadExpr{Base: ast.Base{Type: ast.KindSpreadExpr}, Argument: arg})
			_, end := arg.Span()
			sp.SetSpan(spreadStart.Start, end)
			args.Push(sp)
		} else {
			args.Push(p.parseExpression(TierArgument))
		}
		if p.check(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RParen)
	n := ast.Alloc(p.arena, ast.CallExpr{Base: ast.Base{Type: ast.KindCallExpr}, Callee: left, Arguments: args})
	s, _ := left.Span()
	n.SetSpan(s, end.End)
	return n
}

func buildTaggedTemplate(p *Parser, left ast.Expr, opStart lexer.Token, rhs ast.Expr) ast.Expr {
	quasi := p.parseTemplateBody()
	n := ast.Alloc(p.arena, ast.TaggedTemplateExpr{Base: ast.Base{Type: ast.KindTaggedTemplateExpr}, Tag: left, Quasi: quasi})
	s, _ := left.Span()
	_, e := quasi.Span()
	n.SetSpan(s, e)
	return n
}

// isLvalue reports whether e is a valid assignment/increment/decrement
// target: an identifier, a dotted member, or a computed member.
func isLvalue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpr, *ast.ComputedMemberExpr:
		return true
	default:
		return false
	}
}

// parsePrimary consults the prefix table keyed on the current token.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.tok()
	handler := prefixTable[tok.Type]
	if handler == nil {
		p.addErrorf("unexpected token %s", tok.Type)
		p.advance()
		return p.hole()
	}
	return handler(p)
}
