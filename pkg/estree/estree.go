// Package estree converts a parsed *ast.Module into ESTree-shaped JSON. It
// is a pure consumer of pkg/ast: it walks the tree and renames variants, it
// never builds or mutates one (see pkg/ast's package doc).
package estree

import (
	"encoding/json"
	"strconv"

	"github.com/arborjs/jsparse/pkg/ast"
)

// Options selects which optional fields a serialization attaches to every
// node, mirroring pkg/parser.Options' Loc/Range knobs.
type Options struct {
	Loc   bool
	Range bool
}

// Position is a 1-based line, 0-based column pair, matching ESTree/Acorn.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the `loc` field attached to a node when Options.Loc is set.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Node is a generic ESTree node: a JSON object keyed by field name. Using a
// map instead of one Go struct per ESTree type avoids a second, shadow
// struct hierarchy next to pkg/ast's — the struct hierarchy this package
// exists to avoid hanging JSON-shape concerns off of.
type Node map[string]any

// lineIndex maps a byte offset into source to a (line, column) pair, built
// once per serialization.
type lineIndex struct {
	lineStarts []int
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{lineStarts: starts}
}

func (li *lineIndex) position(offset int) Position {
	lo, hi := 0, len(li.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Position{Line: lo + 1, Column: offset - li.lineStarts[lo]}
}

type serializer struct {
	src  string
	li   *lineIndex
	opts Options
}

// Serialize walks mod and returns its ESTree `Program` representation.
func Serialize(mod *ast.Module, source string, opts Options) Node {
	s := &serializer{src: source, li: newLineIndex(source), opts: opts}
	return s.program(mod)
}

// Marshal serializes mod and encodes it as JSON, pretty-printed when pretty
// is true.
func Marshal(mod *ast.Module, source string, opts Options, pretty bool) ([]byte, error) {
	n := Serialize(mod, source, opts)
	if pretty {
		return json.MarshalIndent(n, "", "  ")
	}
	return json.Marshal(n)
}

func (s *serializer) base(kind string, n ast.Node) Node {
	start, end := n.Span()
	out := Node{"type": kind}
	if s.opts.Range {
		out["range"] = [2]int{start, end}
	}
	if s.opts.Loc {
		out["loc"] = SourceLocation{Start: s.li.position(start), End: s.li.position(end)}
	}
	return out
}

func (s *serializer) program(mod *ast.Module) Node {
	n := s.base("Program", mod)
	n["sourceType"] = "script"
	n["body"] = s.stmtList(mod.Body.Slice())
	return n
}

func (s *serializer) stmtList(stmts []ast.Stmt) []any {
	out := make([]any, len(stmts))
	for i, st := range stmts {
		out[i] = s.stmt(st)
	}
	return out
}

func (s *serializer) exprOrNull(e ast.Expr) any {
	if e == nil {
		return nil
	}
	return s.expr(e)
}

func (s *serializer) identOrNull(id *ast.Identifier) any {
	if id == nil {
		return nil
	}
	return s.expr(id)
}

func (s *serializer) stmt(st ast.Stmt) Node {
	switch v := st.(type) {
	case *ast.EmptyStmt:
		return s.base("EmptyStatement", v)
	case *ast.ExpressionStmt:
		n := s.base("ExpressionStatement", v)
		n["expression"] = s.expr(v.Expression)
		return n
	case *ast.VariableDeclaration:
		n := s.base("VariableDeclaration", v)
		n["kind"] = v.DeclKind
		decls := v.Declarations.Slice()
		list := make([]any, len(decls))
		for i, d := range decls {
			list[i] = s.declarator(d)
		}
		n["declarations"] = list
		return n
	case *ast.ReturnStmt:
		n := s.base("ReturnStatement", v)
		n["argument"] = s.exprOrNull(v.Argument)
		return n
	case *ast.BreakStmt:
		n := s.base("BreakStatement", v)
		n["label"] = s.identOrNull(v.Label)
		return n
	case *ast.ContinueStmt:
		n := s.base("ContinueStatement", v)
		n["label"] = s.identOrNull(v.Label)
		return n
	case *ast.ThrowStmt:
		n := s.base("ThrowStatement", v)
		n["argument"] = s.expr(v.Argument)
		return n
	case *ast.IfStmt:
		n := s.base("IfStatement", v)
		n["test"] = s.expr(v.Test)
		n["consequent"] = s.stmt(v.Consequent)
		if v.Alternate != nil {
			n["alternate"] = s.stmt(v.Alternate)
		} else {
			n["alternate"] = nil
		}
		return n
	case *ast.WhileStmt:
		n := s.base("WhileStatement", v)
		n["test"] = s.expr(v.Test)
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.DoWhileStmt:
		n := s.base("DoWhileStatement", v)
		n["body"] = s.stmt(v.Body)
		n["test"] = s.expr(v.Test)
		return n
	case *ast.ForStmt:
		n := s.base("ForStatement", v)
		n["init"] = s.forHead(v.Init)
		n["test"] = s.exprOrNull(v.Test)
		n["update"] = s.exprOrNull(v.Update)
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.ForInStmt:
		n := s.base("ForInStatement", v)
		n["left"] = s.forHead(v.Left)
		n["right"] = s.expr(v.Right)
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.ForOfStmt:
		n := s.base("ForOfStatement", v)
		n["left"] = s.forHead(v.Left)
		n["right"] = s.expr(v.Right)
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.TryStmt:
		n := s.base("TryStatement", v)
		n["block"] = s.stmt(v.Block)
		if v.Handler != nil {
			n["handler"] = s.catchClause(v.Handler)
		} else {
			n["handler"] = nil
		}
		if v.Finalizer != nil {
			n["finalizer"] = s.stmt(v.Finalizer)
		} else {
			n["finalizer"] = nil
		}
		return n
	case *ast.BlockStmt:
		n := s.base("BlockStatement", v)
		n["body"] = s.stmtList(v.Body.Slice())
		return n
	case *ast.LabeledStmt:
		n := s.base("LabeledStatement", v)
		n["label"] = s.expr(v.Label)
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.SwitchStmt:
		n := s.base("SwitchStatement", v)
		n["discriminant"] = s.expr(v.Discriminant)
		cases := v.Cases.Slice()
		list := make([]any, len(cases))
		for i, c := range cases {
			list[i] = s.switchCase(c)
		}
		n["cases"] = list
		return n
	case *ast.FunctionDeclaration:
		n := s.base("FunctionDeclaration", v)
		n["id"] = s.identOrNull(v.Name)
		n["generator"] = v.Generator
		n["params"] = s.patternList(v.Params.Slice())
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.ClassDeclaration:
		n := s.base("ClassDeclaration", v)
		n["id"] = s.identOrNull(v.Name)
		n["superClass"] = s.exprOrNull(v.SuperClass)
		n["body"] = s.classBody(v.Body)
		return n
	default:
		return Node{"type": "Unknown"}
	}
}

// forHead serializes a for/for-in/for-of head, which is either nil, a
// *ast.VariableDeclaration, or an ast.Expr used as an assignment target.
func (s *serializer) forHead(n ast.Node) any {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *ast.VariableDeclaration:
		return s.stmt(v)
	case ast.Expr:
		return s.expr(v)
	default:
		return nil
	}
}

func (s *serializer) declarator(d *ast.VariableDeclarator) Node {
	n := s.base("VariableDeclarator", d)
	n["id"] = s.pattern(d.ID)
	n["init"] = s.exprOrNull(d.Init)
	return n
}

func (s *serializer) catchClause(c *ast.CatchClause) Node {
	n := s.base("CatchClause", c)
	if c.Param != nil {
		n["param"] = s.pattern(c.Param)
	} else {
		n["param"] = nil
	}
	n["body"] = s.stmt(c.Body)
	return n
}

func (s *serializer) switchCase(c *ast.SwitchCase) Node {
	n := s.base("SwitchCase", c)
	n["test"] = s.exprOrNull(c.Test)
	n["consequent"] = s.stmtList(c.Consequent.Slice())
	return n
}

func (s *serializer) classBody(b *ast.ClassBody) Node {
	n := s.base("ClassBody", b)
	members := b.Body.Slice()
	list := make([]any, len(members))
	for i, m := range members {
		list[i] = s.classMember(m)
	}
	n["body"] = list
	return n
}

func (s *serializer) classMember(m ast.ClassMember) Node {
	switch v := m.(type) {
	case *ast.MethodDefinition:
		n := s.base("MethodDefinition", v)
		n["static"] = v.Static
		n["kind"] = v.Kind
		n["key"] = s.expr(v.Key)
		n["computed"] = v.Computed
		n["value"] = s.expr(v.Value)
		return n
	case *ast.PropertyDefinition:
		n := s.base("PropertyDefinition", v)
		n["static"] = v.Static
		n["key"] = s.expr(v.Key)
		n["computed"] = v.Computed
		n["value"] = s.exprOrNull(v.Value)
		return n
	default:
		return Node{"type": "Unknown"}
	}
}

func (s *serializer) objectMember(m ast.ObjectMember) Node {
	switch v := m.(type) {
	case *ast.Property:
		n := s.base("Property", v)
		n["key"] = s.expr(v.Key)
		n["value"] = s.expr(v.Value)
		n["computed"] = v.Computed
		n["shorthand"] = v.Shorthand
		n["method"] = v.Method
		kind := v.Kind
		if kind == "" {
			kind = "init"
		}
		n["kind"] = kind
		return n
	case *ast.SpreadExpr:
		n := s.base("SpreadElement", v)
		n["argument"] = s.expr(v.Argument)
		return n
	default:
		return Node{"type": "Unknown"}
	}
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true, "^=": true,
}

func (s *serializer) expr(e ast.Expr) Node {
	switch v := e.(type) {
	case *ast.Identifier:
		n := s.base("Identifier", v)
		n["name"] = v.Name
		return n
	case *ast.ThisExpr:
		return s.base("ThisExpression", v)
	case *ast.Literal:
		return s.literal(v)
	case *ast.RegexLiteral:
		n := s.base("Literal", v)
		n["value"] = nil
		n["raw"] = "/" + v.Pattern + "/" + v.Flags
		n["regex"] = Node{"pattern": v.Pattern, "flags": v.Flags}
		return n
	case *ast.TemplateLiteral:
		return s.templateLiteral(v)
	case *ast.Hole:
		return nil
	case *ast.ArrayExpr:
		n := s.base("ArrayExpression", v)
		n["elements"] = s.arrayElements(v.Elements.Slice())
		return n
	case *ast.ObjectExpr:
		n := s.base("ObjectExpression", v)
		members := v.Properties.Slice()
		list := make([]any, len(members))
		for i, m := range members {
			list[i] = s.objectMember(m)
		}
		n["properties"] = list
		return n
	case *ast.SequenceExpr:
		n := s.base("SequenceExpression", v)
		items := v.Expressions.Slice()
		list := make([]any, len(items))
		for i, it := range items {
			list[i] = s.expr(it)
		}
		n["expressions"] = list
		return n
	case *ast.MemberExpr:
		n := s.base("MemberExpression", v)
		n["object"] = s.expr(v.Object)
		n["property"] = s.expr(v.Property)
		n["computed"] = false
		return n
	case *ast.ComputedMemberExpr:
		n := s.base("MemberExpression", v)
		n["object"] = s.expr(v.Object)
		n["property"] = s.expr(v.Property)
		n["computed"] = true
		return n
	case *ast.MetaProperty:
		n := s.base("MetaProperty", v)
		n["meta"] = Node{"type": "Identifier", "name": v.Meta}
		n["property"] = Node{"type": "Identifier", "name": v.Property}
		return n
	case *ast.CallExpr:
		n := s.base("CallExpression", v)
		n["callee"] = s.expr(v.Callee)
		n["arguments"] = s.argumentList(v.Arguments.Slice())
		return n
	case *ast.ConditionalExpr:
		n := s.base("ConditionalExpression", v)
		n["test"] = s.expr(v.Test)
		n["consequent"] = s.expr(v.Consequent)
		n["alternate"] = s.expr(v.Alternate)
		return n
	case *ast.ArrowFunctionExpr:
		n := s.base("ArrowFunctionExpression", v)
		n["id"] = nil
		n["generator"] = v.Generator
		n["expression"] = v.ExprBody
		n["params"] = s.patternList(v.Params.Slice())
		if v.ExprBody {
			n["body"] = s.expr(v.Body.(ast.Expr))
		} else {
			n["body"] = s.stmt(v.Body.(ast.Stmt))
		}
		return n
	case *ast.FunctionExpr:
		n := s.base("FunctionExpression", v)
		n["id"] = s.identOrNull(v.Name)
		n["generator"] = v.Generator
		n["params"] = s.patternList(v.Params.Slice())
		n["body"] = s.stmt(v.Body)
		return n
	case *ast.ClassExpr:
		n := s.base("ClassExpression", v)
		n["id"] = s.identOrNull(v.Name)
		n["superClass"] = s.exprOrNull(v.SuperClass)
		n["body"] = s.classBody(v.Body)
		return n
	case *ast.PrefixExpr:
		return s.prefixExpr(v)
	case *ast.PostfixExpr:
		n := s.base("UpdateExpression", v)
		n["operator"] = v.Operator
		n["prefix"] = false
		n["argument"] = s.expr(v.Argument)
		return n
	case *ast.BinaryExpr:
		return s.binaryExpr(v)
	case *ast.SpreadExpr:
		n := s.base("SpreadElement", v)
		n["argument"] = s.expr(v.Argument)
		return n
	case *ast.TaggedTemplateExpr:
		n := s.base("TaggedTemplateExpression", v)
		n["tag"] = s.expr(v.Tag)
		n["quasi"] = s.templateLiteral(v.Quasi)
		return n
	default:
		return Node{"type": "Unknown"}
	}
}

func (s *serializer) literal(v *ast.Literal) Node {
	n := s.base("Literal", v)
	n["raw"] = v.Raw
	switch v.LitKind {
	case ast.LiteralString:
		n["value"] = v.Value
	case ast.LiteralNumber:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			n["value"] = f
		} else {
			n["value"] = v.Raw
		}
	case ast.LiteralTrue:
		n["value"] = true
	case ast.LiteralFalse:
		n["value"] = false
	case ast.LiteralNull:
		n["value"] = nil
	case ast.LiteralUndefined:
		n["value"] = nil
	}
	return n
}

func (s *serializer) templateLiteral(v *ast.TemplateLiteral) Node {
	n := s.base("TemplateLiteral", v)
	quasis := v.Quasis.Slice()
	qlist := make([]any, len(quasis))
	for i, q := range quasis {
		qn := s.base("TemplateElement", q)
		qn["tail"] = q.Tail
		qn["value"] = Node{"raw": q.Raw, "cooked": q.Cooked}
		qlist[i] = qn
	}
	n["quasis"] = qlist
	exprs := v.Expressions.Slice()
	elist := make([]any, len(exprs))
	for i, e := range exprs {
		elist[i] = s.expr(e)
	}
	n["expressions"] = elist
	return n
}

// prefixExpr dispatches `new`, `++`/`--`, and plain unary operators to the
// three distinct ESTree node shapes they correspond to.
func (s *serializer) prefixExpr(v *ast.PrefixExpr) Node {
	if v.Operator == "new" {
		call, ok := v.Argument.(*ast.CallExpr)
		if !ok {
			n := s.base("NewExpression", v)
			n["callee"] = s.expr(v.Argument)
			n["arguments"] = []any{}
			return n
		}
		n := s.base("NewExpression", v)
		n["callee"] = s.expr(call.Callee)
		n["arguments"] = s.argumentList(call.Arguments.Slice())
		return n
	}
	if v.Operator == "++" || v.Operator == "--" {
		n := s.base("UpdateExpression", v)
		n["operator"] = v.Operator
		n["prefix"] = true
		n["argument"] = s.expr(v.Argument)
		return n
	}
	n := s.base("UnaryExpression", v)
	n["operator"] = v.Operator
	n["prefix"] = true
	n["argument"] = s.expr(v.Argument)
	return n
}

func (s *serializer) binaryExpr(v *ast.BinaryExpr) Node {
	if assignOps[v.Operator] {
		n := s.base("AssignmentExpression", v)
		n["operator"] = v.Operator
		n["left"] = s.expr(v.Left)
		n["right"] = s.expr(v.Right)
		return n
	}
	if v.Operator == "&&" || v.Operator == "||" {
		n := s.base("LogicalExpression", v)
		n["operator"] = v.Operator
		n["left"] = s.expr(v.Left)
		n["right"] = s.expr(v.Right)
		return n
	}
	n := s.base("BinaryExpression", v)
	n["operator"] = v.Operator
	n["left"] = s.expr(v.Left)
	n["right"] = s.expr(v.Right)
	return n
}

// arrayElements serializes array-literal elements: holes become `null`,
// and trailing holes are dropped entirely before serialization.
func (s *serializer) arrayElements(elems []ast.Expr) []any {
	last := len(elems)
	for last > 0 {
		if _, ok := elems[last-1].(*ast.Hole); ok {
			last--
			continue
		}
		break
	}
	out := make([]any, last)
	for i := 0; i < last; i++ {
		out[i] = s.expr(elems[i])
	}
	return out
}

func (s *serializer) argumentList(args []ast.Expr) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = s.expr(a)
	}
	return out
}

func (s *serializer) patternList(pats []ast.Pattern) []any {
	out := make([]any, len(pats))
	for i, p := range pats {
		out[i] = s.pattern(p)
	}
	return out
}

func (s *serializer) pattern(p ast.Pattern) Node {
	switch v := p.(type) {
	case *ast.Identifier:
		return s.expr(v)
	case *ast.Hole:
		return nil
	case *ast.ArrayPattern:
		n := s.base("ArrayPattern", v)
		n["elements"] = s.patternElements(v.Elements.Slice())
		return n
	case *ast.ObjectPattern:
		n := s.base("ObjectPattern", v)
		props := v.Properties.Slice()
		list := make([]any, len(props))
		for i, pr := range props {
			list[i] = s.objectPatternProperty(pr)
		}
		n["properties"] = list
		return n
	case *ast.AssignmentPattern:
		n := s.base("AssignmentPattern", v)
		n["left"] = s.pattern(v.Left)
		n["right"] = s.expr(v.Right)
		return n
	case *ast.RestElement:
		n := s.base("RestElement", v)
		n["argument"] = s.pattern(v.Argument)
		return n
	default:
		return Node{"type": "Unknown"}
	}
}

func (s *serializer) patternElements(pats []ast.Pattern) []any {
	out := make([]any, len(pats))
	for i, p := range pats {
		out[i] = s.pattern(p)
	}
	return out
}

func (s *serializer) objectPatternProperty(pr *ast.ObjectPatternProperty) Node {
	n := s.base("Property", pr)
	n["key"] = s.expr(pr.Key)
	n["value"] = s.pattern(pr.Value)
	n["computed"] = pr.Computed
	n["shorthand"] = pr.Shorthand
	n["kind"] = "init"
	return n
}
