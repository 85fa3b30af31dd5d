package parser

import (
	"testing"

	"github.com/arborjs/jsparse/pkg/ast"
)

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return mod
}

func TestParseEmptyInput(t *testing.T) {
	mod := mustParse(t, "")
	if mod.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %d statements", mod.Body.Len())
	}
}

func TestParseSingleComment(t *testing.T) {
	mod := mustParse(t, "// just a comment\n")
	if mod.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %d statements", mod.Body.Len())
	}
}

func TestParseEmptyStatements(t *testing.T) {
	mod := mustParse(t, ";;;")
	if mod.Body.Len() != 3 {
		t.Fatalf("expected 3 statements, got %d", mod.Body.Len())
	}
	for i, st := range mod.Body.Slice() {
		if _, ok := st.(*ast.EmptyStmt); !ok {
			t.Fatalf("statement %d: expected EmptyStmt, got %T", i, st)
		}
	}
}

func TestParseVariableDeclarationWithBinaryInit(t *testing.T) {
	mod := mustParse(t, "let x = 1 + 2;")
	if mod.Body.Len() != 1 {
		t.Fatalf("expected 1 statement, got %d", mod.Body.Len())
	}
	decl, ok := mod.Body.Slice()[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", mod.Body.Slice()[0])
	}
	if decl.DeclKind != "let" {
		t.Fatalf("expected kind let, got %s", decl.DeclKind)
	}
	if decl.Declarations.Len() != 1 {
		t.Fatalf("expected 1 declarator, got %d", decl.Declarations.Len())
	}
	d := decl.Declarations.Slice()[0]
	id, ok := d.ID.(*ast.Identifier)
	if !ok || id.Name != "x" {
		t.Fatalf("expected identifier x, got %#v", d.ID)
	}
	bin, ok := d.Init.(*ast.BinaryExpr)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected binary +, got %#v", d.Init)
	}
	left, ok := bin.Left.(*ast.Literal)
	if !ok || left.Raw != "1" {
		t.Fatalf("expected literal 1, got %#v", bin.Left)
	}
	right, ok := bin.Right.(*ast.Literal)
	if !ok || right.Raw != "2" {
		t.Fatalf("expected literal 2, got %#v", bin.Right)
	}
}

func TestOperatorPrecedenceRootIsLowerTier(t *testing.T) {
	mod := mustParse(t, "a + b * c;")
	stmt := mod.Body.Slice()[0].(*ast.ExpressionStmt)
	root, ok := stmt.Expression.(*ast.BinaryExpr)
	if !ok || root.Operator != "+" {
		t.Fatalf("expected root operator +, got %#v", stmt.Expression)
	}
	if _, ok := root.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected a*b grouped under +, got %#v", root.Right)
	}
}

func TestCallWithSpreadArgument(t *testing.T) {
	mod := mustParse(t, `foo.bar(1, ...rest)`)
	stmt := mod.Body.Slice()[0].(*ast.ExpressionStmt)
	call, ok := stmt.Expression.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", stmt.Expression)
	}
	member, ok := call.Callee.(*ast.MemberExpr)
	if !ok || member.Property.Name != "bar" {
		t.Fatalf("expected callee foo.bar, got %#v", call.Callee)
	}
	args := call.Arguments.Slice()
	if len(args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(args))
	}
	if _, ok := args[1].(*ast.SpreadExpr); !ok {
		t.Fatalf("expected second argument to be a spread, got %T", args[1])
	}
}

func TestClassWithStaticMethodAndDefaultParam(t *testing.T) {
	mod := mustParse(t, `class F extends B { static m(a=1){} }`)
	decl, ok := mod.Body.Slice()[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected ClassDeclaration, got %T", mod.Body.Slice()[0])
	}
	if decl.Name.Name != "F" {
		t.Fatalf("expected class name F, got %s", decl.Name.Name)
	}
	super, ok := decl.SuperClass.(*ast.Identifier)
	if !ok || super.Name != "B" {
		t.Fatalf("expected superclass B, got %#v", decl.SuperClass)
	}
	members := decl.Body.Body.Slice()
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	method, ok := members[0].(*ast.MethodDefinition)
	if !ok || !method.Static || method.Kind != "method" {
		t.Fatalf("expected static method, got %#v", members[0])
	}
	params := method.Value.Params.Slice()
	if len(params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(params))
	}
	ap, ok := params[0].(*ast.AssignmentPattern)
	if !ok {
		t.Fatalf("expected AssignmentPattern, got %T", params[0])
	}
	left, ok := ap.Left.(*ast.Identifier)
	if !ok || left.Name != "a" {
		t.Fatalf("expected default param target a, got %#v", ap.Left)
	}
}

func TestForStatementThreeClauses(t *testing.T) {
	mod := mustParse(t, "for (let i=0; i<10; i++) {}")
	forStmt, ok := mod.Body.Slice()[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", mod.Body.Slice()[0])
	}
	if _, ok := forStmt.Init.(*ast.VariableDeclaration); !ok {
		t.Fatalf("expected init to be a VariableDeclaration, got %#v", forStmt.Init)
	}
	test, ok := forStmt.Test.(*ast.BinaryExpr)
	if !ok || test.Operator != "<" {
		t.Fatalf("expected test i<10, got %#v", forStmt.Test)
	}
	update, ok := forStmt.Update.(*ast.PostfixExpr)
	if !ok || update.Operator != "++" {
		t.Fatalf("expected update i++, got %#v", forStmt.Update)
	}
	if _, ok := forStmt.Body.(*ast.BlockStmt); !ok {
		t.Fatalf("expected block body, got %T", forStmt.Body)
	}
}

func TestForInOddityWithInitializer(t *testing.T) {
	// spec.md's documented oddity: `let i = 0 in object` is accepted because
	// the declarator's init is parsed without excluding the `in` operator.
	mod := mustParse(t, "for (let i = 0 in object) {}")
	forIn, ok := mod.Body.Slice()[0].(*ast.ForInStmt)
	if !ok {
		t.Fatalf("expected ForInStmt, got %T", mod.Body.Slice()[0])
	}
	decl, ok := forIn.Left.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected left to be a VariableDeclaration, got %#v", forIn.Left)
	}
	if decl.Declarations.Len() != 1 {
		t.Fatalf("expected single declarator, got %d", decl.Declarations.Len())
	}
}

func TestTrailingCommaAcceptedInCallArgsArraysObjects(t *testing.T) {
	mustParse(t, "foo(a, b,);")
	mustParse(t, "[a, b,];")
	mustParse(t, "({a: 1, b: 2,});")
}

func TestArrayHoleIsMidElement(t *testing.T) {
	mod := mustParse(t, "[a,,b];")
	stmt := mod.Body.Slice()[0].(*ast.ExpressionStmt)
	arr := stmt.Expression.(*ast.ArrayExpr)
	elems := arr.Elements.Slice()
	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elems))
	}
	if _, ok := elems[1].(*ast.Hole); !ok {
		t.Fatalf("expected hole in the middle, got %T", elems[1])
	}
}

func TestASIAfterReturnWithNewline(t *testing.T) {
	mod := mustParse(t, "function f() {\n  return\n  1\n}")
	fn := mod.Body.Slice()[0].(*ast.FunctionDeclaration)
	body := fn.Body.Body.Slice()
	if len(body) != 2 {
		t.Fatalf("expected return and expression statement split by ASI, got %d statements", len(body))
	}
	ret, ok := body[0].(*ast.ReturnStmt)
	if !ok || ret.Argument != nil {
		t.Fatalf("expected argument-less return, got %#v", body[0])
	}
}

func TestTryWithoutCatchOrFinallyIsAnError(t *testing.T) {
	_, err := Parse("try {}")
	if err == nil {
		t.Fatal("expected an error for try without catch or finally")
	}
}

func TestNonLvalueAssignmentIsAnError(t *testing.T) {
	_, err := Parse("1 = 2;")
	if err == nil {
		t.Fatal("expected an error assigning to a non-lvalue")
	}
}

func TestArrowFunctionFromParenthesizedParams(t *testing.T) {
	mod := mustParse(t, "const f = (a, b) => a + b;")
	decl := mod.Body.Slice()[0].(*ast.VariableDeclaration)
	init := decl.Declarations.Slice()[0].Init
	arrow, ok := init.(*ast.ArrowFunctionExpr)
	if !ok {
		t.Fatalf("expected ArrowFunctionExpr, got %T", init)
	}
	if !arrow.ExprBody {
		t.Fatal("expected expression body")
	}
	if arrow.Params.Len() != 2 {
		t.Fatalf("expected 2 params, got %d", arrow.Params.Len())
	}
}

func TestDestructuringParameterWithDefault(t *testing.T) {
	mod := mustParse(t, "function f({a, b = 2}) {}")
	fn := mod.Body.Slice()[0].(*ast.FunctionDeclaration)
	params := fn.Params.Slice()
	if len(params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(params))
	}
	obj, ok := params[0].(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("expected ObjectPattern, got %T", params[0])
	}
	props := obj.Properties.Slice()
	if len(props) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(props))
	}
	if !props[0].Shorthand {
		t.Fatal("expected first property to be shorthand")
	}
	if _, ok := props[1].Value.(*ast.AssignmentPattern); !ok {
		t.Fatalf("expected second property's value to carry a default, got %T", props[1].Value)
	}
}

func TestLabeledStatement(t *testing.T) {
	mod := mustParse(t, "outer: while (true) { break outer; }")
	label, ok := mod.Body.Slice()[0].(*ast.LabeledStmt)
	if !ok {
		t.Fatalf("expected LabeledStmt, got %T", mod.Body.Slice()[0])
	}
	if label.Label.Name != "outer" {
		t.Fatalf("expected label outer, got %s", label.Label.Name)
	}
	if _, ok := label.Body.(*ast.WhileStmt); !ok {
		t.Fatalf("expected while statement body, got %T", label.Body)
	}
}

func TestNewExpressionWithMemberChainCallee(t *testing.T) {
	mod := mustParse(t, "new a.b.c(1);")
	stmt := mod.Body.Slice()[0].(*ast.ExpressionStmt)
	prefix, ok := stmt.Expression.(*ast.PrefixExpr)
	if !ok || prefix.Operator != "new" {
		t.Fatalf("expected new PrefixExpr, got %#v", stmt.Expression)
	}
	call, ok := prefix.Argument.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr argument, got %T", prefix.Argument)
	}
	if call.Arguments.Len() != 1 {
		t.Fatalf("expected 1 call argument, got %d", call.Arguments.Len())
	}
	member, ok := call.Callee.(*ast.MemberExpr)
	if !ok || member.Property.Name != "c" {
		t.Fatalf("expected callee ending in .c, got %#v", call.Callee)
	}
}

func TestTemplateLiteralQuasiExpressionBalance(t *testing.T) {
	mod := mustParse(t, "`a${1}b${2}c`;")
	stmt := mod.Body.Slice()[0].(*ast.ExpressionStmt)
	tmpl, ok := stmt.Expression.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expected TemplateLiteral, got %T", stmt.Expression)
	}
	if tmpl.Quasis.Len() != tmpl.Expressions.Len()+1 {
		t.Fatalf("expected |quasis| = |expressions|+1, got %d quasis and %d expressions", tmpl.Quasis.Len(), tmpl.Expressions.Len())
	}
}

func TestFunctionDeclarationWithoutNameIsAnError(t *testing.T) {
	_, err := Parse("function() {}")
	if err == nil {
		t.Fatal("expected an error for a function declaration missing a name")
	}
}

func TestNewMetaPropertyOtherThanTargetIsAnError(t *testing.T) {
	_, err := Parse("new.callee;")
	if err == nil {
		t.Fatal("expected an error for a new meta property other than target")
	}
}

func TestNonTrailingRestParameterIsAnError(t *testing.T) {
	_, err := Parse("function foo(...rest, a) {}")
	if err == nil {
		t.Fatal("expected an error for a non-trailing rest parameter")
	}
}

func TestDuplicateConstructorIsAnError(t *testing.T) {
	_, err := Parse("class F { constructor(){} constructor(){} }")
	if err == nil {
		t.Fatal("expected an error for a class with two constructors")
	}
}
