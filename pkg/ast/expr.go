package ast

import "github.com/arborjs/jsparse/internal/arena"

// Identifier names a binding or property. It doubles as a Pattern (a bare
// `x` on the left of `=` or as a parameter) and as an Expr (a bare `x` used
// as a value) — the same node shape serves both roles in the grammar.
type Identifier struct {
	Base
	Name string
}

func (*Identifier) isExpr()    {}
func (*Identifier) isPattern() {}

// ThisExpr is the `this` keyword.
type ThisExpr struct{ Base }

func (*ThisExpr) isExpr() {}

// LiteralKind distinguishes Literal's payload.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralTrue
	LiteralFalse
	LiteralNull
	LiteralUndefined
)

// Literal covers string, numeric, boolean, null, and undefined literals.
// Raw preserves the exact source text (needed to tell `0x10` from `16`
// apart in codegen-adjacent consumers); Value holds the string literal's
// text between the quotes, with escape sequences left as written; it is
// ignored for non-string kinds.
type Literal struct {
	Base
	LitKind LiteralKind
	Raw     string
	Value   string // string contents without the quotes, only meaningful when LitKind == LiteralString
}

func (*Literal) isExpr() {}

// RegexLiteral is a `/pattern/flags` literal.
type RegexLiteral struct {
	Base
	Pattern string
	Flags   string
}

func (*RegexLiteral) isExpr() {}

// TemplateElement is one quasi segment of a template literal.
type TemplateElement struct {
	Base
	Raw    string
	Cooked string
	Tail   bool
}

// TemplateLiteral satisfies len(Quasis) == len(Expressions)+1.
type TemplateLiteral struct {
	Base
	Quasis      arena.List[*TemplateElement]
	Expressions arena.List[Expr]
}

func (*TemplateLiteral) isExpr() {}

// Hole is a placeholder for an elided element: an array-literal hole
// (`[a,,b]`) or a pattern hole in an array-destructuring target. It is
// simultaneously a valid Expr and a valid Pattern for exactly this reason —
// both contexts need "nothing here" to type-check as a list element.
type Hole struct{ Base }

func (*Hole) isExpr()    {}
func (*Hole) isPattern() {}

// ArrayExpr is `[a, , b, ...c]`. Elided elements are *Hole.
type ArrayExpr struct {
	Base
	Elements arena.List[Expr]
}

func (*ArrayExpr) isExpr() {}

// Property is an object literal member: shorthand (`{x}`), `key: value`,
// or `key(params) { ... }` (Method == true, Value is a *FunctionExpr).
type Property struct {
	Base
	Key       Expr
	Value     Expr
	Computed  bool
	Shorthand bool
	Method    bool
	Kind      string // "init", "get", or "set"
}

func (*Property) isObjectMember() {}

// ObjectExpr is `{ ...properties }`. Members are *Property or *SpreadExpr.
type ObjectExpr struct {
	Base
	Properties arena.List[ObjectMember]
}

func (*ObjectExpr) isExpr() {}

// SequenceExpr is the comma operator, `a, b, c`.
type SequenceExpr struct {
	Base
	Expressions arena.List[Expr]
}

func (*SequenceExpr) isExpr() {}

// MemberExpr is dotted property access, `obj.prop`.
type MemberExpr struct {
	Base
	Object   Expr
	Property *Identifier
}

func (*MemberExpr) isExpr() {}

// ComputedMemberExpr is bracketed property access, `obj[expr]`.
type ComputedMemberExpr struct {
	Base
	Object   Expr
	Property Expr
}

func (*ComputedMemberExpr) isExpr() {}

// MetaProperty is a `keyword.identifier` form; in this grammar, always
// `new.target`.
type MetaProperty struct {
	Base
	Meta     string
	Property string
}

func (*MetaProperty) isExpr() {}

// CallExpr is `callee(arguments...)`.
type CallExpr struct {
	Base
	Callee    Expr
	Arguments arena.List[Expr]
}

func (*CallExpr) isExpr() {}

// ConditionalExpr is `test ? consequent : alternate`.
type ConditionalExpr struct {
	Base
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

func (*ConditionalExpr) isExpr() {}

// ArrowFunctionExpr is `(params) => body`. ExprBody is true when Body is a
// bare expression (`=> x + 1`) rather than a *BlockStmt (`=> { ... }`).
type ArrowFunctionExpr struct {
	Base
	Params    arena.List[Pattern]
	Body      Node
	ExprBody  bool
	Generator bool
}

func (*ArrowFunctionExpr) isExpr() {}

// FunctionExpr is `function name?(params) { body }`. Name is nil for
// anonymous function expressions and for the bare function value used as a
// class-method/getter/setter body (the grammar's "empty name" form).
type FunctionExpr struct {
	Base
	Name      *Identifier
	Generator bool
	Params    arena.List[Pattern]
	Body      *BlockStmt
}

func (*FunctionExpr) isExpr() {}

// ClassExpr is a class used as a value, `const C = class Name? extends S {}`.
type ClassExpr struct {
	Base
	Name       *Identifier
	SuperClass Expr
	Body       *ClassBody
}

func (*ClassExpr) isExpr() {}

// PrefixExpr covers prefix unary operators (`!x`, `typeof x`, `++x`, ...).
type PrefixExpr struct {
	Base
	Operator string
	Argument Expr
}

func (*PrefixExpr) isExpr() {}

// PostfixExpr covers `x++` and `x--`.
type PostfixExpr struct {
	Base
	Operator string
	Argument Expr
}

func (*PostfixExpr) isExpr() {}

// BinaryExpr covers binary arithmetic/bitwise/relational operators,
// logical `&&`/`||`, and every assignment operator. The ESTree node type
// (BinaryExpression, LogicalExpression, or AssignmentExpression) is
// determined purely by Operator, which is why these share one Go type
// instead of three.
type BinaryExpr struct {
	Base
	Operator string
	Left     Expr
	Right    Expr
}

func (*BinaryExpr) isExpr() {}

// SpreadExpr is `...argument`, valid as a call argument, an array element,
// or an object literal member.
type SpreadExpr struct {
	Base
	Argument Expr
}

func (*SpreadExpr) isExpr()         {}
func (*SpreadExpr) isObjectMember() {}

// TaggedTemplateExpr is `` tag`quasi${expr}` ``.
type TaggedTemplateExpr struct {
	Base
	Tag   Expr
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpr) isExpr() {}
