// Package ast defines the arena-resident AST node types produced by the
// parser. Node variants are named after the internal grammar forms they
// come from, not the ESTree JSON vocabulary — renaming internal variants to
// ESTree node-type strings (e.g. a BinaryExpr with an assignment operator
// becoming "AssignmentExpression") is the job of the separate pkg/estree
// serializer, which consumes this tree without shaping it.
package ast

import "github.com/arborjs/jsparse/internal/arena"

// Kind identifies the concrete shape of a Node.
type Kind string

const (
	KindModule Kind = "Module"

	// Expressions
	KindIdentifier         Kind = "Identifier"
	KindThisExpr           Kind = "ThisExpr"
	KindLiteral            Kind = "Literal"
	KindRegexLiteral       Kind = "RegexLiteral"
	KindTemplateLiteral    Kind = "TemplateLiteral"
	KindTemplateElement    Kind = "TemplateElement"
	KindArrayExpr          Kind = "ArrayExpr"
	KindObjectExpr         Kind = "ObjectExpr"
	KindSequenceExpr       Kind = "SequenceExpr"
	KindMemberExpr         Kind = "MemberExpr"
	KindComputedMemberExpr Kind = "ComputedMemberExpr"
	KindMetaProperty       Kind = "MetaProperty"
	KindCallExpr           Kind = "CallExpr"
	KindConditionalExpr    Kind = "ConditionalExpr"
	KindArrowFunctionExpr  Kind = "ArrowFunctionExpr"
	KindFunctionExpr       Kind = "FunctionExpr"
	KindClassExpr          Kind = "ClassExpr"
	KindPrefixExpr         Kind = "PrefixExpr"
	KindPostfixExpr        Kind = "PostfixExpr"
	KindBinaryExpr         Kind = "BinaryExpr" // binary, logical, and assignment operators alike
	KindSpreadExpr         Kind = "SpreadExpr"
	KindTaggedTemplateExpr Kind = "TaggedTemplateExpr"
	KindHole               Kind = "Hole"

	// Statements
	KindEmptyStmt            Kind = "EmptyStmt"
	KindExpressionStmt       Kind = "ExpressionStmt"
	KindVariableDeclaration  Kind = "VariableDeclaration"
	KindVariableDeclarator   Kind = "VariableDeclarator"
	KindReturnStmt           Kind = "ReturnStmt"
	KindBreakStmt            Kind = "BreakStmt"
	KindContinueStmt         Kind = "ContinueStmt"
	KindThrowStmt            Kind = "ThrowStmt"
	KindIfStmt               Kind = "IfStmt"
	KindWhileStmt            Kind = "WhileStmt"
	KindDoWhileStmt          Kind = "DoWhileStmt"
	KindForStmt              Kind = "ForStmt"
	KindForInStmt            Kind = "ForInStmt"
	KindForOfStmt            Kind = "ForOfStmt"
	KindTryStmt              Kind = "TryStmt"
	KindCatchClause          Kind = "CatchClause"
	KindBlockStmt            Kind = "BlockStmt"
	KindLabeledStmt          Kind = "LabeledStmt"
	KindSwitchStmt           Kind = "SwitchStmt"
	KindSwitchCase           Kind = "SwitchCase"
	KindFunctionDeclaration  Kind = "FunctionDeclaration"
	KindClassDeclaration     Kind = "ClassDeclaration"

	// Patterns
	KindArrayPattern         Kind = "ArrayPattern"
	KindObjectPattern        Kind = "ObjectPattern"
	KindObjectPatternProperty Kind = "ObjectPatternProperty"
	KindAssignmentPattern    Kind = "AssignmentPattern"
	KindRestElement          Kind = "RestElement"

	// Object / class members
	KindProperty           Kind = "Property"
	KindMethodDefinition   Kind = "MethodDefinition"
	KindPropertyDefinition Kind = "PropertyDefinition"
	KindClassBody          Kind = "ClassBody"
)

// Base carries every node's source span and kind tag. Every concrete node
// type embeds Base anonymously. Tests compare nodes by their structure and
// fields and do not check Start/End, but Start/End are always recorded.
type Base struct {
	Type  Kind
	Start int
	End   int
}

// Span returns the node's (start, end) byte offsets into the source.
func (b Base) Span() (int, int) { return b.Start, b.End }

// GetType returns the node's Kind.
func (b Base) GetType() Kind { return b.Type }

// SetSpan records a node's span once its extent is known. The helper that
// builds a node sets it; an enclosing helper may set it again to widen it
// (a function expression's span to its `function` keyword, a sequence's
// span as each operand is appended).
func (b *Base) SetSpan(start, end int) {
	b.Start = start
	b.End = end
}

// Node is implemented by every AST node.
type Node interface {
	Span() (int, int)
	GetType() Kind
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	isExpr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	isStmt()
}

// Pattern is implemented by every pattern node (the left-hand side of a
// declarator, assignment target, or function parameter).
type Pattern interface {
	Node
	isPattern()
}

// ClassMember is implemented by MethodDefinition and PropertyDefinition.
type ClassMember interface {
	Node
	isClassMember()
}

// ObjectMember is implemented by Property and SpreadExpr when used as an
// object literal member.
type ObjectMember interface {
	Node
	isObjectMember()
}

// Alloc allocates an AST node in a, returning a stable pointer. It is a
// thin rename of arena.Alloc kept local to this package so parser code
// reads as `ast.Alloc(a, ast.Identifier{...})`.
func Alloc[T any](a *arena.Arena, node T) *T {
	return arena.Alloc(a, node)
}
