package ast

import "github.com/arborjs/jsparse/internal/arena"

// EmptyStmt is a bare `;`.
type EmptyStmt struct{ Base }

func (*EmptyStmt) isStmt() {}

// ExpressionStmt is an expression used in statement position, `expr;`.
type ExpressionStmt struct {
	Base
	Expression Expr
}

func (*ExpressionStmt) isStmt() {}

// VariableDeclarator binds ID (an Identifier or a destructuring pattern) to
// the optional Init expression.
type VariableDeclarator struct {
	Base
	ID   Pattern
	Init Expr
}

// VariableDeclaration is `var|let|const declarators...`.
type VariableDeclaration struct {
	Base
	DeclKind     string // "var", "let", or "const"
	Declarations arena.List[*VariableDeclarator]
}

func (*VariableDeclaration) isStmt() {}

// ReturnStmt is `return argument?;`.
type ReturnStmt struct {
	Base
	Argument Expr
}

func (*ReturnStmt) isStmt() {}

// BreakStmt is `break label?;`.
type BreakStmt struct {
	Base
	Label *Identifier
}

func (*BreakStmt) isStmt() {}

// ContinueStmt is `continue label?;`.
type ContinueStmt struct {
	Base
	Label *Identifier
}

func (*ContinueStmt) isStmt() {}

// ThrowStmt is `throw argument;`.
type ThrowStmt struct {
	Base
	Argument Expr
}

func (*ThrowStmt) isStmt() {}

// IfStmt is `if (test) consequent else alternate?`.
type IfStmt struct {
	Base
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

func (*IfStmt) isStmt() {}

// WhileStmt is `while (test) body`.
type WhileStmt struct {
	Base
	Test Expr
	Body Stmt
}

func (*WhileStmt) isStmt() {}

// DoWhileStmt is `do body while (test);`.
type DoWhileStmt struct {
	Base
	Body Stmt
	Test Expr
}

func (*DoWhileStmt) isStmt() {}

// ForStmt is the classic three-clause `for (init; test; update) body`. Init
// is either a *VariableDeclaration or an Expr, or nil when the clause is
// empty.
type ForStmt struct {
	Base
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

func (*ForStmt) isStmt() {}

// ForInStmt is `for (left in right) body`. Left is either a
// *VariableDeclaration (with exactly one declarator) or the Expr used as an
// assignment target.
type ForInStmt struct {
	Base
	Left  Node
	Right Expr
	Body  Stmt
}

func (*ForInStmt) isStmt() {}

// ForOfStmt is `for (left of right) body`.
type ForOfStmt struct {
	Base
	Left  Node
	Right Expr
	Body  Stmt
}

func (*ForOfStmt) isStmt() {}

// CatchClause is the `catch (param?) body` part of a TryStmt.
type CatchClause struct {
	Base
	Param Pattern
	Body  *BlockStmt
}

func (*CatchClause) isStmt() {}

// TryStmt is `try block catch? finally?`. At least one of Handler and
// Finalizer is non-nil.
type TryStmt struct {
	Base
	Block     *BlockStmt
	Handler   *CatchClause
	Finalizer *BlockStmt
}

func (*TryStmt) isStmt() {}

// BlockStmt is `{ body... }`.
type BlockStmt struct {
	Base
	Body arena.List[Stmt]
}

func (*BlockStmt) isStmt() {}

// LabeledStmt is `label: body`.
type LabeledStmt struct {
	Base
	Label *Identifier
	Body  Stmt
}

func (*LabeledStmt) isStmt() {}

// SwitchCase is one `case test:` or `default:` arm of a SwitchStmt. Test is
// nil for the default arm.
type SwitchCase struct {
	Base
	Test       Expr
	Consequent arena.List[Stmt]
}

// SwitchStmt is `switch (discriminant) { cases... }`.
type SwitchStmt struct {
	Base
	Discriminant Expr
	Cases        arena.List[*SwitchCase]
}

func (*SwitchStmt) isStmt() {}

// FunctionDeclaration is `function name(params) { body }`, used in statement
// position; Name is always non-nil (the grammar's "mandatory name" form).
type FunctionDeclaration struct {
	Base
	Name      *Identifier
	Generator bool
	Params    arena.List[Pattern]
	Body      *BlockStmt
}

func (*FunctionDeclaration) isStmt() {}

// ClassDeclaration is `class name extends super? { body }`, used in
// statement position; Name is always non-nil.
type ClassDeclaration struct {
	Base
	Name       *Identifier
	SuperClass Expr
	Body       *ClassBody
}

func (*ClassDeclaration) isStmt() {}
