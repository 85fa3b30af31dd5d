package ast

import "github.com/arborjs/jsparse/internal/arena"

// MethodDefinition is a method, getter, or setter inside a ClassBody. Kind
// is "method", "get", "set", or "constructor".
type MethodDefinition struct {
	Base
	Static   bool
	Kind     string
	Key      Expr
	Computed bool
	Value    *FunctionExpr
}

func (*MethodDefinition) isClassMember() {}

// PropertyDefinition is a class field, `static? key = value?;`.
type PropertyDefinition struct {
	Base
	Static   bool
	Key      Expr
	Computed bool
	Value    Expr
}

func (*PropertyDefinition) isClassMember() {}

// ClassBody is the `{ members... }` shared by ClassDeclaration and
// ClassExpr.
type ClassBody struct {
	Base
	Body arena.List[ClassMember]
}
