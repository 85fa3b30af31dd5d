package ast

import "github.com/arborjs/jsparse/internal/arena"

// ArrayPattern destructures an array/iterable, `[a, , b] = ...`. Elided
// elements are *Hole; a trailing *RestElement collects the remainder.
type ArrayPattern struct {
	Base
	Elements arena.List[Pattern]
}

func (*ArrayPattern) isPattern() {}

// ObjectPatternProperty is one `key: value` or shorthand `{x}` member of an
// ObjectPattern.
type ObjectPatternProperty struct {
	Base
	Key       Expr
	Value     Pattern
	Computed  bool
	Shorthand bool
}

// ObjectPattern destructures an object, `{a, b: c} = ...`.
type ObjectPattern struct {
	Base
	Properties arena.List[*ObjectPatternProperty]
}

func (*ObjectPattern) isPattern() {}

// AssignmentPattern gives a pattern a default value, `(a = 1)` in a
// parameter list or `{a = 1} = obj` in a destructuring target.
type AssignmentPattern struct {
	Base
	Left  Pattern
	Right Expr
}

func (*AssignmentPattern) isPattern() {}

// RestElement collects the remaining elements, `...rest`, as the last entry
// of a parameter list or array pattern. ObjectPattern holds only
// ObjectPatternProperty entries, so it has no rest form.
type RestElement struct {
	Base
	Argument Pattern
}

func (*RestElement) isPattern() {}
