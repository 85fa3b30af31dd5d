package ast

import "github.com/arborjs/jsparse/internal/arena"

// Module is the root of a parse: a sequence of top-level statements plus
// the arena they and every descendant node were allocated into. Keeping the
// arena reachable from the Module keeps every node in the tree alive for as
// long as callers hold onto the Module, which is the only lifetime
// guarantee this package makes.
type Module struct {
	Base
	Body  arena.List[Stmt]
	arena *arena.Arena
}

// NewModule constructs the root node. Called once per parse, after the
// statement list is fully built.
func NewModule(a *arena.Arena, body arena.List[Stmt], start, end int) *Module {
	m := &Module{Body: body, arena: a}
	m.Type = KindModule
	m.SetSpan(start, end)
	return m
}

// Arena returns the arena backing this Module and every node reachable
// from it.
func (m *Module) Arena() *arena.Arena {
	return m.arena
}
