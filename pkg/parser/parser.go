// Package parser is the public entry point: parse JavaScript source into
// an arena-resident AST (pkg/ast), or straight to ESTree-shaped JSON via
// pkg/estree.
package parser

import (
	"encoding/json"

	internal "github.com/arborjs/jsparse/internal/parser"
	"github.com/arborjs/jsparse/pkg/ast"
	"github.com/arborjs/jsparse/pkg/estree"
)

// Options configures parser behavior.
type Options struct {
	// Tolerant is passed through to the internal parser, which does not
	// consult it: every parse continues best-effort after an error and
	// reports only the first one.
	Tolerant bool
	// Loc: add line/column location information to serialized nodes.
	Loc bool
	// Range: add [start,end) character range information to serialized nodes.
	Range bool
}

// Error is a single parse failure: the offending token's position, the raw
// source slice it spans, and a human-readable message.
type Error struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// ParserError wraps the first error recorded during a parse. spec.md §7
// exposes exactly one error to callers ("no multi-error accumulation"), so
// Errors always holds a single element; the slice shape is kept for
// symmetry with the teacher's ParserError and to leave room for a future
// fully-tolerant mode that does report every recorded error.
type ParserError struct {
	Errors []*Error
}

func (e *ParserError) Error() string {
	if len(e.Errors) == 0 {
		return "parse error"
	}
	return e.Errors[0].Error()
}

// Parse parses input and returns the resulting Module. If opts is nil,
// defaults are used.
func Parse(input string, opts *Options) (*ast.Module, error) {
	if opts == nil {
		opts = &Options{}
	}
	mod, err := internal.ParseWithOptions(input, internal.Options{
		Tolerant: opts.Tolerant,
		Loc:      opts.Loc,
		Range:    opts.Range,
	})
	if err != nil {
		internalErr, ok := err.(*internal.Error)
		if !ok {
			return mod, err
		}
		line, col := lineColumn(input, internalErr.Start)
		return mod, &ParserError{Errors: []*Error{{
			Line:    line,
			Column:  col,
			Start:   internalErr.Start,
			End:     internalErr.End,
			Source:  internalErr.Source,
			Message: internalErr.Message,
		}}}
	}
	return mod, nil
}

// ParseToJSON parses input and serializes the result as ESTree JSON.
func ParseToJSON(input string, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	mod, err := Parse(input, opts)
	if err != nil {
		return nil, err
	}
	return estree.Marshal(mod, input, estree.Options{Loc: opts.Loc, Range: opts.Range}, true)
}

// ToJSON serializes an already-parsed Module as ESTree JSON, using source
// to compute line/column positions when opts.Loc is set.
func ToJSON(mod *ast.Module, source string, opts *Options, pretty bool) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	n := estree.Serialize(mod, source, estree.Options{Loc: opts.Loc, Range: opts.Range})
	if pretty {
		return json.MarshalIndent(n, "", "  ")
	}
	return json.Marshal(n)
}

func lineColumn(source string, offset int) (line, column int) {
	line = 1
	lastNewline := -1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	return line, offset - lastNewline - 1
}
