package parser_test

import (
	"encoding/json"
	"testing"

	"github.com/arborjs/jsparse/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParseReturnsModule(t *testing.T) {
	mod, err := parser.Parse("let x = 1;", nil)
	require.NoError(t, err)
	require.NotNil(t, mod)
	require.Equal(t, 1, mod.Body.Len())
}

func TestParseDefaultsOptionsWhenNil(t *testing.T) {
	mod, err := parser.Parse("const a = [1, 2, 3];", nil)
	require.NoError(t, err)
	require.Equal(t, 1, mod.Body.Len())
}

func TestParseSyntaxErrorReportsLineAndColumn(t *testing.T) {
	_, err := parser.Parse("let x = ;\n", nil)
	require.Error(t, err)
	parserErr, ok := err.(*parser.ParserError)
	require.True(t, ok, "expected *parser.ParserError, got %T", err)
	require.Len(t, parserErr.Errors, 1)
	require.Equal(t, 1, parserErr.Errors[0].Line)
}

func TestParseToJSONProducesValidESTreeProgram(t *testing.T) {
	out, err := parser.ParseToJSON("let x = 1 + 2;", nil)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, "Program", decoded["type"])
}

func TestParseToJSONWithLocAndRange(t *testing.T) {
	out, err := parser.ParseToJSON("x;", &parser.Options{Loc: true, Range: true})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	body := decoded["body"].([]any)
	stmt := body[0].(map[string]any)
	require.Contains(t, stmt, "loc")
	require.Contains(t, stmt, "range")
}

func TestEmptyInputProducesEmptyProgram(t *testing.T) {
	mod, err := parser.Parse("", nil)
	require.NoError(t, err)
	require.Equal(t, 0, mod.Body.Len())
}

func TestTolerantModeStillParsesWellFormedInput(t *testing.T) {
	mod, err := parser.Parse("let x = 1; let y = 2;", &parser.Options{Tolerant: true})
	require.NoError(t, err)
	require.Equal(t, 2, mod.Body.Len())
}
