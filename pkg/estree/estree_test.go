package estree_test

import (
	"encoding/json"
	"testing"

	"github.com/arborjs/jsparse/internal/parser"
	"github.com/arborjs/jsparse/pkg/estree"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, src string) map[string]any {
	t.Helper()
	mod, err := parser.Parse(src)
	require.NoError(t, err)
	n := estree.Serialize(mod, src, estree.Options{})
	// round-trip through JSON so nested Node values become plain
	// map[string]any, matching what a real consumer decodes.
	raw, err := json.Marshal(n)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestProgramShapeForLetBinaryInit(t *testing.T) {
	got := serialize(t, "let x = 1 + 2;")
	require.Equal(t, "Program", got["type"])
	body := got["body"].([]any)
	require.Len(t, body, 1)

	decl := body[0].(map[string]any)
	require.Equal(t, "VariableDeclaration", decl["type"])
	require.Equal(t, "let", decl["kind"])

	declarators := decl["declarations"].([]any)
	require.Len(t, declarators, 1)
	declarator := declarators[0].(map[string]any)

	id := declarator["id"].(map[string]any)
	require.Equal(t, "Identifier", id["type"])
	require.Equal(t, "x", id["name"])

	init := declarator["init"].(map[string]any)
	require.Equal(t, "BinaryExpression", init["type"])
	require.Equal(t, "+", init["operator"])

	left := init["left"].(map[string]any)
	require.Equal(t, "Literal", left["type"])
	require.Equal(t, float64(1), left["value"])

	right := init["right"].(map[string]any)
	require.Equal(t, float64(2), right["value"])
}

func TestCallExpressionWithSpreadArgument(t *testing.T) {
	got := serialize(t, `foo.bar(1, ...rest)`)
	body := got["body"].([]any)
	stmt := body[0].(map[string]any)
	require.Equal(t, "ExpressionStatement", stmt["type"])

	call := stmt["expression"].(map[string]any)
	require.Equal(t, "CallExpression", call["type"])

	callee := call["callee"].(map[string]any)
	require.Equal(t, "MemberExpression", callee["type"])
	require.Equal(t, false, callee["computed"])
	require.Equal(t, "foo", callee["object"].(map[string]any)["name"])
	require.Equal(t, "bar", callee["property"].(map[string]any)["name"])

	args := call["arguments"].([]any)
	require.Len(t, args, 2)
	spread := args[1].(map[string]any)
	require.Equal(t, "SpreadElement", spread["type"])
	require.Equal(t, "rest", spread["argument"].(map[string]any)["name"])
}

func TestClassDeclarationWithStaticDefaultedMethod(t *testing.T) {
	got := serialize(t, `class F extends B { static m(a=1){} }`)
	body := got["body"].([]any)
	cls := body[0].(map[string]any)
	require.Equal(t, "ClassDeclaration", cls["type"])
	require.Equal(t, "F", cls["id"].(map[string]any)["name"])
	require.Equal(t, "B", cls["superClass"].(map[string]any)["name"])

	classBody := cls["body"].(map[string]any)
	members := classBody["body"].([]any)
	require.Len(t, members, 1)
	method := members[0].(map[string]any)
	require.Equal(t, "MethodDefinition", method["type"])
	require.Equal(t, true, method["static"])
	require.Equal(t, "method", method["kind"])

	fn := method["value"].(map[string]any)
	require.Equal(t, "FunctionExpression", fn["type"])
	params := fn["params"].([]any)
	require.Len(t, params, 1)
	param := params[0].(map[string]any)
	require.Equal(t, "AssignmentPattern", param["type"])
	require.Equal(t, "a", param["left"].(map[string]any)["name"])
	require.Equal(t, float64(1), param["right"].(map[string]any)["value"])
}

func TestForStatementUpdateIsPostfixUpdateExpression(t *testing.T) {
	got := serialize(t, "for (let i=0; i<10; i++) {}")
	body := got["body"].([]any)
	forStmt := body[0].(map[string]any)
	require.Equal(t, "ForStatement", forStmt["type"])

	update := forStmt["update"].(map[string]any)
	require.Equal(t, "UpdateExpression", update["type"])
	require.Equal(t, "++", update["operator"])
	require.Equal(t, false, update["prefix"])

	blockBody := forStmt["body"].(map[string]any)
	require.Equal(t, "BlockStatement", blockBody["type"])
	require.Empty(t, blockBody["body"])
}

func TestArrayHoleTruncationAndMidElementNull(t *testing.T) {
	got := serialize(t, "[a,,b];")
	stmt := got["body"].([]any)[0].(map[string]any)
	arr := stmt["expression"].(map[string]any)
	elements := arr["elements"].([]any)
	require.Len(t, elements, 3)
	require.Nil(t, elements[1])

	got2 := serialize(t, "[a,];")
	stmt2 := got2["body"].([]any)[0].(map[string]any)
	arr2 := stmt2["expression"].(map[string]any)
	require.Len(t, arr2["elements"].([]any), 1)
}

func TestNewExpressionUnwrapsSyntheticCall(t *testing.T) {
	got := serialize(t, "new Foo(1, 2);")
	stmt := got["body"].([]any)[0].(map[string]any)
	newExpr := stmt["expression"].(map[string]any)
	require.Equal(t, "NewExpression", newExpr["type"])
	require.Equal(t, "Foo", newExpr["callee"].(map[string]any)["name"])
	require.Len(t, newExpr["arguments"].([]any), 2)
}

func TestPrefixIncrementIsUpdateExpressionPrefixTrue(t *testing.T) {
	got := serialize(t, "++x;")
	stmt := got["body"].([]any)[0].(map[string]any)
	update := stmt["expression"].(map[string]any)
	require.Equal(t, "UpdateExpression", update["type"])
	require.Equal(t, true, update["prefix"])
}

func TestLogicalVsAssignmentVsBinaryOperatorNaming(t *testing.T) {
	cases := []struct {
		src      string
		wantType string
	}{
		{"a && b;", "LogicalExpression"},
		{"a || b;", "LogicalExpression"},
		{"a = b;", "AssignmentExpression"},
		{"a += b;", "AssignmentExpression"},
		{"a + b;", "BinaryExpression"},
		{"a instanceof b;", "BinaryExpression"},
	}
	for _, c := range cases {
		got := serialize(t, c.src)
		stmt := got["body"].([]any)[0].(map[string]any)
		expr := stmt["expression"].(map[string]any)
		require.Equalf(t, c.wantType, expr["type"], "for input %q", c.src)
	}
}
