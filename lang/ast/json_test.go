package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/evalscript/lang/ast"
)

func TestDecodeProgramAssignAndPrint(t *testing.T) {
	src := `{
		"stmts": [
			{"kind": "Variable", "op": "assign", "name": "x", "expr": {"kind": "Literal", "scalar": {"type": "int", "value": 5}}},
			{"kind": "Print", "args": [{"kind": "Variable", "op": "get", "name": "x"}]}
		]
	}`
	prog, err := ast.DecodeProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)

	assign, ok := prog.Stmts[0].(*ast.Variable)
	require.True(t, ok)
	require.Equal(t, ast.VarAssign, assign.Op)
	require.Equal(t, "x", assign.Name)
	lit, ok := assign.Expr.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "5", lit.Scalar.String())

	print, ok := prog.Stmts[1].(*ast.Print)
	require.True(t, ok)
	require.Len(t, print.Args, 1)
}

func TestDecodeProgramForLoop(t *testing.T) {
	src := `{
		"stmts": [
			{
				"kind": "ForStmt",
				"iterName": "i",
				"rangeExpr": {"kind": "Range",
					"Start": {"kind": "Literal", "scalar": {"type": "int", "value": 0}},
					"End": {"kind": "Literal", "scalar": {"type": "int", "value": 3}},
					"Step": {"kind": "Literal", "scalar": {"type": "int", "value": 1}}
				},
				"body": [
					{"kind": "Print", "args": [{"kind": "Variable", "op": "get", "name": "i"}]}
				]
			}
		]
	}`
	prog, err := ast.DecodeProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	forStmt, ok := prog.Stmts[0].(*ast.ForStmt)
	require.True(t, ok)
	require.Equal(t, "i", forStmt.IterName)
	require.Len(t, forStmt.Body, 1)
}

func TestDecodeProgramUnknownKindErrors(t *testing.T) {
	_, err := ast.DecodeProgram([]byte(`{"stmts": [{"kind": "Bogus"}]}`))
	require.ErrorContains(t, err, "unknown statement kind")
}

func TestDecodeProgramMissingKindErrors(t *testing.T) {
	_, err := ast.DecodeProgram([]byte(`{"stmts": [{}]}`))
	require.ErrorContains(t, err, "missing")
}
