package eval_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/eval"
	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/token"
	"github.com/mna/evalscript/lang/values"
)

func lit(v values.Value) *ast.Literal { return &ast.Literal{Scalar: v} }

func runProgram(t *testing.T, stmts []ast.Stmt) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	_, err := eval.Run(context.Background(), &ast.Program{Stmts: stmts}, eval.WithStdout(&buf))
	return buf.String(), err
}

func TestAssignAndPrint(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "x", Expr: lit(values.Int(5))},
		&ast.Print{Args: []ast.Expr{&ast.Variable{Op: ast.VarGet, Name: "x"}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestForRangeSum(t *testing.T) {
	// total = 0; for i in range(0, 5, 1) { total += i }; print(total)
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "total", Expr: lit(values.Int(0))},
		&ast.ForStmt{
			IterName:  "i",
			RangeExpr: &ast.Range{Start: lit(values.Int(0)), End: lit(values.Int(5)), Step: lit(values.Int(1))},
			Body: []ast.Stmt{
				&ast.VariableBinopReassign{Name: "total", Op: token.PLUS_EQ, Rhs: &ast.Variable{Op: ast.VarGet, Name: "i"}},
			},
		},
		&ast.Print{Args: []ast.Expr{&ast.Variable{Op: ast.VarGet, Name: "total"}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "10\n", out)
}

func TestWhileLoop(t *testing.T) {
	// n = 3; while n > 0 { n-- }; print(n)
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "n", Expr: lit(values.Int(3))},
		&ast.WhileStmt{
			Cond: &ast.BinaryOp{Lhs: &ast.Variable{Op: ast.VarGet, Name: "n"}, Op: token.GT, Rhs: lit(values.Int(0))},
			Body: []ast.Stmt{
				&ast.VariableIncrDecr{Name: "n", Op: token.DECR},
			},
		},
		&ast.Print{Args: []ast.Expr{&ast.Variable{Op: ast.VarGet, Name: "n"}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

// factorial(n) { if n <= 1 { return 1 } return n * factorial(n - 1) }
// print(factorial(5))
func TestRecursiveFactorial(t *testing.T) {
	call := func(arg ast.Expr) *ast.FuncCall {
		return &ast.FuncCall{Op: ast.FuncCallExec, Name: "factorial", Args: []ast.Expr{arg}}
	}
	factorial := &ast.FuncDecl{
		ID:     "factorial",
		Params: []string{"n"},
		Body: []ast.Stmt{
			&ast.IfElseBlock{
				If: &ast.IfStmt{
					Cond: &ast.BinaryOp{Lhs: &ast.Variable{Op: ast.VarGet, Name: "n"}, Op: token.LE, Rhs: lit(values.Int(1))},
					Body: []ast.Stmt{&ast.ReturnStmt{Expr: lit(values.Int(1))}},
				},
			},
			&ast.ReturnStmt{
				Expr: &ast.BinaryOp{
					Lhs: &ast.Variable{Op: ast.VarGet, Name: "n"},
					Op:  token.STAR,
					Rhs: call(&ast.BinaryOp{Lhs: &ast.Variable{Op: ast.VarGet, Name: "n"}, Op: token.MINUS, Rhs: lit(values.Int(1))}),
				},
			},
		},
	}
	stmts := []ast.Stmt{
		factorial,
		&ast.Print{Args: []ast.Expr{call(lit(values.Int(5)))}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "120\n", out)
}

func TestNestedScopeRedeclarationIsNameError(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "x", Expr: lit(values.Int(1))},
		&ast.IfStmt{
			Cond: lit(values.True),
			Body: []ast.Stmt{
				&ast.Variable{Op: ast.VarAssign, Name: "x", Expr: lit(values.Int(2))},
			},
		},
	}
	_, err := runProgram(t, stmts)
	require.Equal(t, "NameError", langerr.Kind(err))
}

func TestListSlicingExpression(t *testing.T) {
	// arr = [0, 1, 2, 3, 4]; print(arr[1:4:1])
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "arr", Expr: &ast.Literal{Elems: []ast.Expr{
			lit(values.Int(0)), lit(values.Int(1)), lit(values.Int(2)), lit(values.Int(3)), lit(values.Int(4)),
		}}},
		&ast.Print{Args: []ast.Expr{&ast.List{
			Op:      ast.ListGet,
			Name:    "arr",
			Indices: []ast.Expr{&ast.List{Op: ast.ListSlice, Start: lit(values.Int(1)), End: lit(values.Int(4)), Step: lit(values.Int(1))}},
		}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]\n", out)
}

func TestListIndexAssignment(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "arr", Expr: &ast.Literal{Elems: []ast.Expr{lit(values.Int(1)), lit(values.Int(2))}}},
		&ast.List{Op: ast.ListAssign, Name: "arr", Indices: []ast.Expr{lit(values.Int(0))}, Rhs: lit(values.Int(9))},
		&ast.Print{Args: []ast.Expr{&ast.List{Op: ast.ListGet, Name: "arr", Indices: []ast.Expr{lit(values.Int(0))}}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "9\n", out)
}

func TestSwitchCaseAndDefault(t *testing.T) {
	prog := func(selector values.Value) []ast.Stmt {
		return []ast.Stmt{
			&ast.SwitchStmt{
				Expr: lit(selector),
				Cases: []*ast.CaseStmt{
					{Value: lit(values.Int(1)), Body: []ast.Stmt{&ast.Print{Args: []ast.Expr{lit(values.Str("one"))}}, &ast.BreakStmt{}}},
					{Value: lit(values.Int(2)), Body: []ast.Stmt{&ast.Print{Args: []ast.Expr{lit(values.Str("two"))}}, &ast.BreakStmt{}}},
				},
				Default: &ast.DefaultStmt{Body: []ast.Stmt{&ast.Print{Args: []ast.Expr{lit(values.Str("other"))}}, &ast.BreakStmt{}}},
			},
		}
	}
	out, err := runProgram(t, prog(values.Int(2)))
	require.NoError(t, err)
	require.Equal(t, "two\n", out)

	out, err = runProgram(t, prog(values.Int(9)))
	require.NoError(t, err)
	require.Equal(t, "other\n", out)
}

func TestCaseMissingBreakIsSyntaxError(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.SwitchStmt{
			Expr: lit(values.Int(1)),
			Cases: []*ast.CaseStmt{
				{Value: lit(values.Int(1)), Body: []ast.Stmt{&ast.Print{Args: []ast.Expr{lit(values.Str("one"))}}}},
			},
		},
	}
	_, err := runProgram(t, stmts)
	require.Equal(t, "SyntaxError", langerr.Kind(err))
}

func TestBareFuncCallStatementDiscardsResult(t *testing.T) {
	noop := &ast.FuncDecl{ID: "noop", Body: []ast.Stmt{&ast.ReturnStmt{Expr: lit(values.Int(1))}}}
	stmts := []ast.Stmt{
		noop,
		&ast.FuncCall{Op: ast.FuncCallExec, Name: "noop"},
		&ast.Print{Args: []ast.Expr{lit(values.Str("done"))}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "done\n", out)
}

func TestMaxStepsAborts(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "n", Expr: lit(values.Int(0))},
		&ast.WhileStmt{
			Cond: lit(values.True),
			Body: []ast.Stmt{
				&ast.VariableIncrDecr{Name: "n", Op: token.INCR},
			},
		},
	}
	var buf bytes.Buffer
	_, err := eval.Run(context.Background(), &ast.Program{Stmts: stmts}, eval.WithStdout(&buf), eval.WithMaxSteps(50))
	require.Error(t, err)
}

func TestArityErrors(t *testing.T) {
	fn := &ast.FuncDecl{ID: "f", Params: []string{"a", "b"}, Body: []ast.Stmt{&ast.ReturnStmt{}}}
	call := func(args ...ast.Expr) []ast.Stmt {
		return []ast.Stmt{fn, &ast.FuncCall{Op: ast.FuncCallExec, Name: "f", Args: args}}
	}

	_, err := runProgram(t, call(lit(values.Int(1))))
	require.ErrorContains(t, err, "f() missing 1 required positional argument")

	_, err = runProgram(t, call(lit(values.Int(1)), lit(values.Int(2)), lit(values.Int(3))))
	require.ErrorContains(t, err, "f() takes 2 positional arguments but 3 were given")
}

func TestBoolOpAndOrPreserveOperandValue(t *testing.T) {
	// x = (5 and 3); print(x)
	stmts := []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "x", Expr: &ast.BoolOp{
			Operands: []ast.Expr{lit(values.Int(5)), lit(values.Int(3))},
			Ops:      []token.Token{token.AND},
		}},
		&ast.Print{Args: []ast.Expr{&ast.Variable{Op: ast.VarGet, Name: "x"}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)

	// y = (0 or "fallback"); print(y)
	stmts = []ast.Stmt{
		&ast.Variable{Op: ast.VarAssign, Name: "y", Expr: &ast.BoolOp{
			Operands: []ast.Expr{lit(values.Int(0)), lit(values.Str("fallback"))},
			Ops:      []token.Token{token.OR},
		}},
		&ast.Print{Args: []ast.Expr{&ast.Variable{Op: ast.VarGet, Name: "y"}}},
	}
	out, err = runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "fallback\n", out)
}

func TestFuncCallCannotSeeCallersOpenBlockLocal(t *testing.T) {
	// foo() { return y }
	// if true { y = 5; print(foo()) }
	foo := &ast.FuncDecl{ID: "foo", Body: []ast.Stmt{&ast.ReturnStmt{Expr: &ast.Variable{Op: ast.VarGet, Name: "y"}}}}
	stmts := []ast.Stmt{
		foo,
		&ast.IfStmt{
			Cond: lit(values.True),
			Body: []ast.Stmt{
				&ast.Variable{Op: ast.VarAssign, Name: "y", Expr: lit(values.Int(5))},
				&ast.Print{Args: []ast.Expr{&ast.FuncCall{Op: ast.FuncCallExec, Name: "foo"}}},
			},
		},
	}
	_, err := runProgram(t, stmts)
	require.Equal(t, "NameError", langerr.Kind(err))
}

func TestDerivOfParameterSubstitutesCurrentValue(t *testing.T) {
	// f(x) { return deriv("x^2", "x") } ; print(f(3))
	fn := &ast.FuncDecl{
		ID:     "f",
		Params: []string{"x"},
		Body: []ast.Stmt{
			&ast.ReturnStmt{Expr: &ast.FuncCall{
				Op:   ast.FuncCallDeriv,
				Name: "deriv",
				Args: []ast.Expr{lit(values.Str("x^2")), lit(values.Str("x"))},
			}},
		},
	}
	stmts := []ast.Stmt{
		fn,
		&ast.Print{Args: []ast.Expr{&ast.FuncCall{Op: ast.FuncCallExec, Name: "f", Args: []ast.Expr{lit(values.Int(3))}}}},
	}
	out, err := runProgram(t, stmts)
	require.NoError(t, err)
	require.Equal(t, "6\n", out)
}
