package eval

import (
	"fmt"

	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/scope"
	"github.com/mna/evalscript/lang/values"
)

// execBlock runs stmts in order, stopping and propagating as soon as one
// produces a non-normal flow. This single function implements the "execute
// body statement-by-statement, short-circuit on return/break" rule shared
// by every scope-needing construct (program, function body, if/else
// branches, loop bodies, switch cases).
func execBlock(ec *Context, stmts []ast.Stmt) (result, error) {
	for _, st := range stmts {
		res, err := execStmt(ec, st)
		if err != nil {
			return result{}, err
		}
		if res.flow != flowNormal {
			return res, nil
		}
	}
	return normalResult, nil
}

func execStmt(ec *Context, st ast.Stmt) (result, error) {
	if err := ec.step(); err != nil {
		return result{}, err
	}
	ec.trace("exec %s", st.Kind())

	switch n := st.(type) {
	case *ast.Print:
		return execPrint(ec, n)
	case *ast.IfElseBlock:
		return execIfElseBlock(ec, n)
	case *ast.IfStmt:
		res, _, err := execIfStmt(ec, n)
		return res, err
	case *ast.ElseStmt:
		return execElseStmt(ec, n)
	case *ast.ForStmt:
		return execForStmt(ec, n)
	case *ast.WhileStmt:
		return execWhileStmt(ec, n)
	case *ast.SwitchStmt:
		return execSwitchStmt(ec, n)
	case *ast.BreakStmt:
		return result{flow: flowBroken, value: values.BreakMarker}, nil
	case *ast.ReturnStmt:
		return execReturnStmt(ec, n)
	case *ast.FuncDecl:
		return execFuncDecl(ec, n)
	case *ast.FuncBlock:
		return execBlock(ec, n.Body)
	default:
		// Variable, VariableBinopReassign, VariableIncrDecr, List and FuncCall
		// double as both Expr and Stmt; at statement position their result is
		// simply discarded.
		if expr, ok := st.(ast.Expr); ok {
			_, err := evalExpr(ec, expr)
			if err != nil {
				return result{}, err
			}
			return normalResult, nil
		}
		return result{}, langerr.TypeErrorf("eval: unhandled statement node %s", st.Kind())
	}
}

func execPrint(ec *Context, n *ast.Print) (result, error) {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		v, err := evalExpr(ec, a)
		if err != nil {
			return result{}, err
		}
		parts[i] = v.String()
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	fmt.Fprintln(ec.Stdout, out)
	return normalResult, nil
}

// execIfStmt evaluates n's condition and, if truthy, runs its body in a new
// "if" scope. taken reports whether the condition held (and the body ran),
// letting IfElseBlock decide whether to evaluate its ElseStmt.
func execIfStmt(ec *Context, n *ast.IfStmt) (result, bool, error) {
	ec.Scope.PushBlockScope(scope.KindIf)
	defer ec.Scope.PopBlockScope()

	cond, err := evalExpr(ec, n.Cond)
	if err != nil {
		return result{}, false, err
	}
	if !cond.Truth() {
		return normalResult, false, nil
	}
	res, err := execBlock(ec, n.Body)
	if err != nil {
		return result{}, false, err
	}
	return res, true, nil
}

func execElseStmt(ec *Context, n *ast.ElseStmt) (result, error) {
	ec.Scope.PushBlockScope(scope.KindElse)
	defer ec.Scope.PopBlockScope()
	return execBlock(ec, n.Body)
}

func execIfElseBlock(ec *Context, n *ast.IfElseBlock) (result, error) {
	res, taken, err := execIfStmt(ec, n.If)
	if err != nil {
		return result{}, err
	}
	if taken {
		return res, nil
	}
	if n.Else != nil {
		return execElseStmt(ec, n.Else)
	}
	return normalResult, nil
}

func execForStmt(ec *Context, n *ast.ForStmt) (result, error) {
	rangeVal, err := evalExpr(ec, n.RangeExpr)
	if err != nil {
		return result{}, err
	}
	list, ok := rangeVal.(*values.List)
	if !ok {
		return result{}, langerr.TypeErrorf("'%s' object is not iterable", rangeVal.Type())
	}

	ec.Scope.PushBlockScope(scope.KindFor)
	defer ec.Scope.PopBlockScope()

	for _, elem := range list.Elems() {
		ec.Scope.SetLocal(n.IterName, elem)
		res, err := execBlock(ec, n.Body)
		if err != nil {
			return result{}, err
		}
		if res.flow == flowReturned {
			return res, nil
		}
	}
	return normalResult, nil
}

func execWhileStmt(ec *Context, n *ast.WhileStmt) (result, error) {
	ec.Scope.PushBlockScope(scope.KindWhile)
	defer ec.Scope.PopBlockScope()

	for {
		cond, err := evalExpr(ec, n.Cond)
		if err != nil {
			return result{}, err
		}
		if !cond.Truth() {
			return normalResult, nil
		}
		res, err := execBlock(ec, n.Body)
		if err != nil {
			return result{}, err
		}
		if res.flow == flowReturned {
			return res, nil
		}
	}
}

func execSwitchStmt(ec *Context, n *ast.SwitchStmt) (result, error) {
	ec.Scope.PushBlockScope(scope.KindSwitch)
	defer ec.Scope.PopBlockScope()

	switchVal, err := evalExpr(ec, n.Expr)
	if err != nil {
		return result{}, err
	}

	for _, c := range n.Cases {
		res, matched, err := execCaseStmt(ec, c, switchVal)
		if err != nil {
			return result{}, err
		}
		if matched {
			return res, nil
		}
	}
	if n.Default != nil {
		return execDefaultStmt(ec, n.Default)
	}
	return normalResult, nil
}

func execCaseStmt(ec *Context, n *ast.CaseStmt, switchVal Value) (result, bool, error) {
	caseVal, err := evalExpr(ec, n.Value)
	if err != nil {
		return result{}, false, err
	}
	eq, err := values.Equal(switchVal, caseVal)
	if err != nil {
		return result{}, false, err
	}
	if !eq {
		return result{}, false, nil
	}

	ec.Scope.PushBlockScope(scope.KindCase)
	defer ec.Scope.PopBlockScope()

	res, err := execBlock(ec, n.Body)
	if err != nil {
		return result{}, false, err
	}
	return finishCaseBody(res, "expected 'break' at the end of a case")
}

func execDefaultStmt(ec *Context, n *ast.DefaultStmt) (result, error) {
	ec.Scope.PushBlockScope(scope.KindDefault)
	defer ec.Scope.PopBlockScope()

	res, err := execBlock(ec, n.Body)
	if err != nil {
		return result{}, err
	}
	res, _, err = finishCaseBody(res, "expected 'break' at the end of default case")
	return res, err
}

// finishCaseBody applies the shared case/default exit rule: a flowBroken
// result is the required, successful termination and is consumed here
// (translated to flowNormal); a flowReturned result propagates untouched,
// since a return unwinds straight through the switch; flowNormal (the body
// ran off the end without break or return) is a runtime syntax error.
func finishCaseBody(res result, missingBreakMsg string) (result, bool, error) {
	switch res.flow {
	case flowBroken:
		return normalResult, true, nil
	case flowReturned:
		return res, true, nil
	default:
		return result{}, false, langerr.SyntaxErrorf("%s", missingBreakMsg)
	}
}

func execReturnStmt(ec *Context, n *ast.ReturnStmt) (result, error) {
	if n.Expr == nil {
		return result{flow: flowReturned, value: values.None}, nil
	}
	v, err := evalExpr(ec, n.Expr)
	if err != nil {
		return result{}, err
	}
	return result{flow: flowReturned, value: v}, nil
}
