package eval

import (
	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/token"
	"github.com/mna/evalscript/lang/values"
)

// evalExpr evaluates an expression node to a Value.
func evalExpr(ec *Context, e ast.Expr) (Value, error) {
	if err := ec.step(); err != nil {
		return nil, err
	}
	switch n := e.(type) {
	case *ast.Literal:
		return evalLiteral(ec, n)
	case *ast.Range:
		return evalRange(ec, n)
	case *ast.Variable:
		return evalVariable(ec, n)
	case *ast.BinaryOp:
		return evalBinaryOp(ec, n)
	case *ast.BoolOp:
		return evalBoolOp(ec, n)
	case *ast.VariableBinopReassign:
		return evalVariableBinopReassign(ec, n)
	case *ast.VariableIncrDecr:
		return evalVariableIncrDecr(ec, n)
	case *ast.List:
		return evalList(ec, n)
	case *ast.FuncCall:
		return evalFuncCall(ec, n)
	}
	return nil, langerr.TypeErrorf("eval: unhandled expression node %s", e.Kind())
}

func evalLiteral(ec *Context, n *ast.Literal) (Value, error) {
	if n.Elems == nil {
		if n.Scalar == nil {
			return values.None, nil
		}
		return n.Scalar, nil
	}
	elems := make([]Value, len(n.Elems))
	for i, sub := range n.Elems {
		v, err := evalExpr(ec, sub)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return values.NewList(elems), nil
}

func evalRange(ec *Context, n *ast.Range) (Value, error) {
	start, err := evalExpr(ec, n.Start)
	if err != nil {
		return nil, err
	}
	end, err := evalExpr(ec, n.End)
	if err != nil {
		return nil, err
	}
	step, err := evalExpr(ec, n.Step)
	if err != nil {
		return nil, err
	}
	si, ok1 := start.(values.Int)
	ei, ok2 := end.(values.Int)
	sti, ok3 := step.(values.Int)
	if !ok1 {
		return nil, langerr.TypeErrorf("'%s' object cannot be interpreted as an integer", start.Type())
	}
	if !ok2 {
		return nil, langerr.TypeErrorf("'%s' object cannot be interpreted as an integer", end.Type())
	}
	if !ok3 {
		return nil, langerr.TypeErrorf("'%s' object cannot be interpreted as an integer", step.Type())
	}
	if sti == 0 {
		return nil, langerr.ZeroDivisionErrorf("range() arg 3 must not be zero")
	}
	var elems []Value
	if sti > 0 {
		for i := si; i < ei; i += sti {
			elems = append(elems, i)
		}
	} else {
		for i := si; i > ei; i += sti {
			elems = append(elems, i)
		}
	}
	return values.NewList(elems), nil
}

func evalVariable(ec *Context, n *ast.Variable) (Value, error) {
	switch n.Op {
	case ast.VarGet:
		v, ok := ec.Scope.Lookup(n.Name)
		if !ok {
			return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
		}
		return v, nil
	case ast.VarAssign:
		v, err := evalExpr(ec, n.Expr)
		if err != nil {
			return nil, err
		}
		if err := ec.Scope.Define(n.Name, v); err != nil {
			return nil, err
		}
		return values.None, nil
	case ast.VarReassign, ast.VarReassignGet:
		v, err := evalExpr(ec, n.Expr)
		if err != nil {
			return nil, err
		}
		if err := ec.Scope.Assign(n.Name, v); err != nil {
			return nil, err
		}
		if n.Op == ast.VarReassignGet {
			return v, nil
		}
		return values.None, nil
	}
	return nil, langerr.TypeErrorf("eval: unhandled variable op %d", n.Op)
}

func evalBinaryOp(ec *Context, n *ast.BinaryOp) (Value, error) {
	x, err := evalExpr(ec, n.Lhs)
	if err != nil {
		return nil, err
	}
	y, err := evalExpr(ec, n.Rhs)
	if err != nil {
		return nil, err
	}
	return values.Binary(n.Op, x, y)
}

func evalBoolOp(ec *Context, n *ast.BoolOp) (Value, error) {
	if n.Not {
		v, err := evalExpr(ec, n.Operands[0])
		if err != nil {
			return nil, err
		}
		return values.Bool(!v.Truth()), nil
	}

	// AND/OR are Python-style short-circuit operators: each returns one of
	// its actual operand values, not a value coerced to Bool (e.g. 5 AND 3
	// evaluates to Int(3), not Bool(true)).
	acc, err := evalExpr(ec, n.Operands[0])
	if err != nil {
		return nil, err
	}
	for i, op := range n.Ops {
		switch op {
		case token.AND:
			if !acc.Truth() {
				return acc, nil
			}
		case token.OR:
			if acc.Truth() {
				return acc, nil
			}
		default:
			return nil, langerr.TypeErrorf("eval: unhandled bool op %s", op)
		}
		acc, err = evalExpr(ec, n.Operands[i+1])
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func evalVariableBinopReassign(ec *Context, n *ast.VariableBinopReassign) (Value, error) {
	cur, ok := ec.Scope.Lookup(n.Name)
	if !ok {
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}
	rhs, err := evalExpr(ec, n.Rhs)
	if err != nil {
		return nil, err
	}
	v, err := values.Binary(n.Op.Binop(), cur, rhs)
	if err != nil {
		return nil, err
	}
	if err := ec.Scope.Assign(n.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func evalVariableIncrDecr(ec *Context, n *ast.VariableIncrDecr) (Value, error) {
	cur, ok := ec.Scope.Lookup(n.Name)
	if !ok {
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}
	op := token.PLUS
	if n.Op == token.DECR {
		op = token.MINUS
	}
	v, err := values.Binary(op, cur, values.Int(1))
	if err != nil {
		return nil, err
	}
	if err := ec.Scope.Assign(n.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}
