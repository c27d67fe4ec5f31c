package eval

import (
	"fmt"

	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/builtins"
	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/mathbackend"
	"github.com/mna/evalscript/lang/values"
)

func evalFuncCall(ec *Context, n *ast.FuncCall) (Value, error) {
	switch n.Op {
	case ast.FuncCallExec:
		return callUserFunc(ec, n)
	case ast.FuncCallBuiltin:
		return callBuiltin(ec, n)
	case ast.FuncCallTrig:
		return callTrig(ec, n)
	case ast.FuncCallIntegral:
		return callIntegral(ec, n)
	case ast.FuncCallDeriv:
		return callDeriv(ec, n)
	}
	return nil, langerr.TypeErrorf("eval: unhandled func call op %d", n.Op)
}

func evalArgs(ec *Context, args []ast.Expr) ([]Value, error) {
	out := make([]Value, len(args))
	for i, a := range args {
		v, err := evalExpr(ec, a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func callBuiltin(ec *Context, n *ast.FuncCall) (Value, error) {
	fn, ok := builtins.Table[n.Name]
	if !ok {
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}
	args, err := evalArgs(ec, n.Args)
	if err != nil {
		return nil, err
	}
	return fn(args)
}

func callTrig(ec *Context, n *ast.FuncCall) (Value, error) {
	args, err := evalArgs(ec, n.Args)
	if err != nil {
		return nil, err
	}
	action := mathbackend.TrigAngle
	switch n.Name {
	case "asin", "acos", "atan":
		action = mathbackend.TrigInv
	}
	res, err := ec.Backend.Exec(action, args)
	if err != nil {
		return nil, err
	}
	f, err := res.Attr(n.Name)
	if err != nil {
		return nil, err
	}
	return values.Float(f), nil
}

func callIntegral(ec *Context, n *ast.FuncCall) (Value, error) {
	args, err := evalArgs(ec, n.Args)
	if err != nil {
		return nil, err
	}
	action := mathbackend.IndefInt
	if len(args) > 2 {
		action = mathbackend.DefInt
	}
	res, err := ec.Backend.Exec(action, args)
	if err != nil {
		return nil, err
	}
	return resolveSymbolic(ec, res, args, action)
}

func callDeriv(ec *Context, n *ast.FuncCall) (Value, error) {
	args, err := evalArgs(ec, n.Args)
	if err != nil {
		return nil, err
	}
	res, err := ec.Backend.Exec(mathbackend.Deriv, args)
	if err != nil {
		return nil, err
	}
	return resolveSymbolic(ec, res, args, mathbackend.Deriv)
}

// resolveSymbolic implements the shared rule for integral/deriv results:
// when fewer than 3 arguments were given (single-variable form) and
// execution is currently inside a function whose parameter matches the
// variable of differentiation, substitute that parameter's current value
// and evaluate numerically; otherwise return the symbolic form, with an
// indefinite integral's textual form suffixed " + C".
func resolveSymbolic(ec *Context, res mathbackend.Result, args []Value, action mathbackend.Action) (Value, error) {
	e := res.Function()
	if action == mathbackend.DefInt {
		return values.Float(e.Eval(0)), nil
	}
	if len(args) < 2 {
		return nil, langerr.TypeErrorf("expected a variable name argument")
	}
	varName, ok := args[1].(values.Str)
	if !ok {
		return nil, langerr.TypeErrorf("variable name must be a string")
	}
	if frame := ec.Scope.InnermostFrame(); frame != "" {
		if params := ec.Scope.FrameParams(frame); params != nil {
			if v, ok := params.Get(string(varName)); ok {
				x, err := asEvalArg(v)
				if err == nil {
					return values.Float(e.Eval(x)), nil
				}
			}
		}
	}
	if action == mathbackend.IndefInt {
		return values.Str(e.String() + " + C"), nil
	}
	return values.Str(e.String()), nil
}

func asEvalArg(v Value) (float64, error) {
	switch n := v.(type) {
	case values.Int:
		return float64(n), nil
	case values.Float:
		return float64(n), nil
	}
	return 0, fmt.Errorf("not a number")
}

func callUserFunc(ec *Context, n *ast.FuncCall) (Value, error) {
	params, ok := ec.ParamNames[n.Name]
	if !ok {
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}
	initialKey := funcKey(n.Name, 0)

	frameKey := initialKey
	if ec.Scope.IsFrameActive(initialKey) {
		k := 1
		for {
			candidate := funcKey(n.Name, k)
			if !ec.Scope.IsFrameActive(candidate) {
				frameKey = candidate
				break
			}
			k++
		}
	}

	args, err := evalArgs(ec, n.Args)
	if err != nil {
		return nil, err
	}
	if err := checkArity(n.Name, len(params), len(args)); err != nil {
		return nil, err
	}

	ec.trace("call %s frame=%s args=%v", n.Name, frameKey, args)
	ec.Scope.PushFuncFrame(frameKey)
	for i, p := range params {
		ec.Scope.DefineParam(frameKey, p, args[i])
	}

	entry := ec.Funcs[initialKey]
	var body []ast.Stmt
	switch e := entry.(type) {
	case *ast.FuncDecl:
		body = e.Body
		ec.Funcs[initialKey] = &ast.FuncBlock{FrameKey: initialKey, Body: e.Body}
	case *ast.FuncBlock:
		body = e.Body
	default:
		ec.Scope.PopFuncFrame()
		return nil, langerr.NameErrorf("name '%s' is not defined", n.Name)
	}

	res, err := execBlock(ec, body)
	ec.Scope.PopFuncFrame()
	if err != nil {
		return nil, err
	}
	if res.flow == flowReturned {
		ec.trace("return %s -> %v", n.Name, res.value)
		return res.value, nil
	}
	ec.trace("return %s -> none", n.Name)
	return values.None, nil
}

func funcKey(name string, k int) string {
	return fmt.Sprintf("func_%s_%d", name, k)
}

func checkArity(name string, want, got int) error {
	if got < want {
		return langerr.TypeErrorf("%s() missing %d required positional argument", name, want-got)
	}
	if got > want {
		return langerr.TypeErrorf("%s() takes %d positional arguments but %d were given", name, want, got)
	}
	return nil
}

func execFuncDecl(ec *Context, n *ast.FuncDecl) (result, error) {
	ec.Funcs[funcKey(n.ID, 0)] = n
	ec.ParamNames[n.ID] = n.Params
	return normalResult, nil
}
