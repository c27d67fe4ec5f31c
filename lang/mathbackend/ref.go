package mathbackend

import (
	"fmt"
	"math"

	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/values"
)

// RefBackend is the reference Backend implementation: standard-library
// trigonometry plus the small symbolic Expr engine in this package for
// derivatives and integrals.
type RefBackend struct{}

var _ Backend = RefBackend{}

func (RefBackend) Exec(action Action, args []values.Value) (Result, error) {
	switch action {
	case TrigInv, TrigAngle:
		if len(args) != 1 {
			return nil, langerr.TypeErrorf("trig function expects 1 argument, got %d", len(args))
		}
		f, err := asFloat(args[0])
		if err != nil {
			return nil, err
		}
		return trigResult{x: f}, nil

	case DefInt, IndefInt, Deriv:
		if len(args) < 2 {
			return nil, langerr.TypeErrorf("%s expects at least 2 arguments, got %d", action, len(args))
		}
		exprStr, ok := args[0].(values.Str)
		if !ok {
			return nil, langerr.TypeErrorf("%s expects a string formula as its first argument", action)
		}
		varName, ok := args[1].(values.Str)
		if !ok {
			return nil, langerr.TypeErrorf("%s expects a variable name as its second argument", action)
		}
		e, err := ParseExpr(string(exprStr), string(varName))
		if err != nil {
			return nil, err
		}

		switch action {
		case Deriv:
			return exprResult{e: e.Deriv()}, nil
		case IndefInt:
			ie, err := e.Integral()
			if err != nil {
				return nil, err
			}
			return exprResult{e: ie}, nil
		case DefInt:
			if len(args) != 4 {
				return nil, langerr.TypeErrorf("definite integral expects 4 arguments, got %d", len(args))
			}
			lo, err := asFloat(args[2])
			if err != nil {
				return nil, err
			}
			hi, err := asFloat(args[3])
			if err != nil {
				return nil, err
			}
			ie, err := e.Integral()
			if err != nil {
				return nil, err
			}
			return constResult{v: ie.Eval(hi) - ie.Eval(lo)}, nil
		}
	}
	return nil, fmt.Errorf("mathbackend: unknown action %v", action)
}

func asFloat(v values.Value) (float64, error) {
	switch n := v.(type) {
	case values.Int:
		return float64(n), nil
	case values.Float:
		return float64(n), nil
	}
	return 0, langerr.TypeErrorf("expected a number, got '%s'", v.Type())
}

// trigResult answers Attr for each trig function name against a stored
// angle/ratio x.
type trigResult struct{ x float64 }

func (t trigResult) Function() Expr { return nil }

func (t trigResult) Attr(name string) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(t.x), nil
	case "cos":
		return math.Cos(t.x), nil
	case "tan":
		return math.Tan(t.x), nil
	case "asin":
		return math.Asin(t.x), nil
	case "acos":
		return math.Acos(t.x), nil
	case "atan":
		return math.Atan(t.x), nil
	}
	return 0, langerr.NameErrorf("unknown trig function '%s'", name)
}

// exprResult carries a symbolic Expr, as produced by deriv/indef_int.
type exprResult struct{ e Expr }

func (r exprResult) Function() Expr                 { return r.e }
func (r exprResult) Attr(string) (float64, error)    { return 0, langerr.TypeErrorf("not a trig result") }

// constResult carries the already-evaluated numeric result of a definite
// integral.
type constResult struct{ v float64 }

func (r constResult) Function() Expr              { return Const(r.v) }
func (r constResult) Attr(string) (float64, error) { return 0, langerr.TypeErrorf("not a trig result") }
