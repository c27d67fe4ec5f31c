// Package builtins implements the predeclared functions available to every
// program: len, min, max, the int/float/str/list typecasts, and type.
package builtins

import (
	"fmt"

	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/values"
)

// Func is the signature every builtin implements. args is the already
// evaluated argument list, in call order.
type Func func(args []values.Value) (values.Value, error)

// Table is the predeclared name-to-builtin mapping, grounded the same way
// the evaluator's user-defined functions are: looked up by name at call
// time, never by static reference.
var Table = map[string]Func{
	"len":   Len,
	"min":   Min,
	"max":   Max,
	"int":   Int,
	"float": Float,
	"str":   Str,
	"list":  List,
	"type":  Type,
}

// Len returns the number of elements in a list or bytes in a string.
func Len(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, langerr.TypeErrorf("len() takes exactly 1 argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case values.Indexable:
		return values.Int(v.Len()), nil
	default:
		return nil, langerr.TypeErrorf("object of type '%s' has no len()", v.Type())
	}
}

// flattenOneLevel expands any *values.List argument by one level, matching
// the language's min/max(a, b, [c, d]) calling convention.
func flattenOneLevel(args []values.Value) []values.Value {
	out := make([]values.Value, 0, len(args))
	for _, a := range args {
		if l, ok := a.(*values.List); ok {
			out = append(out, l.Elems()...)
			continue
		}
		out = append(out, a)
	}
	return out
}

// Min returns the smallest of its (possibly list-flattened) arguments.
func Min(args []values.Value) (values.Value, error) { return minmax(args, -1) }

// Max returns the largest of its (possibly list-flattened) arguments.
func Max(args []values.Value) (values.Value, error) { return minmax(args, +1) }

func minmax(args []values.Value, want int) (values.Value, error) {
	flat := flattenOneLevel(args)
	if len(flat) == 0 {
		return nil, langerr.TypeErrorf("expected at least 1 argument, got 0")
	}
	best := flat[0]
	for _, v := range flat[1:] {
		c, err := values.Compare(v, best)
		if err != nil {
			return nil, err
		}
		if (want < 0 && c < 0) || (want > 0 && c > 0) {
			best = v
		}
	}
	return best, nil
}

// Int converts its argument to an Int.
func Int(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, langerr.TypeErrorf("int() takes exactly 1 argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case values.Int:
		return v, nil
	case values.Float:
		return values.Int(v), nil
	case values.Bool:
		if v {
			return values.Int(1), nil
		}
		return values.Int(0), nil
	case values.Str:
		var n int64
		if _, err := fmt.Sscanf(string(v), "%d", &n); err != nil {
			return nil, langerr.TypeErrorf("invalid literal for int() with base 10: '%s'", string(v))
		}
		return values.Int(n), nil
	}
	return nil, langerr.TypeErrorf("int() argument must be a string or a number, not '%s'", args[0].Type())
}

// Float converts its argument to a Float.
func Float(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, langerr.TypeErrorf("float() takes exactly 1 argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case values.Float:
		return v, nil
	case values.Int:
		return values.Float(v), nil
	case values.Str:
		var f float64
		if _, err := fmt.Sscanf(string(v), "%g", &f); err != nil {
			return nil, langerr.TypeErrorf("could not convert string to float: '%s'", string(v))
		}
		return values.Float(f), nil
	}
	return nil, langerr.TypeErrorf("float() argument must be a string or a number, not '%s'", args[0].Type())
}

// Str converts its argument to its display string, wrapped in single quotes
// regardless of the argument's type.
func Str(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, langerr.TypeErrorf("str() takes exactly 1 argument (%d given)", len(args))
	}
	return values.Str("'" + args[0].String() + "'"), nil
}

// List materializes its argument as a *values.List: a scalar number becomes
// a single-element list, a string becomes a list of its one-byte
// substrings, and a list is copied. Any other type errors.
func List(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, langerr.TypeErrorf("list() takes exactly 1 argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case values.Int, values.Float:
		return values.NewList([]values.Value{v}), nil
	case values.Str:
		elems := make([]values.Value, len(v))
		for i := range v {
			elems[i] = v[i : i+1]
		}
		return values.NewList(elems), nil
	case *values.List:
		elems := append([]values.Value{}, v.Elems()...)
		return values.NewList(elems), nil
	}
	return nil, langerr.TypeErrorf("'%s' object is not iterable", args[0].Type())
}

// Type returns the dynamic type name of its argument.
func Type(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, langerr.TypeErrorf("type() takes exactly 1 argument (%d given)", len(args))
	}
	return values.Str(args[0].Type()), nil
}
