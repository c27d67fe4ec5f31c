package values

import (
	"math"

	"github.com/mna/evalscript/lang/langerr"
	"github.com/mna/evalscript/lang/token"
)

// Binary applies a PLUS/MINUS/STAR/SLASH/PERCENT/CIRCUMFLEX or comparison
// operator to x and y, applying the language's int/float promotion and
// string/list overloads. Comparison operators (LT/LE/GT/GE/EQL/NEQ) are
// accepted here too and return Bool, so that VariableBinopReassign and
// BinaryOp share one dispatch point.
func Binary(op token.Token, x, y Value) (Value, error) {
	switch op {
	case token.EQL, token.NEQ:
		eq, err := Equal(x, y)
		if err != nil {
			return nil, err
		}
		if op == token.NEQ {
			eq = !eq
		}
		return Bool(eq), nil
	case token.LT, token.LE, token.GT, token.GE:
		c, err := Compare(x, y)
		if err != nil {
			return nil, err
		}
		return Bool(compareHolds(op, c)), nil
	}

	if s, ok := x.(HasBinary); ok {
		if v, err, handled := s.Binary(op, y); handled {
			return v, err
		}
	}

	switch xv := x.(type) {
	case Int:
		switch yv := y.(type) {
		case Int:
			return intArith(op, xv, yv)
		case Float:
			return floatArith(op, Float(xv), yv)
		}
	case Float:
		switch yv := y.(type) {
		case Int:
			return floatArith(op, xv, Float(yv))
		case Float:
			return floatArith(op, xv, yv)
		}
	case Str:
		switch yv := y.(type) {
		case Str:
			if op == token.PLUS {
				return xv + yv, nil
			}
		case Int:
			if op == token.STAR {
				return repeatStr(xv, int64(yv))
			}
		}
	case *List:
		switch yv := y.(type) {
		case *List:
			if op == token.PLUS {
				out := make([]Value, 0, xv.Len()+yv.Len())
				out = append(out, xv.elems...)
				out = append(out, yv.elems...)
				return NewList(out), nil
			}
		case Int:
			if op == token.STAR {
				return repeatList(xv, int64(yv))
			}
		}
	}

	return nil, langerr.TypeErrorf("unsupported operand type(s) for %s: '%s' and '%s'", op, x.Type(), y.Type())
}

func compareHolds(op token.Token, c int) bool {
	switch op {
	case token.LT:
		return c < 0
	case token.LE:
		return c <= 0
	case token.GT:
		return c > 0
	case token.GE:
		return c >= 0
	}
	return false
}

func intArith(op token.Token, x, y Int) (Value, error) {
	switch op {
	case token.PLUS:
		return x + y, nil
	case token.MINUS:
		return x - y, nil
	case token.STAR:
		return x * y, nil
	case token.SLASH:
		if y == 0 {
			return nil, langerr.ZeroDivisionErrorf("division by zero")
		}
		return Float(x) / Float(y), nil
	case token.PERCENT:
		if y == 0 {
			return nil, langerr.ZeroDivisionErrorf("integer division or modulo by zero")
		}
		return x % y, nil
	case token.CIRCUMFLEX:
		return Int(intPow(int64(x), int64(y))), nil
	}
	return nil, langerr.TypeErrorf("unsupported operand type(s) for %s: 'int' and 'int'", op)
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func floatArith(op token.Token, x, y Float) (Value, error) {
	switch op {
	case token.PLUS:
		return x + y, nil
	case token.MINUS:
		return x - y, nil
	case token.STAR:
		return x * y, nil
	case token.SLASH:
		if y == 0 {
			return nil, langerr.ZeroDivisionErrorf("float division by zero")
		}
		return x / y, nil
	case token.PERCENT:
		if y == 0 {
			return nil, langerr.ZeroDivisionErrorf("float modulo")
		}
		return Float(math.Mod(float64(x), float64(y))), nil
	case token.CIRCUMFLEX:
		return Float(math.Pow(float64(x), float64(y))), nil
	}
	return nil, langerr.TypeErrorf("unsupported operand type(s) for %s: 'float' and 'float'", op)
}

func repeatStr(s Str, n int64) (Value, error) {
	if n <= 0 {
		return Str(""), nil
	}
	out := make([]byte, 0, int64(len(s))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return Str(out), nil
}

func repeatList(l *List, n int64) (Value, error) {
	if n <= 0 {
		return NewList(nil), nil
	}
	out := make([]Value, 0, int64(len(l.elems))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, l.elems...)
	}
	return NewList(out), nil
}

// Equal reports whether x and y are equal. Cross-type comparisons never
// error: values of different, incomparable types are simply unequal, except
// that Int and Float compare by numeric value.
func Equal(x, y Value) (bool, error) {
	switch xv := x.(type) {
	case Int:
		switch yv := y.(type) {
		case Int:
			return xv == yv, nil
		case Float:
			return Float(xv) == yv, nil
		}
		return false, nil
	case Float:
		switch yv := y.(type) {
		case Int:
			return xv == Float(yv), nil
		case Float:
			return xv == yv, nil
		}
		return false, nil
	case Bool:
		yv, ok := y.(Bool)
		return ok && xv == yv, nil
	case Str:
		yv, ok := y.(Str)
		return ok && xv == yv, nil
	case *List:
		yv, ok := y.(*List)
		if !ok || len(xv.elems) != len(yv.elems) {
			return false, nil
		}
		for i := range xv.elems {
			eq, err := Equal(xv.elems[i], yv.elems[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case noneType:
		_, ok := y.(noneType)
		return ok, nil
	}
	return false, nil
}

// Compare orders x and y for the LT/LE/GT/GE operators (EQL/NEQ use Equal
// instead), applying int/float promotion. It errors when the two values are not ordered
// relative to one another (e.g. string vs int).
func Compare(x, y Value) (int, error) {
	if ox, ok := x.(Ordered); ok {
		return ox.Cmp(y)
	}
	return 0, langerr.TypeErrorf("'<' not supported between instances of '%s' and '%s'", x.Type(), y.Type())
}
