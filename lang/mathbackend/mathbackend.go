// Package mathbackend implements the evaluator's symbolic-math collaborator:
// trigonometry, derivatives and integrals, delegated out of the evaluator
// itself just as the language's own design intends.
package mathbackend

import "github.com/mna/evalscript/lang/values"

// Action identifies the operation a Backend is asked to perform.
type Action uint8

const (
	// TrigInv is for the inverse trig functions (asin, acos, atan); args is a
	// single numeric value, the argument to the function.
	TrigInv Action = iota
	// TrigAngle is for the direct trig functions (sin, cos, tan, …); args is a
	// single numeric value, the angle in radians.
	TrigAngle
	// DefInt computes a definite integral; args is [expr, var, lower, upper].
	DefInt
	// IndefInt computes an indefinite integral; args is [expr, var].
	IndefInt
	// Deriv computes a first derivative; args is [expr, var].
	Deriv
)

func (a Action) String() string {
	switch a {
	case TrigInv:
		return "Trig-inv"
	case TrigAngle:
		return "Trig-angle"
	case DefInt:
		return "def_int"
	case IndefInt:
		return "indef_int"
	case Deriv:
		return "deriv"
	}
	return "unknown action"
}

// Result is what a Backend produces. For TrigInv/TrigAngle, callers read
// off the named trig attribute (Attr); for the integral/derivative actions,
// callers use Function.
type Result interface {
	// Attr returns the value of the named trig function (sin, cos, asin, …)
	// evaluated against the angle/ratio the Result was built from. It errors
	// if the Result does not carry such a value (i.e. it is not a trig
	// result) or name is not a known trig function.
	Attr(name string) (float64, error)

	// Function returns the symbolic expression produced by an integral or
	// derivative action. It is nil for trig results.
	Function() Expr
}

// Backend performs a math Action over evaluated argument values and
// produces a Result.
type Backend interface {
	Exec(action Action, args []values.Value) (Result, error)
}

// ToSymbolicValue wraps e as a values.Symbolic carrying e itself as payload,
// so a later `subs`/evaluation can recover the original Expr.
func ToSymbolicValue(e Expr) values.Value {
	return values.Symbolic{Payload: e, Text: e.String()}
}

// FromSymbolicValue recovers the Expr an earlier ToSymbolicValue produced,
// or reports ok=false if v is not such a value.
func FromSymbolicValue(v values.Value) (Expr, bool) {
	s, ok := v.(values.Symbolic)
	if !ok {
		return nil, false
	}
	e, ok := s.Payload.(Expr)
	return e, ok
}
