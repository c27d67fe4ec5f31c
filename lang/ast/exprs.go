package ast

import (
	"github.com/mna/evalscript/lang/token"
	"github.com/mna/evalscript/lang/values"
)

// base is embedded by every node to provide its position and satisfy the
// common part of the Node interface.
type base struct {
	PosV token.Pos
}

func (b base) Pos() token.Pos { return b.PosV }

// VarOp identifies the operation carried by a Variable node.
type VarOp uint8

const (
	VarGet VarOp = iota
	VarAssign
	VarReassign
	VarReassignGet
)

// Variable is a variable reference, declaration or reassignment.
//
//   - VarGet: Name is looked up, Expr is nil.
//   - VarAssign: Expr is evaluated and declared as Name (fails if already
//     visible).
//   - VarReassign / VarReassignGet: Expr is evaluated and written to the
//     innermost frame already holding Name (fails if absent);
//     VarReassignGet additionally yields the stored value.
type Variable struct {
	base
	Op   VarOp
	Name string
	Expr Expr
}

func (*Variable) Kind() Kind { return KindVariable }
func (*Variable) expr()      {}

// Variable also doubles as a Stmt: an assignment or reassignment used for
// effect at statement position, which is how the language spells them.
func (*Variable) stmt() {}

// Literal is either a scalar value payload or, when Elems is non-nil, a list
// literal whose elements are evaluated in order and collected.
type Literal struct {
	base
	Scalar values.Value
	Elems  []Expr
}

func (*Literal) Kind() Kind { return KindLiteral }
func (*Literal) expr()      {}

// Range is a [start..end) stepped range expression; it materializes to
// List(Int) when evaluated.
type Range struct {
	base
	Start, End, Step Expr
}

func (*Range) Kind() Kind { return KindRange }
func (*Range) expr()      {}

// BinaryOp applies a binary arithmetic or comparison operator.
type BinaryOp struct {
	base
	Lhs, Rhs Expr
	Op       token.Token
}

func (*BinaryOp) Kind() Kind { return KindBinaryOp }
func (*BinaryOp) expr()      {}

// BoolOp is a NOT, or a left-to-right short-circuit chain of AND/OR.
//
// When Not is true, Operands holds exactly one expression and Ops is empty.
// Otherwise len(Ops) == len(Operands)-1, each Ops[i] applying between
// Operands[i] and Operands[i+1], evaluated and combined left to right with
// short-circuiting.
type BoolOp struct {
	base
	Not      bool
	Operands []Expr
	Ops      []token.Token
}

func (*BoolOp) Kind() Kind { return KindBoolOp }
func (*BoolOp) expr()      {}

// VariableBinopReassign is sugar for `name op= rhs`, i.e. `name = name op
// rhs`.
type VariableBinopReassign struct {
	base
	Name string
	Op   token.Token // one of the _EQ augmented tokens
	Rhs  Expr
}

func (*VariableBinopReassign) Kind() Kind { return KindVariableBinopReassign }
func (*VariableBinopReassign) expr()      {}
func (*VariableBinopReassign) stmt()      {}

// VariableIncrDecr is sugar for `name++` / `name--`.
type VariableIncrDecr struct {
	base
	Name string
	Op   token.Token // token.INCR or token.DECR
}

func (*VariableIncrDecr) Kind() Kind { return KindVariableIncrDecr }
func (*VariableIncrDecr) expr()      {}
func (*VariableIncrDecr) stmt()      {}

// ListOp identifies the operation carried by a List node.
type ListOp uint8

const (
	ListGet ListOp = iota
	ListAssign
	ListSlice
)

// List indexes, assigns into, or builds a slice specification for a list
// variable.
//
//   - ListGet: Indices are evaluated in order and applied successively
//     (each either an integer index or a SliceSpec) to the value bound to
//     Name.
//   - ListAssign: Indices[:len-1] descend (each must be an integer),
//     Indices[len-1] is the assignment target index; Rhs is the value
//     assigned. The outermost list is mutated in place.
//   - ListSlice: Start, End, Step evaluate to a SliceSpec value (Name and
//     Indices are unused).
type List struct {
	base
	Op               ListOp
	Name             string
	Indices          []Expr
	Rhs              Expr
	Start, End, Step Expr
}

func (*List) Kind() Kind { return KindList }
func (*List) expr()      {}

// List also doubles as a Stmt for ListAssign used at statement position
// (e.g. `arr[0] = 5`).
func (*List) stmt() {}

// FuncCallOp identifies what a FuncCall dispatches to.
type FuncCallOp uint8

const (
	// FuncCallExec calls a user-declared function (FuncDecl) by Name.
	FuncCallExec FuncCallOp = iota
	// FuncCallBuiltin calls one of the builtins in lang/builtins by Name
	// (len, min, max, int, float, str, list, type).
	FuncCallBuiltin
	// FuncCallTrig calls a trigonometric function by Name (sin, cos, asin, …).
	FuncCallTrig
	// FuncCallIntegral computes a definite (3+ args) or indefinite (<3 args)
	// integral.
	FuncCallIntegral
	// FuncCallDeriv computes a derivative.
	FuncCallDeriv
)

// FuncCall invokes a user function or a builtin/math-backend operation.
type FuncCall struct {
	base
	Op   FuncCallOp
	Name string
	Args []Expr
}

func (*FuncCall) Kind() Kind { return KindFuncCall }
func (*FuncCall) expr()      {}

// FuncCall also doubles as a Stmt for a call used at statement position
// with its result discarded.
func (*FuncCall) stmt() {}
