package ast

// Print prints each evaluated Arg joined by a single space, followed by a
// newline; with no Args it prints a blank line.
type Print struct {
	base
	Args []Expr
}

func (*Print) Kind() Kind { return KindPrint }
func (*Print) stmt()      {}

// IfElseBlock pairs an If with an optional Else, reconciling the two into a
// single control-flow result.
type IfElseBlock struct {
	base
	If   *IfStmt
	Else *ElseStmt // nil if there is no else branch
}

func (*IfElseBlock) Kind() Kind { return KindIfElseBlock }
func (*IfElseBlock) stmt()      {}

// IfStmt runs Body in a new "if" scope when Cond is truthy.
type IfStmt struct {
	base
	Cond Expr
	Body []Stmt
}

func (*IfStmt) Kind() Kind { return KindIfStmt }
func (*IfStmt) stmt()      {}

// ElseStmt runs Body unconditionally in a new "else" scope. Body may consist
// of a single IfStmt to express an else-if chain.
type ElseStmt struct {
	base
	Body []Stmt
}

func (*ElseStmt) Kind() Kind { return KindElseStmt }
func (*ElseStmt) stmt()      {}

// ForStmt binds IterName to each element of RangeExpr in turn, in a new
// "for_loop" scope, running Body for each.
type ForStmt struct {
	base
	IterName  string
	RangeExpr Expr
	Body      []Stmt
}

func (*ForStmt) Kind() Kind { return KindForStmt }
func (*ForStmt) stmt()      {}

// WhileStmt re-evaluates Cond before each iteration of Body, run in a new
// "while_loop" scope.
type WhileStmt struct {
	base
	Cond Expr
	Body []Stmt
}

func (*WhileStmt) Kind() Kind { return KindWhileStmt }
func (*WhileStmt) stmt()      {}

// SwitchStmt evaluates Expr once and visits each Case in order, then Default
// if present and no case matched and broke first.
type SwitchStmt struct {
	base
	Expr    Expr
	Cases   []*CaseStmt
	Default *DefaultStmt // nil if absent
}

func (*SwitchStmt) Kind() Kind { return KindSwitchStmt }
func (*SwitchStmt) stmt()      {}

// CaseStmt matches Value against the enclosing switch's evaluated
// expression; on match, Body runs in a new "case" scope and must end with a
// BreakStmt.
type CaseStmt struct {
	base
	Value Expr
	Body  []Stmt
}

func (*CaseStmt) Kind() Kind { return KindCaseStmt }
func (*CaseStmt) stmt()      {}

// DefaultStmt runs Body in a new "default" scope; Body must end with a
// BreakStmt.
type DefaultStmt struct {
	base
	Body []Stmt
}

func (*DefaultStmt) Kind() Kind { return KindDefaultStmt }
func (*DefaultStmt) stmt()      {}

// BreakStmt terminates the enclosing case/default body.
type BreakStmt struct {
	base
}

func (*BreakStmt) Kind() Kind { return KindBreakStmt }
func (*BreakStmt) stmt()      {}

// ReturnStmt unwinds the enclosing function call with the value of Expr (or
// None if Expr is nil, for a bare `return`).
type ReturnStmt struct {
	base
	Expr Expr // nil for a bare return
}

func (*ReturnStmt) Kind() Kind { return KindReturnStmt }
func (*ReturnStmt) stmt()      {}

// FuncDecl declares a function. Declaring it only records its Params and
// Body; no parameter is bound until a matching FuncCall binds the call's
// arguments, and Body never executes until that FuncCall runs it.
type FuncDecl struct {
	base
	ID     string
	Params []string
	Body   []Stmt
}

func (*FuncDecl) Kind() Kind { return KindFuncDecl }
func (*FuncDecl) stmt()      {}

// FuncBlock is the snapshot a FuncDecl's global slot is rewritten to after
// its first call: the mangled frame key paired with the declaration's body,
// so subsequent calls execute the body directly. It is produced by the
// function subsystem, never by the parser.
type FuncBlock struct {
	base
	FrameKey string
	Body     []Stmt
}

func (*FuncBlock) Kind() Kind { return KindFuncBlock }
func (*FuncBlock) stmt()      {}
