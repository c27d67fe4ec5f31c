package eval

import (
	"context"
	"errors"

	"github.com/mna/evalscript/lang/ast"
)

var errMaxSteps = errors.New("eval: exceeded maximum step count")

// flow is the control-flow signal a statement or block produces, replacing
// a process-wide "Returning" flag with an explicit value threaded through
// every statement evaluator.
type flow uint8

const (
	// flowNormal means the statement/block ran to completion with no
	// unwinding in progress.
	flowNormal flow = iota
	// flowReturned means a ReturnStmt fired; Value holds the returned value
	// (values.None for a bare return) and every enclosing block must stop
	// and propagate it without running further statements.
	flowReturned
	// flowBroken means a BreakStmt fired; it is only ever produced inside a
	// switch case/default body and is consumed there, never observed by a
	// loop or the top-level program.
	flowBroken
)

// result pairs a flow signal with the value it carries, if any.
type result struct {
	flow  flow
	value Value
}

var normalResult = result{flow: flowNormal}

// Run evaluates program's top-level statements in order and returns the
// process exit code: 0 on a clean run, 1 if the program's execution ended
// in an error. The returned error, when non-nil, is the language-level
// error (see lang/langerr) or evaluation-infrastructure error that stopped
// the run.
func Run(ctx context.Context, program *ast.Program, opts ...Option) (int, error) {
	ec := NewContext(ctx, opts...)
	if _, err := execBlock(ec, program.Stmts); err != nil {
		return 1, err
	}
	return 0, nil
}
