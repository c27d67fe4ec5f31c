// Package eval implements the tree-walking evaluator: expression and
// statement interpretation, the function-call subsystem, and the control-
// flow propagation that ties them together.
package eval

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/mathbackend"
	"github.com/mna/evalscript/lang/scope"
)

// Context bundles every piece of mutable state a running program shares
// across its evaluator calls: the scope stack, the registered functions,
// the math backend, the step budget, and where output and diagnostics go.
// A Context is not safe for concurrent use; the language has no concurrency
// primitives of its own, and nothing in the evaluator synchronizes access
// to it.
type Context struct {
	Scope *scope.Stack

	// Funcs holds every declared function, keyed by its mangled "_0" frame
	// key. The stored node is a *ast.FuncDecl until the function's first
	// call rewrites the slot to a *ast.FuncBlock.
	Funcs map[string]ast.Stmt

	// ParamNames holds each declared function's formal parameter names, in
	// declaration order, keyed by the plain function name.
	ParamNames map[string][]string

	// Backend evaluates trig/integral/deriv calls. Defaults to
	// mathbackend.RefBackend{} when left nil by NewContext's caller.
	Backend mathbackend.Backend

	// Stdout receives Print statement output.
	Stdout io.Writer

	// Trace, when true, turns on step-by-step diagnostic logging to Logger.
	Trace  bool
	Logger *log.Logger

	// MaxSteps bounds the number of statements/expressions evaluated before
	// the run is aborted. A value <= 0 means no limit.
	MaxSteps int
	steps    int

	ctx context.Context
}

// Option configures a Context at construction.
type Option func(*Context)

// WithStdout overrides the writer Print statements write to. Defaults to
// os.Stdout.
func WithStdout(w io.Writer) Option { return func(c *Context) { c.Stdout = w } }

// WithBackend overrides the math backend. Defaults to mathbackend.RefBackend{}.
func WithBackend(b mathbackend.Backend) Option { return func(c *Context) { c.Backend = b } }

// WithMaxSteps bounds the number of evaluation steps before the run aborts
// with an error.
func WithMaxSteps(n int) Option { return func(c *Context) { c.MaxSteps = n } }

// WithTrace turns on step tracing to logger, or to a standard-library
// logger writing to os.Stderr if logger is nil.
func WithTrace(logger *log.Logger) Option {
	return func(c *Context) {
		c.Trace = true
		if logger != nil {
			c.Logger = logger
		}
	}
}

// NewContext returns a ready-to-use Context.
func NewContext(ctx context.Context, opts ...Option) *Context {
	c := &Context{
		Scope:      scope.NewStack(),
		Funcs:      make(map[string]ast.Stmt),
		ParamNames: make(map[string][]string),
		Backend:    mathbackend.RefBackend{},
		Stdout:     os.Stdout,
		Logger:     log.New(os.Stderr, "evalscript: ", log.Lshortfile),
		ctx:        ctx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) trace(format string, args ...any) {
	if c.Trace {
		c.Logger.Printf(format, args...)
	}
}

// step increments the step counter and reports a deadline-exceeded-style
// error once MaxSteps is reached, or once the Context's context.Context is
// cancelled.
func (c *Context) step() error {
	c.steps++
	if c.MaxSteps > 0 && c.steps > c.MaxSteps {
		return errMaxSteps
	}
	select {
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		return nil
	}
}
