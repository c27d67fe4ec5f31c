package maincmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/evalscript/lang/ast"
	"github.com/mna/evalscript/lang/eval"
	"github.com/mna/evalscript/lang/mathbackend"
)

// SourceLoader produces a Program to evaluate from a path argument. The
// evaluator has no dependency on how that Program came to exist; the only
// implementation provided here reads a JSON-encoded AST, since this module
// does not include a parser for the language's concrete syntax (see
// DESIGN.md for the resulting open question).
type SourceLoader interface {
	Load(path string) (*ast.Program, error)
}

// JSONLoader reads path as a JSON document matching ast.DecodeProgram's wire
// format.
type JSONLoader struct{}

func (JSONLoader) Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	prog, err := ast.DecodeProgram(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return prog, nil
}

// Run is the "run" subcommand: load the program named by the single
// positional argument and evaluate it to completion.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) != 1 {
		return printError(stdio, fmt.Errorf("run: exactly one file must be provided"))
	}
	return RunFile(ctx, stdio, JSONLoader{}, c.Trace, c.MaxSteps, args[0])
}

// RunFile loads path via loader and evaluates the resulting program,
// printing any evaluation error to stdio.Stderr.
func RunFile(ctx context.Context, stdio mainer.Stdio, loader SourceLoader, trace bool, maxSteps int, path string) error {
	prog, err := loader.Load(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	opts := []eval.Option{
		eval.WithStdout(stdio.Stdout),
		eval.WithBackend(mathbackend.RefBackend{}),
	}
	if maxSteps > 0 {
		opts = append(opts, eval.WithMaxSteps(maxSteps))
	}
	if trace {
		opts = append(opts, eval.WithTrace(log.New(stdio.Stderr, "", log.LstdFlags)))
	}

	if _, err := eval.Run(ctx, prog, opts...); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
