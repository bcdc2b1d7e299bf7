package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/jacksoncooper/rlox/lang/interpreter"
	"github.com/jacksoncooper/rlox/lang/parser"
	"github.com/jacksoncooper/rlox/lang/resolver"
	"github.com/jacksoncooper/rlox/lang/scanner"
	"github.com/jacksoncooper/rlox/lang/values"
	"github.com/mna/mainer"
)

// RunFile scans, parses, resolves and interprets the whole of path, exiting
// with the exit code matching whichever stage first failed.
func (c *Cmd) RunFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitNoInput, err: err}
	}

	in := interpreter.New(nil, stdio.Stdout)
	if err := runSource(in, string(src), stdio); err != nil {
		return err
	}
	return nil
}

// RunREPL reads one line at a time from stdio.Stdin, running each line
// through the full pipeline against one interpreter, so globals defined on
// one line stay visible to later lines. A blank
// line ends the session. Errors are reported but never end the session -
// a fresh prompt always follows.
func (c *Cmd) RunREPL(_ context.Context, stdio mainer.Stdio) error {
	in := interpreter.New(nil, stdio.Stdout)
	scan := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !scan.Scan() {
			return nil
		}
		line := scan.Text()
		if line == "" {
			return nil
		}
		runSource(in, line, stdio)
	}
}

// runSource drives one source string through scan, parse, resolve and
// interpret, reporting any failure to stdio.Stderr and mapping it to the
// exit code its stage owns.
func runSource(in *interpreter.Interpreter, src string, stdio mainer.Stdio) error {
	toks, err := scanner.Scan(src)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitCompileTime, err: err}
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitCompileTime, err: err}
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitCompileTime, err: err}
	}
	in.SetLocals(locals)

	if err := in.Run(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		if _, ok := err.(*values.RuntimeError); ok {
			return &stageError{code: ExitRuntime, err: err}
		}
		return &stageError{code: ExitCompileTime, err: err}
	}
	return nil
}
