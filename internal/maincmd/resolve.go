package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/parser"
	"github.com/jacksoncooper/rlox/lang/resolver"
	"github.com/jacksoncooper/rlox/lang/scanner"
	"github.com/mna/mainer"
)

// Resolve runs the scanner, parser and resolver over path and prints the
// statement list plus the number of local-variable references the
// resolver bound to an enclosing scope.
func (c *Cmd) Resolve(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitNoInput, err: err}
	}

	toks, err := scanner.Scan(string(src))
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

	for _, stmt := range stmts {
		fmt.Fprintln(stdio.Stdout, ast.PrintTree(stmt))
	}
	fmt.Fprintf(stdio.Stdout, "resolved %d local reference(s)\n", len(locals))
	return nil
}
