package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/parser"
	"github.com/jacksoncooper/rlox/lang/scanner"
	"github.com/mna/mainer"
)

// Parse runs the scanner and parser over path and prints the resulting
// statement list as parenthesized trees, one per top-level statement.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, path string) error {
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

	for _, stmt := range stmts {
		fmt.Fprintln(stdio.Stdout, ast.PrintTree(stmt))
	}
	return nil
}
