package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksoncooper/rlox/lang/scanner"
	"github.com/mna/mainer"
)

// Tokenize runs the scanner over path and prints one line per token.
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitNoInput, err: err}
	}

	toks, err := scanner.Scan(string(src))
	for _, tok := range toks {
		fmt.Fprintf(stdio.Stdout, "%s %q line=%d\n", tok.Kind, tok.Lexeme, tok.Line)
	}
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return &stageError{code: ExitCompileTime, err: err}
	}
	return nil
}
