// Package maincmd implements the rlox command-line driver: argument
// parsing, the REPL and file-execution modes, and exit-code mapping. None
// of this is part of the interpreter core; it is the thin shell around it.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "rlox"

// Exit codes, matched against the process driver's contract: 0 success,
// 64 CLI usage error, 65 scan/parse/resolve error, 66 input file
// unreadable, 70 runtime (interpret) error, 74 I/O failure on
// stdout/stdin.
const (
	ExitSuccess     mainer.ExitCode = 0
	ExitUsage       mainer.ExitCode = 64
	ExitCompileTime mainer.ExitCode = 65
	ExitNoInput     mainer.ExitCode = 66
	ExitRuntime     mainer.ExitCode = 70
	ExitIO          mainer.ExitCode = 74
)

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<path>]
       %[1]s [<option>...] <command> <path>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With no command and no path, %[1]s starts an interactive REPL. With a
single path and no command, %[1]s executes that file.

The <command> can be one of:
       tokenize                  Run the scanner and print the resulting
                                 tokens.
       parse                     Run the scanner and parser and print the
                                 resulting syntax tree.
       resolve                   Run the scanner, parser and resolver and
                                 print the resulting syntax tree.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the rlox command-line entry point, driven by github.com/mna/mainer.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 2 {
		return fmt.Errorf("usage error: too many arguments")
	}
	if len(c.args) == 2 {
		switch c.args[0] {
		case "tokenize", "parse", "resolve":
		default:
			return fmt.Errorf("unknown command: %s", c.args[0])
		}
	}
	return nil
}

// Main is the process entry point: parse flags, dispatch to the requested
// command, and translate the result into an exit code.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return ExitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return ExitSuccess
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return ExitSuccess
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	if len(c.args) == 2 {
		switch c.args[0] {
		case "tokenize":
			return toExitCode(c.Tokenize(ctx, stdio, c.args[1]))
		case "parse":
			return toExitCode(c.Parse(ctx, stdio, c.args[1]))
		case "resolve":
			return toExitCode(c.Resolve(ctx, stdio, c.args[1]))
		}
	}

	switch len(c.args) {
	case 0:
		return toExitCode(c.RunREPL(ctx, stdio))
	case 1:
		return toExitCode(c.RunFile(ctx, stdio, c.args[0]))
	default:
		fmt.Fprint(stdio.Stderr, shortUsage)
		return ExitUsage
	}
}

// stageError is returned by a command when it wants Main to map a known
// pipeline stage failure to its designated exit code instead of the
// generic ExitCompileTime default.
type stageError struct {
	code mainer.ExitCode
	err  error
}

func (s *stageError) Error() string { return s.err.Error() }
func (s *stageError) Unwrap() error { return s.err }

func toExitCode(err error) mainer.ExitCode {
	if err == nil {
		return ExitSuccess
	}
	if se, ok := err.(*stageError); ok {
		return se.code
	}
	return ExitCompileTime
}
