package maincmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksoncooper/rlox/internal/filetest"
	"github.com/mna/mainer"
)

func runFile(t *testing.T, src string) (string, string, mainer.ExitCode) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.lox")
	if err := os.WriteFile(path, []byte(src), 0600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName, path}, mainer.Stdio{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &errOut,
	})
	return out.String(), errOut.String(), code
}

func TestScenarioStringConcatenation(t *testing.T) {
	out, _, code := runFile(t, `print "hello" + ", " + "world";`)
	filetest.AssertOutput(t, "stdout", "hello, world\n", out)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestScenarioBlockScoping(t *testing.T) {
	out, _, code := runFile(t, `var a = 1; { var a = 2; print a; } print a;`)
	filetest.AssertOutput(t, "stdout", "2\n1\n", out)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestScenarioRecursiveFibonacci(t *testing.T) {
	out, _, code := runFile(t, `fun fib(n) { if (n<2) return n; return fib(n-1)+fib(n-2);} print fib(10);`)
	filetest.AssertOutput(t, "stdout", "55\n", out)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestScenarioClosureCounter(t *testing.T) {
	out, _, code := runFile(t, `fun make(){var i=0; fun inc(){i=i+1; return i;} return inc;} var c=make(); print c(); print c(); print c();`)
	filetest.AssertOutput(t, "stdout", "1\n2\n3\n", out)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestScenarioMethodCall(t *testing.T) {
	out, _, code := runFile(t, `class A { greet(){ return "hi"; } } var a=A(); print a.greet();`)
	filetest.AssertOutput(t, "stdout", "hi\n", out)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestScenarioSuperCall(t *testing.T) {
	out, _, code := runFile(t, `class A { greet(){ return "hi"; } } class B < A { greet(){ return super.greet() + "!"; } } print B().greet();`)
	filetest.AssertOutput(t, "stdout", "hi!\n", out)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestScenarioDivisionByZero(t *testing.T) {
	_, errOut, code := runFile(t, `print 1/0;`)
	if !strings.Contains(errOut, "Division by zero.") {
		t.Errorf("stderr = %q, want it to contain %q", errOut, "Division by zero.")
	}
	if code != ExitRuntime {
		t.Fatalf("exit code = %d, want %d", code, ExitRuntime)
	}
}

func TestScenarioReturnAtTopLevel(t *testing.T) {
	_, errOut, code := runFile(t, `return 1;`)
	if !strings.Contains(errOut, "Can't return from top-level code.") {
		t.Errorf("stderr = %q, want it to contain %q", errOut, "Can't return from top-level code.")
	}
	if code != ExitCompileTime {
		t.Fatalf("exit code = %d, want %d", code, ExitCompileTime)
	}
}

func TestUnreadableFileExitsNoInput(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName, filepath.Join(t.TempDir(), "missing.lox")}, mainer.Stdio{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &errOut,
	})
	if code != ExitNoInput {
		t.Fatalf("exit code = %d, want %d", code, ExitNoInput)
	}
}

func TestTooManyArgumentsExitsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName, "a", "b", "c"}, mainer.Stdio{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &errOut,
	})
	if code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestHelpFlagExitsSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName, "-h"}, mainer.Stdio{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &errOut,
	})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out.String(), "Tree-walking interpreter") {
		t.Errorf("help output = %q, missing usage text", out.String())
	}
}

func TestTokenizeSubcommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.lox")
	if err := os.WriteFile(path, []byte(`print 1;`), 0600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName, "tokenize", path}, mainer.Stdio{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &errOut,
	})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out.String(), "print") {
		t.Errorf("tokenize output = %q, missing print token", out.String())
	}
}

func TestREPLExitsOnBlankLine(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName}, mainer.Stdio{
		Stdin:  strings.NewReader("print 1 + 1;\n\n"),
		Stdout: &out,
		Stderr: &errOut,
	})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out.String(), "2\n") {
		t.Errorf("repl output = %q, missing printed value", out.String())
	}
}

func TestREPLErrorDoesNotEndSession(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{binName}, mainer.Stdio{
		Stdin:  strings.NewReader("print 1/0;\nprint 2;\n\n"),
		Stdout: &out,
		Stderr: &errOut,
	})
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(out.String(), "2\n") {
		t.Errorf("repl output = %q, missing second line's printed value", out.String())
	}
	if !strings.Contains(errOut.String(), "Division by zero.") {
		t.Errorf("repl stderr = %q, missing division-by-zero error", errOut.String())
	}
}
