package values

import (
	"fmt"

	"github.com/jacksoncooper/rlox/lang/token"
)

// RuntimeError is a failure detected while evaluating a Lox program:
// a type error, an undefined name, division by zero, calling a
// non-callable value, wrong arity, or an unknown property. Unlike the
// compile-time diagnostics collected by the scanner, parser and resolver,
// the interpreter stops at the first one.
type RuntimeError struct {
	Tok token.Token
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Tok.Line)
}

// NewRuntimeError builds a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}
