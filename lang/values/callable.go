package values

import (
	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/environment"
)

// Callable is implemented by every value that can appear as the callee of
// a call expression: user-defined functions, classes (whose call protocol
// constructs an instance), and native functions.
type Callable interface {
	Value
	Arity() int
	Call(caller Caller, args []Value) (Value, error)
}

// Caller is the slice of the interpreter a Callable needs to run a
// function body. It is defined here, rather than depending on the
// interpreter package directly, so that values has no import cycle back to
// the package that evaluates it.
type Caller interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error
}

// ReturnUnwind is the sentinel error used to unwind a function call back to
// the point it was invoked from when a "return" statement runs. It is not a
// failure: Function.Call recognizes it and turns it back into a normal
// return value.
type ReturnUnwind struct {
	Value Value
}

func (ReturnUnwind) Error() string { return "return outside function" }
