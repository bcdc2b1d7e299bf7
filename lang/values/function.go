package values

import (
	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/environment"
)

var _ Callable = (*Function)(nil)

// Function is a user-defined function or method, closed over the
// environment in which it was declared.
type Function struct {
	Decl          *ast.FuncStmt
	Closure       *environment.Environment
	IsInitializer bool
}

// Bind returns a copy of f whose closure additionally defines "this" as
// inst, the receiver a method is called on.
func (f *Function) Bind(inst *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", inst)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) Call(caller Caller, args []Value) (Value, error) {
	env := environment.New(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := caller.ExecuteBlock(f.Decl.Body, env)
	if ru, ok := err.(ReturnUnwind); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this").(Value), nil
		}
		return ru.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this").(Value), nil
	}
	return NilValue, nil
}

func (f *Function) String() string { return "<fn " + f.Decl.Name.Lexeme + ">" }
func (*Function) Type() string     { return "function" }
func (*Function) Truth() bool      { return true }

// NativeFunction wraps a Go function as a callable Lox value, used for
// built-ins like clock().
type NativeFunction struct {
	Name string
	Arit int
	Fn   func(args []Value) (Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func (n *NativeFunction) Arity() int { return n.Arit }

func (n *NativeFunction) Call(_ Caller, args []Value) (Value, error) {
	return n.Fn(args)
}

func (n *NativeFunction) String() string { return "<native fn>" }
func (*NativeFunction) Type() string     { return "function" }
func (*NativeFunction) Truth() bool      { return true }
