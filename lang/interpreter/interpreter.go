// Package interpreter walks a resolved Lox AST and produces the program's
// side effects (prints, field mutations, the values returned from calls).
package interpreter

import (
	"fmt"
	"io"

	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/environment"
	"github.com/jacksoncooper/rlox/lang/resolver"
	"github.com/jacksoncooper/rlox/lang/token"
	"github.com/jacksoncooper/rlox/lang/values"
)

var _ values.Caller = (*Interpreter)(nil)

// Interpreter holds the state threaded through a single run: the
// permanent global scope, the scope currently in effect, and the
// resolver's hop-count table.
type Interpreter struct {
	Globals *environment.Environment
	locals  resolver.Locals
	env     *environment.Environment
	stdout  io.Writer
}

// New returns an Interpreter ready to execute a program whose variable
// references were resolved into locals. Print statements write to stdout.
func New(locals resolver.Locals, stdout io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", clockNative())
	return &Interpreter{Globals: globals, locals: locals, env: globals, stdout: stdout}
}

// SetLocals replaces the resolver's hop-count table. The REPL resolves and
// interprets one line at a time, each line producing its own locals table
// against the shared, accumulating global scope.
func (in *Interpreter) SetLocals(locals resolver.Locals) {
	in.locals = locals
}

// Run executes a whole program's statement list in the global scope.
func (in *Interpreter) Run(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock implements values.Caller: it runs stmts in env, making env
// the interpreter's current scope for the duration, and restores the
// previous scope on every exit path (normal, return-unwind, or error).
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, v.String())
		return nil

	case *ast.VarStmt:
		var v values.Value = values.NilValue
		if s.Init != nil {
			var err error
			v, err = in.evaluate(s.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return in.ExecuteBlock(s.Stmts, environment.New(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FuncStmt:
		fn := &values.Function{Decl: s, Closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		v := values.Value(values.NilValue)
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return values.ReturnUnwind{Value: v}

	case *ast.ClassStmt:
		return in.executeClassStmt(s)

	default:
		return fmt.Errorf("interpreter: unexpected stmt %T", stmt)
	}
}

func (in *Interpreter) executeClassStmt(s *ast.ClassStmt) error {
	var superclass *values.Class
	if s.Superclass != nil {
		sup, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		cls, ok := sup.(*values.Class)
		if !ok {
			return values.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = cls
	}

	in.env.Define(s.Name.Lexeme, values.NilValue)

	classEnv := in.env
	if superclass != nil {
		classEnv = environment.New(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*values.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &values.Function{
			Decl:          m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &values.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	in.env.Assign(s.Name.Lexeme, class)
	return nil
}
