// Package resolver performs the static analysis pass between parsing and
// interpretation: it resolves every variable reference to the number of
// enclosing scopes between its use and its declaration, so the interpreter
// can look variables up by a fixed hop count instead of walking the
// environment chain and guessing.
package resolver

import (
	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/diag"
	"github.com/jacksoncooper/rlox/lang/token"
)

type funcType int

const (
	funcNone funcType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals maps a scanner-minted identifier/this/super token ID to the number
// of enclosing scopes to walk to find its declaring scope. A name absent
// from Locals was never resolved to a local scope and the interpreter
// should look it up directly in the global scope instead.
type Locals map[int]int

// Resolve walks stmts and returns the hop-count table the interpreter uses
// to resolve variable and "this"/"super" references. A non-nil error is
// always a *diag.List.
func Resolve(stmts []ast.Stmt) (Locals, error) {
	r := &resolver{locals: make(Locals)}
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
	r.diags.Sort()
	return r.locals, r.diags.Err()
}

type scope map[string]bool

type resolver struct {
	scopes    []scope
	locals    Locals
	currentFn funcType
	currentCl classType
	diags     diag.List
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) errorf(tok token.Token, msg string) {
	loc := diag.AtLexeme(tok.Lexeme)
	if tok.Kind == token.EOF {
		loc = diag.AtEnd()
	}
	r.diags.Add(tok.Line, loc, msg)
}

// declare marks name as declared but not yet ready to be referenced, so a
// variable's own initializer cannot refer to itself (var a = a;).
func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.errorf(name, "already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

// define marks name as fully initialized and referenceable.
func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the hop count from the innermost scope to the scope
// that declares name, tagging the occurrence identified by id. If name is
// never found in a local scope, no entry is recorded and the interpreter
// treats the reference as global.
func (r *resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.ClassStmt:
		enclosingCl := r.currentCl
		r.currentCl = classClass

		r.declare(s.Name)
		r.define(s.Name)

		if s.Superclass != nil {
			if s.Superclass.Name.Lexeme == s.Name.Lexeme {
				r.errorf(s.Superclass.Name, "a class can't inherit from itself.")
			}
			r.currentCl = classSubclass
			r.resolveExpr(s.Superclass)

			r.beginScope()
			r.scopes[len(r.scopes)-1]["super"] = true
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true

		for _, m := range s.Methods {
			ft := funcMethod
			if m.Name.Lexeme == "init" {
				ft = funcInitializer
			}
			r.resolveFunction(m, ft)
		}

		r.endScope()

		if s.Superclass != nil {
			r.endScope()
		}

		r.currentCl = enclosingCl

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.FuncStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, funcFunction)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if r.currentFn == funcNone {
			r.errorf(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFn == funcInitializer {
				r.errorf(s.Keyword, "can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	default:
		panic("resolver: unexpected stmt")
	}
}

func (r *resolver) resolveFunction(fn *ast.FuncStmt, ft funcType) {
	enclosingFn := r.currentFn
	r.currentFn = ft

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name.ID, e.Name.Lexeme)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expr)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.SuperExpr:
		switch r.currentCl {
		case classNone:
			r.errorf(e.Keyword, "can't use 'super' outside of a class.")
		case classClass:
			r.errorf(e.Keyword, "can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.Keyword.ID, "super")

	case *ast.ThisExpr:
		if r.currentCl == classNone {
			r.errorf(e.Keyword, "can't use 'this' outside of a class.")
		}
		r.resolveLocal(e.Keyword.ID, "this")

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
				r.errorf(e.Name, "can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.Name.ID, e.Name.Lexeme)

	default:
		panic("resolver: unexpected expr")
	}
}
