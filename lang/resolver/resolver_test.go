package resolver_test

import (
	"testing"

	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/parser"
	"github.com/jacksoncooper/rlox/lang/resolver"
	"github.com/jacksoncooper/rlox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, resolver.Locals, error) {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	return stmts, locals, err
}

func TestResolveClosureHopCount(t *testing.T) {
	stmts, locals, err := resolveSrc(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	require.NoError(t, err)

	block := stmts[1].(*ast.BlockStmt)
	show := block.Stmts[0].(*ast.FuncStmt)
	printStmt := show.Body[0].(*ast.PrintStmt)
	ref := printStmt.Expr.(*ast.VariableExpr)

	// "a" referenced inside showA resolves to the global, not the later
	// shadowing block-local "a" declared after showA closes over its scope.
	_, ok := locals[ref.Name.ID]
	assert.False(t, ok, "global a should not appear in the locals table")
}

func TestResolveLocalShadowHopCount(t *testing.T) {
	_, locals, err := resolveSrc(t, `
		{
			var a = 1;
			{
				var a = 2;
				print a;
			}
		}
	`)
	require.NoError(t, err)
	require.Len(t, locals, 1)
	for _, hops := range locals {
		assert.Equal(t, 0, hops)
	}
}

func TestResolveSelfReferentialInitializerIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var a = a; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own initializer")
}

func TestResolveDuplicateDeclarationInScopeIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a variable with this name")
}

func TestResolveReturnAtTopLevelIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return from top-level code")
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return a value from an initializer")
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `print this;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'this' outside of a class")
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `
		class Foo {
			bar() { super.bar(); }
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no superclass")
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	_, _, err := resolveSrc(t, `class Foo < Foo {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveMethodBindsThisAndSuper(t *testing.T) {
	_, locals, err := resolveSrc(t, `
		class Base { greet() { print "base"; } }
		class Derived < Base {
			greet() {
				super.greet();
				print this;
			}
		}
	`)
	require.NoError(t, err)
	assert.NotEmpty(t, locals)
}
