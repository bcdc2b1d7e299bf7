package ast_test

import (
	"testing"

	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestPrintBinaryExpr(t *testing.T) {
	expr := &ast.BinaryExpr{
		Left: &ast.UnaryExpr{
			Op:    token.Token{Kind: token.MINUS, Lexeme: "-"},
			Right: &ast.LiteralExpr{Value: 123.0},
		},
		Op: token.Token{Kind: token.STAR, Lexeme: "*"},
		Right: &ast.GroupingExpr{
			Expr: &ast.LiteralExpr{Value: 45.67},
		},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", ast.Print(expr))
}

func TestPrintStringLiteral(t *testing.T) {
	expr := &ast.LiteralExpr{Value: "eggs"}
	assert.Equal(t, `"eggs"`, ast.Print(expr))
}

func TestPrintNilLiteral(t *testing.T) {
	assert.Equal(t, "nil", ast.Print(&ast.LiteralExpr{Value: nil}))
}

func TestWalkVisitsEveryChild(t *testing.T) {
	// (1 + 2) * 3
	expr := &ast.BinaryExpr{
		Left: &ast.GroupingExpr{
			Expr: &ast.BinaryExpr{
				Left:  &ast.LiteralExpr{Value: 1.0},
				Op:    token.Token{Kind: token.PLUS, Lexeme: "+"},
				Right: &ast.LiteralExpr{Value: 2.0},
			},
		},
		Op:    token.Token{Kind: token.STAR, Lexeme: "*"},
		Right: &ast.LiteralExpr{Value: 3.0},
	}

	var literals []float64
	ast.Walk(ast.VisitorFunc(func(n ast.Node) {
		if lit, ok := n.(*ast.LiteralExpr); ok {
			literals = append(literals, lit.Value.(float64))
		}
	}), expr)

	assert.Equal(t, []float64{1, 2, 3}, literals)
}

func TestPrintBlockAndIf(t *testing.T) {
	stmt := &ast.BlockStmt{Stmts: []ast.Stmt{
		&ast.IfStmt{
			Cond: &ast.LiteralExpr{Value: true},
			Then: &ast.PrintStmt{Expr: &ast.LiteralExpr{Value: "yes"}},
		},
	}}
	assert.Equal(t, `(block (if true (print "yes")))`, ast.PrintTree(stmt))
}
