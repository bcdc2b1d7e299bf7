package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders expr as a fully-parenthesized Lisp-style string, e.g.
// "(* (- 123) (group 45.67))". It supplements the interpreter with a
// human-readable view of a parsed tree, used by the parse and resolve
// subcommands to show what the parser produced.
func Print(expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

// PrintTree renders a single statement the same way, for programs too small
// to be worth a full pretty-printer.
func PrintTree(stmt Stmt) string {
	var sb strings.Builder
	printStmt(&sb, stmt)
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:
		sb.WriteString(literalString(e.Value))
	case *GroupingExpr:
		parenthesize(sb, "group", e.Expr)
	case *UnaryExpr:
		parenthesize(sb, e.Op.Lexeme, e.Right)
	case *BinaryExpr:
		parenthesize(sb, e.Op.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		parenthesize(sb, e.Op.Lexeme, e.Left, e.Right)
	case *VariableExpr:
		sb.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		parenthesize(sb, "assign "+e.Name.Lexeme, e.Value)
	case *CallExpr:
		parenthesize(sb, "call", append([]Expr{e.Callee}, e.Args...)...)
	case *GetExpr:
		parenthesize(sb, "get "+e.Name.Lexeme, e.Object)
	case *SetExpr:
		parenthesize(sb, "set "+e.Name.Lexeme, e.Object, e.Value)
	case *ThisExpr:
		sb.WriteString("this")
	case *SuperExpr:
		sb.WriteString("(super " + e.Method.Lexeme + ")")
	default:
		fmt.Fprintf(sb, "<?expr %T>", e)
	}
}

func printStmt(sb *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *ExprStmt:
		printExpr(sb, s.Expr)
	case *PrintStmt:
		parenthesize(sb, "print", s.Expr)
	case *VarStmt:
		if s.Init == nil {
			fmt.Fprintf(sb, "(var %s)", s.Name.Lexeme)
			return
		}
		sb.WriteString("(var " + s.Name.Lexeme + " ")
		printExpr(sb, s.Init)
		sb.WriteByte(')')
	case *BlockStmt:
		sb.WriteString("(block")
		for _, inner := range s.Stmts {
			sb.WriteByte(' ')
			printStmt(sb, inner)
		}
		sb.WriteByte(')')
	case *IfStmt:
		sb.WriteString("(if ")
		printExpr(sb, s.Cond)
		sb.WriteByte(' ')
		printStmt(sb, s.Then)
		if s.Else != nil {
			sb.WriteByte(' ')
			printStmt(sb, s.Else)
		}
		sb.WriteByte(')')
	case *WhileStmt:
		sb.WriteString("(while ")
		printExpr(sb, s.Cond)
		sb.WriteByte(' ')
		printStmt(sb, s.Body)
		sb.WriteByte(')')
	case *FuncStmt:
		fmt.Fprintf(sb, "(fun %s)", s.Name.Lexeme)
	case *ReturnStmt:
		if s.Value == nil {
			sb.WriteString("(return)")
			return
		}
		sb.WriteString("(return ")
		printExpr(sb, s.Value)
		sb.WriteByte(')')
	case *ClassStmt:
		fmt.Fprintf(sb, "(class %s)", s.Name.Lexeme)
	default:
		fmt.Fprintf(sb, "<?stmt %T>", s)
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		printExpr(sb, e)
	}
	sb.WriteByte(')')
}

func literalString(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
