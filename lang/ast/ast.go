// Package ast defines the abstract syntax tree produced by the parser: an
// ordered statement list, built from the expression and statement node
// variants declared here. Nodes are read-only after parsing and may be
// shared among callable values (a function's body is retained by every
// closure built from it).
package ast

// Node is implemented by every AST node.
type Node interface {
	// Walk visits the node's direct children, in evaluation order, calling
	// the package-level Walk(v, child) on each, so every descendant is
	// reached. Leaf nodes have an empty Walk.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}
