package ast

import "github.com/jacksoncooper/rlox/lang/token"

// LiteralExpr is a number, string, boolean or nil literal. Value holds the
// parsed Go representation: float64, string, bool, or nil.
type LiteralExpr struct {
	Value any
}

func (*LiteralExpr) exprNode()    {}
func (*LiteralExpr) Walk(Visitor) {}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Expr Expr
}

func (*GroupingExpr) exprNode() {}
func (e *GroupingExpr) Walk(v Visitor) {
	Walk(v, e.Expr)
}

// UnaryExpr is a prefix "-" or "!" applied to Right.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

func (*UnaryExpr) exprNode() {}
func (e *UnaryExpr) Walk(v Visitor) {
	Walk(v, e.Right)
}

// BinaryExpr is an infix arithmetic, comparison or equality expression.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (e *BinaryExpr) Walk(v Visitor) {
	Walk(v, e.Left)
	Walk(v, e.Right)
}

// LogicalExpr is "and" or "or". Kept distinct from BinaryExpr because the
// interpreter must short-circuit without evaluating Right.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*LogicalExpr) exprNode() {}
func (e *LogicalExpr) Walk(v Visitor) {
	Walk(v, e.Left)
	Walk(v, e.Right)
}

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name token.Token
}

func (*VariableExpr) exprNode()    {}
func (*VariableExpr) Walk(Visitor) {}

// AssignExpr assigns Value to the variable bound to Name.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (*AssignExpr) exprNode() {}
func (e *AssignExpr) Walk(v Visitor) {
	Walk(v, e.Value)
}

// CallExpr calls Callee with Args. Paren is the closing ")", recorded so a
// runtime error raised during the call can report the call's line.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*CallExpr) exprNode() {}
func (e *CallExpr) Walk(v Visitor) {
	Walk(v, e.Callee)
	for _, a := range e.Args {
		Walk(v, a)
	}
}

// GetExpr reads a property or method named Name off Object.
type GetExpr struct {
	Object Expr
	Name   token.Token
}

func (*GetExpr) exprNode() {}
func (e *GetExpr) Walk(v Visitor) {
	Walk(v, e.Object)
}

// SetExpr assigns Value to the property named Name on Object.
type SetExpr struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (*SetExpr) exprNode() {}
func (e *SetExpr) Walk(v Visitor) {
	Walk(v, e.Object)
	Walk(v, e.Value)
}

// ThisExpr is a use of "this" inside a method body.
type ThisExpr struct {
	Keyword token.Token
}

func (*ThisExpr) exprNode()    {}
func (*ThisExpr) Walk(Visitor) {}

// SuperExpr is a "super.method" lookup inside a subclass method body.
type SuperExpr struct {
	Keyword token.Token
	Method  token.Token
}

func (*SuperExpr) exprNode()    {}
func (*SuperExpr) Walk(Visitor) {}
