package interpreter

import (
	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/token"
	"github.com/jacksoncooper/rlox/lang/values"
)

func (in *Interpreter) evaluate(expr ast.Expr) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Expr)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name)

	case *ast.AssignExpr:
		return in.evalAssign(e)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		return in.evalGet(e)

	case *ast.SetExpr:
		return in.evalSet(e)

	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic("interpreter: unexpected expr")
	}
}

func literalValue(v any) values.Value {
	switch v := v.(type) {
	case nil:
		return values.NilValue
	case bool:
		return values.Boolean(v)
	case float64:
		return values.Number(v)
	case string:
		return values.String(v)
	default:
		panic("interpreter: unexpected literal value")
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (values.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.BANG:
		return values.Boolean(!right.Truth()), nil
	case token.MINUS:
		n, ok := right.(values.Number)
		if !ok {
			return nil, values.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interpreter: unexpected unary operator")
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (values.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQ_EQ:
		return values.Boolean(values.Equal(left, right)), nil
	case token.BANG_EQ:
		return values.Boolean(!values.Equal(left, right)), nil
	case token.PLUS:
		if ln, ok := left.(values.Number); ok {
			if rn, ok := right.(values.Number); ok {
				return ln + rn, nil
			}
			return nil, values.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")
		}
		if ls, ok := left.(values.String); ok {
			if rs, ok := right.(values.String); ok {
				return ls + rs, nil
			}
			return nil, values.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")
		}
		return nil, values.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")
	case token.MINUS, token.STAR, token.SLASH,
		token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return nil, values.NewRuntimeError(e.Op, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			if rn == 0 {
				return nil, values.NewRuntimeError(e.Op, "Division by zero.")
			}
			return ln / rn, nil
		case token.GT:
			return values.Boolean(ln > rn), nil
		case token.GT_EQ:
			return values.Boolean(ln >= rn), nil
		case token.LT:
			return values.Boolean(ln < rn), nil
		case token.LT_EQ:
			return values.Boolean(ln <= rn), nil
		}
	}
	panic("interpreter: unexpected binary operator")
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (values.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if left.Truth() {
			return left, nil
		}
	} else if !left.Truth() {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalAssign(e *ast.AssignExpr) (values.Value, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if dist, ok := in.locals[e.Name.ID]; ok {
		in.env.AssignAt(dist, e.Name.Lexeme, v)
		return v, nil
	}
	if ok := in.Globals.Assign(e.Name.Lexeme, v); !ok {
		return nil, values.NewRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (values.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(values.Callable)
	if !ok {
		return nil, values.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, values.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.GetExpr) (values.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	holder, ok := obj.(values.HasAttrs)
	if !ok {
		return nil, values.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	v, err := holder.Attr(e.Name.Lexeme)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, values.NewRuntimeError(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.SetExpr) (values.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	holder, ok := obj.(values.HasSetAttr)
	if !ok {
		return nil, values.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := holder.SetAttr(e.Name.Lexeme, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (values.Value, error) {
	dist := in.locals[e.Keyword.ID]
	super := in.env.GetAt(dist, "super").(*values.Class)
	this := in.env.GetAt(dist-1, "this").(*values.Instance)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, values.NewRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(this), nil
}

func (in *Interpreter) lookUpVariable(name token.Token) (values.Value, error) {
	if dist, ok := in.locals[name.ID]; ok {
		v := in.env.GetAt(dist, name.Lexeme)
		if v == nil {
			return nil, values.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
		}
		return v.(values.Value), nil
	}
	v, ok := in.Globals.Get(name.Lexeme)
	if !ok {
		return nil, values.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
	}
	return v.(values.Value), nil
}
