// Package parser implements the recursive-descent parser that turns a Lox
// token stream into an AST.
package parser

import (
	"errors"
	"fmt"

	"github.com/jacksoncooper/rlox/lang/ast"
	"github.com/jacksoncooper/rlox/lang/diag"
	"github.com/jacksoncooper/rlox/lang/token"
)

const maxArgs = 255

// Parse parses a complete token stream (as produced by scanner.Scan,
// including the trailing EOF) into an ordered statement list. A non-nil
// error is always a *diag.List; per spec.md the parser collects every
// syntax error it can via panic-mode recovery rather than stopping at the
// first one.
func Parse(toks []token.Token) ([]ast.Stmt, error) {
	p := &parser{toks: toks}
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.diags.Sort()
	return stmts, p.diags.Err()
}

type parser struct {
	toks    []token.Token
	current int
	diags   diag.List
}

// errPanicMode unwinds out of the current declaration/statement on a parse
// error; Parse's caller-visible loop is unaffected since synchronize()
// recovers before the next declaration is attempted.
var errPanicMode = errors.New("panic")

func (p *parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *parser) peek() token.Token { return p.toks[p.current] }

func (p *parser) previous() token.Token { return p.toks[p.current-1] }

func (p *parser) check(kind token.Kind) bool {
	return !p.isAtEnd() && p.peek().Kind == kind
}

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(kind token.Kind, msg string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

func (p *parser) errorAt(tok token.Token, msg string) error {
	loc := diag.AtLexeme(tok.Lexeme)
	if tok.Kind == token.EOF {
		loc = diag.AtEnd()
	}
	p.diags.Add(tok.Line, loc, msg)
	return errPanicMode
}

// synchronize discards tokens until it reaches a point a new statement is
// likely to start, so one syntax error does not cascade into a flood of
// spurious ones. If the failed declaration consumed no token, the offending
// token is skipped first so parsing always makes progress.
func (p *parser) synchronize(progressed bool) {
	if !progressed {
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMI {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// recover runs fn, catching a panicked errPanicMode (or propagating any other
// panic) and synchronizing to the next statement boundary. It returns nil on
// recovery, matching the caller's convention of skipping malformed
// declarations.
func (p *parser) recover(fn func() ast.Stmt) (stmt ast.Stmt) {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize(p.current > start)
			stmt = nil
		}
	}()
	return fn()
}

func (p *parser) declaration() ast.Stmt {
	return p.recover(func() ast.Stmt {
		switch {
		case p.match(token.CLASS):
			return p.classDecl()
		case p.match(token.FUN):
			return p.function("function")
		case p.match(token.VAR):
			return p.varDecl()
		default:
			return p.statement()
		}
	})
}

func (p *parser) classDecl() ast.Stmt {
	name := p.consume(token.IDENT, "expect class name.")

	var superclass *ast.VariableExpr
	if p.match(token.LT) {
		p.consume(token.IDENT, "expect superclass name.")
		superclass = &ast.VariableExpr{Name: p.previous()}
	}

	p.consume(token.LBRACE, "expect '{' before class body.")

	var methods []*ast.FuncStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method").(*ast.FuncStmt))
	}

	p.consume(token.RBRACE, "expect '}' after class body.")
	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *parser) function(kind string) ast.Stmt {
	name := p.consume(token.IDENT, "expect "+kind+" name.")
	p.consume(token.LPAREN, "expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d parameters.", maxArgs))
			}
			params = append(params, p.consume(token.IDENT, "expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expect ')' after parameters.")

	p.consume(token.LBRACE, "expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FuncStmt{Name: name, Params: params, Body: body}
}

func (p *parser) varDecl() ast.Stmt {
	name := p.consume(token.IDENT, "expect variable name.")

	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}

	p.consume(token.SEMI, "expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Init: init}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LBRACE):
		return &ast.BlockStmt{Stmts: p.block()}
	default:
		return p.exprStmt()
	}
}

// forStmt desugars "for (init; cond; incr) body" into the equivalent
// combination of a block, a while loop and a trailing increment statement,
// so the interpreter needs no dedicated for-loop case.
func (p *parser) forStmt() ast.Stmt {
	p.consume(token.LPAREN, "expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMI):
		init = nil
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.consume(token.SEMI, "expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.consume(token.RPAREN, "expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() ast.Stmt {
	p.consume(token.LPAREN, "expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *parser) printStmt() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMI, "expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

func (p *parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.consume(token.SEMI, "expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *parser) whileStmt() ast.Stmt {
	p.consume(token.LPAREN, "expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RBRACE, "expect '}' after block.")
	return stmts
}

func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMI, "expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses a right-associative assignment by first parsing the
// left side as a normal expression, then, on seeing "=", reinterpreting
// that already-parsed expression as an assignment target. This avoids
// needing a separate assignment-target grammar.
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(eq, "invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQ, token.EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("can't have more than %d arguments.", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Value: true}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Value: nil}
	case p.match(token.NUMBER):
		return &ast.LiteralExpr{Value: p.previous().Number}
	case p.match(token.STRING):
		return &ast.LiteralExpr{Value: p.previous().Lexeme}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "expect '.' after 'super'.")
		method := p.consume(token.IDENT, "expect superclass method name.")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.IDENT):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "expect ')' after expression.")
		return &ast.GroupingExpr{Expr: expr}
	}
	panic(p.errorAt(p.peek(), "expect expression."))
}
