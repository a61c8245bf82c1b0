package parser

import (
	"strconv"
	"strings"

	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/token"
)

// expression is the entry point of the precedence-climbing expression
// grammar (spec.md §4.2): assignment binds loosest, postfix call/member/
// index tightest. Grounded on original_source/brewjs/parser.py's
// _expression -> _assignment -> _or -> _and -> _equality -> _comparison ->
// _term -> _factor -> _unary -> _call -> _primary chain.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment accepts any expression as the left-hand side; whether it is a
// valid target (Identifier, Member, or Index) is checked by the evaluator.
func (p *Parser) assignment() (ast.Expr, error) {
	target, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.matchOp("=") {
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: target, Value: value, SpanVal: target.Span()}, nil
	}
	return target, nil
}

func (p *Parser) or() (ast.Expr, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.matchOp("||") {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op.Lexeme, Right: right, SpanVal: left.Span()}
	}
	return left, nil
}

func (p *Parser) and() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.matchOp("&&") {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op.Lexeme, Right: right, SpanVal: left.Span()}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.matchOps("==", "!=") {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op.Lexeme, Right: right, SpanVal: left.Span()}
	}
	return left, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.matchOps("<", "<=", ">", ">=") {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op.Lexeme, Right: right, SpanVal: left.Span()}
	}
	return left, nil
}

func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.matchOps("+", "-") {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op.Lexeme, Right: right, SpanVal: left.Span()}
	}
	return left, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.matchOps("*", "/", "%") {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op.Lexeme, Right: right, SpanVal: left.Span()}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.matchOps("!", "-") {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op.Lexeme, Right: right, SpanVal: op.Span}, nil
	}
	return p.call()
}

// call parses a primary expression followed by any chain of `(...)`,
// `.name`, and `[expr]` postfix operators, left-associatively.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.checkPunct("("):
			expr, err = p.finishCall(expr)
		case p.matchOp("."):
			var name token.Token
			name, err = p.consumeIdent("expected property name after '.'")
			if err == nil {
				expr = &ast.Member{Object: expr, Name: name.Lexeme, SpanVal: expr.Span()}
			}
		case p.matchPunct("["):
			var index ast.Expr
			index, err = p.expression()
			if err == nil {
				_, err = p.consumePunct("]")
			}
			if err == nil {
				expr = &ast.Index{Object: expr, IndexOf: index, SpanVal: expr.Span()}
			}
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	if _, err := p.consumePunct("("); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if !p.checkPunct(")") {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.matchPunct(",") {
				break
			}
		}
	}
	if _, err := p.consumePunct(")"); err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Args: args, SpanVal: callee.Span()}, nil
}

// primary parses literals, identifiers, parenthesized expressions, array
// and object literals, and function expressions.
func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()

	switch {
	case p.match(token.KEYWORD, "null"):
		return &ast.Literal{Kind: ast.LitNull, SpanVal: tok.Span}, nil
	case p.match(token.KEYWORD, "true"):
		return &ast.Literal{Kind: ast.LitBool, Bool: true, SpanVal: tok.Span}, nil
	case p.match(token.KEYWORD, "false"):
		return &ast.Literal{Kind: ast.LitBool, Bool: false, SpanVal: tok.Span}, nil
	case p.check(token.NUMBER, ""):
		return p.numberLiteral()
	case p.check(token.STRING, ""):
		p.advance()
		return &ast.Literal{Kind: ast.LitString, String: tok.Lexeme, SpanVal: tok.Span}, nil
	case p.check(token.IDENT, ""):
		p.advance()
		return &ast.Identifier{Name: tok.Lexeme, SpanVal: tok.Span}, nil
	case p.matchPunct("("):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumePunct(")"); err != nil {
			return nil, err
		}
		return expr, nil
	case p.checkPunct("["):
		return p.arrayLiteral()
	case p.checkPunct("{"):
		return p.objectLiteral()
	case p.check(token.KEYWORD, "function"):
		return p.functionLiteral()
	default:
		return nil, &interperr.ParseError{Message: "expected an expression", Span: tok.Span}
	}
}

func (p *Parser) numberLiteral() (ast.Expr, error) {
	tok := p.advance()
	dots := strings.Count(tok.Lexeme, ".")
	if dots > 1 {
		return nil, &interperr.ParseError{Message: "malformed numeric literal '" + tok.Lexeme + "'", Span: tok.Span}
	}
	if dots == 1 {
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &interperr.ParseError{Message: "malformed numeric literal '" + tok.Lexeme + "'", Span: tok.Span}
		}
		return &ast.Literal{Kind: ast.LitFloat, Float: f, SpanVal: tok.Span}, nil
	}
	i, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, &interperr.ParseError{Message: "malformed numeric literal '" + tok.Lexeme + "'", Span: tok.Span}
	}
	return &ast.Literal{Kind: ast.LitInt, Int: i, SpanVal: tok.Span}, nil
}

func (p *Parser) arrayLiteral() (ast.Expr, error) {
	open, err := p.consumePunct("[")
	if err != nil {
		return nil, err
	}
	var items []ast.Expr
	if !p.checkPunct("]") {
		for {
			item, err := p.expression()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if !p.matchPunct(",") {
				break
			}
		}
	}
	if _, err := p.consumePunct("]"); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Items: items, SpanVal: open.Span}, nil
}

// objectLiteral parses a bare `{ name: expr, ... }` expression. Field names
// must be bare identifiers (spec.md §4.1); duplicate names are accepted
// here and resolved left-to-right by the evaluator. Only reached from
// primary(), never from statement() — a leading `{` at statement position
// is always a block (spec.md §4.2).
func (p *Parser) objectLiteral() (ast.Expr, error) {
	open, err := p.consumePunct("{")
	if err != nil {
		return nil, err
	}
	var pairs []ast.ObjectPair
	if !p.checkPunct("}") {
		for {
			name, err := p.consumeIdent("expected field name in object literal")
			if err != nil {
				return nil, err
			}
			if _, err := p.consumePunct(":"); err != nil {
				return nil, err
			}
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, ast.ObjectPair{Name: name.Lexeme, Value: value})
			if !p.matchPunct(",") {
				break
			}
		}
	}
	if _, err := p.consumePunct("}"); err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Pairs: pairs, SpanVal: open.Span}, nil
}

// functionLiteral parses `function [name](params) { body }`. The name is
// optional; when present it identifies the declaration target (see
// functionDeclStatement) and names the function in diagnostics. The
// evaluator does not bind it inside the body: recursive self-reference
// works through the enclosing VarDecl's binding of the same name.
func (p *Parser) functionLiteral() (*ast.Function, error) {
	kw := p.advance() // 'function'
	name := ""
	if p.check(token.IDENT, "") {
		name = p.advance().Lexeme
	}
	if _, err := p.consumePunct("("); err != nil {
		return nil, err
	}
	var params []string
	if !p.checkPunct(")") {
		for {
			param, err := p.consumeIdent("expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)
			if !p.matchPunct(",") {
				break
			}
		}
	}
	if _, err := p.consumePunct(")"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: body.Statements, SpanVal: kw.Span}, nil
}
