package parser

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/token"
)

// statement dispatches on the leading keyword/punctuation, falling back to
// an expression statement. Grounded on
// original_source/brewjs/parser.py's _statement dispatch table.
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.checkPunct("{"):
		return p.block()
	case p.check(token.KEYWORD, "obj"):
		return p.varDecl()
	case p.check(token.KEYWORD, "if"):
		return p.ifStatement()
	case p.check(token.KEYWORD, "while"):
		return p.whileStatement()
	case p.check(token.KEYWORD, "return"):
		return p.returnStatement()
	case p.check(token.KEYWORD, "try"):
		return p.tryStatement()
	case p.check(token.KEYWORD, "throw"):
		return p.throwStatement()
	case p.check(token.KEYWORD, "function") && p.peekIsNamedFunction():
		return p.functionDeclStatement()
	default:
		return p.expressionStatement()
	}
}

// peekIsNamedFunction looks past the current "function" keyword token to
// see whether it is followed by an identifier, distinguishing a function
// declaration statement (`function name() {}`) from a function expression
// used as a bare expression statement (`function () {};`).
func (p *Parser) peekIsNamedFunction() bool {
	return p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == token.IDENT
}

// block parses a `{ ... }` brace-delimited statement list.
func (p *Parser) block() (*ast.Block, error) {
	open, err := p.consumePunct("{")
	if err != nil {
		return nil, err
	}
	var statements []ast.Stmt
	for !p.checkPunct("}") && !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consumePunct("}"); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: statements, SpanVal: open.Span}, nil
}

// varDecl parses `obj name [= expr] [;]`.
func (p *Parser) varDecl() (ast.Stmt, error) {
	kw := p.advance() // 'obj'
	name, err := p.consumeIdent("expected variable name after 'obj'")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.matchOp("=") {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	p.consumeOptional(";")
	return &ast.VarDecl{Name: name.Lexeme, Initializer: initializer, SpanVal: kw.Span}, nil
}

// ifStatement parses `if cond block [else (block | if-statement)]`. The
// condition is not parenthesized (spec.md §4.2), handling else-if
// chaining by recursing into ifStatement() for the else arm when it itself
// begins with `if`.
func (p *Parser) ifStatement() (ast.Stmt, error) {
	kw := p.advance() // 'if'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if p.matchKeyword("else") {
		if p.check(token.KEYWORD, "if") {
			elseStmt, err = p.ifStatement()
		} else {
			elseStmt, err = p.block()
		}
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: elseStmt, SpanVal: kw.Span}, nil
}

// whileStatement parses `while cond block`. The condition is not
// parenthesized (spec.md §4.2).
func (p *Parser) whileStatement() (ast.Stmt, error) {
	kw := p.advance() // 'while'
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, SpanVal: kw.Span}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	kw := p.advance() // 'return'
	var value ast.Expr
	if !p.checkPunct(";") && !p.checkPunct("}") {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	p.consumeOptional(";")
	return &ast.Return{Value: value, SpanVal: kw.Span}, nil
}

func (p *Parser) throwStatement() (ast.Stmt, error) {
	kw := p.advance() // 'throw'
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.consumeOptional(";")
	return &ast.Throw{Value: value, SpanVal: kw.Span}, nil
}

// tryStatement parses `try block [catch name block] [finally block]`,
// requiring at least one of catch/finally (grounded on
// original_source/brewjs/parser.py's _try_stmt, which raises the same
// requirement).
func (p *Parser) tryStatement() (ast.Stmt, error) {
	kw := p.advance() // 'try'
	tryBlock, err := p.block()
	if err != nil {
		return nil, err
	}

	result := &ast.Try{TryBlock: tryBlock, SpanVal: kw.Span}

	if p.matchKeyword("catch") {
		result.HasCatch = true
		name, err := p.consumeIdent("expected exception name after 'catch'")
		if err != nil {
			return nil, err
		}
		result.CatchName = name.Lexeme
		catchBlock, err := p.block()
		if err != nil {
			return nil, err
		}
		result.Catch = catchBlock
	}

	if p.matchKeyword("finally") {
		finallyBlock, err := p.block()
		if err != nil {
			return nil, err
		}
		result.Finally = finallyBlock
	}

	if !result.HasCatch && result.Finally == nil {
		return nil, &interperr.ParseError{Message: "try statement requires a catch or finally clause", Span: kw.Span}
	}
	return result, nil
}

// functionDeclStatement parses a named `function name(params) { body }`
// used as a statement, desugared into `obj name = function name(params) {
// body }` so a single Function expression type serves both forms.
func (p *Parser) functionDeclStatement() (ast.Stmt, error) {
	fn, err := p.functionLiteral()
	if err != nil {
		return nil, err
	}
	p.consumeOptional(";")
	return &ast.VarDecl{Name: fn.Name, Initializer: fn, SpanVal: fn.SpanVal}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.consumeOptional(";")
	return &ast.ExpressionStmt{Expr: expr, SpanVal: expr.Span()}, nil
}
