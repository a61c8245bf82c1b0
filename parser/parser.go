// Package parser implements the recursive-descent parser that turns a
// token sequence into a Program AST (spec.md §4.2).
//
// Grounded on the teacher's parser.Parser (token-index cursor,
// match/check/consume helper family) and on
// original_source/brewjs/parser.py for the exact grammar (dangling-else
// handling, try/catch/finally requirements, trailing-semicolon
// optionality). The teacher splits parsing across many per-construct
// files (parser_statements.go, parser_expressions.go, ...); this package
// mirrors that habit with parser.go (cursor + top level),
// parser_statements.go, and parser_expressions.go.
package parser

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/lexer"
	"github.com/brewlang/brew/token"
)

// Parser consumes a token slice and builds a Program.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over an already-tokenized source.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes every statement up to EOF and returns the Program.
func (p *Parser) Parse() (*ast.Program, error) {
	var statements []ast.Stmt
	for !p.check(token.EOF, "") {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &ast.Program{Statements: statements}, nil
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

// check reports whether the current token matches kind and (if lexeme is
// non-empty) lexeme, without consuming it.
func (p *Parser) check(kind token.Kind, lexeme string) bool {
	tok := p.peek()
	if tok.Kind != kind {
		return false
	}
	return lexeme == "" || tok.Lexeme == lexeme
}

func (p *Parser) match(kind token.Kind, lexeme string) bool {
	if p.check(kind, lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchKeyword(kw string) bool  { return p.match(token.KEYWORD, kw) }
func (p *Parser) matchOp(op string) bool       { return p.match(token.OP, op) }
func (p *Parser) matchPunct(punct string) bool { return p.match(token.PUNCT, punct) }

func (p *Parser) matchOps(ops ...string) bool {
	if p.peek().Kind != token.OP {
		return false
	}
	for _, op := range ops {
		if p.peek().Lexeme == op {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) checkPunct(punct string) bool {
	return p.check(token.PUNCT, punct)
}

func (p *Parser) consumeOptional(punct string) {
	if p.checkPunct(punct) {
		p.advance()
	}
}

func (p *Parser) consumeIdent(message string) (token.Token, error) {
	if p.check(token.IDENT, "") {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, &interperr.ParseError{Message: message, Span: tok.Span}
}

func (p *Parser) consumePunct(punct string) (token.Token, error) {
	if p.checkPunct(punct) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, &interperr.ParseError{Message: "expected '" + punct + "'", Span: tok.Span}
}

// Parse is the spec.md §6.2 host embedding entrypoint: lex then parse.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}
