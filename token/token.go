// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token. Kept as a small string
// enum in the style of the teacher's TokenType, but narrowed to exactly the
// kinds the language's grammar names.
type Kind string

const (
	EOF     Kind = "EOF"
	IDENT   Kind = "IDENT"
	KEYWORD Kind = "KEYWORD"
	NUMBER  Kind = "NUMBER"
	STRING  Kind = "STRING"
	OP      Kind = "OP"
	PUNCT   Kind = "PUNCT"
)

// Keywords is the reserved word set from spec §4.1. A scanned identifier
// lexeme that matches one of these is emitted as a KEYWORD token instead.
var Keywords = map[string]bool{
	"obj":      true,
	"function": true,
	"if":       true,
	"else":     true,
	"while":    true,
	"return":   true,
	"true":     true,
	"false":    true,
	"null":     true,
	"try":      true,
	"catch":    true,
	"finally":  true,
	"throw":    true,
}

// Span identifies a 1-based source position: the line and column of a
// token's first character.
type Span struct {
	Line   int
	Column int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token is a single lexical unit: a kind, its lexeme (decoded value for
// NUMBER/STRING, the literal symbol/name otherwise), and the span of its
// first character.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Span)
}

// Is reports whether the token has the given kind and lexeme. The parser
// does its lookahead through its own check helper rather than this method.
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && t.Lexeme == lexeme
}
