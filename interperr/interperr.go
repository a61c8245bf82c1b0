// Package interperr defines the three error kinds the core surfaces at
// the embedder boundary (spec.md §6.4, §7): LexError, ParseError, and
// RuntimeError, the last carrying a closed Kind enum for its subkinds.
//
// Grounded on original_source/brewjs's three exception classes
// (LexerError/ParseError/BrewRuntimeError) for the three-way split, and on
// the teacher's createError/CreateError message-formatting helpers for
// style. See DESIGN.md for why this uses stdlib errors rather than a
// wrap-chain library.
package interperr

import (
	"fmt"

	"github.com/brewlang/brew/token"
)

// LexError reports a lexical fault: unterminated string, unterminated
// block comment, or an unrecognized character.
type LexError struct {
	Message string
	Span    token.Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: %s at %s", e.Message, e.Span)
}

// ParseError reports a syntactic fault: an unexpected token, missing
// required punctuation, or a malformed construct.
type ParseError struct {
	Message string
	Span    token.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s at %s", e.Message, e.Span)
}

// Kind is the closed set of RuntimeError subkinds from spec.md §7.
type Kind string

const (
	// Generic covers faults §7 assigns no dedicated subkind to (e.g.
	// return outside a function).
	Generic         Kind = "RuntimeError"
	NameError       Kind = "NameError"
	TypeError       Kind = "TypeError"
	ArityError      Kind = "ArityError"
	IndexError      Kind = "IndexError"
	ArithmeticError Kind = "ArithmeticError"
	UserThrow       Kind = "UserThrow"
)

// RuntimeError is every fault the evaluator raises once a program is
// running, including an uncaught user throw wrapped per spec.md §4.3.
type RuntimeError struct {
	Kind    Kind
	Message string
	Span    *token.Span // nil when no source position applies
}

func (e *RuntimeError) Error() string {
	if e.Span != nil {
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, *e.Span)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewRuntimeError builds a RuntimeError with a span.
func NewRuntimeError(kind Kind, span token.Span, format string, args ...any) *RuntimeError {
	s := span
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...), Span: &s}
}

// NewRuntimeErrorNoSpan builds a RuntimeError with no associated source
// position (used by native-function argument validation, which has no
// span of its own to report).
func NewRuntimeErrorNoSpan(kind Kind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
