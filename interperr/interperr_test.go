package interperr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewlang/brew/token"
)

func TestLexError_ErrorIncludesSpan(t *testing.T) {
	err := &LexError{Message: "unexpected character \"@\"", Span: token.Span{Line: 2, Column: 5}}
	assert.Equal(t, `lex error: unexpected character "@" at 2:5`, err.Error())
}

func TestParseError_ErrorIncludesSpan(t *testing.T) {
	err := &ParseError{Message: "expected ';'", Span: token.Span{Line: 1, Column: 9}}
	assert.Equal(t, "parse error: expected ';' at 1:9", err.Error())
}

func TestNewRuntimeError_IncludesKindAndSpan(t *testing.T) {
	err := NewRuntimeError(TypeError, token.Span{Line: 3, Column: 1}, "%s is not callable", "null")
	assert.Equal(t, "TypeError: null is not callable at 3:1", err.Error())
	assert.Equal(t, TypeError, err.Kind)
	assert.NotNil(t, err.Span)
}

func TestNewRuntimeErrorNoSpan_OmitsSpan(t *testing.T) {
	err := NewRuntimeErrorNoSpan(ArityError, "expected %d args, got %d", 2, 1)
	assert.Equal(t, "ArityError: expected 2 args, got 1", err.Error())
	assert.Nil(t, err.Span)
}
