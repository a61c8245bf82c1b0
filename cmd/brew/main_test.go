package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/token"
)

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 2, exitCodeFor(&interperr.LexError{Message: "x", Span: token.Span{}}))
	assert.Equal(t, 3, exitCodeFor(&interperr.ParseError{Message: "x", Span: token.Span{}}))
	assert.Equal(t, 4, exitCodeFor(interperr.NewRuntimeErrorNoSpan(interperr.Generic, "x")))
	assert.Equal(t, 1, exitCodeFor(errors.New("something unrelated")))
}
