package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_String(t *testing.T) {
	assert.Equal(t, "3:7", Span{Line: 3, Column: 7}.String())
}

func TestToken_Is(t *testing.T) {
	tok := Token{Kind: OP, Lexeme: "+", Span: Span{Line: 1, Column: 1}}
	assert.True(t, tok.Is(OP, "+"))
	assert.False(t, tok.Is(OP, "-"))
	assert.False(t, tok.Is(PUNCT, "+"))
}

func TestKeywords_ContainsReservedWordsOnly(t *testing.T) {
	assert.True(t, Keywords["function"])
	assert.True(t, Keywords["obj"])
	assert.False(t, Keywords["x"])
}
