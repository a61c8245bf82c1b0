package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

func TestStringLengthCountsRunesNotBytes(t *testing.T) {
	v, err := stringLength([]value.Value{value.Str("héllo")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)
}

func TestStringCharAt(t *testing.T) {
	v, err := stringCharAt([]value.Value{value.Str("héllo"), value.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, value.Str("é"), v)
}

func TestStringCharAtOutOfRange(t *testing.T) {
	_, err := stringCharAt([]value.Value{value.Str("ab"), value.Int(5)})
	var rerr *interperr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, interperr.IndexError, rerr.Kind)
}

func TestStringUpperLower(t *testing.T) {
	v, err := stringUpper([]value.Value{value.Str("Brew")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("BREW"), v)

	v, err = stringLower([]value.Value{value.Str("Brew")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("brew"), v)
}

func TestStringSlice(t *testing.T) {
	v, err := stringSlice([]value.Value{value.Str("hello"), value.Int(1), value.Int(4)})
	require.NoError(t, err)
	assert.Equal(t, value.Str("ell"), v)
}

func TestStringSliceOutOfBounds(t *testing.T) {
	_, err := stringSlice([]value.Value{value.Str("hi"), value.Int(0), value.Int(5)})
	var rerr *interperr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, interperr.IndexError, rerr.Kind)
}

func TestStringSplitAndJoin(t *testing.T) {
	arr, err := stringSplit([]value.Value{value.Str("a,b,c"), value.Str(",")})
	require.NoError(t, err)
	joined, err := stringJoin([]value.Value{arr, value.Str("-")})
	require.NoError(t, err)
	assert.Equal(t, value.Str("a-b-c"), joined)
}

func TestStringIndexOf(t *testing.T) {
	v, err := stringIndexOf([]value.Value{value.Str("héllo"), value.Str("llo")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(2), v)

	v, err = stringIndexOf([]value.Value{value.Str("hello"), value.Str("z")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(-1), v)
}

func TestStringCodePointAt(t *testing.T) {
	v, err := stringCodePointAt([]value.Value{value.Str("A"), value.Int(0)})
	require.NoError(t, err)
	assert.Equal(t, value.Int(65), v)
}
