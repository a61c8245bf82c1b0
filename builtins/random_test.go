package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

func TestRandomIntWithinRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		v, err := randomInt([]value.Value{value.Int(5), value.Int(7)})
		require.NoError(t, err)
		n := int64(v.(value.Int))
		assert.GreaterOrEqual(t, n, int64(5))
		assert.LessOrEqual(t, n, int64(7))
	}
}

func TestRandomIntHiLessThanLoIsError(t *testing.T) {
	_, err := randomInt([]value.Value{value.Int(5), value.Int(1)})
	require.Error(t, err)
}

func TestRandomPick(t *testing.T) {
	arr := value.NewArray([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v, err := randomPick([]value.Value{arr})
	require.NoError(t, err)
	assert.Contains(t, arr.Elements, v)
}

func TestRandomPickEmptyIsIndexError(t *testing.T) {
	_, err := randomPick([]value.Value{value.NewArray(nil)})
	var rerr *interperr.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, interperr.IndexError, rerr.Kind)
}

func TestRandomChar(t *testing.T) {
	v, err := randomChar(nil)
	require.NoError(t, err)
	s := string(v.(value.Str))
	assert.Len(t, s, 1)
	assert.Contains(t, randomCharAlphabet, s)
}
