package builtins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlang/brew/value"
)

func TestFileWriteReadAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.txt")

	_, err := fileWrite([]value.Value{value.Str(path), value.Str("hello")})
	require.NoError(t, err)

	v, err := fileRead([]value.Value{value.Str(path)})
	require.NoError(t, err)
	assert.Equal(t, value.Str("hello"), v)

	_, err = fileAppend([]value.Value{value.Str(path), value.Str(" world")})
	require.NoError(t, err)

	v, err = fileRead([]value.Value{value.Str(path)})
	require.NoError(t, err)
	assert.Equal(t, value.Str("hello world"), v)
}

func TestFileReadMissingPathIsError(t *testing.T) {
	_, err := fileRead([]value.Value{value.Str(filepath.Join(os.TempDir(), "does-not-exist-brew-test"))})
	require.Error(t, err)
}
