package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/value"
)

func TestInstallBindsEveryGlobal(t *testing.T) {
	globals := env.NewGlobal()
	Install(globals)

	for _, name := range []string{"console", "random", "string", "array", "time", "file", "data", "thread", "pauseExecution"} {
		_, ok := globals.Get(name)
		assert.True(t, ok, "expected Install to bind %q", name)
	}
}

func TestNamedObjectPreservesInsertionOrder(t *testing.T) {
	obj := namedObject(
		value.NewNative("b", value.Fixed(0), nil),
		value.NewNative("a", value.Fixed(0), nil),
	)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
}

func TestConsoleLogBuiltinArityIsVariadic(t *testing.T) {
	globals := env.NewGlobal()
	Install(globals)
	consoleV, ok := globals.Get("console")
	require.True(t, ok)
	console := consoleV.(*value.Object)
	logV, ok := console.Get("log")
	require.True(t, ok)
	log := logV.(*value.Native)
	assert.True(t, log.Arity.Variadic)
}
