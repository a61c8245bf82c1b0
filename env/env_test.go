package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlang/brew/value"
)

func TestDefineAndGet(t *testing.T) {
	e := NewGlobal()
	e.Define("x", value.Int(1))

	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int(1), v)
}

func TestGetWalksOutToParent(t *testing.T) {
	parent := NewGlobal()
	parent.Define("x", value.Int(1))
	child := New(parent)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int(1), v)
}

func TestDefineInChildShadowsParent(t *testing.T) {
	parent := NewGlobal()
	parent.Define("x", value.Int(1))
	child := New(parent)
	child.Define("x", value.Int(2))

	v, _ := child.Get("x")
	assert.Equal(t, value.Int(2), v, "child binding shadows parent")
	v, _ = parent.Get("x")
	assert.Equal(t, value.Int(1), v, "parent binding is untouched")
}

func TestGetMissingReturnsFalse(t *testing.T) {
	e := NewGlobal()
	_, ok := e.Get("missing")
	assert.False(t, ok)
}

func TestAssignMutatesNearestEnclosingFrame(t *testing.T) {
	parent := NewGlobal()
	parent.Define("x", value.Int(1))
	child := New(parent)

	ok := child.Assign("x", value.Int(99))
	require.True(t, ok)

	v, _ := parent.Get("x")
	assert.Equal(t, value.Int(99), v, "assign through a child mutates the frame that actually defines the name")
}

func TestAssignToUndefinedNameFails(t *testing.T) {
	e := NewGlobal()
	ok := e.Assign("nope", value.Int(1))
	assert.False(t, ok, "assign never implicitly declares")
}

func TestClosureCaptureIsLiveByReference(t *testing.T) {
	outer := NewGlobal()
	outer.Define("counter", value.Int(0))
	closureEnv := New(outer)

	// Simulates a closure reading `counter` after the outer frame mutates it.
	outer.Assign("counter", value.Int(5))
	v, ok := closureEnv.Get("counter")
	require.True(t, ok)
	assert.Equal(t, value.Int(5), v, "a later mutation of the captured frame must be visible through the child")
}

func TestParentReturnsEnclosingFrame(t *testing.T) {
	parent := NewGlobal()
	child := New(parent)
	assert.Same(t, parent, child.Parent())
	assert.Nil(t, parent.Parent())
}
