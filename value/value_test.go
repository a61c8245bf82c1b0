package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NullValue))
	assert.False(t, Truthy(Bool(false)))
	assert.False(t, Truthy(Int(0)))
	assert.False(t, Truthy(Float(0)))
	assert.False(t, Truthy(Str("")))

	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Int(1)))
	assert.True(t, Truthy(Float(0.1)))
	assert.True(t, Truthy(Str("x")))
	assert.True(t, Truthy(NewArray(nil)), "an empty array is still truthy")
	assert.True(t, Truthy(NewObject()), "an empty object is still truthy")
}

func TestEqual_NumericCrossKind(t *testing.T) {
	assert.True(t, Equal(Int(1), Float(1.0)))
	assert.False(t, Equal(Int(1), Float(1.5)))
}

func TestEqual_PrimitivesByValue(t *testing.T) {
	assert.True(t, Equal(Str("a"), Str("a")))
	assert.False(t, Equal(Str("a"), Str("b")))
	assert.True(t, Equal(Bool(true), Bool(true)))
	assert.True(t, Equal(NullValue, NullValue))
	assert.False(t, Equal(Str("1"), Int(1)), "string and number never compare equal")
}

func TestEqual_ArraysAndObjectsByIdentity(t *testing.T) {
	a := NewArray([]Value{Int(1)})
	b := NewArray([]Value{Int(1)})
	assert.False(t, Equal(a, b), "distinct arrays with equal contents are not ==")
	assert.True(t, Equal(a, a))

	o1 := NewObject()
	o2 := NewObject()
	assert.False(t, Equal(o1, o2))
	assert.True(t, Equal(o1, o1))
}

func TestObject_SetGetKeysPreserveInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", Int(2))
	o.Set("a", Int(1))
	o.Set("b", Int(22)) // overwrite shouldn't move position

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	v, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, Int(22), v)
}

func TestObject_DeletePreservesRemainingOrder(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	o.Set("c", Int(3))

	o.Delete("b")
	assert.Equal(t, []string{"a", "c"}, o.Keys())
	_, ok := o.Get("b")
	assert.False(t, ok)

	o.Delete("missing") // no-op, doesn't panic
	assert.Equal(t, []string{"a", "c"}, o.Keys())
}

func TestArray_StringFormatsElements(t *testing.T) {
	a := NewArray([]Value{Int(1), Str("x")})
	assert.Equal(t, `[1, x]`, a.String())
}

func TestFloat_StringDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1.5", Float(1.5).String())
	assert.Equal(t, "2", Float(2.0).String())
}

func TestNative_StringAndKind(t *testing.T) {
	n := NewNative("len", Fixed(1), func(args []Value) (Value, error) { return Int(0), nil })
	assert.Equal(t, KindNative, n.Kind())
	assert.Contains(t, n.String(), "len")
}
