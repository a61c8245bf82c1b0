package builtins

import (
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// installData wires spec.md §6.3's `data` global: queue, stack, set, map
// constructors. Each constructor is itself a Fixed(0) native that returns
// a fresh *value.Object whose fields are natives closing over one piece of
// host-side state — the same constructor-plus-method-set shape as the
// teacher's std/list.go, std/map.go, std/set.go, reimplemented against
// value.Value/value.Object instead of GoMixObject/a dedicated List type.
func installData(globals *env.Environment) {
	globals.Define("data", namedObject(
		value.NewNative("queue", value.Fixed(0), newQueue),
		value.NewNative("stack", value.Fixed(0), newStack),
		value.NewNative("set", value.Fixed(0), newSet),
		value.NewNative("map", value.Fixed(0), newDataMap),
	))
}

// newQueue grounds push/pop/peek on the teacher's pushback_list/
// popfront_list/peekfront_list (std/list.go): FIFO order, push at the
// back, pop and peek at the front.
func newQueue(args []value.Value) (value.Value, error) {
	elements := []value.Value{}
	push := func(args []value.Value) (value.Value, error) {
		elements = append(elements, args[0])
		return value.NullValue, nil
	}
	pop := func(args []value.Value) (value.Value, error) {
		if len(elements) == 0 {
			return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "queue.pop called on an empty queue")
		}
		front := elements[0]
		elements = elements[1:]
		return front, nil
	}
	peek := func(args []value.Value) (value.Value, error) {
		if len(elements) == 0 {
			return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "queue.peek called on an empty queue")
		}
		return elements[0], nil
	}
	return namedObject(
		value.NewNative("push", value.Fixed(1), push),
		value.NewNative("pop", value.Fixed(0), pop),
		value.NewNative("peek", value.Fixed(0), peek),
	), nil
}

// newStack grounds push/pop/peek on the teacher's pushback_list/
// popback_list/peekback_list (std/list.go): LIFO order, all three
// operations act on the end of the slice.
func newStack(args []value.Value) (value.Value, error) {
	elements := []value.Value{}
	push := func(args []value.Value) (value.Value, error) {
		elements = append(elements, args[0])
		return value.NullValue, nil
	}
	pop := func(args []value.Value) (value.Value, error) {
		if len(elements) == 0 {
			return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "stack.pop called on an empty stack")
		}
		top := elements[len(elements)-1]
		elements = elements[:len(elements)-1]
		return top, nil
	}
	peek := func(args []value.Value) (value.Value, error) {
		if len(elements) == 0 {
			return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "stack.peek called on an empty stack")
		}
		return elements[len(elements)-1], nil
	}
	return namedObject(
		value.NewNative("push", value.Fixed(1), push),
		value.NewNative("pop", value.Fixed(0), pop),
		value.NewNative("peek", value.Fixed(0), peek),
	), nil
}

// newSet grounds add/has/delete on the teacher's contains_list (std/
// list.go), using value.Equal for membership rather than the teacher's
// ToString-based comparison so numeric equality and string comparison
// stay consistent with the language's own `==`.
func newSet(args []value.Value) (value.Value, error) {
	elements := []value.Value{}
	add := func(args []value.Value) (value.Value, error) {
		for _, e := range elements {
			if value.Equal(e, args[0]) {
				return value.NullValue, nil
			}
		}
		elements = append(elements, args[0])
		return value.NullValue, nil
	}
	has := func(args []value.Value) (value.Value, error) {
		for _, e := range elements {
			if value.Equal(e, args[0]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}
	del := func(args []value.Value) (value.Value, error) {
		for i, e := range elements {
			if value.Equal(e, args[0]) {
				elements = append(elements[:i], elements[i+1:]...)
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}
	return namedObject(
		value.NewNative("add", value.Fixed(1), add),
		value.NewNative("has", value.Fixed(1), has),
		value.NewNative("delete", value.Fixed(1), del),
	), nil
}

// newDataMap grounds get/set/has/delete/keys on the teacher's std/map.go
// shape, keyed on a value's String() representation the same way
// eval/eval_expressions.go's indexKey coerces index keys for object
// indexing, so a data.map() behaves like object indexing with string,
// number, or boolean keys.
func newDataMap(args []value.Value) (value.Value, error) {
	storage := value.NewObject()
	get := func(args []value.Value) (value.Value, error) {
		v, ok := storage.Get(args[0].String())
		if !ok {
			return value.NullValue, nil
		}
		return v, nil
	}
	set := func(args []value.Value) (value.Value, error) {
		storage.Set(args[0].String(), args[1])
		return value.NullValue, nil
	}
	has := func(args []value.Value) (value.Value, error) {
		_, ok := storage.Get(args[0].String())
		return value.Bool(ok), nil
	}
	del := func(args []value.Value) (value.Value, error) {
		_, ok := storage.Get(args[0].String())
		storage.Delete(args[0].String())
		return value.Bool(ok), nil
	}
	keys := func(args []value.Value) (value.Value, error) {
		ks := storage.Keys()
		elems := make([]value.Value, len(ks))
		for i, k := range ks {
			elems[i] = value.Str(k)
		}
		return value.NewArray(elems), nil
	}
	return namedObject(
		value.NewNative("get", value.Fixed(1), get),
		value.NewNative("set", value.Fixed(2), set),
		value.NewNative("has", value.Fixed(1), has),
		value.NewNative("delete", value.Fixed(1), del),
		value.NewNative("keys", value.Fixed(0), keys),
	), nil
}
