package builtins

import (
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// installArray wires spec.md §6.3's `array` global: length, contains,
// shift. push/pop/length-as-property already live on every array value
// via the Member dispatch in eval/eval_expressions.go (spec.md §4.3); this
// global covers the operations the language doesn't expose as synthetic
// members, grounded directly on the teacher's std/arrays.go
// (containsArray, shiftArray).
func installArray(globals *env.Environment) {
	globals.Define("array", namedObject(
		value.NewNative("length", value.Fixed(1), arrayLength),
		value.NewNative("contains", value.Fixed(2), arrayContains),
		value.NewNative("shift", value.Fixed(1), arrayShift),
	))
}

func arrayLength(args []value.Value) (value.Value, error) {
	arr, err := argArray("array.length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Int(len(arr.Elements)), nil
}

func arrayContains(args []value.Value) (value.Value, error) {
	arr, err := argArray("array.contains", args, 0)
	if err != nil {
		return nil, err
	}
	for _, elem := range arr.Elements {
		if value.Equal(elem, args[1]) {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

func arrayShift(args []value.Value) (value.Value, error) {
	arr, err := argArray("array.shift", args, 0)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "array.shift called on an empty array")
	}
	first := arr.Elements[0]
	arr.Elements = arr.Elements[1:]
	return first, nil
}
