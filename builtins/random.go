package builtins

import (
	"math/rand/v2"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// installRandom wires spec.md §6.3's `random` global. No third-party
// random-number library appears anywhere in the retrieved pack, so this
// stays on math/rand/v2 (see DESIGN.md).
func installRandom(globals *env.Environment) {
	globals.Define("random", namedObject(
		value.NewNative("int", value.Fixed(2), randomInt),
		value.NewNative("pick", value.Fixed(1), randomPick),
		value.NewNative("char", value.Fixed(0), randomChar),
	))
}

// randomInt returns an integer in [lo, hi], matching the inclusive-range
// convention of the teacher's own `range` builtin (std/common.go).
func randomInt(args []value.Value) (value.Value, error) {
	if err := checkArity("random.int", args, 2); err != nil {
		return nil, err
	}
	lo, err := argInt("random.int", args, 0)
	if err != nil {
		return nil, err
	}
	hi, err := argInt("random.int", args, 1)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "random.int expects lo <= hi, got %d > %d", lo, hi)
	}
	return value.Int(lo + rand.Int64N(hi-lo+1)), nil
}

func randomPick(args []value.Value) (value.Value, error) {
	if err := checkArity("random.pick", args, 1); err != nil {
		return nil, err
	}
	arr, err := argArray("random.pick", args, 0)
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "random.pick called on an empty array")
	}
	return arr.Elements[rand.IntN(len(arr.Elements))], nil
}

const randomCharAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomChar returns a random printable alphanumeric character.
func randomChar(args []value.Value) (value.Value, error) {
	if err := checkArity("random.char", args, 0); err != nil {
		return nil, err
	}
	return value.Str(string(randomCharAlphabet[rand.IntN(len(randomCharAlphabet))])), nil
}
