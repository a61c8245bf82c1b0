package builtins

import (
	"strings"
	"unicode/utf8"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// installString wires spec.md §6.3's `string` global: length, charAt,
// upper, lower, slice, split, join, indexOf, codePointAt. Rune-aware
// throughout, grounded on the teacher's habit of treating strings as
// UTF-8 text rather than byte slices across std/strings.go.
func installString(globals *env.Environment) {
	globals.Define("string", namedObject(
		value.NewNative("length", value.Fixed(1), stringLength),
		value.NewNative("charAt", value.Fixed(2), stringCharAt),
		value.NewNative("upper", value.Fixed(1), stringUpper),
		value.NewNative("lower", value.Fixed(1), stringLower),
		value.NewNative("slice", value.Fixed(3), stringSlice),
		value.NewNative("split", value.Fixed(2), stringSplit),
		value.NewNative("join", value.Fixed(2), stringJoin),
		value.NewNative("indexOf", value.Fixed(2), stringIndexOf),
		value.NewNative("codePointAt", value.Fixed(2), stringCodePointAt),
	))
}

func stringLength(args []value.Value) (value.Value, error) {
	s, err := argString("string.length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Int(utf8.RuneCountInString(s)), nil
}

func stringCharAt(args []value.Value) (value.Value, error) {
	s, err := argString("string.charAt", args, 0)
	if err != nil {
		return nil, err
	}
	i, err := argInt("string.charAt", args, 1)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if i < 0 || int(i) >= len(runes) {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "string.charAt index %d out of range (length %d)", i, len(runes))
	}
	return value.Str(string(runes[i])), nil
}

func stringUpper(args []value.Value) (value.Value, error) {
	s, err := argString("string.upper", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Str(strings.ToUpper(s)), nil
}

func stringLower(args []value.Value) (value.Value, error) {
	s, err := argString("string.lower", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Str(strings.ToLower(s)), nil
}

func stringSlice(args []value.Value) (value.Value, error) {
	s, err := argString("string.slice", args, 0)
	if err != nil {
		return nil, err
	}
	start, err := argInt("string.slice", args, 1)
	if err != nil {
		return nil, err
	}
	end, err := argInt("string.slice", args, 2)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if start < 0 || end < start || int(end) > len(runes) {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "string.slice range [%d:%d) out of bounds for length %d", start, end, len(runes))
	}
	return value.Str(string(runes[start:end])), nil
}

func stringSplit(args []value.Value) (value.Value, error) {
	s, err := argString("string.split", args, 0)
	if err != nil {
		return nil, err
	}
	sep, err := argString("string.split", args, 1)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str(p)
	}
	return value.NewArray(elems), nil
}

func stringJoin(args []value.Value) (value.Value, error) {
	arr, err := argArray("string.join", args, 0)
	if err != nil {
		return nil, err
	}
	sep, err := argString("string.join", args, 1)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(arr.Elements))
	for i, v := range arr.Elements {
		parts[i] = v.String()
	}
	return value.Str(strings.Join(parts, sep)), nil
}

func stringIndexOf(args []value.Value) (value.Value, error) {
	s, err := argString("string.indexOf", args, 0)
	if err != nil {
		return nil, err
	}
	sub, err := argString("string.indexOf", args, 1)
	if err != nil {
		return nil, err
	}
	byteIdx := strings.Index(s, sub)
	if byteIdx < 0 {
		return value.Int(-1), nil
	}
	return value.Int(utf8.RuneCountInString(s[:byteIdx])), nil
}

func stringCodePointAt(args []value.Value) (value.Value, error) {
	s, err := argString("string.codePointAt", args, 0)
	if err != nil {
		return nil, err
	}
	i, err := argInt("string.codePointAt", args, 1)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if i < 0 || int(i) >= len(runes) {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "string.codePointAt index %d out of range (length %d)", i, len(runes))
	}
	return value.Int(runes[i]), nil
}
