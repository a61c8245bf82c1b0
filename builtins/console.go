package builtins

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/value"
)

// installConsole wires spec.md §6.3's `console` global: log/info/warn/
// error print to stdout (log uncolored, info/warn/error in cyan/yellow/
// red), grounded on the
// teacher's print/println (std/common.go) generalized to accept any
// number of arguments joined by a space, the way the language's own
// `+`-concatenation renders values. colorize exposes
// github.com/fatih/color directly to language programs, reusing the
// teacher's own REPL color dependency here instead of confining it to
// cmd/brew.
func installConsole(globals *env.Environment) {
	globals.Define("console", namedObject(
		value.NewNative("log", value.Variadic(), consoleLog(fmt.Println, nil)),
		value.NewNative("info", value.Variadic(), consoleLog(fmt.Println, color.New(color.FgCyan))),
		value.NewNative("warn", value.Variadic(), consoleLog(fmt.Println, color.New(color.FgYellow))),
		value.NewNative("error", value.Variadic(), consoleLog(fmt.Println, color.New(color.FgRed))),
		value.NewNative("colorize", value.Fixed(2), colorize),
	))
}

func joinArgs(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func consoleLog(print func(a ...any) (int, error), c *color.Color) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		line := joinArgs(args)
		if c != nil {
			line = c.Sprint(line)
		}
		print(line)
		return value.NullValue, nil
	}
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// colorize wraps text in an ANSI color by name, returning the text
// unmodified if the name isn't recognized rather than erroring, since this
// is a cosmetic helper a host script might call with user-supplied names.
func colorize(args []value.Value) (value.Value, error) {
	if err := checkArity("console.colorize", args, 2); err != nil {
		return nil, err
	}
	text, err := argString("console.colorize", args, 0)
	if err != nil {
		return nil, err
	}
	name, err := argString("console.colorize", args, 1)
	if err != nil {
		return nil, err
	}
	attr, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return value.Str(text), nil
	}
	return value.Str(color.New(attr).Sprint(text)), nil
}
