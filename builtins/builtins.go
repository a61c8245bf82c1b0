// Package builtins is the host library layer spec.md §6.3 deliberately
// leaves outside the core: a concrete set of global bindings a host
// installs into a root environment before calling eval.Interpret.
//
// Grounded file-for-file on the teacher's std/ package (one file per
// concern: std/arrays.go, std/time.go, std/file_io.go, std/common.go),
// adapted from the teacher's GoMixObject/io.Writer calling convention to
// this repo's value.Value/env.Environment shape, and from the teacher's
// flat-global/package-import registration style to spec.md §6.3's
// object-of-native-functions shape (`console.log`, `string.upper`, ...).
package builtins

import (
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/value"
)

// Install populates globals with every builtin spec.md §6.3 names:
// console, random, string, array, time, file, data, thread, and
// pauseExecution. A host embedder that wants a narrower or different
// surface can call the individual install* functions directly instead.
func Install(globals *env.Environment) {
	installConsole(globals)
	installRandom(globals)
	installString(globals)
	installArray(globals)
	installTime(globals)
	installFile(globals)
	installData(globals)
	installThread(globals)
	globals.Define("pauseExecution", pauseExecutionNative())
}

// namedObject builds a *value.Object whose fields are native functions, in
// the given order, the shape spec.md §6.3 requires for every builtin that
// isn't a bare callable (console, random, string, array, time, file, data,
// thread).
// Mirrors the teacher's slice-of-Builtin registration habit
// (std/arrays.go's arrayMethods, std/time.go's timeMethods) adapted to an
// object value instead of a flat global-name slice.
func namedObject(methods ...*value.Native) *value.Object {
	obj := value.NewObject()
	for _, fn := range methods {
		obj.Set(fn.Name, fn)
	}
	return obj
}
