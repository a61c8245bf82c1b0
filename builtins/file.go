package builtins

import (
	"os"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// installFile wires spec.md §6.3's `file` global: read, write, append,
// grounded on the teacher's std/file_io.go (readFile, writeFile,
// appendFile). The teacher's broader surface (mkdir, chmod, list_dir,
// and the rest) is dropped — see DESIGN.md.
func installFile(globals *env.Environment) {
	globals.Define("file", namedObject(
		value.NewNative("read", value.Fixed(1), fileRead),
		value.NewNative("write", value.Fixed(2), fileWrite),
		value.NewNative("append", value.Fixed(2), fileAppend),
	))
}

func fileRead(args []value.Value) (value.Value, error) {
	path, err := argString("file.read", args, 0)
	if err != nil {
		return nil, err
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "file.read: could not read %q: %v", path, readErr)
	}
	return value.Str(content), nil
}

func fileWrite(args []value.Value) (value.Value, error) {
	path, err := argString("file.write", args, 0)
	if err != nil {
		return nil, err
	}
	data, err := argString("file.write", args, 1)
	if err != nil {
		return nil, err
	}
	if writeErr := os.WriteFile(path, []byte(data), 0644); writeErr != nil {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "file.write: could not write %q: %v", path, writeErr)
	}
	return value.NullValue, nil
}

func fileAppend(args []value.Value) (value.Value, error) {
	path, err := argString("file.append", args, 0)
	if err != nil {
		return nil, err
	}
	data, err := argString("file.append", args, 1)
	if err != nil {
		return nil, err
	}
	f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if openErr != nil {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "file.append: could not open %q: %v", path, openErr)
	}
	defer f.Close()
	if _, writeErr := f.WriteString(data); writeErr != nil {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "file.append: could not write %q: %v", path, writeErr)
	}
	return value.NullValue, nil
}
