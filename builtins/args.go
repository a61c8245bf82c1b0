package builtins

import (
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// checkArity mirrors the teacher's `if len(args) != N { return
// createError(...) }` guard at the top of every std/ function, adapted to
// return a proper *interperr.RuntimeError since native functions report
// faults through the error channel rather than an error-as-value.
func checkArity(name string, args []value.Value, n int) error {
	if len(args) != n {
		return interperr.NewRuntimeErrorNoSpan(interperr.ArityError, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func argString(name string, args []value.Value, i int) (string, error) {
	s, ok := args[i].(value.Str)
	if !ok {
		return "", interperr.NewRuntimeErrorNoSpan(interperr.TypeError, "%s expects argument %d to be a string, got %s", name, i, args[i].Kind())
	}
	return string(s), nil
}

func argInt(name string, args []value.Value, i int) (int64, error) {
	n, ok := args[i].(value.Int)
	if !ok {
		return 0, interperr.NewRuntimeErrorNoSpan(interperr.TypeError, "%s expects argument %d to be an integer, got %s", name, i, args[i].Kind())
	}
	return int64(n), nil
}

func argArray(name string, args []value.Value, i int) (*value.Array, error) {
	a, ok := args[i].(*value.Array)
	if !ok {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.TypeError, "%s expects argument %d to be an array, got %s", name, i, args[i].Kind())
	}
	return a, nil
}
