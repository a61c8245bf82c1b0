package builtins

import (
	"time"

	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// pauseExecutionNative wraps time.Sleep as a single bare native function,
// not namespaced under an object, so a REPL demo script can call
// `pauseExecution(500)` directly. The teacher has no equivalent primitive;
// this is grounded on thread.sleep's identical body (builtins/thread.go)
// but kept as its own top-level binding per spec.md §6.3.
func pauseExecutionNative() *value.Native {
	return value.NewNative("pauseExecution", value.Fixed(1), func(args []value.Value) (value.Value, error) {
		ms, err := argInt("pauseExecution", args, 0)
		if err != nil {
			return nil, err
		}
		if ms < 0 {
			return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "pauseExecution expects a non-negative millisecond count, got %d", ms)
		}
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return value.NullValue, nil
	})
}
