package builtins

import (
	"time"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/eval"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// installThread wires spec.md §6.3's `thread` global: run, sleep. There is
// no equivalent in the teacher (go-mix has no concurrency surface at all),
// so this is grounded on the language's own function-value machinery —
// thread.run(fn) hands fn to a real goroutine via eval.CallValue — plus
// Go's stdlib time.Sleep for thread.sleep. Per spec.md §5, the core takes
// no responsibility for races a script introduces by mutating shared
// arrays/objects from more than one thread.run callback at once: there is
// no lock around environment or value mutation here, by design.
func installThread(globals *env.Environment) {
	globals.Define("thread", namedObject(
		value.NewNative("run", value.Fixed(1), threadRun),
		value.NewNative("sleep", value.Fixed(1), threadSleep),
	))
}

// threadRun starts fn on a new goroutine and returns immediately with a
// handle object exposing `join`, which blocks until fn returns (or
// propagates whatever error fn raised, the same way an uncaught throw
// would surface at the top level).
func threadRun(args []value.Value) (value.Value, error) {
	fn := args[0]
	switch fn.(type) {
	case *value.Function, *value.Native:
	default:
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.TypeError, "thread.run expects a function, got %s", fn.Kind())
	}

	done := make(chan error, 1)
	go func() {
		_, err := eval.CallValue(fn, nil)
		done <- err
	}()

	join := func(args []value.Value) (value.Value, error) {
		if err := <-done; err != nil {
			return nil, err
		}
		return value.NullValue, nil
	}
	return namedObject(
		value.NewNative("join", value.Fixed(0), join),
	), nil
}

func threadSleep(args []value.Value) (value.Value, error) {
	ms, err := argInt("thread.sleep", args, 0)
	if err != nil {
		return nil, err
	}
	if ms < 0 {
		return nil, interperr.NewRuntimeErrorNoSpan(interperr.Generic, "thread.sleep expects a non-negative millisecond count, got %d", ms)
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return value.NullValue, nil
}
