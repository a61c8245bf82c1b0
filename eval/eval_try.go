package eval

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
)

// execTry implements spec.md §4.3 "Try" / §5's finally-ordering invariant:
// the try block runs; a propagating user throw is handed to the catch
// block (if present) with the thrown value bound to CatchName in a fresh
// child environment; the finally block, if present, always runs last and,
// if it itself raises or returns, supersedes whatever was pending
// (last-write-wins), exactly mirroring
// original_source/brewjs/interpreter.py's _execute_try.
func execTry(n *ast.Try, e *env.Environment) (signal, error) {
	sig, err := Exec(n.TryBlock, e)

	if t, ok := asThrown(err); ok && n.HasCatch {
		catchEnv := env.New(e)
		catchEnv.Define(n.CatchName, t.value)
		sig, err = Exec(n.Catch, catchEnv)
	}

	if n.Finally != nil {
		fsig, ferr := Exec(n.Finally, e)
		if ferr != nil {
			return signal{}, ferr
		}
		if fsig.kind != sigNormal {
			return fsig, nil
		}
	}

	return sig, err
}
