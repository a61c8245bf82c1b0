package eval

import "github.com/brewlang/brew/value"

// signalKind tags what a statement's execution is asking its caller to do
// next, per spec.md §9's explicit-signal design note (an alternative to
// panicking for non-local control transfer).
type signalKind int

const (
	sigNormal signalKind = iota
	sigReturn
)

// signal is what Exec returns alongside a nil error on every non-fatal
// statement completion. sigReturn carries the value being returned; it
// propagates up through Block/If/While/Try unchanged until a function call
// (eval_call.go) unwraps it.
type signal struct {
	kind  signalKind
	value value.Value
}

var normalSignal = signal{kind: sigNormal}

func returnSignal(v value.Value) signal {
	return signal{kind: sigReturn, value: v}
}
