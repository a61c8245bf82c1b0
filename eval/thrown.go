package eval

import (
	"fmt"

	"github.com/brewlang/brew/token"
	"github.com/brewlang/brew/value"
)

// thrown is a user exception in flight. It travels through the ordinary
// `error` return of both Exec and Eval — unlike sigReturn it must be able
// to escape an expression evaluation (a Call to a user function whose body
// throws), where there is no signal return slot to carry it in — and is
// unwrapped by the nearest enclosing Try, or by Interpret at the top level
// if nothing catches it (spec.md §4.3 "Throw"/"Try").
type thrown struct {
	value value.Value
	span  token.Span
}

func (t *thrown) Error() string {
	return fmt.Sprintf("uncaught exception: %s at %s", t.value.String(), t.span)
}

func asThrown(err error) (*thrown, bool) {
	t, ok := err.(*thrown)
	return t, ok
}
