package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewlang/brew/builtins"
	"github.com/brewlang/brew/env"
)

func newTestGlobals() *env.Environment {
	g := env.NewGlobal()
	builtins.Install(g)
	return g
}

func TestEvalLine_SuccessPrintsOk(t *testing.T) {
	r := New("", "v0", "")
	var buf bytes.Buffer
	r.evalLine(&buf, "1 + 1;", newTestGlobals())
	assert.Contains(t, buf.String(), "ok")
}

func TestEvalLine_ParseErrorIsReported(t *testing.T) {
	r := New("", "v0", "")
	var buf bytes.Buffer
	r.evalLine(&buf, "obj = ;", newTestGlobals())
	assert.Contains(t, buf.String(), "parse error")
}

func TestEvalLine_RuntimeErrorIsReported(t *testing.T) {
	r := New("", "v0", "")
	var buf bytes.Buffer
	r.evalLine(&buf, "undefinedName;", newTestGlobals())
	assert.Contains(t, buf.String(), "NameError")
}

func TestEvalLine_BindingsPersistAcrossCallsOnSameEnvironment(t *testing.T) {
	r := New("", "v0", "")
	var buf bytes.Buffer
	globals := newTestGlobals()
	r.evalLine(&buf, "obj x = 41;", globals)
	buf.Reset()
	r.evalLine(&buf, "x = x + 1;", globals)
	assert.Contains(t, buf.String(), "ok", "assigning to a name bound in a prior line must succeed")
}
