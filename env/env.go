// Package env implements the environment chain: a mapping from name to
// value plus an optional parent, one frame per global scope, block, and
// function call (spec.md §3 "Environment").
//
// Grounded on the teacher's scope.Scope (LookUp/Bind/Assign chain-walk),
// with its Copy()-on-return closure workaround deliberately dropped — see
// DESIGN.md for why that breaks spec.md's shared-mutable-closure
// invariant.
package env

import "github.com/brewlang/brew/value"

// Environment is one frame of the lexical scope chain.
type Environment struct {
	vars   map[string]value.Value
	parent *Environment
}

// New creates a fresh environment with the given parent (nil for the
// global scope).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), parent: parent}
}

// NewGlobal creates a root environment with no parent, ready for a host to
// populate via a builtin installer before calling Interpret.
func NewGlobal() *Environment {
	return New(nil)
}

// Define installs a fresh binding in this frame, shadowing any binding of
// the same name in an enclosing frame. Redefining a name already bound in
// THIS frame silently overwrites it (spec.md §4.3 VarDecl semantics).
func (e *Environment) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Get looks up name starting at this frame and walking outward, returning
// the value bound in the nearest frame that defines it.
func (e *Environment) Get(name string) (value.Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign mutates the nearest enclosing frame that already binds name,
// returning false if no such frame exists (no implicit declaration on
// assignment).
func (e *Environment) Assign(name string, v value.Value) bool {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = v
			return true
		}
	}
	return false
}

// Parent returns the enclosing frame, or nil for the global scope.
func (e *Environment) Parent() *Environment {
	return e.parent
}
