package eval

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/value"
)

// execVarDecl declares Name in e, initializing it to the evaluated
// Initializer or to null when absent (spec.md §4.3 "VarDecl"). Redeclaring
// a name already bound in e's own frame silently overwrites it.
func execVarDecl(n *ast.VarDecl, e *env.Environment) (signal, error) {
	var v value.Value = value.NullValue
	if n.Initializer != nil {
		var err error
		v, err = Eval(n.Initializer, e)
		if err != nil {
			return signal{}, err
		}
	}
	e.Define(n.Name, v)
	return normalSignal, nil
}

// execBlock opens a child environment, runs each statement in order, and
// stops at the first non-normal signal or error (spec.md §3 "Block
// introduces a child lexical scope").
func execBlock(n *ast.Block, e *env.Environment) (signal, error) {
	child := env.New(e)
	for _, stmt := range n.Statements {
		sig, err := Exec(stmt, child)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	return normalSignal, nil
}

func execIf(n *ast.If, e *env.Environment) (signal, error) {
	cond, err := Eval(n.Cond, e)
	if err != nil {
		return signal{}, err
	}
	if value.Truthy(cond) {
		return Exec(n.Then, e)
	}
	if n.Else != nil {
		return Exec(n.Else, e)
	}
	return normalSignal, nil
}

func execWhile(n *ast.While, e *env.Environment) (signal, error) {
	for {
		cond, err := Eval(n.Cond, e)
		if err != nil {
			return signal{}, err
		}
		if !value.Truthy(cond) {
			return normalSignal, nil
		}
		sig, err := Exec(n.Body, e)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
}

func execReturn(n *ast.Return, e *env.Environment) (signal, error) {
	var v value.Value = value.NullValue
	if n.Value != nil {
		var err error
		v, err = Eval(n.Value, e)
		if err != nil {
			return signal{}, err
		}
	}
	return returnSignal(v), nil
}

func execThrow(n *ast.Throw, e *env.Environment) (signal, error) {
	v, err := Eval(n.Value, e)
	if err != nil {
		return signal{}, err
	}
	return signal{}, &thrown{value: v, span: n.SpanVal}
}
