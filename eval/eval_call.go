package eval

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/token"
	"github.com/brewlang/brew/value"
)

// evalCall implements spec.md §4.3 "Call": callee and arguments evaluate
// left-to-right before either a user function or a native function runs.
// Recursion needs no special self-binding: a named function's Closure is
// the very *env.Environment its enclosing VarDecl later defines the name
// into, so by the time any call happens the name is already visible
// through that shared environment (grounded on
// original_source/brewjs/interpreter.py's VarDecl/FunctionValue handling,
// which relies on the same environment-object aliasing).
func evalCall(n *ast.Call, e *env.Environment) (value.Value, error) {
	callee, err := Eval(n.Callee, e)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := Eval(argExpr, e)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Function:
		return callUserFunction(fn, args, n.SpanVal)
	case *value.Native:
		return callNative(fn, args, n.SpanVal)
	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "%s is not callable", callee.Kind())
	}
}

func callUserFunction(fn *value.Function, args []value.Value, span token.Span) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, interperr.NewRuntimeError(interperr.ArityError, span, "%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(args))
	}
	closure, ok := fn.Closure.(*env.Environment)
	if !ok {
		panic("eval: function closure is not an *env.Environment")
	}
	callEnv := env.New(closure)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	body, ok := fn.Body.([]ast.Stmt)
	if !ok {
		panic("eval: function body is not []ast.Stmt")
	}
	for _, stmt := range body {
		sig, err := Exec(stmt, callEnv)
		if err != nil {
			return nil, err
		}
		if sig.kind == sigReturn {
			return sig.value, nil
		}
	}
	return value.NullValue, nil
}

// CallValue invokes a user or native function value from outside the
// evaluator proper — used by builtins (spec.md §6.3's `thread.run`) that
// need to call back into language-level functions the host was handed.
// There is no surrounding call-expression span to blame, so errors raised
// here are unspanned.
func CallValue(callee value.Value, args []value.Value) (value.Value, error) {
	var span token.Span
	switch fn := callee.(type) {
	case *value.Function:
		return callUserFunction(fn, args, span)
	case *value.Native:
		return callNative(fn, args, span)
	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, span, "%s is not callable", callee.Kind())
	}
}

func callNative(fn *value.Native, args []value.Value, span token.Span) (value.Value, error) {
	if !fn.Arity.Variadic && len(args) != fn.Arity.Count {
		return nil, interperr.NewRuntimeError(interperr.ArityError, span, "%s expects %d argument(s), got %d", fn.String(), fn.Arity.Count, len(args))
	}
	v, err := fn.Fn(args)
	if err != nil {
		return nil, err
	}
	return v, nil
}
