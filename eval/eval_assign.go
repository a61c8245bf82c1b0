package eval

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// evalAssign implements spec.md §4.3 "Assign": the right-hand side is
// evaluated once, then written through an Identifier, Member, or Index
// target. The parser accepts any expression as a target (see
// parser.assignment); any other target kind is a TypeError here. Yields
// the assigned value.
func evalAssign(n *ast.Assign, e *env.Environment) (value.Value, error) {
	v, err := Eval(n.Value, e)
	if err != nil {
		return nil, err
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		if !e.Assign(target.Name, v) {
			return nil, interperr.NewRuntimeError(interperr.NameError, target.SpanVal, "assignment to undeclared name '%s'", target.Name)
		}
		return v, nil

	case *ast.Member:
		obj, err := Eval(target.Object, e)
		if err != nil {
			return nil, err
		}
		o, ok := obj.(*value.Object)
		if !ok {
			return nil, interperr.NewRuntimeError(interperr.TypeError, target.SpanVal, "cannot set property '%s' on %s", target.Name, obj.Kind())
		}
		o.Set(target.Name, v)
		return v, nil

	case *ast.Index:
		obj, err := Eval(target.Object, e)
		if err != nil {
			return nil, err
		}
		idx, err := Eval(target.IndexOf, e)
		if err != nil {
			return nil, err
		}
		switch o := obj.(type) {
		case *value.Array:
			i, ok := idx.(value.Int)
			if !ok {
				return nil, interperr.NewRuntimeError(interperr.TypeError, target.SpanVal, "array index must be an integer, got %s", idx.Kind())
			}
			if i < 0 || int(i) >= len(o.Elements) {
				return nil, interperr.NewRuntimeError(interperr.IndexError, target.SpanVal, "array index %d out of range (length %d)", i, len(o.Elements))
			}
			o.Elements[i] = v
			return v, nil
		case *value.Object:
			o.Set(indexKey(idx), v)
			return v, nil
		default:
			return nil, interperr.NewRuntimeError(interperr.TypeError, target.SpanVal, "cannot index-assign %s", obj.Kind())
		}

	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "invalid assignment target")
	}
}
