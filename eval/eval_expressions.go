package eval

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

func evalLiteral(n *ast.Literal) (value.Value, error) {
	switch n.Kind {
	case ast.LitNull:
		return value.NullValue, nil
	case ast.LitBool:
		return value.Bool(n.Bool), nil
	case ast.LitInt:
		return value.Int(n.Int), nil
	case ast.LitFloat:
		return value.Float(n.Float), nil
	case ast.LitString:
		return value.Str(n.String), nil
	default:
		panic("eval: unhandled literal kind")
	}
}

func evalIdentifier(n *ast.Identifier, e *env.Environment) (value.Value, error) {
	v, ok := e.Get(n.Name)
	if !ok {
		return nil, interperr.NewRuntimeError(interperr.NameError, n.SpanVal, "undefined name '%s'", n.Name)
	}
	return v, nil
}

func evalArrayLiteral(n *ast.ArrayLiteral, e *env.Environment) (value.Value, error) {
	elems := make([]value.Value, len(n.Items))
	for i, item := range n.Items {
		v, err := Eval(item, e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems), nil
}

func evalObjectLiteral(n *ast.ObjectLiteral, e *env.Environment) (value.Value, error) {
	obj := value.NewObject()
	for _, pair := range n.Pairs {
		v, err := Eval(pair.Value, e)
		if err != nil {
			return nil, err
		}
		obj.Set(pair.Name, v)
	}
	return obj, nil
}

func evalUnary(n *ast.Unary, e *env.Environment) (value.Value, error) {
	right, err := Eval(n.Right, e)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "!":
		return value.Bool(!value.Truthy(right)), nil
	case "-":
		switch x := right.(type) {
		case value.Int:
			return value.Int(-x), nil
		case value.Float:
			return value.Float(-x), nil
		default:
			return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "unary '-' requires a numeric operand, got %s", right.Kind())
		}
	default:
		panic("eval: unhandled unary operator " + n.Op)
	}
}

func evalFunctionLiteral(n *ast.Function, e *env.Environment) (value.Value, error) {
	return &value.Function{Name: n.Name, Params: n.Params, Body: n.Body, Closure: e}, nil
}

// evalMember implements spec.md §4.3 "Member": object field access, or the
// array's synthetic push/pop/length surface. Any other receiver kind, or
// an unrecognized array property name, is a TypeError (SPEC_FULL.md
// supplemented features 1-2).
func evalMember(n *ast.Member, e *env.Environment) (value.Value, error) {
	obj, err := Eval(n.Object, e)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case *value.Object:
		v, ok := o.Get(n.Name)
		if !ok {
			return nil, interperr.NewRuntimeError(interperr.IndexError, n.SpanVal, "property '%s' not found", n.Name)
		}
		return v, nil
	case *value.Array:
		return arrayMember(o, n)
	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "cannot access property '%s' of %s", n.Name, obj.Kind())
	}
}

func arrayMember(a *value.Array, n *ast.Member) (value.Value, error) {
	switch n.Name {
	case "length":
		return value.Int(len(a.Elements)), nil
	case "push":
		return value.NewNative("push", value.Fixed(1), func(args []value.Value) (value.Value, error) {
			a.Elements = append(a.Elements, args[0])
			return value.NullValue, nil
		}), nil
	case "pop":
		return value.NewNative("pop", value.Fixed(0), func(args []value.Value) (value.Value, error) {
			if len(a.Elements) == 0 {
				return nil, interperr.NewRuntimeErrorNoSpan(interperr.IndexError, "pop from an empty array")
			}
			last := a.Elements[len(a.Elements)-1]
			a.Elements = a.Elements[:len(a.Elements)-1]
			return last, nil
		}), nil
	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "array has no property '%s'", n.Name)
	}
}

// evalIndex implements spec.md §4.3 "Index": array+integer element access,
// object+coerced-string field access, and string+integer code-point
// character access.
func evalIndex(n *ast.Index, e *env.Environment) (value.Value, error) {
	obj, err := Eval(n.Object, e)
	if err != nil {
		return nil, err
	}
	idx, err := Eval(n.IndexOf, e)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case *value.Array:
		i, ok := idx.(value.Int)
		if !ok {
			return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "array index must be an integer, got %s", idx.Kind())
		}
		if i < 0 || int(i) >= len(o.Elements) {
			return nil, interperr.NewRuntimeError(interperr.IndexError, n.SpanVal, "array index %d out of range (length %d)", i, len(o.Elements))
		}
		return o.Elements[i], nil
	case *value.Object:
		key := indexKey(idx)
		v, ok := o.Get(key)
		if !ok {
			return nil, interperr.NewRuntimeError(interperr.IndexError, n.SpanVal, "field '%s' not found", key)
		}
		return v, nil
	case value.Str:
		i, ok := idx.(value.Int)
		if !ok {
			return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "string index must be an integer, got %s", idx.Kind())
		}
		runes := []rune(string(o))
		if i < 0 || int(i) >= len(runes) {
			return nil, interperr.NewRuntimeError(interperr.IndexError, n.SpanVal, "string index %d out of range (length %d)", i, len(runes))
		}
		return value.Str(string(runes[i])), nil
	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, n.SpanVal, "cannot index %s", obj.Kind())
	}
}

// indexKey coerces an index value to the string key used for mapping field
// access, per spec.md §4.3 "mapping + string (or coercible)".
func indexKey(idx value.Value) string {
	if s, ok := idx.(value.Str); ok {
		return string(s)
	}
	return idx.String()
}
