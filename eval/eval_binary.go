package eval

import (
	"math"

	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/token"
	"github.com/brewlang/brew/value"
)

// evalBinary implements spec.md §4.3 "Binary": short-circuiting && and ||,
// polymorphic +, numeric -*/%, and the comparison operators. Grounded on
// original_source/brewjs/interpreter.py's _binary, with Go's native int64
// truncating division/remainder standing in for the original's
// truncate-toward-zero pin (SPEC_FULL.md supplemented feature 3).
func evalBinary(n *ast.Binary, e *env.Environment) (value.Value, error) {
	if n.Op == "&&" {
		left, err := Eval(n.Left, e)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return left, nil
		}
		return Eval(n.Right, e)
	}
	if n.Op == "||" {
		left, err := Eval(n.Left, e)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return left, nil
		}
		return Eval(n.Right, e)
	}

	left, err := Eval(n.Left, e)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, e)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+":
		return evalAdd(left, right, n.SpanVal)
	case "-", "*", "/", "%":
		return evalArith(n.Op, left, right, n.SpanVal)
	case "==":
		return value.Bool(valuesEqual(left, right)), nil
	case "!=":
		return value.Bool(!valuesEqual(left, right)), nil
	case "<", "<=", ">", ">=":
		return evalCompare(n.Op, left, right, n.SpanVal)
	default:
		panic("eval: unhandled binary operator " + n.Op)
	}
}

func evalAdd(left, right value.Value, span token.Span) (value.Value, error) {
	if value.IsNumeric(left) && value.IsNumeric(right) {
		return numericAdd(left, right), nil
	}
	if left.Kind() == value.KindString || right.Kind() == value.KindString {
		return value.Str(left.String() + right.String()), nil
	}
	return nil, interperr.NewRuntimeError(interperr.TypeError, span, "cannot add %s and %s", left.Kind(), right.Kind())
}

func numericAdd(left, right value.Value) value.Value {
	if left.Kind() == value.KindFloat || right.Kind() == value.KindFloat {
		return value.Float(mustFloat(left) + mustFloat(right))
	}
	return value.Int(left.(value.Int) + right.(value.Int))
}

func mustFloat(v value.Value) float64 {
	switch x := v.(type) {
	case value.Int:
		return float64(x)
	case value.Float:
		return float64(x)
	default:
		return 0
	}
}

func evalArith(op string, left, right value.Value, span token.Span) (value.Value, error) {
	if !value.IsNumeric(left) || !value.IsNumeric(right) {
		return nil, interperr.NewRuntimeError(interperr.TypeError, span, "operator '%s' requires numeric operands, got %s and %s", op, left.Kind(), right.Kind())
	}
	bothInt := left.Kind() == value.KindInt && right.Kind() == value.KindInt
	if bothInt {
		li, ri := int64(left.(value.Int)), int64(right.(value.Int))
		switch op {
		case "-":
			return value.Int(li - ri), nil
		case "*":
			return value.Int(li * ri), nil
		case "/":
			if ri == 0 {
				return nil, interperr.NewRuntimeError(interperr.ArithmeticError, span, "division by zero")
			}
			return value.Int(li / ri), nil
		case "%":
			if ri == 0 {
				return nil, interperr.NewRuntimeError(interperr.ArithmeticError, span, "modulo by zero")
			}
			return value.Int(li % ri), nil
		}
	}
	lf, rf := mustFloat(left), mustFloat(right)
	switch op {
	case "-":
		return value.Float(lf - rf), nil
	case "*":
		return value.Float(lf * rf), nil
	case "/":
		if rf == 0 {
			return nil, interperr.NewRuntimeError(interperr.ArithmeticError, span, "division by zero")
		}
		return value.Float(lf / rf), nil
	case "%":
		if rf == 0 {
			return nil, interperr.NewRuntimeError(interperr.ArithmeticError, span, "modulo by zero")
		}
		return value.Float(math.Mod(lf, rf)), nil
	}
	panic("eval: unhandled arithmetic operator " + op)
}

func evalCompare(op string, left, right value.Value, span token.Span) (value.Value, error) {
	var cmp int
	switch {
	case value.IsNumeric(left) && value.IsNumeric(right):
		lf, rf := mustFloat(left), mustFloat(right)
		cmp = cmpFloat(lf, rf)
	case left.Kind() == value.KindString && right.Kind() == value.KindString:
		ls, rs := string(left.(value.Str)), string(right.(value.Str))
		cmp = cmpString(ls, rs)
	default:
		return nil, interperr.NewRuntimeError(interperr.TypeError, span, "operator '%s' requires two numerics or two strings, got %s and %s", op, left.Kind(), right.Kind())
	}
	switch op {
	case "<":
		return value.Bool(cmp < 0), nil
	case "<=":
		return value.Bool(cmp <= 0), nil
	case ">":
		return value.Bool(cmp > 0), nil
	case ">=":
		return value.Bool(cmp >= 0), nil
	}
	panic("eval: unhandled comparison operator " + op)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// valuesEqual implements spec.md §4.3's `==`/`!=` comparison, delegating
// to value.Equal so eval and the builtins package share one definition.
func valuesEqual(a, b value.Value) bool {
	return value.Equal(a, b)
}
