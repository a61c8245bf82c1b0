// Package eval implements the tree-walking evaluator: Exec runs a
// statement against an environment, Eval computes an expression's value.
// Grounded on original_source/brewjs/interpreter.py's execute/evaluate
// method split and on the teacher's eval/ package's per-concern file
// layout (eval_statements.go, eval_expressions.go, eval_binary.go,
// eval_assign.go, eval_call.go, eval_try.go mirror
// eval_conditionals.go/eval_loops.go/eval_controls.go/etc.).
package eval

import (
	"github.com/brewlang/brew/ast"
	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/interperr"
	"github.com/brewlang/brew/value"
)

// Interpret runs every statement of program against globals in order, the
// spec.md §6.2 host embedding entrypoint. globals is expected to already
// carry whatever builtins the host wants bound (see builtins.Install).
func Interpret(program *ast.Program, globals *env.Environment) error {
	for _, stmt := range program.Statements {
		sig, err := Exec(stmt, globals)
		if err != nil {
			if t, ok := asThrown(err); ok {
				return interperr.NewRuntimeError(interperr.UserThrow, t.span, "uncaught exception: %s", t.value.String())
			}
			return err
		}
		if sig.kind == sigReturn {
			return interperr.NewRuntimeErrorNoSpan(interperr.Generic, "return outside a function")
		}
	}
	return nil
}

// Exec executes a single statement against e, returning the control-flow
// signal it produces (normal completion or an in-flight return) or an
// error. The error is either a *thrown (a user exception in flight,
// unwound by the nearest Try or Interpret) or an *interperr.RuntimeError
// (fatal to the current interpretation, per spec.md §7's propagation
// policy: only UserThrow is observable from within the language).
func Exec(stmt ast.Stmt, e *env.Environment) (signal, error) {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := Eval(n.Expr, e)
		return normalSignal, err
	case *ast.VarDecl:
		return execVarDecl(n, e)
	case *ast.Block:
		return execBlock(n, e)
	case *ast.If:
		return execIf(n, e)
	case *ast.While:
		return execWhile(n, e)
	case *ast.Return:
		return execReturn(n, e)
	case *ast.Throw:
		return execThrow(n, e)
	case *ast.Try:
		return execTry(n, e)
	default:
		panic("eval: unhandled statement type")
	}
}

// Eval computes an expression's value against e.
func Eval(expr ast.Expr, e *env.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return evalLiteral(n)
	case *ast.Identifier:
		return evalIdentifier(n, e)
	case *ast.ArrayLiteral:
		return evalArrayLiteral(n, e)
	case *ast.ObjectLiteral:
		return evalObjectLiteral(n, e)
	case *ast.Unary:
		return evalUnary(n, e)
	case *ast.Binary:
		return evalBinary(n, e)
	case *ast.Assign:
		return evalAssign(n, e)
	case *ast.Member:
		return evalMember(n, e)
	case *ast.Index:
		return evalIndex(n, e)
	case *ast.Call:
		return evalCall(n, e)
	case *ast.Function:
		return evalFunctionLiteral(n, e)
	default:
		panic("eval: unhandled expression type")
	}
}
