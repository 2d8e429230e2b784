// Package eval implements the Lispy reduction rules and the primitive
// operations that cannot be expressed within the language itself.
package eval

import "github.com/lispy-lang/lispy/internal/value"

// Eval reduces v against env by dispatching on its tag.
func Eval(env *value.Environment, v *value.Value) *value.Value {
	switch v.Kind {
	case value.Symbol:
		if bound, ok := env.Get(v.Str); ok {
			return bound
		}
		return value.NewError("Unbound symbol '%s'", v.Str)
	case value.SExpression:
		return evalSExpression(env, v)
	default:
		return v
	}
}

func evalSExpression(env *value.Environment, v *value.Value) *value.Value {
	evaluated := make([]*value.Value, len(v.Cells))
	for i, child := range v.Cells {
		result := Eval(env, child)
		if result.IsErr() {
			return result
		}
		evaluated[i] = result
	}

	if len(evaluated) == 0 {
		return value.NewSExpr()
	}
	if len(evaluated) == 1 {
		return evaluated[0]
	}

	op, args := evaluated[0], evaluated[1:]
	switch op.Kind {
	case value.Builtin:
		return op.Fn(env, args)
	case value.Lambda:
		return applyLambda(env, op, args)
	default:
		return value.NewError("Expected function, got %s", op.Debug())
	}
}

// applyLambda binds operands to formals left-to-right, absorbs a trailing
// `& rest` formal into a Q-expression, and either evaluates the body
// (formals exhausted) or returns a new partially applied Lambda (formals
// remaining).
func applyLambda(caller *value.Environment, lam *value.Value, args []*value.Value) *value.Value {
	local := lam.Closure.Clone()
	formals := append([]*value.Value(nil), lam.Formals...)
	body := lam.Body

	originalFormalsLen := len(formals)
	originalArgsLen := len(args)

	i := 0
	for i < len(args) {
		if len(formals) == 0 {
			return value.NewError("Expected %d arguments, got %d", originalFormalsLen, originalArgsLen)
		}
		sym := formals[0]
		formals = formals[1:]

		if sym.Str == "&" {
			if len(formals) != 1 {
				return value.NewError("Expected a single symbol following '&'")
			}
			rest := formals[0]
			local.Put(rest.Str, value.NewQExpr(args[i:]...))
			formals = nil
			i = len(args)
			break
		}

		local.Put(sym.Str, args[i])
		i++
	}

	if len(formals) > 0 && formals[0].Str == "&" {
		if len(formals) != 2 {
			return value.NewError("Expected a single symbol following '&'")
		}
		rest := formals[1]
		local.Put(rest.Str, value.NewQExpr())
		formals = nil
	}

	if len(formals) == 0 {
		local.SetParent(caller)
		return Eval(local, value.NewSExpr(body...))
	}

	return value.NewLambda(formals, body, local)
}
