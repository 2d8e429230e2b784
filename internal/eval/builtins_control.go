package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerControlBuiltins wires `if`. It is an ordinary Builtin, not a
// special form dispatched separately by the evaluator: its operands are
// evaluated like any other Builtin's, but its then/else arguments are
// Q-Expressions, which evaluate to themselves — so no eager evaluation of
// the untaken branch ever happens.
func (i *Interpreter) registerControlBuiltins() {
	i.builtin("if", builtinIf)
}

func builtinIf(env *value.Environment, args []*value.Value) *value.Value {
	if e := requireExactly("if", args, 3); e != nil {
		return e
	}
	cond, thenQ, elseQ := args[0], args[1], args[2]
	if e := requireInteger(cond); e != nil {
		return e
	}
	if e := requireQExpr(thenQ); e != nil {
		return e
	}
	if e := requireQExpr(elseQ); e != nil {
		return e
	}
	if cond.Truthy() {
		return Eval(env, value.NewSExpr(thenQ.Cells...))
	}
	return Eval(env, value.NewSExpr(elseQ.Cells...))
}
