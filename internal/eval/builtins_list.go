package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerListBuiltins wires the list primitives: `list`, `eval`, `head`,
// `tail`, `join`.
func (i *Interpreter) registerListBuiltins() {
	i.builtin("list", builtinList)
	i.builtin("eval", builtinEval)
	i.builtin("head", builtinHead)
	i.builtin("tail", builtinTail)
	i.builtin("join", builtinJoin)
}

func builtinList(env *value.Environment, args []*value.Value) *value.Value {
	return value.NewQExpr(args...)
}

func builtinEval(env *value.Environment, args []*value.Value) *value.Value {
	if e := requireExactly("eval", args, 1); e != nil {
		return e
	}
	q := args[0]
	if e := requireQExpr(q); e != nil {
		return e
	}
	return Eval(env, value.NewSExpr(q.Cells...))
}

func builtinHead(env *value.Environment, args []*value.Value) *value.Value {
	if e := requireExactly("head", args, 1); e != nil {
		return e
	}
	q := args[0]
	if e := requireQExpr(q); e != nil {
		return e
	}
	if len(q.Cells) == 0 {
		return value.NewError("'head' passed {}")
	}
	return value.NewQExpr(q.Cells[0])
}

func builtinTail(env *value.Environment, args []*value.Value) *value.Value {
	if e := requireExactly("tail", args, 1); e != nil {
		return e
	}
	q := args[0]
	if e := requireQExpr(q); e != nil {
		return e
	}
	if len(q.Cells) == 0 {
		return value.NewError("'tail' passed {}")
	}
	return value.NewQExpr(q.Cells[1:]...)
}

func builtinJoin(env *value.Environment, args []*value.Value) *value.Value {
	if e := requireAtLeast("join", args, 1); e != nil {
		return e
	}
	var joined []*value.Value
	for _, a := range args {
		if e := requireQExpr(a); e != nil {
			return e
		}
		joined = append(joined, a.Cells...)
	}
	return value.NewQExpr(joined...)
}
