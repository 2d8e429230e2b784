package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerComparisonBuiltins wires `< <= > >=` (two Integers) and `== !=`
// (any two Values, structural equality).
func (i *Interpreter) registerComparisonBuiltins() {
	i.builtin("<", ordering("<", func(a, b int64) bool { return a < b }))
	i.builtin("<=", ordering("<=", func(a, b int64) bool { return a <= b }))
	i.builtin(">", ordering(">", func(a, b int64) bool { return a > b }))
	i.builtin(">=", ordering(">=", func(a, b int64) bool { return a >= b }))
	i.builtin("==", equality("==", true))
	i.builtin("!=", equality("!=", false))
}

func ordering(name string, cmp func(a, b int64) bool) func(*value.Environment, []*value.Value) *value.Value {
	return func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireExactly(name, args, 2); e != nil {
			return e
		}
		if e := requireInteger(args[0]); e != nil {
			return e
		}
		if e := requireInteger(args[1]); e != nil {
			return e
		}
		return boolValue(cmp(args[0].Int, args[1].Int))
	}
}

func equality(name string, wantEqual bool) func(*value.Environment, []*value.Value) *value.Value {
	return func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireExactly(name, args, 2); e != nil {
			return e
		}
		eq := args[0].Equal(args[1])
		return boolValue(eq == wantEqual)
	}
}
