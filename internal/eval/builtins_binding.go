package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerBindingBuiltins wires `def` (writes into the global environment)
// and `=` (writes into the current environment). Both share the same
// symbol/value-count validation; only the write target differs.
func (i *Interpreter) registerBindingBuiltins() {
	i.builtin("def", bind("def", func(env *value.Environment, name string, val *value.Value) {
		env.PutGlobal(name, val)
	}))
	i.builtin("=", bind("=", func(env *value.Environment, name string, val *value.Value) {
		env.Put(name, val)
	}))
}

func bind(name string, write func(env *value.Environment, name string, val *value.Value)) func(*value.Environment, []*value.Value) *value.Value {
	return func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireAtLeast(name, args, 1); e != nil {
			return e
		}
		syms := args[0]
		if e := requireQExpr(syms); e != nil {
			return e
		}
		vals := args[1:]
		if len(syms.Cells) != len(vals) {
			return value.NewError("Found %d symbols but %d values", len(syms.Cells), len(vals))
		}
		for _, s := range syms.Cells {
			if e := requireSymbol(s); e != nil {
				return e
			}
		}
		for idx, s := range syms.Cells {
			write(env, s.Str, vals[idx])
		}
		return value.NewSExpr()
	}
}
