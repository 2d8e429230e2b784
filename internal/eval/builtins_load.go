package eval

import "github.com/lispy-lang/lispy/internal/value"

// registerLoadBuiltin wires `load "path"`: reads the file, evaluates each
// top-level form into the global environment, reporting (not aborting on)
// per-form errors. The actual mechanics live on Interpreter.LoadFile since
// that method already has access to Out for diagnostics.
func (i *Interpreter) registerLoadBuiltin() {
	i.builtin("load", func(env *value.Environment, args []*value.Value) *value.Value {
		if e := requireExactly("load", args, 1); e != nil {
			return e
		}
		path := args[0]
		if e := requireText(path); e != nil {
			return e
		}
		return i.LoadFile(path.Str)
	})
}
