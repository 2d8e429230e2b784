package eval

import "github.com/lispy-lang/lispy/internal/value"

// arityError formats the general "wrong operand count" message shared by
// every primitive: "'<name>' expected N argument(s), got M". For variadic
// primitives (0+ or 1+), want is the minimum required count.
func arityError(name string, want, got int) *value.Value {
	return value.NewError("'%s' expected %d argument(s), got %d", name, want, got)
}

func typeError(kind string, got *value.Value) *value.Value {
	return value.NewError("Expected %s, got %s", kind, got.Debug())
}

func requireExactly(name string, args []*value.Value, n int) *value.Value {
	if len(args) != n {
		return arityError(name, n, len(args))
	}
	return nil
}

func requireAtLeast(name string, args []*value.Value, n int) *value.Value {
	if len(args) < n {
		return arityError(name, n, len(args))
	}
	return nil
}

func requireQExpr(v *value.Value) *value.Value {
	if v.Kind != value.QExpression {
		return typeError("Q-Expression", v)
	}
	return nil
}

func requireInteger(v *value.Value) *value.Value {
	if v.Kind != value.Integer {
		return value.NewError("Expected number, got %s", v.Debug())
	}
	return nil
}

func requireSymbol(v *value.Value) *value.Value {
	if v.Kind != value.Symbol {
		return value.NewError("Expected symbol, got %s", v.Debug())
	}
	return nil
}

func requireText(v *value.Value) *value.Value {
	if v.Kind != value.Text {
		return value.NewError("Expected string, got %s", v.Debug())
	}
	return nil
}

func boolValue(b bool) *value.Value {
	if b {
		return value.NewInteger(1)
	}
	return value.NewInteger(0)
}
