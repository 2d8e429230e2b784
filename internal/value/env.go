package value

import "strings"

// Environment maps symbol names to Values and, in a parallel table, to
// documentation strings. Lookup walks the parent chain; Put writes only to
// the receiver. Names/values are kept in parallel, insertion-ordered slices
// rather than a bare map, so that debug-printing a partially applied
// Lambda's bindings, or `help env`'s snapshot, is deterministic.
type Environment struct {
	names  []string
	values []*Value
	docs   map[string]string
	parent *Environment
}

// NewEnv creates a fresh, parentless, binding-less Environment. It is the
// building block both for the global environment and for a Lambda's
// freshly constructed closure environment.
func NewEnv() *Environment {
	return &Environment{docs: make(map[string]string)}
}

// NewGlobal creates the distinguished global environment: no parent.
func NewGlobal() *Environment {
	return NewEnv()
}

// NewChild creates an environment with no bindings of its own, parented to
// parent. Used where a fresh nested scope (rather than a clone) is needed.
func NewChild(parent *Environment) *Environment {
	return &Environment{docs: make(map[string]string), parent: parent}
}

// Get walks the parent chain looking for name. The bool reports whether it
// was found.
func (e *Environment) Get(name string) (*Value, bool) {
	for i, n := range e.names {
		if n == name {
			return e.values[i], true
		}
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Put binds name to val in the receiver only, overwriting any existing
// binding of the same name in this frame.
func (e *Environment) Put(name string, val *Value) {
	for i, n := range e.names {
		if n == name {
			e.values[i] = val
			return
		}
	}
	e.names = append(e.names, name)
	e.values = append(e.values, val)
}

// PutGlobal walks to the root of the parent chain and binds name there,
// implementing `def`'s "writes into the global environment" rule.
func (e *Environment) PutGlobal(name string, val *Value) {
	e.Root().Put(name, val)
}

// Root returns the top of the parent chain (the distinguished global
// environment, when e descends from one).
func (e *Environment) Root() *Environment {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Parent returns the receiver's parent, or nil for the global environment
// or a freshly cloned local environment.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// SetParent re-parents e. Lambda application uses this to attach a local
// environment to the caller's environment for the duration of one call,
// then discards it.
func (e *Environment) SetParent(parent *Environment) {
	e.parent = parent
}

// Clone copies the receiver's own bindings (not the parent chain) into a
// fresh Environment with no parent set. A partially applied Lambda keeps
// its populated local environment this way, with no parent, until it is
// applied with its remaining arguments.
func (e *Environment) Clone() *Environment {
	c := &Environment{
		names:  append([]string(nil), e.names...),
		values: append([]*Value(nil), e.values...),
		docs:   make(map[string]string, len(e.docs)),
	}
	for k, v := range e.docs {
		c.docs[k] = v
	}
	return c
}

// SetDoc records documentation text for name on the receiver, per the `doc`
// primitive.
func (e *Environment) SetDoc(name, text string) {
	e.docs[name] = text
}

// Doc looks up documentation for name, walking the parent chain like Get.
func (e *Environment) Doc(name string) (string, bool) {
	if d, ok := e.docs[name]; ok {
		return d, true
	}
	if e.parent != nil {
		return e.parent.Doc(name)
	}
	return "", false
}

// Names returns the symbol names bound directly on the receiver, in
// insertion order.
func (e *Environment) Names() []string {
	return append([]string(nil), e.names...)
}

// debugBindings renders "name=value ..." for every binding held directly on
// e, used by Value.Debug for a partially applied Lambda's display.
func (e *Environment) debugBindings() string {
	if e == nil || len(e.names) == 0 {
		return ""
	}
	parts := make([]string, len(e.names))
	for i, n := range e.names {
		parts[i] = n + "=" + e.values[i].Debug()
	}
	return strings.Join(parts, " ")
}
