// Package help implements the `help`/`doc` surface's rendering half: given
// an environment and a symbol name, produce the text the `help` primitive
// prints. Documentation strings themselves live on value.Environment, in a
// parallel map to bindings; this package only knows how to display them.
package help

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lispy-lang/lispy/internal/value"
)

// RenderDoc renders "name : <debug form>" (or "name : <unbound>"), followed
// by an indented documentation line when one was recorded (walking the
// parent chain, per Environment.Doc). With no documentation, only the first
// line is rendered.
func RenderDoc(env *value.Environment, name string) string {
	bound, hasBinding := env.Get(name)
	doc, hasDoc := env.Doc(name)

	var b strings.Builder
	fmt.Fprintf(&b, "%s", name)
	if hasBinding {
		fmt.Fprintf(&b, " : %s", bound.Debug())
	} else {
		b.WriteString(" : <unbound>")
	}
	if hasDoc {
		fmt.Fprintf(&b, "\n  %s", doc)
	}
	return b.String()
}

// RenderEnvSnapshot renders every binding reachable from env (its own
// frame plus every ancestor), one line per name, sorted for a stable
// listing. This backs the distinguished `help env` invocation.
func RenderEnvSnapshot(env *value.Environment) string {
	seen := make(map[string]bool)
	var names []string
	for frame := env; frame != nil; frame = frame.Parent() {
		for _, n := range frame.Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		bound, _ := env.Get(n)
		fmt.Fprintf(&b, "%s = %s\n", n, bound.Debug())
	}
	return strings.TrimRight(b.String(), "\n")
}
