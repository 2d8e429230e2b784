package repl

import (
	"bytes"
	"testing"

	"github.com/lispy-lang/lispy/internal/eval"
	"github.com/lispy-lang/lispy/internal/value"
)

func TestNeedsContinuationOnTrailingSemicolon(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"(def {x} 1);", true},
		{"(def {x} 1); ", true},
		{"(def {x} 1)", false},
		{"", false},
		{";", true},
	}
	for _, c := range cases {
		if got := needsContinuation(c.line); got != c.want {
			t.Errorf("needsContinuation(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestStripContinuationDropsTrailingSemicolon(t *testing.T) {
	if got := stripContinuation("(+ 1 2);"); got != "(+ 1 2)" {
		t.Errorf("stripContinuation = %q, want %q", got, "(+ 1 2)")
	}
	if got := stripContinuation("(+ 1 2); "); got != "(+ 1 2)" {
		t.Errorf("stripContinuation with trailing space = %q, want %q", got, "(+ 1 2)")
	}
}

func TestCompleterSuggestsBoundSymbols(t *testing.T) {
	interp := eval.New(&bytes.Buffer{})
	interp.Global.Put("foobar", value.NewInteger(1))
	interp.Global.Put("foobaz", value.NewInteger(2))
	interp.Global.Put("quux", value.NewInteger(3))

	complete := completer(interp)
	head, matches, tail := complete("(foo", 4)
	if head != "(" || tail != "" {
		t.Fatalf("head/tail = %q/%q, want ( / empty", head, tail)
	}
	want := map[string]bool{"foobar": true, "foobaz": true}
	if len(matches) != len(want) {
		t.Fatalf("matches = %v, want two entries starting with foo", matches)
	}
	for _, m := range matches {
		if !want[m] {
			t.Errorf("unexpected completion %q", m)
		}
	}
}
