package help

import (
	"testing"

	"github.com/lispy-lang/lispy/internal/value"
)

func TestRenderDocBoundWithoutDoc(t *testing.T) {
	env := value.NewGlobal()
	env.Put("x", value.NewInteger(42))
	got := RenderDoc(env, "x")
	want := "x : 42"
	if got != want {
		t.Errorf("RenderDoc = %q, want %q", got, want)
	}
}

func TestRenderDocBoundWithDoc(t *testing.T) {
	env := value.NewGlobal()
	env.Put("x", value.NewInteger(42))
	env.SetDoc("x", "the answer")
	got := RenderDoc(env, "x")
	want := "x : 42\n  the answer"
	if got != want {
		t.Errorf("RenderDoc = %q, want %q", got, want)
	}
}

func TestRenderDocUnbound(t *testing.T) {
	env := value.NewGlobal()
	got := RenderDoc(env, "y")
	want := "y : <unbound>"
	if got != want {
		t.Errorf("RenderDoc = %q, want %q", got, want)
	}
}

func TestRenderDocDocInheritedFromParent(t *testing.T) {
	parent := value.NewGlobal()
	parent.Put("x", value.NewInteger(1))
	parent.SetDoc("x", "from parent")
	child := value.NewChild(parent)
	got := RenderDoc(child, "x")
	want := "x : 1\n  from parent"
	if got != want {
		t.Errorf("RenderDoc = %q, want %q", got, want)
	}
}

func TestRenderEnvSnapshotSingleFrameSorted(t *testing.T) {
	env := value.NewGlobal()
	env.Put("z", value.NewInteger(1))
	env.Put("a", value.NewInteger(2))
	got := RenderEnvSnapshot(env)
	want := "a = 2\nz = 1"
	if got != want {
		t.Errorf("RenderEnvSnapshot = %q, want %q", got, want)
	}
}

func TestRenderEnvSnapshotWalksParentChainWithShadowing(t *testing.T) {
	parent := value.NewGlobal()
	parent.Put("x", value.NewInteger(1))
	parent.Put("y", value.NewInteger(2))
	child := value.NewChild(parent)
	child.Put("x", value.NewInteger(100))

	got := RenderEnvSnapshot(child)
	want := "x = 100\ny = 2"
	if got != want {
		t.Errorf("RenderEnvSnapshot = %q, want %q", got, want)
	}
}

func TestRenderEnvSnapshotEmpty(t *testing.T) {
	env := value.NewGlobal()
	got := RenderEnvSnapshot(env)
	if got != "" {
		t.Errorf("RenderEnvSnapshot of empty env = %q, want empty", got)
	}
}
