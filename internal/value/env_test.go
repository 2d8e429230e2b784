package value

import "testing"

func TestGetWalksParentChain(t *testing.T) {
	global := NewGlobal()
	global.Put("x", NewInteger(1))
	child := NewChild(global)

	got, ok := child.Get("x")
	if !ok || got.Int != 1 {
		t.Fatalf("expected to find x=1 via parent, got %v, %v", got, ok)
	}

	if _, ok := child.Get("y"); ok {
		t.Fatalf("expected y to be unbound")
	}
}

func TestPutOnlyWritesReceiver(t *testing.T) {
	global := NewGlobal()
	child := NewChild(global)
	child.Put("x", NewInteger(1))

	if _, ok := global.Get("x"); ok {
		t.Fatalf("Put should not have written through to the parent")
	}
	if v, ok := child.Get("x"); !ok || v.Int != 1 {
		t.Fatalf("expected child to hold x=1")
	}
}

func TestPutGlobalWritesRoot(t *testing.T) {
	global := NewGlobal()
	mid := NewChild(global)
	leaf := NewChild(mid)

	leaf.PutGlobal("z", NewInteger(42))

	if _, ok := leaf.Get("z"); !ok {
		t.Fatalf("expected z visible from leaf")
	}
	if v, ok := global.Get("z"); !ok || v.Int != 42 {
		t.Fatalf("expected z bound directly on the global env, got %v %v", v, ok)
	}
	for _, n := range mid.Names() {
		if n == "z" {
			t.Fatalf("PutGlobal must not bind on an intermediate frame")
		}
	}
}

func TestCloneCopiesBindingsNotParent(t *testing.T) {
	global := NewGlobal()
	global.Put("shared", NewInteger(7))
	orig := NewChild(global)
	orig.Put("x", NewInteger(1))

	clone := orig.Clone()
	if clone.Parent() != nil {
		t.Fatalf("expected clone to start with no parent")
	}
	if v, ok := clone.Get("x"); !ok || v.Int != 1 {
		t.Fatalf("expected clone to carry over x=1")
	}
	if _, ok := clone.Get("shared"); ok {
		t.Fatalf("clone must not see the original's parent chain until re-parented")
	}

	clone.Put("x", NewInteger(99))
	if v, _ := orig.Get("x"); v.Int != 1 {
		t.Fatalf("mutating the clone must not affect the original")
	}
}

func TestDocRoundTrip(t *testing.T) {
	global := NewGlobal()
	global.SetDoc("head", "returns the first element")
	child := NewChild(global)

	doc, ok := child.Doc("head")
	if !ok || doc != "returns the first element" {
		t.Fatalf("expected doc to be visible through parent chain, got %q %v", doc, ok)
	}
	if _, ok := child.Doc("nope"); ok {
		t.Fatalf("expected no doc for unbound name")
	}
}
