package arena

import "testing"

func TestArenaPushGet(t *testing.T) {
	a := New[string]()
	ref := a.Push("Hello, world!")
	if got := a.Get(ref); got != "Hello, world!" {
		t.Fatalf("Get() = %q, want %q", got, "Hello, world!")
	}
}

func TestNodeListIteratesInOrder(t *testing.T) {
	a := New[string]()
	var list NodeList
	var bld NodeListBuilder[string]
	bld.Push(a, "Hello, world!")
	bld.Push(a, "Goodbye, world!")
	list = bld.Build()

	refs := Iter(list, a)
	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	if got := a.Get(refs[0]); got != "Hello, world!" {
		t.Errorf("refs[0] = %q", got)
	}
	if got := a.Get(refs[1]); got != "Goodbye, world!" {
		t.Errorf("refs[1] = %q", got)
	}
}

func TestNodeListSingleton(t *testing.T) {
	a := New[string]()
	var bld NodeListBuilder[string]
	bld.Push(a, "Hello, world!")
	list := bld.Build()

	if _, ok := list.Singleton(); !ok {
		t.Fatal("Singleton() = false, want true")
	}
	refs := Iter(list, a)
	if len(refs) != 1 || a.Get(refs[0]) != "Hello, world!" {
		t.Fatalf("unexpected refs: %v", refs)
	}
}

func TestNodeListEmpty(t *testing.T) {
	a := New[string]()
	var list NodeList
	if !list.IsEmpty() {
		t.Fatal("IsEmpty() = false, want true")
	}
	if refs := Iter(list, a); len(refs) != 0 {
		t.Fatalf("Iter() = %v, want empty", refs)
	}
}

func TestBufferExtend(t *testing.T) {
	b := NewBuffer()
	ref := b.Extend([]rune("Hello, world!"))
	if got := b.Get(ref); got != "Hello, world!" {
		t.Fatalf("Get() = %q", got)
	}
}

func TestBufferPushString(t *testing.T) {
	b := NewBuffer()
	ref := b.PushString("Hello, world!")
	if got := b.Get(ref); got != "Hello, world!" {
		t.Fatalf("Get() = %q", got)
	}
}
