package ast

import (
	"testing"

	"github.com/tmke8/latex2mathmlcore/arena"
	"github.com/tmke8/latex2mathmlcore/attribute"
)

func TestMergeSingleLettersFusesRun(t *testing.T) {
	a := arena.New[Node]()
	buf := arena.NewBuffer()

	var bld arena.NodeListBuilder[Node]
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'a'})
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'b'})
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'c'})
	list := bld.Build()

	merged := MergeSingleLetters(a, buf, list)
	refs := arena.Iter(merged, a)
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}
	n := a.Get(refs[0])
	if n.Kind != MultiLetterIdent {
		t.Fatalf("Kind = %v, want MultiLetterIdent", n.Kind)
	}
	if got := buf.Get(n.StrRef); got != "abc" {
		t.Errorf("merged text = %q, want %q", got, "abc")
	}
}

func TestMergeSingleLettersLeavesSingletonAlone(t *testing.T) {
	a := arena.New[Node]()
	buf := arena.NewBuffer()

	var bld arena.NodeListBuilder[Node]
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'x'})
	list := bld.Build()

	merged := MergeSingleLetters(a, buf, list)
	refs := arena.Iter(merged, a)
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}
	n := a.Get(refs[0])
	if n.Kind != SingleLetterIdent || n.Char != 'x' {
		t.Errorf("node = %+v, want untouched SingleLetterIdent 'x'", n)
	}
}

func TestMergeSingleLettersFusesAcrossVariants(t *testing.T) {
	a := arena.New[Node]()
	buf := arena.NewBuffer()
	normal := attribute.MathVariantNormal

	// \mathrm{a\Gamma}: fusion runs before the variant pass, so an
	// upright letter in the run fuses like any other; the merged
	// multi-letter identifier renders upright by default anyway.
	var bld arena.NodeListBuilder[Node]
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'a'})
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'Γ', Variant: &normal})
	list := bld.Build()

	merged := MergeSingleLetters(a, buf, list)
	refs := arena.Iter(merged, a)
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}
	n := a.Get(refs[0])
	if n.Kind != MultiLetterIdent {
		t.Fatalf("Kind = %v, want MultiLetterIdent", n.Kind)
	}
	if got, want := buf.Get(n.StrRef), "aΓ"; got != want {
		t.Errorf("merged text = %q, want %q", got, want)
	}
}

func TestMergeSingleLettersEndsRunAtMultiLetterIdent(t *testing.T) {
	a := arena.New[Node]()
	buf := arena.NewBuffer()

	// \mathrm{a\not bc}: the "b̸" identifier \not produced is already
	// a MultiLetterIdent, so it ends the run on either side; only
	// consecutive single-letter identifiers fuse.
	notRef := buf.Extend([]rune{'b', '̸'})

	var bld arena.NodeListBuilder[Node]
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'a'})
	bld.Push(a, Node{Kind: MultiLetterIdent, StrRef: notRef})
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'c'})
	list := bld.Build()

	merged := MergeSingleLetters(a, buf, list)
	refs := arena.Iter(merged, a)
	if len(refs) != 3 {
		t.Fatalf("len(refs) = %d, want 3", len(refs))
	}
	if n := a.Get(refs[0]); n.Kind != SingleLetterIdent || n.Char != 'a' {
		t.Errorf("refs[0] = %+v, want untouched SingleLetterIdent 'a'", n)
	}
	if n := a.Get(refs[1]); n.Kind != MultiLetterIdent || buf.Get(n.StrRef) != "b̸" {
		t.Errorf("refs[1] = %+v, want untouched MultiLetterIdent \"b̸\"", n)
	}
	if n := a.Get(refs[2]); n.Kind != SingleLetterIdent || n.Char != 'c' {
		t.Errorf("refs[2] = %+v, want untouched SingleLetterIdent 'c'", n)
	}
}

func TestSetNormalVariantRecursesIntoFrac(t *testing.T) {
	a := arena.New[Node]()
	num := a.Push(Node{Kind: SingleLetterIdent, Char: 'x'})
	den := a.Push(Node{Kind: SingleLetterIdent, Char: 'y'})
	frac := a.Push(Node{Kind: Frac, Num: num, Den: den})

	SetNormalVariant(a, frac)

	if v := a.Get(num).Variant; v == nil || *v != attribute.MathVariantNormal {
		t.Errorf("numerator variant = %v, want Normal", v)
	}
	if v := a.Get(den).Variant; v == nil || *v != attribute.MathVariantNormal {
		t.Errorf("denominator variant = %v, want Normal", v)
	}
}

func TestTransformLettersRewritesOperatorToIdent(t *testing.T) {
	a := arena.New[Node]()
	// \mathbf applied to a bare "+" rewrites the operator node into an
	// identifier, leaving the character unchanged when it is outside
	// the transform's domain.
	ref := a.Push(Node{Kind: Operator, Op: '+'})
	TransformLetters(a, ref, attribute.TransformBold)
	n := a.Get(ref)
	if n.Kind != SingleLetterIdent {
		t.Fatalf("Kind = %v, want SingleLetterIdent", n.Kind)
	}
	if n.Char != '+' {
		t.Errorf("Char = %q, want '+' unchanged (outside the bold transform's domain)", n.Char)
	}
}

func TestExtractLettersFailsOnStructuralNode(t *testing.T) {
	a := arena.New[Node]()
	buf := arena.NewBuffer()
	num := a.Push(Node{Kind: SingleLetterIdent, Char: 'x'})
	den := a.Push(Node{Kind: SingleLetterIdent, Char: 'y'})
	frac := a.Push(Node{Kind: Frac, Num: num, Den: den})

	if _, ok := ExtractLetters(a, buf, frac); ok {
		t.Fatal("ExtractLetters should fail on a Frac node")
	}
}

func TestExtractLettersCollectsRow(t *testing.T) {
	a := arena.New[Node]()
	buf := arena.NewBuffer()

	var bld arena.NodeListBuilder[Node]
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 's'})
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'i'})
	bld.Push(a, Node{Kind: SingleLetterIdent, Char: 'n'})
	row := a.Push(Node{Kind: Row, List: bld.Build()})

	chars, ok := ExtractLetters(a, buf, row)
	if !ok {
		t.Fatal("ExtractLetters failed on a Row of letters")
	}
	if string(chars) != "sin" {
		t.Errorf("chars = %q, want %q", string(chars), "sin")
	}
}
