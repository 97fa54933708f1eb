package parser

import (
	"testing"

	"github.com/tmke8/latex2mathmlcore/arena"
	"github.com/tmke8/latex2mathmlcore/ast"
	"github.com/tmke8/latex2mathmlcore/mathml"
)

func render(t *testing.T, input string) string {
	t.Helper()
	p := New(input)
	root, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return mathml.Emit(p.Arena, p.Buf, root, mathml.Inline, false)
}

func TestDigitGrabbing(t *testing.T) {
	// \sqrt12 parses identically to \sqrt{1}2.
	got := render(t, `\sqrt12`)
	want := render(t, `\sqrt{1}2`)
	if got != want {
		t.Errorf("\\sqrt12 = %q, \\sqrt{1}2 = %q, want equal", got, want)
	}

	got = render(t, `\frac12`)
	want = render(t, `\frac{1}{2}`)
	if got != want {
		t.Errorf("\\frac12 = %q, \\frac{1}{2} = %q, want equal", got, want)
	}
}

func TestNumberFragmentation(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`3.14`, `<math><mn>3.14</mn></math>`},
		{`3.`, `<math><mn>3</mn><mo>.</mo></math>`},
		{`3.14.`, `<math><mn>3.14</mn><mo>.</mo></math>`},
		{`3..14`, `<math><mn>3</mn><mo>.</mo><mo>.</mo><mn>14</mn></math>`},
	}
	for _, c := range cases {
		if got := render(t, c.input); got != c.want {
			t.Errorf("render(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSubSupOrderIndependent(t *testing.T) {
	got := render(t, `x_a^b`)
	want := render(t, `x^b_a`)
	if got != want {
		t.Errorf("x_a^b = %q, x^b_a = %q, want equal", got, want)
	}
}

func TestDoubleSubscriptIsError(t *testing.T) {
	_, err := New(`x_a_b`).Parse()
	if err == nil {
		t.Fatal("expected an error for x_a_b")
	}
	latexErr, ok := err.(*LatexError)
	if !ok {
		t.Fatalf("error is %T, want *LatexError", err)
	}
	if latexErr.Kind != CannotBeUsedHere {
		t.Errorf("Kind = %v, want CannotBeUsedHere", latexErr.Kind)
	}
}

func TestPrimeAppendsToSuperscript(t *testing.T) {
	got := render(t, `x'`)
	want := `<math><msup><mi>x</mi><mo>′</mo></msup></math>`
	if got != want {
		t.Errorf("render(x') = %q, want %q", got, want)
	}
}

func TestMatrixEnvironment(t *testing.T) {
	got := render(t, `\begin{pmatrix} a & b \\ c & d \end{pmatrix}`)
	want := `<math><mrow><mo>(</mo><mtable>` +
		`<mtr><mtd><mi>a</mi></mtd><mtd><mi>b</mi></mtd></mtr>` +
		`<mtr><mtd><mi>c</mi></mtd><mtd><mi>d</mi></mtd></mtr>` +
		`</mtable><mo>)</mo></mrow></math>`
	if got != want {
		t.Errorf("render(pmatrix) = %q, want %q", got, want)
	}
}

func TestMismatchedEnvironment(t *testing.T) {
	_, err := New(`\begin{matrix} 1 \end{bmatrix}`).Parse()
	latexErr, ok := err.(*LatexError)
	if !ok {
		t.Fatalf("error is %T, want *LatexError", err)
	}
	if latexErr.Kind != MismatchedEnvironment {
		t.Fatalf("Kind = %v, want MismatchedEnvironment", latexErr.Kind)
	}
	if latexErr.Expected != "matrix" || latexErr.Got != "bmatrix" {
		t.Errorf("Expected/Got = %q/%q, want matrix/bmatrix", latexErr.Expected, latexErr.Got)
	}
}

func TestNotNegatesKnownOperator(t *testing.T) {
	got := render(t, `\not=`)
	want := `<math><mo>≠</mo></math>`
	if got != want {
		t.Errorf("render(\\not=) = %q, want %q", got, want)
	}
}

func TestNotOnUnsupportedOperatorPassesThrough(t *testing.T) {
	got := render(t, `\not+`)
	want := `<math><mo>+</mo></math>`
	if got != want {
		t.Errorf("render(\\not+) = %q, want %q", got, want)
	}
}

func TestNotOnLetterAppendsSolidus(t *testing.T) {
	got := render(t, `\not a b`)
	want := `<math><mi>a̸</mi><mi>b</mi></math>`
	if got != want {
		t.Errorf("render(\\not a b) = %q, want %q", got, want)
	}
}

func TestNotBeforeGroupIsError(t *testing.T) {
	_, err := New(`\not{=}`).Parse()
	latexErr, ok := err.(*LatexError)
	if !ok {
		t.Fatalf("error is %T, want *LatexError", err)
	}
	if latexErr.Kind != CannotBeUsedHere {
		t.Errorf("Kind = %v, want CannotBeUsedHere", latexErr.Kind)
	}
}

func TestDisplayStyleGrabsRestOfGroup(t *testing.T) {
	got := render(t, `{\displaystyle x + y}`)
	want := `<math><mrow displaystyle="true" scriptlevel="0">` +
		`<mi>x</mi><mo>+</mo><mi>y</mi></mrow></math>`
	if got != want {
		t.Errorf("render({\\displaystyle x + y}) = %q, want %q", got, want)
	}
}

func TestDisplayStyleOutsideGroupIsError(t *testing.T) {
	_, err := New(`\displaystyle x`).Parse()
	latexErr, ok := err.(*LatexError)
	if !ok {
		t.Fatalf("error is %T, want *LatexError", err)
	}
	if latexErr.Kind != UnclosedGroup {
		t.Errorf("Kind = %v, want UnclosedGroup", latexErr.Kind)
	}
}

func TestGenfracZeroThickness(t *testing.T) {
	got := render(t, `\genfrac{}{}{0pt}{}{1}{2}`)
	want := `<math><mrow><mfrac linethickness="0"><mn>1</mn><mn>2</mn></mfrac></mrow></math>`
	if got != want {
		t.Errorf("render(genfrac) = %q, want %q", got, want)
	}
}

func TestGenfracInvalidThicknessIsError(t *testing.T) {
	_, err := New(`\genfrac{}{}{1pt}{}{1}{2}`).Parse()
	if err == nil {
		t.Fatal("expected an error for an unsupported genfrac thickness")
	}
}

// TestArenaIndicesStayInBounds checks that every NodeRef reachable
// from the root addresses a live arena cell. A ref past the end of
// the arena would panic Arena.Get, failing the test.
func TestArenaIndicesStayInBounds(t *testing.T) {
	p := New(`\frac{a_b^c}{\sqrt[3]{x}} \begin{cases} 1 & 2 \\ 3 & 4 \end{cases}`)
	root, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	visited := 0
	var walk func(ref arena.NodeRef)
	walk = func(ref arena.NodeRef) {
		visited++
		n := p.Arena.Get(ref)
		switch n.Kind {
		case ast.Row, ast.PseudoRow, ast.Table:
			for _, child := range arena.Iter(n.List, p.Arena) {
				walk(child)
			}
		case ast.Subscript:
			walk(n.Base)
			walk(n.Sub)
		case ast.Superscript:
			walk(n.Base)
			walk(n.Sup)
		case ast.SubSup:
			walk(n.Base)
			walk(n.Sub)
			walk(n.Sup)
		case ast.Sqrt:
			walk(n.Child)
		case ast.Root:
			walk(n.Index)
			walk(n.Child)
		case ast.Frac:
			walk(n.Num)
			walk(n.Den)
		case ast.Fenced:
			walk(n.Content)
		}
	}
	walk(root)
	if visited < 5 {
		t.Fatalf("walked only %d nodes, expected a deeper tree", visited)
	}
}
