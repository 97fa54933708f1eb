package latexmathmlcore

import (
	"errors"
	"strings"
	"testing"

	"github.com/tmke8/latex2mathmlcore/parser"
)

func TestConvertScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"single_variable", `x`, `<math><mi>x</mi></math>`},
		{"square_root", `\sqrt 2`, `<math><msqrt><mn>2</mn></msqrt></math>`},
		{"simple_fraction", `\frac{1}{2}`, `<math><mfrac><mn>1</mn><mn>2</mn></mfrac></math>`},
		{
			"stretchy_parenthesis_suppressed_close",
			`\left( x \right.`,
			`<math><mrow><mo>(</mo><mi>x</mi></mrow></math>`,
		},
		{"blackboard_bold", `\mathbb{R}`, `<math><mi>ℝ</mi></math>`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Convert(c.input, Inline, false)
			if err != nil {
				t.Fatalf("Convert(%q) returned error: %v", c.input, err)
			}
			if got != c.want {
				t.Errorf("Convert(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestConvertBlockDisplay(t *testing.T) {
	got, err := Convert(`x`, Block, false)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	want := `<math display="block"><mi>x</mi></math>`
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertPrettyPrintsOnePerLine(t *testing.T) {
	got, err := Convert(`\frac{1}{2}`, Inline, true)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("pretty output has no newlines: %q", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Errorf("pretty output has a blank line: %q", got)
	}
}

func TestConvertRoundTripIsStable(t *testing.T) {
	const input = `\sum_{i=0}^n \frac{i^2}{2}`
	first, err := Convert(input, Inline, false)
	if err != nil {
		t.Fatalf("first Convert returned error: %v", err)
	}
	second, err := Convert(input, Inline, false)
	if err != nil {
		t.Fatalf("second Convert returned error: %v", err)
	}
	if first != second {
		t.Errorf("conversion is not deterministic: %q != %q", first, second)
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  parser.ErrorKind
	}{
		{"curly_close_without_open", `}`, parser.UnexpectedClose},
		{"unsupported_command", `\notacommand`, parser.UnknownCommand},
		{
			"mismatched_begin_end",
			`\begin{matrix} 1 \end{bmatrix}`,
			parser.MismatchedEnvironment,
		},
		{"unsupported_environment", `\begin{nosuchenv} x \end{nosuchenv}`, parser.UnknownEnvironment},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Convert(c.input, Inline, false)
			if err == nil {
				t.Fatalf("Convert(%q) succeeded, want error", c.input)
			}
			var latexErr *LatexError
			if !errors.As(err, &latexErr) {
				t.Fatalf("Convert(%q) error is not *LatexError: %v", c.input, err)
			}
			if latexErr.Kind != c.kind {
				t.Errorf("Convert(%q) error kind = %v, want %v", c.input, latexErr.Kind, c.kind)
			}
		})
	}
}
