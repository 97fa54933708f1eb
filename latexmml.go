// Package latexmathmlcore converts LaTeX math source to MathML Core
// markup: lex, parse into an arena-backed AST, then emit. A
// conversion is a single self-contained, synchronous unit of work —
// no shared state lives between calls, so concurrent conversions on
// independent goroutines never contend with each other.
package latexmathmlcore

import (
	"github.com/tmke8/latex2mathmlcore/mathml"
	"github.com/tmke8/latex2mathmlcore/parser"
)

// Display selects the top-level `<math>` element's display attribute.
type Display = mathml.Display

const (
	Inline = mathml.Inline
	Block  = mathml.Block
)

// LatexError is the single error type a conversion can fail with.
type LatexError = parser.LatexError

// Convert parses input as LaTeX math and renders it to a complete
// `<math>...</math>` document. If pretty, the output is indented two
// spaces per nesting level with each child on its own line; otherwise
// it is written on a single line.
func Convert(input string, display Display, pretty bool) (string, error) {
	p := parser.New(input)
	root, err := p.Parse()
	if err != nil {
		return "", err
	}
	return mathml.Emit(p.Arena, p.Buf, root, display, pretty), nil
}
