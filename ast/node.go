// Package ast defines the typed AST the parser builds and the
// in-place rewrite passes (font transforms, single-letter fusion)
// that run over it before emission. Nodes live in an arena.Arena and
// are addressed by arena.NodeRef rather than by pointer, so a pass can
// rewrite a node's payload without invalidating any other reference
// into the tree.
package ast

import (
	"github.com/tmke8/latex2mathmlcore/arena"
	"github.com/tmke8/latex2mathmlcore/attribute"
	"github.com/tmke8/latex2mathmlcore/ops"
)

// Kind discriminates the payload carried by a Node.
type Kind uint8

const (
	Invalid Kind = iota
	Number
	SingleLetterIdent
	MultiLetterIdent
	Operator
	OperatorWithSpacing
	OpLessThan
	OpGreaterThan
	OpAmpersand
	Space
	Text
	Subscript
	Superscript
	SubSup
	Multiscript
	Underset
	Overset
	UnderOver
	OverOp
	UnderOp
	Sqrt
	Root
	Frac
	Fenced
	SizedParen
	Row
	PseudoRow
	Table
	ColumnSeparator
	RowSeparator
	Slashed
	Mathstrut
)

// Node is a flat, tagged union over every AST variant. Exactly the
// fields documented for Kind are meaningful on any given value; this
// mirrors the command table's Token in spirit, trading Rust's
// per-variant payload for one struct every variant can share so a
// Node can be stored, copied, and mutated in place inside an Arena
// cell without an interface indirection.
type Node struct {
	Kind Kind

	// Number, Text: borrowed straight from the input string; Go string
	// slicing is already a zero-copy view, so no separate
	// borrowed-slice type exists here. Space: its width in em.
	Str string

	// MultiLetterIdent, \operatorname bodies: a reference into the
	// parser's synthesized-identifier Buffer.
	StrRef arena.StrRef

	// SingleLetterIdent's code point. (OpLessThan/OpGreaterThan/
	// OpAmpersand render a fixed character and carry no payload.)
	Char rune

	// SingleLetterIdent's optional mathvariant="normal" override.
	Variant *attribute.MathVariant

	// Operator's and OperatorWithSpacing's code point, and the
	// accent/delimiter operator drawn by OverOp, UnderOp, SizedParen.
	Op Op

	// Operator's optional stretchy/movablelimits attribute.
	OpAttr attribute.OpAttr

	// OperatorWithSpacing's lspace/rspace.
	SpacingLeft, SpacingRight attribute.MathSpacing

	// Subscript{Base,Sub}, Superscript{Base,Sup}, SubSup{Base,Sub,Sup},
	// Multiscript{Base,Sub}, Underset/Overset{Target,Symbol},
	// UnderOver{Target,Under,Over}, OverOp/UnderOp{Op,Accent,Target},
	// Sqrt{Child}, Root{Index,Child}, Frac{Num,Den}, Fenced{Content},
	// Slashed{Child}.
	Base, Sub, Sup      arena.NodeRef
	Target, Symbol      arena.NodeRef
	Under, Over         arena.NodeRef
	Num, Den            arena.NodeRef
	Child, Index        arena.NodeRef
	Content             arena.NodeRef

	// OverOp, UnderOp.
	Accent attribute.Accent

	// Frac's optional explicit line thickness (nil = default) and
	// displaystyle attribute.
	LineThickness *LineThickness
	FracAttr      *attribute.FracAttr

	// Fenced's delimiters; ops.NULL on either side suppresses that
	// fence, and an optional style, set only by \genfrac's style
	// argument.
	Open, Close Op
	Style       *attribute.Style

	// SizedParen's fixed size name (e.g. "1.2em") paired with Op above.
	Size string

	// Row, PseudoRow, Table's children.
	List arena.NodeList

	// Table's column alignment.
	Align attribute.Align
}

// Op is a re-export of ops.Op for ergonomic field typing inside Node;
// the underlying type is identical.
type Op = ops.Op

// LineThickness is Frac's optional explicit line thickness. The parser
// only ever sets Zero (for \binom and for \genfrac with "0pt"); it
// never sets Value, since \genfrac rejects any other thickness. The
// emitter writes a non-empty Value verbatim.
type LineThickness struct {
	Zero  bool
	Value string
}
