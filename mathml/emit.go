// Package mathml renders a parsed AST (package ast) to MathML Core
// markup: one emission case per node kind, pure string building into a
// single output buffer, with optional pretty-printing.
package mathml

import (
	"strings"

	"github.com/tmke8/latex2mathmlcore/arena"
	"github.com/tmke8/latex2mathmlcore/ast"
	"github.com/tmke8/latex2mathmlcore/attribute"
	"github.com/tmke8/latex2mathmlcore/ops"
)

// Display selects the top-level `<math>` element's display attribute.
type Display int

const (
	Inline Display = iota
	Block
)

// Emit renders the tree rooted at root (the PseudoRow produced by
// parser.Parser.Parse) to a complete `<math>...</math>` document. If
// pretty, every element's children are written one per line, indented
// two spaces per nesting level; the exact whitespace is an
// implementation choice held fixed here.
func Emit(a *ast.Arena, buf *arena.Buffer, root arena.NodeRef, display Display, pretty bool) string {
	e := &emitter{a: a, buf: buf, pretty: pretty}
	if display == Block {
		e.out.WriteString(`<math display="block">`)
	} else {
		e.out.WriteString(`<math>`)
	}
	e.emitChildrenOf(root, 0)
	e.closeAt(0)
	e.out.WriteString(`</math>`)
	return e.out.String()
}

type emitter struct {
	a      *ast.Arena
	buf    *arena.Buffer
	out    strings.Builder
	pretty bool
}

func (e *emitter) newline(depth int) {
	if !e.pretty {
		return
	}
	e.out.WriteByte('\n')
	e.out.WriteString(strings.Repeat("  ", depth))
}

// closeAt writes the indentation that precedes a closing tag at
// depth; emitChildrenOf already advanced past the last child, so this
// is only ever called right before a closing tag.
func (e *emitter) closeAt(depth int) {
	e.newline(depth)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

func escapeRune(r rune) string {
	switch r {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	default:
		return string(r)
	}
}

// emitChildrenOf writes the children of the node at ref as a sequence
// at depth+1, unwrapped by any container element of their own. Emit
// uses it for the top-level `<math>` body, which is the root PseudoRow;
// a PseudoRow nested deeper is handled by node's own PseudoRow case.
func (e *emitter) emitChildrenOf(ref arena.NodeRef, depth int) {
	n := e.a.Get(ref)
	if n.Kind == ast.PseudoRow {
		for _, child := range arena.Iter(n.List, e.a) {
			e.newline(depth + 1)
			e.node(child, depth+1)
		}
		return
	}
	e.newline(depth + 1)
	e.node(ref, depth+1)
}

// container writes a standard element: an opening tag, each of
// children in order at depth+1, then a closing tag, applying the
// pretty-printing newlines uniformly.
func (e *emitter) container(name, attrs string, depth int, children ...arena.NodeRef) {
	e.out.WriteString("<" + name + attrs + ">")
	for _, c := range children {
		e.newline(depth + 1)
		e.node(c, depth+1)
	}
	e.closeAt(depth)
	e.out.WriteString("</" + name + ">")
}

func opString(o ops.Op) string {
	return escapeRune(rune(o))
}

// node writes the markup for the node at ref. depth is the nesting
// depth ref's own opening tag is written at (its children, if any, go
// at depth+1).
func (e *emitter) node(ref arena.NodeRef, depth int) {
	n := e.a.Get(ref)
	switch n.Kind {
	case ast.Number:
		e.out.WriteString("<mn>" + escape(n.Str) + "</mn>")

	case ast.SingleLetterIdent:
		var variant string
		if n.Variant != nil {
			variant = n.Variant.Attr()
		}
		e.out.WriteString("<mi" + variant + ">" + escapeRune(n.Char) + "</mi>")

	case ast.MultiLetterIdent:
		e.out.WriteString("<mi>" + escape(e.buf.Get(n.StrRef)) + "</mi>")

	case ast.Operator:
		e.out.WriteString("<mo" + n.OpAttr.Attr() + ">" + opString(n.Op) + "</mo>")

	case ast.OperatorWithSpacing:
		attrs := ""
		if n.SpacingLeft != attribute.MathSpacingNone {
			attrs += ` lspace="` + n.SpacingLeft.String() + `"`
		}
		if n.SpacingRight != attribute.MathSpacingNone {
			attrs += ` rspace="` + n.SpacingRight.String() + `"`
		}
		e.out.WriteString("<mo" + attrs + ">" + opString(n.Op) + "</mo>")

	case ast.OpLessThan:
		e.out.WriteString("<mo>&lt;</mo>")

	case ast.OpGreaterThan:
		e.out.WriteString("<mo>&gt;</mo>")

	case ast.OpAmpersand:
		e.out.WriteString("<mo>&amp;</mo>")

	case ast.Space:
		e.out.WriteString(`<mspace width="` + n.Str + `em"/>`)

	case ast.Text:
		e.out.WriteString("<mtext>" + escape(n.Str) + "</mtext>")

	case ast.Subscript:
		e.container("msub", "", depth, n.Base, n.Sub)

	case ast.Superscript:
		e.container("msup", "", depth, n.Base, n.Sup)

	case ast.SubSup:
		e.container("msubsup", "", depth, n.Base, n.Sub, n.Sup)

	case ast.Multiscript:
		// A bare prescripted subscript (e.g. tensor notation): no
		// superscript slot, so <none/> fills its place.
		e.out.WriteString("<mmultiscripts>")
		e.newline(depth + 1)
		e.node(n.Base, depth+1)
		e.newline(depth + 1)
		e.out.WriteString("<mprescripts/>")
		e.newline(depth + 1)
		e.node(n.Sub, depth+1)
		e.newline(depth + 1)
		e.out.WriteString("<none/>")
		e.closeAt(depth)
		e.out.WriteString("</mmultiscripts>")

	case ast.Underset:
		e.container("munder", "", depth, n.Target, n.Symbol)

	case ast.Overset:
		e.container("mover", "", depth, n.Target, n.Symbol)

	case ast.UnderOver:
		e.container("munderover", "", depth, n.Target, n.Under, n.Over)

	case ast.OverOp:
		e.out.WriteString(`<mover accent="` + n.Accent.String() + `">`)
		e.newline(depth + 1)
		e.node(n.Target, depth+1)
		e.newline(depth + 1)
		e.out.WriteString("<mo>" + opString(n.Op) + "</mo>")
		e.closeAt(depth)
		e.out.WriteString("</mover>")

	case ast.UnderOp:
		e.out.WriteString(`<munder accent="` + n.Accent.String() + `">`)
		e.newline(depth + 1)
		e.node(n.Target, depth+1)
		e.newline(depth + 1)
		e.out.WriteString("<mo>" + opString(n.Op) + "</mo>")
		e.closeAt(depth)
		e.out.WriteString("</munder>")

	case ast.Sqrt:
		e.container("msqrt", "", depth, n.Child)

	case ast.Root:
		e.container("mroot", "", depth, n.Child, n.Index)

	case ast.Frac:
		e.container("mfrac", fracAttrs(n), depth, n.Num, n.Den)

	case ast.Fenced:
		e.emitFenced(n, depth)

	case ast.SizedParen:
		e.out.WriteString(`<mo minsize="` + n.Size + `" maxsize="` + n.Size + `">` + opString(n.Op) + "</mo>")

	case ast.Row:
		var style string
		if n.Style != nil {
			style = n.Style.Attr()
		}
		e.emitRow("mrow", style, n.List, depth)

	case ast.PseudoRow:
		// The caller has already positioned us for the first child;
		// only the gaps between siblings need a line break.
		for i, child := range arena.Iter(n.List, e.a) {
			if i > 0 {
				e.newline(depth)
			}
			e.node(child, depth)
		}

	case ast.Table:
		e.emitTable(n, depth)

	case ast.Slashed:
		e.emitSlashed(n.Child, depth)

	case ast.Mathstrut:
		e.out.WriteString(`<mpadded width="0"><mphantom><mo>(</mo></mphantom></mpadded>`)

	case ast.ColumnSeparator, ast.RowSeparator:
		// Structural sentinels inside a Table's list; consumed by
		// emitTable and never reached here directly.
	}
}

func fracAttrs(n ast.Node) string {
	var b strings.Builder
	if n.LineThickness != nil {
		if n.LineThickness.Zero {
			b.WriteString(` linethickness="0"`)
		} else {
			b.WriteString(` linethickness="` + n.LineThickness.Value + `"`)
		}
	}
	if n.FracAttr != nil {
		b.WriteString(n.FracAttr.Attr())
	}
	return b.String()
}

func (e *emitter) emitRow(name, attrs string, list arena.NodeList, depth int) {
	e.out.WriteString("<" + name + attrs + ">")
	for _, c := range arena.Iter(list, e.a) {
		e.newline(depth + 1)
		e.node(c, depth+1)
	}
	e.closeAt(depth)
	e.out.WriteString("</" + name + ">")
}

// emitFenced writes a Fenced node as an <mrow> around an optional
// opening <mo>, the content, and an optional closing <mo>; either
// delimiter is omitted entirely when its Op is ops.NULL (the sentinel
// for a suppressed `\left.`/`\right.` side).
func (e *emitter) emitFenced(n ast.Node, depth int) {
	var style string
	if n.Style != nil {
		style = n.Style.Attr()
	}
	e.out.WriteString("<mrow" + style + ">")
	innerDepth := depth + 1
	if n.Open != ops.NULL {
		e.newline(innerDepth)
		e.out.WriteString("<mo>" + opString(n.Open) + "</mo>")
	}
	e.newline(innerDepth)
	e.node(n.Content, innerDepth)
	if n.Close != ops.NULL {
		e.newline(innerDepth)
		e.out.WriteString("<mo>" + opString(n.Close) + "</mo>")
	}
	e.closeAt(depth)
	e.out.WriteString("</mrow>")
}

// emitTable walks a Table's flat child list, splitting it into rows
// and cells on RowSeparator/ColumnSeparator sentinels and
// applying the columnalign pattern Align selects.
func (e *emitter) emitTable(n ast.Node, depth int) {
	e.out.WriteString("<mtable>")
	rowDepth := depth + 1
	cellDepth := rowDepth + 1
	contentDepth := cellDepth + 1

	e.newline(rowDepth)
	e.out.WriteString("<mtr>")
	e.newline(cellDepth)
	e.out.WriteString("<mtd" + columnAlign(n.Align, 0) + ">")

	col := 0
	for _, ref := range arena.Iter(n.List, e.a) {
		child := e.a.Get(ref)
		switch child.Kind {
		case ast.ColumnSeparator:
			e.closeAt(cellDepth)
			e.out.WriteString("</mtd>")
			col++
			e.newline(cellDepth)
			e.out.WriteString("<mtd" + columnAlign(n.Align, col) + ">")
		case ast.RowSeparator:
			e.closeAt(cellDepth)
			e.out.WriteString("</mtd>")
			e.closeAt(rowDepth)
			e.out.WriteString("</mtr>")
			col = 0
			e.newline(rowDepth)
			e.out.WriteString("<mtr>")
			e.newline(cellDepth)
			e.out.WriteString("<mtd" + columnAlign(n.Align, 0) + ">")
		default:
			e.newline(contentDepth)
			e.node(ref, contentDepth)
		}
	}
	e.closeAt(cellDepth)
	e.out.WriteString("</mtd>")
	e.closeAt(rowDepth)
	e.out.WriteString("</mtr>")
	e.closeAt(depth)
	e.out.WriteString("</mtable>")
}

// columnAlign returns the columnalign attribute for cell index col in
// a table with the given alignment mode; AlignCenter writes no
// attribute since MathML Core already centers by default.
func columnAlign(a attribute.Align, col int) string {
	switch a {
	case attribute.AlignLeft:
		return ` columnalign="left"`
	case attribute.AlignAlternating:
		if col%2 == 0 {
			return ` columnalign="right"`
		}
		return ` columnalign="left"`
	default:
		return ""
	}
}

// emitSlashed implements \slashed{…}: overlaying a combining
// long solidus onto a single-letter identifier; any other content is
// wrapped in a plain <mrow> since the combining mark only makes sense
// appended to one glyph.
func (e *emitter) emitSlashed(ref arena.NodeRef, depth int) {
	n := e.a.Get(ref)
	if n.Kind == ast.SingleLetterIdent {
		var variant string
		if n.Variant != nil {
			variant = n.Variant.Attr()
		}
		e.out.WriteString("<mi" + variant + ">" + escapeRune(n.Char) + "̸</mi>")
		return
	}
	e.container("mrow", "", depth, ref)
}
