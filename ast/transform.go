package ast

import (
	"github.com/tmke8/latex2mathmlcore/arena"
	"github.com/tmke8/latex2mathmlcore/attribute"
)

// Arena is the concrete arena type the parser and these rewrite
// passes operate on.
type Arena = arena.Arena[Node]

// SetNormalVariant implements \mathrm{...}: it walks the
// subtree rooted at ref and sets every reachable SingleLetterIdent's
// Variant to normal, recursing into every structural child a Node can
// have.
func SetNormalVariant(a *Arena, ref arena.NodeRef) {
	n := a.GetPtr(ref)
	switch n.Kind {
	case SingleLetterIdent:
		v := attribute.MathVariantNormal
		n.Variant = &v
	case Row, PseudoRow, Table:
		for _, child := range arena.Iter(n.List, a) {
			SetNormalVariant(a, child)
		}
	case Subscript, Multiscript:
		SetNormalVariant(a, n.Base)
		SetNormalVariant(a, n.Sub)
	case Superscript:
		SetNormalVariant(a, n.Base)
		SetNormalVariant(a, n.Sup)
	case SubSup:
		SetNormalVariant(a, n.Base)
		SetNormalVariant(a, n.Sub)
		SetNormalVariant(a, n.Sup)
	case Underset, Overset:
		SetNormalVariant(a, n.Target)
		SetNormalVariant(a, n.Symbol)
	case UnderOver:
		SetNormalVariant(a, n.Target)
		SetNormalVariant(a, n.Under)
		SetNormalVariant(a, n.Over)
	case OverOp:
		SetNormalVariant(a, n.Target)
	case UnderOp:
		SetNormalVariant(a, n.Target)
	case Sqrt:
		SetNormalVariant(a, n.Child)
	case Root:
		SetNormalVariant(a, n.Index)
		SetNormalVariant(a, n.Child)
	case Frac:
		SetNormalVariant(a, n.Num)
		SetNormalVariant(a, n.Den)
	case Fenced:
		SetNormalVariant(a, n.Content)
	case Slashed:
		SetNormalVariant(a, n.Child)
	}
}

// TransformLetters implements \mathbf{...} and friends: it
// walks the subtree rooted at ref, rewriting every SingleLetterIdent's
// character and every bare Operator into a SingleLetterIdent through
// the given transform. After the walk, if ref is itself a Row, the
// caller is expected to run MergeSingleLetters over it.
func TransformLetters(a *Arena, ref arena.NodeRef, tf attribute.TextTransform) {
	n := a.GetPtr(ref)
	switch n.Kind {
	case SingleLetterIdent:
		n.Char = tf.Transform(n.Char)
	case Operator:
		c := tf.Transform(rune(n.Op))
		*n = Node{Kind: SingleLetterIdent, Char: c}
	case Row, PseudoRow, Table:
		for _, child := range arena.Iter(n.List, a) {
			TransformLetters(a, child, tf)
		}
	case Subscript, Multiscript:
		TransformLetters(a, n.Base, tf)
		TransformLetters(a, n.Sub, tf)
	case Superscript:
		TransformLetters(a, n.Base, tf)
		TransformLetters(a, n.Sup, tf)
	case SubSup:
		TransformLetters(a, n.Base, tf)
		TransformLetters(a, n.Sub, tf)
		TransformLetters(a, n.Sup, tf)
	case Underset, Overset:
		TransformLetters(a, n.Target, tf)
		TransformLetters(a, n.Symbol, tf)
	case UnderOver:
		TransformLetters(a, n.Target, tf)
		TransformLetters(a, n.Under, tf)
		TransformLetters(a, n.Over, tf)
	case OverOp, UnderOp:
		TransformLetters(a, n.Target, tf)
	case Sqrt:
		TransformLetters(a, n.Child, tf)
	case Root:
		TransformLetters(a, n.Index, tf)
		TransformLetters(a, n.Child, tf)
	case Frac:
		TransformLetters(a, n.Num, tf)
		TransformLetters(a, n.Den, tf)
	case Fenced:
		TransformLetters(a, n.Content, tf)
	case Slashed:
		TransformLetters(a, n.Child, tf)
	}
}

// letterCollector accumulates a run of consecutive SingleLetterIdent
// siblings while walking a Row's child list.
type letterCollector struct {
	active  bool
	first   arena.NodeRef
	chars   []rune
}

func (c *letterCollector) reset() {
	c.active = false
	c.chars = c.chars[:0]
}

// finish commits the collected run: if more than one letter was
// collected, the first node in the run is rewritten in place into a
// MultiLetterIdent spanning the merged characters, read from the
// buffer; a run of exactly one letter is left untouched.
func (c *letterCollector) finish(a *Arena, buf *arena.Buffer) {
	if !c.active {
		return
	}
	if len(c.chars) > 1 {
		ref := buf.Extend(c.chars)
		*a.GetPtr(c.first) = Node{Kind: MultiLetterIdent, StrRef: ref}
	}
	c.reset()
}

// MergeSingleLetters rebuilds list by merging
// every run of consecutive SingleLetterIdent children into a single
// MultiLetterIdent, appending their characters to buf. Nodes dropped
// from the run (everything but the first in a merged run) are simply
// omitted from the rebuilt list; they remain allocated in the arena
// but are no longer reachable from the tree. Only SingleLetterIdent
// nodes join a run; any other kind, a MultiLetterIdent included, ends
// it.
func MergeSingleLetters(a *Arena, buf *arena.Buffer, list arena.NodeList) arena.NodeList {
	var out arena.NodeListBuilder[Node]
	var collector letterCollector

	refs := arena.Iter(list, a)
	for _, ref := range refs {
		n := a.Get(ref)
		if n.Kind == SingleLetterIdent {
			if !collector.active {
				collector.active = true
				collector.first = ref
				collector.chars = collector.chars[:0]
				out.PushRef(a, ref)
			}
			collector.chars = append(collector.chars, n.Char)
			continue
		}
		collector.finish(a, buf)
		out.PushRef(a, ref)
	}
	collector.finish(a, buf)
	return out.Build()
}

// ExtractLetters implements the text-extraction walk used by
// \operatorname: it recursively collects the characters of
// SingleLetterIdent, Number, Text, Operator, and OperatorWithSpacing
// nodes (and Row's and PseudoRow's children) and returns them, failing
// if it encounters any other node kind. It does not write to buf; the
// caller appends the result.
func ExtractLetters(a *Arena, buf *arena.Buffer, ref arena.NodeRef) ([]rune, bool) {
	n := a.Get(ref)
	switch n.Kind {
	case SingleLetterIdent:
		return []rune{n.Char}, true
	case Operator, OperatorWithSpacing:
		return []rune(string(rune(n.Op))), true
	case Number, Text:
		return []rune(n.Str), true
	case Row, PseudoRow:
		var out []rune
		for _, child := range arena.Iter(n.List, a) {
			chars, ok := ExtractLetters(a, buf, child)
			if !ok {
				return nil, false
			}
			out = append(out, chars...)
		}
		return out, true
	default:
		return nil, false
	}
}
