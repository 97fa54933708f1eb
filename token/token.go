// Package token defines the lexical tokens produced by the lexer and
// the command table that classifies the text following a
// backslash into one of them. The command table is a pure, static
// mapping: looking up the same name always yields the same Token, and
// the table itself never changes during or across conversions.
package token

import (
	"github.com/tmke8/latex2mathmlcore/attribute"
	"github.com/tmke8/latex2mathmlcore/ops"
)

// Kind discriminates the payload carried by a Token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Begin
	End
	Ampersand
	NewLine
	Left
	Right
	Middle
	Paren
	GroupBegin
	GroupEnd
	Frac
	Underscore
	Circumflex
	Binom
	Overset
	Underset
	Overbrace
	Underbrace
	Sqrt
	Genfrac
	Integral
	Lim
	Space
	NonBreakingSpace
	Style
	NormalVariant
	Big
	Over
	Under
	Operator
	OpGreaterThan
	OpLessThan
	Colon
	BigOp
	Letter
	NormalLetter
	Number
	NumberWithDot
	NumberWithComma
	Function
	OperatorName
	Slashed
	Text
	Mathstrut
	SquareBracketClose
	Prime
	Whitespace
	Limits
	Not
	DisplayStyleCmd
	UnknownCommand
)

// Token is the classified output of the lexer. Exactly one of the
// payload fields is meaningful, selected by Kind; a flat struct keeps
// tokens copyable and comparable by value without an interface
// indirection.
type Token struct {
	Kind Kind

	Op    ops.Op  // Paren, Operator, Over, Under, Overbrace, Underbrace, Integral, BigOp
	Char  rune    // Letter, NormalLetter
	Text  string  // Number, NumberWithDot, NumberWithComma, Function, Lim, Space, Big, UnknownCommand
	StyleAttr attribute.Style // DisplayStyleCmd: \displaystyle, \textstyle, \scriptstyle, \scriptscriptstyle
	Style attribute.TextTransform // Style

	DisplayStyle *attribute.DisplayStyle // Frac, Binom
}

// AcceptsDigit reports whether this token makes the parser ask the
// lexer for a one-character Number next, reproducing TeX's
// digit-grabbing after \sqrt, \frac, \binom, and font transforms.
func (t Token) AcceptsDigit() bool {
	switch t.Kind {
	case Sqrt, Frac, Binom, Style:
		return true
	}
	return false
}

func op(o ops.Op) Token             { return Token{Kind: Operator, Op: o} }
func paren(o ops.Op) Token          { return Token{Kind: Paren, Op: o} }
func over(o ops.Op) Token           { return Token{Kind: Over, Op: o} }
func under(o ops.Op) Token          { return Token{Kind: Under, Op: o} }
func bigOp(o ops.Op) Token          { return Token{Kind: BigOp, Op: o} }
func integral(o ops.Op) Token       { return Token{Kind: Integral, Op: o} }
func letter(c rune) Token           { return Token{Kind: Letter, Char: c} }
func normalLetter(c rune) Token     { return Token{Kind: NormalLetter, Char: c} }
func fn(name string) Token          { return Token{Kind: Function, Text: name} }
func lim(label string) Token        { return Token{Kind: Lim, Text: label} }
func space(width string) Token      { return Token{Kind: Space, Text: width} }
func big(size string) Token         { return Token{Kind: Big, Text: size} }
func style(tf attribute.TextTransform) Token { return Token{Kind: Style, Style: tf} }
func displayStyle(s attribute.Style) Token   { return Token{Kind: DisplayStyleCmd, StyleAttr: s} }

func dsPtr(v attribute.DisplayStyle) *attribute.DisplayStyle { return &v }

func frac(ds *attribute.DisplayStyle) Token  { return Token{Kind: Frac, DisplayStyle: ds} }
func binom(ds *attribute.DisplayStyle) Token { return Token{Kind: Binom, DisplayStyle: ds} }

// Lookup classifies the text following a backslash (or the
// one-character fallback the lexer reads when no letters follow) into
// a Token. Unknown names produce an UnknownCommand token, which the
// parser turns into an error.
//
// This is the single source of truth for which control-sequence names
// are recognised and which Unicode code points they resolve to.
func Lookup(command string) Token {
	if t, ok := commandTable[command]; ok {
		return t
	}
	return Token{Kind: UnknownCommand, Text: command}
}
