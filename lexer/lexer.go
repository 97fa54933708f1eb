// Package lexer turns LaTeX math source into a stream of token.Token
// values. The lexer has no lookahead of its own beyond the one
// rune it is currently deciding on; the parser is the one that keeps a
// token of lookahead (Parser.peek), asking the lexer for the next token
// only when it commits to consuming the current one.
package lexer

import (
	"github.com/tmke8/latex2mathmlcore/ops"
	"github.com/tmke8/latex2mathmlcore/token"
)

// Lexer reads runes from a LaTeX math source string and classifies
// them into tokens. TextMode, when true, makes the lexer return a run
// of whitespace as a single Whitespace token instead of skipping it,
// since \text{...} content preserves spacing the way ordinary math
// mode does not.
type Lexer struct {
	s        *scanner
	TextMode bool
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{s: newScanner(input)}
}

// Cursor returns the lexer's current byte offset, used by the parser
// to report error locations.
func (l *Lexer) Cursor() int {
	return l.s.Cursor()
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// skipWhitespace consumes ASCII whitespace and reports whether
// anything was consumed.
func (l *Lexer) skipWhitespace() bool {
	before := l.s.Cursor()
	l.s.EatWhile(isASCIIWhitespace)
	return l.s.Cursor() != before
}

// readCommand reads the control-sequence name following a backslash:
// a run of ASCII letters, or -- if no letters follow -- exactly one
// character, matching TeX's own rule that `\,` and `\{` are each
// single-character commands.
func (l *Lexer) readCommand() string {
	name := l.s.EatWhile(isASCIIAlpha)
	if name == "" {
		if r := l.s.Eat(); r != 0 {
			return string(r)
		}
	}
	return name
}

// punct classifies the characters readNumber treats as decimal-point-
// like separators inside a number literal.
type punct int

const (
	punctNone punct = iota
	punctDot
	punctComma
)

func punctFromRune(r rune) punct {
	switch r {
	case '.':
		return punctDot
	case ',':
		return punctComma
	}
	return punctNone
}

// readNumber reads a run of digits optionally interspersed with a
// single trailing `.` or `,`: "3.14" lexes whole, but "3.14." or "3..14" stop
// before the punctuation that isn't itself followed by a digit, since
// that punctuation belongs to the surrounding math instead. The
// punctuation rune itself is still consumed from the input here (it is
// excluded only from the returned slice) so that a run of several
// separators in a row, as in "3..14", is not re-offered to readNumber
// a second time; the parser re-synthesizes the consumed rune as the
// operator half of the Number+Operator pseudo-row.
func (l *Lexer) readNumber(start int) token.Token {
	for {
		r := l.s.Peek()
		if isASCIIDigit(r) {
			l.s.Eat()
			continue
		}
		p := punctFromRune(r)
		if p == punctNone {
			return token.Token{Kind: token.Number, Text: l.s.text[start:l.s.Cursor()]}
		}
		beforePunct := l.s.Cursor()
		l.s.Eat()
		if isASCIIDigit(l.s.Peek()) {
			continue
		}
		text := l.s.text[start:beforePunct]
		if p == punctDot {
			return token.Token{Kind: token.NumberWithDot, Text: text}
		}
		return token.Token{Kind: token.NumberWithComma, Text: text}
	}
}

// ReadTextContent reads the content of a \text{...}-like group up to
// its balancing closing brace, honoring `\{` and `\}` as escaped
// literal braces. The opening `{` must already have been consumed by
// the caller. It reports false if the group is never closed or an
// unrecognized escape appears.
func (l *Lexer) ReadTextContent() (string, bool) {
	start := l.s.Cursor()
	depth := 1
	for {
		pos := l.s.Cursor()
		r := l.s.Eat()
		switch r {
		case 0:
			return "", false
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return l.s.text[start:pos], true
			}
		case '\\':
			next := l.s.Peek()
			if next != '{' && next != '}' {
				return "", false
			}
			l.s.Eat()
		}
	}
}

// Next returns the next token. wantsDigit is set by the parser right
// after a token whose AcceptsDigit is true, so that e.g. `\sqrt32`
// reads the `3` as a lone one-character Number rather than grabbing
// the whole run "32".
func (l *Lexer) Next(wantsDigit bool) token.Token {
	if l.skipWhitespace() && l.TextMode {
		return token.Token{Kind: token.Whitespace}
	}
	if wantsDigit {
		if r := l.s.Peek(); isASCIIDigit(r) {
			l.s.Eat()
			return token.Token{Kind: token.Number, Text: string(r)}
		}
	}

	start := l.s.Cursor()
	r := l.s.Eat()
	switch r {
	case '=':
		return token.Token{Kind: token.Operator, Op: ops.EqualsSign}
	case ';':
		return token.Token{Kind: token.Operator, Op: ops.Semicolon}
	case ',':
		return token.Token{Kind: token.Operator, Op: ops.Comma}
	case '.':
		return token.Token{Kind: token.Operator, Op: ops.FullStop}
	case '\'':
		return token.Token{Kind: token.Prime}
	case '(':
		return token.Token{Kind: token.Paren, Op: ops.LeftParenthesis}
	case ')':
		return token.Token{Kind: token.Paren, Op: ops.RightParenthesis}
	case '{':
		return token.Token{Kind: token.GroupBegin}
	case '}':
		return token.Token{Kind: token.GroupEnd}
	case '[':
		return token.Token{Kind: token.Paren, Op: ops.LeftSquareBracket}
	case ']':
		return token.Token{Kind: token.SquareBracketClose}
	case '|':
		return token.Token{Kind: token.Paren, Op: ops.VerticalLine}
	case '+':
		return token.Token{Kind: token.Operator, Op: ops.PlusSign}
	case '-':
		return token.Token{Kind: token.Operator, Op: ops.MinusSign}
	case '*':
		return token.Token{Kind: token.Operator, Op: ops.Asterisk}
	case '/':
		return token.Token{Kind: token.Operator, Op: ops.Solidus}
	case '!':
		return token.Token{Kind: token.Operator, Op: ops.ExclamationMark}
	case '<':
		return token.Token{Kind: token.OpLessThan}
	case '>':
		return token.Token{Kind: token.OpGreaterThan}
	case '_':
		return token.Token{Kind: token.Underscore}
	case '^':
		return token.Token{Kind: token.Circumflex}
	case '&':
		return token.Token{Kind: token.Ampersand}
	case '~':
		return token.Token{Kind: token.NonBreakingSpace}
	case 0:
		return token.Token{Kind: token.EOF}
	case ':':
		return token.Token{Kind: token.Colon}
	case ' ':
		// Unreachable in practice since skipWhitespace above already
		// consumes ASCII spaces: math mode skips them and text mode
		// returns them as a Whitespace token.
		return token.Token{Kind: token.Letter, Char: ' '}
	case '\\':
		cmd := l.readCommand()
		t := token.Lookup(cmd)
		if l.TextMode {
			l.skipWhitespace()
		}
		return t
	}
	if isASCIIDigit(r) {
		return l.readNumber(start)
	}
	if isASCIIAlpha(r) {
		return token.Token{Kind: token.Letter, Char: r}
	}
	return token.Token{Kind: token.NormalLetter, Char: r}
}
