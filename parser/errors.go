package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/tmke8/latex2mathmlcore/token"
)

// ErrorKind is the closed set of terminal error conditions the parser
// can report. A conversion either succeeds or fails with exactly
// one of these; there is no partial result and no recovery.
type ErrorKind int

const (
	_ ErrorKind = iota
	UnexpectedEOF
	UnexpectedToken
	UnexpectedClose
	UnclosedGroup
	MissingParenthesis
	UnknownCommand
	UnknownEnvironment
	MismatchedEnvironment
	CannotBeUsedHere
	ExpectedText
)

// LatexError is the single error type returned from the parser entry
// point: a byte offset, a Kind, structured detail fields, and optional
// hints, so callers can match on Kind via errors.As instead of
// string-sniffing the message.
type LatexError struct {
	// Offset is the byte offset into the input at which the error was
	// detected.
	Offset int
	Kind   ErrorKind

	Expected     string
	Got          string
	Name         string
	CorrectPlace string
	Context      string

	Hints []string
}

// AddHint appends a remediation hint to the error.
func (e *LatexError) AddHint(hint string) {
	e.Hints = append(e.Hints, hint)
}

// Error implements the error interface.
func (e *LatexError) Error() string {
	var msg string
	switch e.Kind {
	case UnexpectedEOF:
		msg = "unexpected end of input"
	case UnexpectedToken:
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	case UnexpectedClose:
		msg = fmt.Sprintf("unexpected closing %s without a matching opening", e.Got)
	case UnclosedGroup:
		msg = fmt.Sprintf("input ended while searching for %s", e.Expected)
	case MissingParenthesis:
		msg = fmt.Sprintf("expected a delimiter after %s, got %s", e.Name, e.Got)
	case UnknownCommand:
		msg = fmt.Sprintf(`unknown command "\%s"`, e.Name)
	case UnknownEnvironment:
		msg = fmt.Sprintf("unknown environment %q", e.Name)
	case MismatchedEnvironment:
		msg = fmt.Sprintf("mismatched environment: expected %q, got %q", e.Expected, e.Got)
	case CannotBeUsedHere:
		msg = fmt.Sprintf("%s cannot be used here, expected %s", e.Got, e.CorrectPlace)
	case ExpectedText:
		msg = fmt.Sprintf("expected only text inside %s", e.Context)
	default:
		msg = "unknown parse error"
	}
	msg = fmt.Sprintf("%s (at byte offset %d)", msg, e.Offset)
	if len(e.Hints) > 0 {
		msg += ": " + strings.Join(e.Hints, "; ")
	}
	return msg
}

// describe renders a token as a short human-readable name, naming an
// unexpected code point with runenames.Name rather than printing the
// bare rune.
func describe(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of document"
	case token.Begin:
		return `\begin{...}`
	case token.End:
		return `\end{...}`
	case token.Ampersand:
		return "&"
	case token.GroupBegin:
		return "{"
	case token.GroupEnd:
		return "}"
	case token.SquareBracketClose:
		return "]"
	case token.OpGreaterThan:
		return ">"
	case token.OpLessThan:
		return "<"
	case token.Colon:
		return ":"
	case token.Underscore:
		return "_"
	case token.Circumflex:
		return "^"
	case token.Prime:
		return "'"
	case token.Left:
		return `\left`
	case token.Right:
		return `\right`
	case token.Middle:
		return `\middle`
	case token.Limits:
		return `\limits`
	case token.Paren:
		return fmt.Sprintf("delimiter %q", rune(t.Op))
	case token.Operator:
		return fmt.Sprintf("operator %q", rune(t.Op))
	case token.Letter, token.NormalLetter:
		if name := runenames.Name(t.Char); name != "" {
			return fmt.Sprintf("letter %q (%s)", t.Char, name)
		}
		return fmt.Sprintf("letter %q", t.Char)
	case token.Number, token.NumberWithDot, token.NumberWithComma:
		return fmt.Sprintf("number %q", t.Text)
	case token.UnknownCommand:
		return fmt.Sprintf(`\%s`, t.Text)
	default:
		return "token"
	}
}
