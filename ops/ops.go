// Package ops defines the Unicode code points that LaTeX control
// sequences and symbols resolve to, plus the small lookup used by
// `\not` to find a symbol's canonical negated form.
package ops

// Op is a single Unicode code point used as an operator, delimiter,
// or other symbol in the emitted MathML.
type Op rune

// NULL is the sentinel used by Fenced.Open/Close to mean "emit no
// delimiter on this side" (see \left. and \right.).
const NULL Op = 0

// Delimiters, punctuation, and other ASCII-derived symbols the lexer
// produces directly from single input characters.
const (
	EqualsSign        Op = '='
	Semicolon         Op = ';'
	Comma             Op = ','
	FullStop          Op = '.'
	LeftParenthesis   Op = '('
	RightParenthesis  Op = ')'
	LeftSquareBracket Op = '['
	RightSquareBracket Op = ']'
	LeftCurlyBracket  Op = '{'
	RightCurlyBracket Op = '}'
	VerticalLine      Op = '|'
	PlusSign          Op = '+'
	MinusSign         Op = '-'
	Asterisk          Op = '*'
	Solidus           Op = '/'
	ExclamationMark   Op = '!'
	Colon             Op = ':'
	Prime             Op = '′'
)

// Symbols reachable only through named commands, referenced directly
// by the parser (e.g. for the \not lookup table and BigOp defaults).
const (
	Times          Op = '×'
	Sum            Op = '∑'
	Prod           Op = '∏'
	ForAll         Op = '∀'
	Exists         Op = '∃'
	ISIN           Op = '∈'
	NI             Op = '∋'
	NotIn          Op = '∉'
	IdenticalTo    Op = '≡'
	NotLessThan    Op = '≮'
	NotGreaterThan Op = '≯'
)

// negated holds the canonical negated form of operators that `\not`
// recognises when it precedes a plain Operator token (OpLessThan and
// OpGreaterThan are negated directly by the parser, not through this
// table, since they are their own token kinds).
var negated = map[Op]Op{
	EqualsSign:      '≠', // ≠
	IdenticalTo:     '≢', // ≢
	ISIN:            NotIn,
	NI:              '∌', // ∌
	'⊂':        '⊄', // ⊂ -> ⊄
	'⊃':        '⊅', // ⊃ -> ⊅
	'⊆':        '⊈', // ⊆ -> ⊈
	'⊇':        '⊉', // ⊇ -> ⊉
	'∼':        '≁', // ∼ -> ≁
	'≈':        '≉', // ≈ -> ≉
	'∣':        '∤', // ∣ -> ∤ (mid -> nmid)
	'∥':        '∦', // ∥ -> ∦ (parallel -> nparallel)
}

// Negated returns the canonical negated form of op, if one is known.
func Negated(op Op) (Op, bool) {
	n, ok := negated[op]
	return n, ok
}
