package lexer

import (
	"testing"

	"github.com/tmke8/latex2mathmlcore/ops"
	"github.com/tmke8/latex2mathmlcore/token"
)

func TestNextToken(t *testing.T) {
	cases := []struct {
		input string
		want  []token.Token
	}{
		{`3`, []token.Token{{Kind: token.Number, Text: "3"}}},
		{`3.14`, []token.Token{{Kind: token.Number, Text: "3.14"}}},
		{`3.14.`, []token.Token{{Kind: token.NumberWithDot, Text: "3.14"}}},
		{`3..14`, []token.Token{
			{Kind: token.NumberWithDot, Text: "3"},
			{Kind: token.Operator, Op: ops.FullStop},
			{Kind: token.Number, Text: "14"},
		}},
		{`x`, []token.Token{{Kind: token.Letter, Char: 'x'}}},
		{`\pi`, []token.Token{{Kind: token.Letter, Char: 'π'}}},
		{`x = 3.14`, []token.Token{
			{Kind: token.Letter, Char: 'x'},
			{Kind: token.Operator, Op: ops.EqualsSign},
			{Kind: token.Number, Text: "3.14"},
		}},
		{`\alpha\beta`, []token.Token{
			{Kind: token.Letter, Char: 'α'},
			{Kind: token.Letter, Char: 'β'},
		}},
		{`x+y`, []token.Token{
			{Kind: token.Letter, Char: 'x'},
			{Kind: token.Operator, Op: ops.PlusSign},
			{Kind: token.Letter, Char: 'y'},
		}},
		{`\ 1`, []token.Token{
			{Kind: token.Space, Text: "1"},
			{Kind: token.Number, Text: "1"},
		}},
	}

	for _, c := range cases {
		l := New(c.input)
		for i, want := range c.want {
			got := l.Next(false)
			if got != want {
				t.Errorf("%q: token %d = %+v, want %+v", c.input, i, got, want)
			}
		}
	}
}
