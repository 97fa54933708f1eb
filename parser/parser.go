// Package parser implements the recursive-descent parser: it
// consumes token.Token values from a lexer.Lexer, resolving TeX's
// infix rules for `_`, `^`, `'`, stretchy fence matching, environment
// bodies, and the post-parse text transforms, allocating every node it
// builds into an arena.Arena[ast.Node] and every synthesized
// identifier into an arena.Buffer.
package parser

import (
	"strings"

	"github.com/tmke8/latex2mathmlcore/arena"
	"github.com/tmke8/latex2mathmlcore/ast"
	"github.com/tmke8/latex2mathmlcore/attribute"
	"github.com/tmke8/latex2mathmlcore/lexer"
	"github.com/tmke8/latex2mathmlcore/ops"
	"github.com/tmke8/latex2mathmlcore/token"
)

// Parser holds the lexer, its one-token lookahead, and the arena and
// buffer the parse allocates into. Construction primes peek with the
// first real token by discarding the zero-value placeholder token.
type Parser struct {
	lex   *lexer.Lexer
	peek  token.Token
	Arena *ast.Arena
	Buf   *arena.Buffer
}

// New returns a Parser ready to parse input. The returned Parser owns
// a fresh Arena and Buffer; both are reachable afterwards through the
// Arena and Buf fields so the caller can pass them to mathml.Emit.
func New(input string) *Parser {
	p := &Parser{
		lex:   lexer.New(input),
		Arena: arena.New[ast.Node](),
		Buf:   arena.NewBuffer(),
	}
	p.nextToken() // discard the zero-value placeholder
	return p
}

func (p *Parser) nextToken() token.Token {
	next := p.lex.Next(p.peek.AcceptsDigit())
	prev := p.peek
	p.peek = next
	return prev
}

func (p *Parser) errAt(kind ErrorKind) *LatexError {
	return &LatexError{Offset: p.lex.Cursor(), Kind: kind}
}

// Parse consumes the input to EOF and returns the root node: a
// PseudoRow over every top-level node.
func (p *Parser) Parse() (arena.NodeRef, error) {
	var bld arena.NodeListBuilder[ast.Node]
	cur := p.nextToken()
	for cur.Kind != token.EOF {
		node, err := p.parseNode(cur)
		if err != nil {
			return 0, err
		}
		bld.PushRef(p.Arena, node)
		cur = p.nextToken()
	}
	return p.Arena.Push(ast.Node{Kind: ast.PseudoRow, List: bld.Build()}), nil
}

// parseNode parses a single node, then attaches any trailing
// sub/superscripts and primes via getBounds.
func (p *Parser) parseNode(cur token.Token) (arena.NodeRef, error) {
	left, err := p.parseSingleNode(cur)
	if err != nil {
		return 0, err
	}
	sub, sup, err := p.getBounds()
	if err != nil {
		return 0, err
	}
	switch {
	case sub != nil && sup != nil:
		return p.Arena.Push(ast.Node{Kind: ast.SubSup, Base: left, Sub: *sub, Sup: *sup}), nil
	case sub != nil:
		return p.Arena.Push(ast.Node{Kind: ast.Subscript, Base: left, Sub: *sub}), nil
	case sup != nil:
		return p.Arena.Push(ast.Node{Kind: ast.Superscript, Base: left, Sup: *sup}), nil
	default:
		return left, nil
	}
}

func (p *Parser) parseToken() (arena.NodeRef, error) {
	return p.parseNode(p.nextToken())
}

func (p *Parser) parseSingleToken() (arena.NodeRef, error) {
	return p.parseSingleNode(p.nextToken())
}

func (p *Parser) push(n ast.Node) arena.NodeRef {
	return p.Arena.Push(n)
}

// parseSingleNode reads the node immediately following cur without
// considering whether an infix `_`, `^`, or `'` follows; parseNode is
// the entry point that adds that consideration on top.
func (p *Parser) parseSingleNode(cur token.Token) (arena.NodeRef, error) {
	switch cur.Kind {
	case token.Number:
		return p.push(ast.Node{Kind: ast.Number, Str: cur.Text}), nil

	case token.NumberWithDot, token.NumberWithComma:
		var bld arena.NodeListBuilder[ast.Node]
		bld.Push(p.Arena, ast.Node{Kind: ast.Number, Str: cur.Text})
		sep := ops.FullStop
		if cur.Kind == token.NumberWithComma {
			sep = ops.Comma
		}
		bld.Push(p.Arena, ast.Node{Kind: ast.Operator, Op: sep})
		return p.push(ast.Node{Kind: ast.PseudoRow, List: bld.Build()}), nil

	case token.Letter:
		return p.push(ast.Node{Kind: ast.SingleLetterIdent, Char: cur.Char}), nil

	case token.NormalLetter:
		v := attribute.MathVariantNormal
		return p.push(ast.Node{Kind: ast.SingleLetterIdent, Char: cur.Char, Variant: &v}), nil

	case token.Operator:
		return p.push(ast.Node{Kind: ast.Operator, Op: cur.Op}), nil

	case token.OpGreaterThan:
		return p.push(ast.Node{Kind: ast.OpGreaterThan}), nil

	case token.OpLessThan:
		return p.push(ast.Node{Kind: ast.OpLessThan}), nil

	case token.Ampersand:
		return p.push(ast.Node{Kind: ast.ColumnSeparator}), nil

	case token.NewLine:
		return p.push(ast.Node{Kind: ast.RowSeparator}), nil

	case token.Function:
		ref := p.Buf.PushString(cur.Text)
		return p.push(ast.Node{Kind: ast.MultiLetterIdent, StrRef: ref}), nil

	case token.Space:
		return p.push(ast.Node{Kind: ast.Space, Str: cur.Text}), nil

	case token.NonBreakingSpace:
		return p.push(ast.Node{Kind: ast.Text, Str: " "}), nil

	case token.Mathstrut:
		return p.push(ast.Node{Kind: ast.Mathstrut}), nil

	case token.Sqrt:
		return p.parseSqrt()

	case token.Frac, token.Binom:
		return p.parseFracOrBinom(cur)

	case token.Genfrac:
		return p.parseGenfrac()

	case token.Over, token.Under:
		target, err := p.parseToken()
		if err != nil {
			return 0, err
		}
		if cur.Kind == token.Over {
			return p.push(ast.Node{Kind: ast.OverOp, Op: cur.Op, Accent: attribute.AccentTrue, Target: target}), nil
		}
		return p.push(ast.Node{Kind: ast.UnderOp, Op: cur.Op, Accent: attribute.AccentTrue, Target: target}), nil

	case token.Overset, token.Underset:
		symbol, err := p.parseToken()
		if err != nil {
			return 0, err
		}
		target, err := p.parseToken()
		if err != nil {
			return 0, err
		}
		if cur.Kind == token.Overset {
			return p.push(ast.Node{Kind: ast.Overset, Symbol: symbol, Target: target}), nil
		}
		return p.push(ast.Node{Kind: ast.Underset, Symbol: symbol, Target: target}), nil

	case token.Overbrace, token.Underbrace:
		return p.parseOverUnderBrace(cur)

	case token.BigOp:
		return p.parseBigOp(cur)

	case token.Lim:
		return p.parseLim(cur)

	case token.Slashed:
		p.nextToken() // optimistically skip the opening brace
		node, err := p.parseToken()
		if err != nil {
			return 0, err
		}
		p.nextToken() // optimistically skip the closing brace
		return p.push(ast.Node{Kind: ast.Slashed, Child: node}), nil

	case token.Not:
		return p.parseNot(cur)

	case token.NormalVariant:
		return p.parseNormalVariant()

	case token.Style:
		return p.parseTransform(cur.Style)

	case token.Integral:
		return p.parseIntegral(cur)

	case token.Colon:
		return p.parseColon()

	case token.GroupBegin:
		bld, err := p.parseGroup(token.GroupEnd)
		if err != nil {
			return 0, err
		}
		p.nextToken() // discard the closing brace
		return squeeze(p.Arena, bld, nil), nil

	case token.Paren:
		return p.push(ast.Node{Kind: ast.Operator, Op: cur.Op, OpAttr: attribute.OpAttrStretchyFalse}), nil

	case token.SquareBracketClose:
		return p.push(ast.Node{Kind: ast.Operator, Op: ops.RightSquareBracket, OpAttr: attribute.OpAttrStretchyFalse}), nil

	case token.Left:
		return p.parseLeft()

	case token.Middle:
		return p.parseMiddle(cur)

	case token.Big:
		return p.parseBig(cur)

	case token.Begin:
		return p.parseEnvironment()

	case token.OperatorName:
		return p.parseOperatorName()

	case token.Text:
		if err := p.checkLBrace(); err != nil {
			return 0, err
		}
		text, err := p.parseTextGroup()
		if err != nil {
			return 0, err
		}
		return p.push(ast.Node{Kind: ast.Text, Str: text}), nil

	case token.DisplayStyleCmd:
		// A style command grabs everything up to the end of the
		// enclosing group; the GroupEnd stays unconsumed so the group
		// that contains the command still sees its own closing brace.
		bld, err := p.parseGroup(token.GroupEnd)
		if err != nil {
			return 0, err
		}
		s := cur.StyleAttr
		return p.push(ast.Node{Kind: ast.Row, List: bld.Build(), Style: &s}), nil

	case token.UnknownCommand:
		return 0, &LatexError{Offset: p.lex.Cursor(), Kind: UnknownCommand, Name: cur.Text}

	case token.Circumflex, token.Prime:
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: CannotBeUsedHere,
			Got: describe(cur), CorrectPlace: "after an identifier or operator",
		}

	case token.Underscore:
		sub, err := p.parseSingleToken()
		if err != nil {
			return 0, err
		}
		base, err := p.parseSingleToken()
		if err != nil {
			return 0, err
		}
		return p.push(ast.Node{Kind: ast.Multiscript, Base: base, Sub: sub}), nil

	case token.Limits:
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: CannotBeUsedHere,
			Got: describe(cur), CorrectPlace: `after \int, \sum, ...`,
		}

	case token.EOF:
		return 0, p.errAt(UnexpectedEOF)

	case token.End, token.Right, token.GroupEnd:
		return 0, &LatexError{Offset: p.lex.Cursor(), Kind: UnexpectedClose, Got: describe(cur)}

	default:
		return 0, p.errAt(UnexpectedEOF)
	}
}

func (p *Parser) parseSqrt() (arena.NodeRef, error) {
	next := p.nextToken()
	if next.Kind == token.Paren && next.Op == ops.LeftSquareBracket {
		degree, err := p.parseGroup(token.SquareBracketClose)
		if err != nil {
			return 0, err
		}
		p.nextToken() // discard the closing bracket
		content, err := p.parseToken()
		if err != nil {
			return 0, err
		}
		return p.push(ast.Node{Kind: ast.Root, Index: squeeze(p.Arena, degree, nil), Child: content}), nil
	}
	content, err := p.parseNode(next)
	if err != nil {
		return 0, err
	}
	return p.push(ast.Node{Kind: ast.Sqrt, Child: content}), nil
}

func (p *Parser) parseFracOrBinom(cur token.Token) (arena.NodeRef, error) {
	num, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	den, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	fracAttr := attribute.FracAttrFromDisplayStyle(cur.DisplayStyle)
	if cur.Kind == token.Binom {
		inner := p.push(ast.Node{Kind: ast.Frac, Num: num, Den: den, LineThickness: &ast.LineThickness{Zero: true}, FracAttr: fracAttr})
		return p.push(ast.Node{Kind: ast.Fenced, Open: ops.LeftParenthesis, Close: ops.RightParenthesis, Content: inner}), nil
	}
	return p.push(ast.Node{Kind: ast.Frac, Num: num, Den: den, FracAttr: fracAttr}), nil
}

// asOpOrEmpty reads a genfrac delimiter group back out of its parsed
// node: a bare operator is used as the delimiter, while an empty group
// or a literal `.` means "no delimiter on this side", matching
// \left./\right..
func (p *Parser) asOpOrEmpty(ref arena.NodeRef) (ops.Op, bool) {
	n := p.Arena.Get(ref)
	switch {
	case n.Kind == ast.Operator && n.Op == ops.FullStop:
		return ops.NULL, true
	case n.Kind == ast.Operator:
		return n.Op, true
	case n.Kind == ast.Row && n.List.IsEmpty():
		return ops.NULL, true
	default:
		return 0, false
	}
}

func (p *Parser) parseGenfrac() (arena.NodeRef, error) {
	openRef, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	open, ok := p.asOpOrEmpty(openRef)
	if !ok {
		return 0, p.errAt(UnexpectedEOF)
	}
	closeRef, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	closeOp, ok := p.asOpOrEmpty(closeRef)
	if !ok {
		return 0, p.errAt(UnexpectedEOF)
	}
	if err := p.checkLBrace(); err != nil {
		return 0, err
	}
	thicknessText, err := p.parseTextGroup()
	if err != nil {
		return 0, err
	}
	var thickness *ast.LineThickness
	switch strings.TrimSpace(thicknessText) {
	case "":
		thickness = nil
	case "0pt":
		thickness = &ast.LineThickness{Zero: true}
	default:
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: UnexpectedToken,
			Expected: `"" or "0pt"`, Got: thicknessText,
		}
	}
	styleRef, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	style, err := p.genfracStyle(styleRef)
	if err != nil {
		return 0, err
	}
	num, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	den, err := p.parseToken()
	if err != nil {
		return 0, err
	}
	inner := p.push(ast.Node{Kind: ast.Frac, Num: num, Den: den, LineThickness: thickness})
	return p.push(ast.Node{Kind: ast.Fenced, Open: open, Close: closeOp, Content: inner, Style: style}), nil
}

func (p *Parser) genfracStyle(ref arena.NodeRef) (*attribute.Style, error) {
	n := p.Arena.Get(ref)
	if n.Kind == ast.Row && n.List.IsEmpty() {
		return nil, nil
	}
	if n.Kind != ast.Number {
		return nil, p.errAt(UnexpectedEOF)
	}
	var s attribute.Style
	switch n.Str {
	case "0":
		s = attribute.DisplayStyleStyle
	case "1":
		s = attribute.TextStyleStyle
	case "2":
		s = attribute.ScriptStyleStyle
	case "3":
		s = attribute.ScriptScriptStyleStyle
	default:
		return nil, p.errAt(UnexpectedEOF)
	}
	return &s, nil
}

func (p *Parser) parseOverUnderBrace(cur token.Token) (arena.NodeRef, error) {
	isOver := cur.Kind == token.Overbrace
	target, err := p.parseSingleToken()
	if err != nil {
		return 0, err
	}
	wantsExplicit := (isOver && p.peek.Kind == token.Circumflex) || (!isOver && p.peek.Kind == token.Underscore)
	if !wantsExplicit {
		symbol := p.push(ast.Node{Kind: ast.Operator, Op: cur.Op})
		if isOver {
			return p.push(ast.Node{Kind: ast.Overset, Symbol: symbol, Target: target}), nil
		}
		return p.push(ast.Node{Kind: ast.Underset, Symbol: symbol, Target: target}), nil
	}
	p.nextToken() // discard the circumflex or underscore
	expl, err := p.parseSingleToken()
	if err != nil {
		return 0, err
	}
	op := p.push(ast.Node{Kind: ast.Operator, Op: cur.Op})
	if isOver {
		inner := p.push(ast.Node{Kind: ast.Overset, Symbol: expl, Target: op})
		return p.push(ast.Node{Kind: ast.Overset, Symbol: inner, Target: target}), nil
	}
	inner := p.push(ast.Node{Kind: ast.Underset, Symbol: expl, Target: op})
	return p.push(ast.Node{Kind: ast.Underset, Symbol: inner, Target: target}), nil
}

func (p *Parser) parseBigOp(cur token.Token) (arena.NodeRef, error) {
	var targetNode ast.Node
	if p.peek.Kind == token.Limits {
		p.nextToken()
		targetNode = ast.Node{Kind: ast.Operator, Op: cur.Op, OpAttr: attribute.OpAttrNoMovableLimits}
	} else {
		targetNode = ast.Node{Kind: ast.Operator, Op: cur.Op}
	}
	target := p.push(targetNode)
	under, over, err := p.getBounds()
	if err != nil {
		return 0, err
	}
	switch {
	case under != nil && over != nil:
		return p.push(ast.Node{Kind: ast.UnderOver, Target: target, Under: *under, Over: *over}), nil
	case under != nil:
		return p.push(ast.Node{Kind: ast.Underset, Target: target, Symbol: *under}), nil
	case over != nil:
		return p.push(ast.Node{Kind: ast.Overset, Target: target, Symbol: *over}), nil
	default:
		return p.push(ast.Node{Kind: ast.Operator, Op: cur.Op}), nil
	}
}

func (p *Parser) parseLim(cur token.Token) (arena.NodeRef, error) {
	ref := p.Buf.PushString(cur.Text)
	lim := p.push(ast.Node{Kind: ast.MultiLetterIdent, StrRef: ref})
	if p.peek.Kind != token.Underscore {
		return lim, nil
	}
	p.nextToken() // discard the underscore
	under, err := p.parseSingleToken()
	if err != nil {
		return 0, err
	}
	return p.push(ast.Node{Kind: ast.Underset, Target: lim, Symbol: under}), nil
}

func (p *Parser) parseNot(cur token.Token) (arena.NodeRef, error) {
	switch p.peek.Kind {
	case token.Operator:
		opTok := p.nextToken()
		if negated, ok := ops.Negated(opTok.Op); ok {
			return p.push(ast.Node{Kind: ast.Operator, Op: negated}), nil
		}
		// No canonical negated form; the operator passes through
		// unchanged rather than failing the conversion.
		return p.push(ast.Node{Kind: ast.Operator, Op: opTok.Op}), nil
	case token.OpLessThan:
		p.nextToken()
		return p.push(ast.Node{Kind: ast.Operator, Op: ops.NotLessThan}), nil
	case token.OpGreaterThan:
		p.nextToken()
		return p.push(ast.Node{Kind: ast.Operator, Op: ops.NotGreaterThan}), nil
	case token.Letter, token.NormalLetter:
		letterTok := p.nextToken()
		ref := p.Buf.Extend([]rune{letterTok.Char, '̸'})
		return p.push(ast.Node{Kind: ast.MultiLetterIdent, StrRef: ref}), nil
	default:
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: CannotBeUsedHere,
			Got: describe(cur), CorrectPlace: "before supported operators",
		}
	}
}

func (p *Parser) parseNormalVariant() (arena.NodeRef, error) {
	ref, err := p.parseSingleToken()
	if err != nil {
		return 0, err
	}
	ref = p.mergeIfRow(ref)
	ast.SetNormalVariant(p.Arena, ref)
	return ref, nil
}

// mergeIfRow runs single-letter fusion over ref when it is a
// Row, unwrapping the Row entirely when the fused list collapses to a
// single node, the same way squeeze unwraps a singleton group.
func (p *Parser) mergeIfRow(ref arena.NodeRef) arena.NodeRef {
	n := p.Arena.GetPtr(ref)
	if n.Kind != ast.Row {
		return ref
	}
	merged := ast.MergeSingleLetters(p.Arena, p.Buf, n.List)
	if sole, ok := merged.Singleton(); ok {
		return sole
	}
	n.List = merged
	return ref
}

// parseTransform implements \mathbf{...} and the other font
// transforms: it rewrites every letter under the parsed node, then, if
// that node is a Row, merges any resulting run of consecutive
// single-letter identifiers into one MultiLetterIdent.
func (p *Parser) parseTransform(tf attribute.TextTransform) (arena.NodeRef, error) {
	ref, err := p.parseSingleToken()
	if err != nil {
		return 0, err
	}
	ast.TransformLetters(p.Arena, ref, tf)
	return p.mergeIfRow(ref), nil
}

func (p *Parser) parseIntegral(cur token.Token) (arena.NodeRef, error) {
	if p.peek.Kind == token.Limits {
		p.nextToken()
		target := p.push(ast.Node{Kind: ast.Operator, Op: cur.Op})
		under, over, err := p.getBounds()
		if err != nil {
			return 0, err
		}
		switch {
		case under != nil && over != nil:
			return p.push(ast.Node{Kind: ast.UnderOver, Target: target, Under: *under, Over: *over}), nil
		case under != nil:
			return p.push(ast.Node{Kind: ast.Underset, Target: target, Symbol: *under}), nil
		case over != nil:
			return p.push(ast.Node{Kind: ast.Overset, Target: target, Symbol: *over}), nil
		default:
			return p.push(ast.Node{Kind: ast.Operator, Op: cur.Op}), nil
		}
	}
	target := p.push(ast.Node{Kind: ast.Operator, Op: cur.Op})
	sub, sup, err := p.getBounds()
	if err != nil {
		return 0, err
	}
	switch {
	case sub != nil && sup != nil:
		return p.push(ast.Node{Kind: ast.SubSup, Base: target, Sub: *sub, Sup: *sup}), nil
	case sub != nil:
		return p.push(ast.Node{Kind: ast.Subscript, Base: target, Sub: *sub}), nil
	case sup != nil:
		return p.push(ast.Node{Kind: ast.Superscript, Base: target, Sup: *sup}), nil
	default:
		return p.push(ast.Node{Kind: ast.Operator, Op: cur.Op}), nil
	}
}

func (p *Parser) parseColon() (arena.NodeRef, error) {
	if p.peek.Kind == token.Operator && (p.peek.Op == ops.EqualsSign || p.peek.Op == ops.IdenticalTo) {
		opTok := p.nextToken()
		var bld arena.NodeListBuilder[ast.Node]
		bld.Push(p.Arena, ast.Node{
			Kind: ast.OperatorWithSpacing, Op: ops.Colon,
			SpacingLeft: attribute.MathSpacingFourMu, SpacingRight: attribute.MathSpacingZero,
		})
		bld.Push(p.Arena, ast.Node{
			Kind: ast.OperatorWithSpacing, Op: opTok.Op,
			SpacingLeft: attribute.MathSpacingZero,
		})
		return p.push(ast.Node{Kind: ast.PseudoRow, List: bld.Build()}), nil
	}
	return p.push(ast.Node{
		Kind: ast.OperatorWithSpacing, Op: ops.Colon,
		SpacingLeft: attribute.MathSpacingFourMu, SpacingRight: attribute.MathSpacingFourMu,
	}), nil
}

func (p *Parser) parseLeft() (arena.NodeRef, error) {
	open, err := p.expectFenceParen(token.Left)
	if err != nil {
		return 0, err
	}
	content, err := p.parseGroup(token.Right)
	if err != nil {
		return 0, err
	}
	p.nextToken() // discard \right
	closeOp, err := p.expectFenceParen(token.Right)
	if err != nil {
		return 0, err
	}
	return p.push(ast.Node{Kind: ast.Fenced, Open: open, Close: closeOp, Content: squeeze(p.Arena, content, nil)}), nil
}

// expectFenceParen reads the token after \left or \right and resolves
// it to a fence operator, NULL for a suppressing `.`, or
// MissingParenthesis. location names which of the two
// commands is asking, for the error message.
func (p *Parser) expectFenceParen(location token.Kind) (ops.Op, error) {
	tok := p.nextToken()
	switch {
	case tok.Kind == token.Paren:
		return tok.Op, nil
	case tok.Kind == token.SquareBracketClose:
		return ops.RightSquareBracket, nil
	case tok.Kind == token.Operator && tok.Op == ops.FullStop:
		return ops.NULL, nil
	default:
		name := `\left`
		if location == token.Right {
			name = `\right`
		}
		return 0, &LatexError{Offset: p.lex.Cursor(), Kind: MissingParenthesis, Name: name, Got: describe(tok)}
	}
}

func (p *Parser) parseMiddle(cur token.Token) (arena.NodeRef, error) {
	tok := p.nextToken()
	switch {
	case tok.Kind == token.Operator || tok.Kind == token.Paren:
		return p.push(ast.Node{Kind: ast.Operator, Op: tok.Op, OpAttr: attribute.OpAttrStretchyTrue}), nil
	case tok.Kind == token.SquareBracketClose:
		return p.push(ast.Node{Kind: ast.Operator, Op: ops.RightSquareBracket, OpAttr: attribute.OpAttrStretchyTrue}), nil
	default:
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: UnexpectedToken,
			Expected: "a delimiter", Got: describe(tok),
		}
	}
}

func (p *Parser) parseBig(cur token.Token) (arena.NodeRef, error) {
	tok := p.nextToken()
	switch {
	case tok.Kind == token.Paren:
		return p.push(ast.Node{Kind: ast.SizedParen, Size: cur.Text, Op: tok.Op}), nil
	case tok.Kind == token.SquareBracketClose:
		return p.push(ast.Node{Kind: ast.SizedParen, Size: cur.Text, Op: ops.RightSquareBracket}), nil
	default:
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: UnexpectedToken,
			Expected: "a delimiter", Got: describe(tok),
		}
	}
}

// matrix environment name -> (open, close) fence for the variants
// wrapped in a Fenced.
var matrixFences = map[string][2]ops.Op{
	"pmatrix": {ops.LeftParenthesis, ops.RightParenthesis},
	"bmatrix": {ops.LeftSquareBracket, ops.RightSquareBracket},
	"vmatrix": {ops.VerticalLine, ops.VerticalLine},
}

func (p *Parser) parseEnvironment() (arena.NodeRef, error) {
	if err := p.checkLBrace(); err != nil {
		return 0, err
	}
	name, err := p.parseTextGroup()
	if err != nil {
		return 0, err
	}

	var node ast.Node
	switch name {
	case "cases":
		content, err := p.parseTable(attribute.AlignLeft)
		if err != nil {
			return 0, err
		}
		node = ast.Node{Kind: ast.Fenced, Open: ops.LeftCurlyBracket, Close: ops.NULL, Content: p.push(content)}
	case "matrix":
		node, err = p.parseTable(attribute.AlignCenter)
		if err != nil {
			return 0, err
		}
	case "align", "align*", "aligned":
		node, err = p.parseTable(attribute.AlignAlternating)
		if err != nil {
			return 0, err
		}
	case "pmatrix", "bmatrix", "vmatrix":
		content, err := p.parseTable(attribute.AlignCenter)
		if err != nil {
			return 0, err
		}
		fence := matrixFences[name]
		node = ast.Node{Kind: ast.Fenced, Open: fence[0], Close: fence[1], Content: p.push(content)}
	default:
		return 0, &LatexError{Offset: p.lex.Cursor(), Kind: UnknownEnvironment, Name: name}
	}

	if err := p.checkLBrace(); err != nil {
		return 0, err
	}
	endName, err := p.parseTextGroup()
	if err != nil {
		return 0, err
	}
	if endName != name {
		return 0, &LatexError{Offset: p.lex.Cursor(), Kind: MismatchedEnvironment, Expected: name, Got: endName}
	}
	return p.push(node), nil
}

func (p *Parser) parseOperatorName() (arena.NodeRef, error) {
	ref, err := p.parseSingleToken()
	if err != nil {
		return 0, err
	}
	chars, ok := ast.ExtractLetters(p.Arena, p.Buf, ref)
	if !ok {
		return 0, &LatexError{Offset: p.lex.Cursor(), Kind: ExpectedText, Context: `\operatorname`}
	}
	strRef := p.Buf.Extend(chars)
	return p.push(ast.Node{Kind: ast.MultiLetterIdent, StrRef: strRef}), nil
}

// parseGroup parses the contents of a group that can contain any
// expression, stopping before endKind without consuming it.
func (p *Parser) parseGroup(endKind token.Kind) (arena.NodeListBuilder[ast.Node], error) {
	var bld arena.NodeListBuilder[ast.Node]
	for p.peek.Kind != endKind {
		tok := p.nextToken()
		if tok.Kind == token.EOF {
			return bld, &LatexError{Offset: p.lex.Cursor(), Kind: UnclosedGroup, Expected: describe(token.Token{Kind: endKind})}
		}
		node, err := p.parseNode(tok)
		if err != nil {
			return bld, err
		}
		bld.PushRef(p.Arena, node)
	}
	return bld, nil
}

// parseTextGroup parses a group that can only contain text, used for
// \text{...} bodies and environment names.
func (p *Parser) parseTextGroup() (string, error) {
	text, ok := p.lex.ReadTextContent()
	p.nextToken() // discard the opening brace (still held as peek)
	if !ok {
		return "", &LatexError{Offset: p.lex.Cursor(), Kind: UnclosedGroup, Expected: "}"}
	}
	return text, nil
}

func (p *Parser) parseTable(align attribute.Align) (ast.Node, error) {
	content, err := p.parseGroup(token.End)
	if err != nil {
		return ast.Node{}, err
	}
	p.nextToken() // discard \end
	return ast.Node{Kind: ast.Table, List: content.Build(), Align: align}, nil
}

func (p *Parser) checkLBrace() error {
	if p.peek.Kind != token.GroupBegin {
		tok := p.nextToken()
		return &LatexError{Offset: p.lex.Cursor(), Kind: UnexpectedToken, Expected: "{", Got: describe(tok)}
	}
	return nil
}

// getBounds parses the optional `_`/`^`/prime suffix of a node,
// returning the resolved sub and sup references (nil when absent).
func (p *Parser) getBounds() (sub, sup *arena.NodeRef, err error) {
	var primes arena.NodeListBuilder[ast.Node]
	for p.peek.Kind == token.Prime {
		p.nextToken()
		primes.Push(p.Arena, ast.Node{Kind: ast.Operator, Op: ops.Prime})
	}

	firstUnderscore := p.peek.Kind == token.Underscore
	var subRef, supRef *arena.NodeRef

	if firstUnderscore || p.peek.Kind == token.Circumflex {
		firstBoundRef, err := p.getSubOrSup()
		if err != nil {
			return nil, nil, err
		}
		firstBound := firstBoundRef

		secondUnderscore := p.peek.Kind == token.Underscore
		secondCircumflex := p.peek.Kind == token.Circumflex

		if (!firstUnderscore && secondCircumflex) || (firstUnderscore && secondUnderscore) {
			tok := p.nextToken()
			return nil, nil, &LatexError{
				Offset: p.lex.Cursor(), Kind: CannotBeUsedHere,
				Got: describe(tok), CorrectPlace: "after an identifier or operator",
			}
		}

		if (firstUnderscore && secondCircumflex) || (!firstUnderscore && secondUnderscore) {
			secondBound, err := p.getSubOrSup()
			if err != nil {
				return nil, nil, err
			}
			if firstUnderscore {
				subRef, supRef = &firstBound, &secondBound
			} else {
				subRef, supRef = &secondBound, &firstBound
			}
		} else if firstUnderscore {
			subRef = &firstBound
		} else {
			supRef = &firstBound
		}
	}

	if !primes.Build().IsEmpty() {
		if supRef != nil {
			primes.PushRef(p.Arena, *supRef)
		}
		merged := squeeze(p.Arena, primes, nil)
		supRef = &merged
	}

	return subRef, supRef, nil
}

// getSubOrSup parses the node after a `_` or `^` token, rejecting a
// nested `_`, `^`, or `'` immediately after.
func (p *Parser) getSubOrSup() (arena.NodeRef, error) {
	p.nextToken() // discard the underscore or circumflex
	next := p.nextToken()
	if next.Kind == token.Underscore || next.Kind == token.Circumflex || next.Kind == token.Prime {
		return 0, &LatexError{
			Offset: p.lex.Cursor(), Kind: CannotBeUsedHere,
			Got: describe(next), CorrectPlace: "after an identifier or operator",
		}
	}
	return p.parseSingleNode(next)
}

// squeeze collapses a builder to its sole element when it holds
// exactly one, else wraps the accumulated list in a Row carrying
// style. A singleton always wins over a supplied style.
func squeeze(a *ast.Arena, bld arena.NodeListBuilder[ast.Node], style *attribute.Style) arena.NodeRef {
	list := bld.Build()
	if ref, ok := list.Singleton(); ok {
		return ref
	}
	return a.Push(ast.Node{Kind: ast.Row, List: list, Style: style})
}
