package attribute

// TextTransform is the `mi` rewrite applied by font commands such as
// \mathbf, \mathbb, \mathfrak, \mathscr, and friends. Each
// variant is a partial function on code points: letters and digits in
// its domain move to the corresponding Mathematical Alphanumeric
// Symbols plane by a fixed offset, a handful of Greek/irregular
// letters are exceptions mapped individually, and anything else
// passes through unchanged.
type TextTransform int

const (
	TransformNone TextTransform = iota
	TransformBold
	TransformBoldFraktur
	TransformBoldItalic
	TransformBoldSansSerif
	TransformBoldScript
	TransformDoubleStruck
	TransformFraktur
	TransformItalic
	TransformMonospace
	TransformSansSerif
	TransformSansSerifBoldItalic
	TransformSansSerifItalic
	TransformScript
)

type runeRange struct {
	lo, hi rune
	offset rune
}

type exception struct {
	from, to rune
}

func (rr runeRange) contains(c rune) bool { return c >= rr.lo && c <= rr.hi }

// Transform rewrites c according to the transform, or returns c
// unchanged if c is outside the transform's domain.
func (t TextTransform) Transform(c rune) rune {
	tbl, ok := transformTables[t]
	if !ok {
		return c
	}
	for _, r := range tbl.ranges {
		if r.contains(c) {
			return c + r.offset
		}
	}
	for _, e := range tbl.exceptions {
		if e.from == c {
			return e.to
		}
	}
	return c
}

type transformTable struct {
	ranges     []runeRange
	exceptions []exception
}

var transformTables = map[TextTransform]transformTable{
	TransformBoldScript: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D48F},
			{'a', 'z', 0x1D489},
		},
	},
	TransformBoldItalic: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D427},
			{'a', 'z', 0x1D421},
			{'Α', 'Ρ', 0x1D38B},
			{'Σ', 'Ω', 0x1D38B},
			{'α', 'ω', 0x1D385},
		},
		exceptions: []exception{
			{'ϴ', '𝜭'}, {'∇', '𝜵'}, {'∂', '𝝏'}, {'ϵ', '𝝐'}, {'ϑ', '𝝑'},
			{'ϰ', '𝝒'}, {'ϕ', '𝝓'}, {'ϱ', '𝝔'}, {'ϖ', '𝝕'},
		},
	},
	TransformBold: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D3BF},
			{'a', 'z', 0x1D3B9},
			{'Α', 'Ρ', 0x1D317},
			{'Σ', 'Ω', 0x1D317},
			{'α', 'ω', 0x1D311},
			{'Ϝ', 'ϝ', 0x1D3EE},
			{'0', '9', 0x1D79E},
		},
		exceptions: []exception{
			{'ϴ', '𝚹'}, {'∇', '𝛁'}, {'∂', '𝛛'}, {'ϵ', '𝛜'}, {'ϑ', '𝛝'},
			{'ϰ', '𝛞'}, {'ϕ', '𝛟'}, {'ϱ', '𝛠'}, {'ϖ', '𝛡'},
		},
	},
	TransformFraktur: {
		ranges: []runeRange{
			{'A', 'B', 0x1D4C3},
			{'D', 'G', 0x1D4C3},
			{'H', 'I', 0x20C4},
			{'J', 'Q', 0x1D4C3},
			{'S', 'Y', 0x1D4C3},
			{'a', 'z', 0x1D4BD},
		},
		exceptions: []exception{{'C', 'ℭ'}, {'R', 'ℜ'}, {'Z', 'ℨ'}},
	},
	TransformScript: {
		ranges: []runeRange{
			{'C', 'D', 0x1D45B},
			{'E', 'F', 0x20EB},
			{'H', 'I', 0x20C3},
			{'J', 'K', 0x1D45B},
			{'N', 'Q', 0x1D45B},
			{'S', 'Z', 0x1D45B},
			{'a', 'd', 0x1D455},
			{'h', 'n', 0x1D455},
			{'p', 'z', 0x1D455},
		},
		exceptions: []exception{
			{'A', '𝒜'}, {'B', 'ℬ'}, {'G', '𝒢'}, {'L', 'ℒ'}, {'M', 'ℳ'},
			{'R', 'ℛ'}, {'e', 'ℯ'}, {'f', '𝒻'}, {'g', 'ℊ'}, {'o', 'ℴ'},
		},
	},
	TransformMonospace: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D62F},
			{'a', 'z', 0x1D629},
			{'0', '9', 0x1D7C6},
		},
	},
	TransformSansSerif: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D55F},
			{'a', 'z', 0x1D559},
			{'0', '9', 0x1D7B2},
		},
	},
	TransformBoldFraktur: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D52B},
			{'a', 'z', 0x1D525},
		},
	},
	TransformSansSerifBoldItalic: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D5FB},
			{'a', 'z', 0x1D5F5},
			{'Α', 'Ρ', 0x1D3FF},
			{'Σ', 'Ω', 0x1D3FF},
			{'α', 'ω', 0x1D3F9},
		},
		exceptions: []exception{
			{'ϴ', '𝞡'}, {'∇', '𝞩'}, {'∂', '𝟃'}, {'ϵ', '𝟄'}, {'ϑ', '𝟅'},
			{'ϰ', '𝟆'}, {'ϕ', '𝟇'}, {'ϱ', '𝟈'}, {'ϖ', '𝟉'},
		},
	},
	TransformSansSerifItalic: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D5C7},
			{'a', 'z', 0x1D5C1},
		},
	},
	TransformBoldSansSerif: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D593},
			{'a', 'z', 0x1D58D},
			{'Α', 'Ρ', 0x1D3C5},
			{'Σ', 'Ω', 0x1D3C5},
			{'α', 'ω', 0x1D3BF},
			{'0', '9', 0x1D7BC},
		},
		exceptions: []exception{
			{'ϴ', '𝝧'}, {'∇', '𝝯'}, {'∂', '𝞉'}, {'ϵ', '𝞊'}, {'ϑ', '𝞋'},
			{'ϰ', '𝞌'}, {'ϕ', '𝞍'}, {'ϱ', '𝞎'}, {'ϖ', '𝞏'},
		},
	},
	TransformDoubleStruck: {
		ranges: []runeRange{
			{'A', 'B', 0x1D4F7},
			{'D', 'G', 0x1D4F7},
			{'I', 'M', 0x1D4F7},
			{'P', 'Q', 0x20C9},
			{'S', 'Y', 0x1D4F7},
			{'a', 'z', 0x1D4F1},
			{'0', '9', 0x1D7A8},
		},
		exceptions: []exception{{'C', 'ℂ'}, {'H', 'ℍ'}, {'N', 'ℕ'}, {'R', 'ℝ'}, {'Z', 'ℤ'}},
	},
	TransformItalic: {
		ranges: []runeRange{
			{'A', 'Z', 0x1D3F3},
			{'a', 'g', 0x1D3ED},
			{'i', 'z', 0x1D3ED},
			{'Α', 'Ρ', 0x1D351},
			{'Σ', 'Ω', 0x1D351},
			{'α', 'ω', 0x1D34B},
		},
		exceptions: []exception{
			{'h', 'ℎ'}, {'ı', '𝚤'}, {'ȷ', '𝚥'}, {'ϴ', '𝛳'}, {'∇', '𝛻'},
			{'∂', '𝜕'}, {'ϵ', '𝜖'}, {'ϑ', '𝜗'}, {'ϰ', '𝜘'}, {'ϕ', '𝜙'},
			{'ϱ', '𝜚'}, {'ϖ', '𝜛'},
		},
	},
}
