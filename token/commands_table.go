package token

import (
	"github.com/tmke8/latex2mathmlcore/attribute"
	"github.com/tmke8/latex2mathmlcore/ops"
)

// commandTable is a pure map from control-sequence name to Token.
// Built once at package init and never mutated afterwards: the one
// process-wide immutable lookup shared by every conversion.
var commandTable = buildCommandTable()

func buildCommandTable() map[string]Token {
	m := make(map[string]Token, 512)

	// Font-transform commands.
	m["mathrm"] = Token{Kind: NormalVariant}
	m["textit"] = style(attribute.TransformItalic)
	m["mathit"] = style(attribute.TransformItalic)
	m["mathcal"] = style(attribute.TransformScript)
	m["textbf"] = style(attribute.TransformBold)
	m["mathbf"] = style(attribute.TransformBold)
	m["bm"] = style(attribute.TransformBoldItalic)
	m["symbf"] = style(attribute.TransformBoldItalic)
	m["mathbb"] = style(attribute.TransformDoubleStruck)
	m["mathfrak"] = style(attribute.TransformFraktur)
	m["mathscr"] = style(attribute.TransformScript)
	m["mathsf"] = style(attribute.TransformSansSerif)
	m["texttt"] = style(attribute.TransformMonospace)
	m["boldsymbol"] = style(attribute.TransformBoldItalic)

	// Structural.
	m["mathstrut"] = Token{Kind: Mathstrut}
	m["text"] = Token{Kind: Text}
	m["sqrt"] = Token{Kind: Sqrt}
	m["frac"] = frac(nil)
	m["tfrac"] = frac(dsPtr(attribute.DisplayStyleFalse))
	m["dfrac"] = frac(dsPtr(attribute.DisplayStyleTrue))
	m["left"] = Token{Kind: Left}
	m["right"] = Token{Kind: Right}
	m["middle"] = Token{Kind: Middle}
	m["begin"] = Token{Kind: Begin}
	m["end"] = Token{Kind: End}
	m[`\`] = Token{Kind: NewLine}
	m["binom"] = binom(nil)
	m["tbinom"] = binom(dsPtr(attribute.DisplayStyleFalse))
	m["dbinom"] = binom(dsPtr(attribute.DisplayStyleTrue))
	m["overset"] = Token{Kind: Overset}
	m["underset"] = Token{Kind: Underset}
	m["overbrace"] = Token{Kind: Overbrace, Op: '⏞'}
	m["underbrace"] = Token{Kind: Underbrace, Op: '⏟'}
	m["overparen"] = Token{Kind: Overbrace, Op: '⏜'}
	m["underparen"] = Token{Kind: Underbrace, Op: '⏝'}
	m["overbracket"] = Token{Kind: Overbrace, Op: '⎴'}
	m["underbracket"] = Token{Kind: Underbrace, Op: '⎵'}
	m["genfrac"] = Token{Kind: Genfrac}
	m["limits"] = Token{Kind: Limits}
	m["not"] = Token{Kind: Not}
	m["displaystyle"] = displayStyle(attribute.DisplayStyleStyle)
	m["textstyle"] = displayStyle(attribute.TextStyleStyle)
	m["scriptstyle"] = displayStyle(attribute.ScriptStyleStyle)
	m["scriptscriptstyle"] = displayStyle(attribute.ScriptScriptStyleStyle)

	// Spacing.
	m["!"] = space("-0.1667")
	m[","] = space("0.1667")
	m[":"] = space("0.2222")
	m[";"] = space("0.2778")
	m[" "] = space("1")
	m["quad"] = space("1")
	m["qquad"] = space("2")

	// Delimiters.
	m["langle"] = paren('〈')
	m["rangle"] = paren('〉')
	m["{"] = paren(ops.LeftCurlyBracket)
	m["}"] = paren(ops.RightCurlyBracket)
	m["lceil"] = paren('⌈')
	m["rceil"] = paren('⌉')
	m["lfloor"] = paren('⌊')
	m["rfloor"] = paren('⌋')
	m["lgroup"] = paren('⦗')
	m["rgroup"] = paren('⦘')
	m["llbracket"] = paren('⟦')
	m["rrbracket"] = paren('⟧')
	m["|"] = paren('‖')

	// Lim-like.
	m["lim"] = lim("lim")
	m["liminf"] = lim("lim inf")
	m["limsup"] = lim("lim sup")
	m["min"] = lim("min")
	m["max"] = lim("max")
	m["inf"] = lim("inf")
	m["sup"] = lim("sup")

	// Integrals.
	m["int"] = integral('∫')
	m["iint"] = integral('∬')
	m["iiint"] = integral('∭')
	m["oint"] = integral('∮')

	// Accents.
	m["dot"] = over('˙')
	m["ddot"] = over('¨')
	m["bar"] = over('¯')
	m["hat"] = over('^')
	m["check"] = over('ˇ')
	m["breve"] = over('˘')
	m["acute"] = over('´')
	m["grave"] = over('`')
	m["tilde"] = over('~')
	m["vec"] = over('→')
	m["overline"] = over('_')
	m["underline"] = under('_')
	m["widehat"] = over('^')
	m["widetilde"] = over('~')
	m["overrightarrow"] = over('→')
	m["overleftarrow"] = over('←')

	// Big operators.
	m["sum"] = bigOp(ops.Sum)
	m["prod"] = bigOp(ops.Prod)
	m["coprod"] = bigOp('∐')
	m["bigcap"] = bigOp('⋂')
	m["bigcup"] = bigOp('⋃')
	m["bigsqcup"] = bigOp('⨆')
	m["bigvee"] = bigOp('⋁')
	m["bigwedge"] = bigOp('⋀')
	m["bigodot"] = bigOp('⨀')
	m["bitotimes"] = bigOp('⨂')
	m["bigoplus"] = bigOp('⨁')
	m["biguplus"] = bigOp('⨄')

	// Size prefixes.
	m["bigl"] = big("1.2em")
	m["bigr"] = big("1.2em")
	m["Bigl"] = big("1.623em")
	m["Bigr"] = big("1.623em")
	m["biggl"] = big("2.047em")
	m["biggr"] = big("2.047em")
	m["Biggl"] = big("2.470em")
	m["Biggr"] = big("2.470em")

	// Named functions.
	for _, name := range []string{
		"sin", "cos", "tan", "csc", "sec", "cot",
		"arcsin", "arccos", "arctan",
		"sinh", "cosh", "tanh", "coth",
		"exp", "ln", "log", "erf", "erfc", "arg", "ker", "dim", "det",
	} {
		m[name] = fn(name)
	}
	m["wp"] = fn("℘")
	m["operatorname"] = Token{Kind: OperatorName}

	// Greek letters (capitals upright via NormalLetter, lowercase
	// italic via Letter, matching TeX's default shapes).
	greekUpper := map[string]rune{
		"Alpha": 'Α', "Beta": 'Β', "Gamma": 'Γ', "Delta": 'Δ', "Epsilon": 'Ε',
		"Zeta": 'Ζ', "Eta": 'Η', "Theta": 'Θ', "Iota": 'Ι', "Kappa": 'Κ',
		"Lambda": 'Λ', "Mu": 'Μ', "Nu": 'Ν', "Xi": 'Ξ', "Omicron": 'Ο',
		"Pi": 'Π', "Rho": 'Ρ', "Sigma": 'Σ', "Tau": 'Τ', "Upsilon": 'Υ',
		"Phi": 'Φ', "Chi": 'Χ', "Psi": 'Ψ', "Omega": 'Ω',
	}
	for name, r := range greekUpper {
		m[name] = normalLetter(r)
	}
	greekLower := map[string]rune{
		"alpha": 'α', "beta": 'β', "gamma": 'γ', "digamma": 'ϝ', "delta": 'δ',
		"epsilon": 'ϵ', "varepsilon": 'ε', "zeta": 'ζ', "eta": 'η', "theta": 'θ',
		"vartheta": 'ϑ', "iota": 'ι', "kappa": 'κ', "lambda": 'λ', "mu": 'μ',
		"nu": 'ν', "xi": 'ξ', "omicron": 'ο', "pi": 'π', "varpi": 'ϖ',
		"rho": 'ρ', "varrho": 'ϱ', "sigma": 'σ', "varsigma": 'ς', "tau": 'τ',
		"upsilon": 'υ', "phi": 'ϕ', "varphi": 'φ', "chi": 'χ', "psi": 'ψ',
		"omega": 'ω',
	}
	for name, r := range greekLower {
		m[name] = letter(r)
	}

	// Hebrew and other special letters, upright.
	for name, r := range map[string]rune{
		"aleph": 'ℵ', "beth": 'ℶ', "gimel": 'ℷ', "daleth": 'ℸ',
		"A": 'Å', "AE": 'Æ', "DH": 'Ð', "L": 'Ł', "NG": 'Ŋ', "O": 'Ø',
		"OE": 'Œ', "TH": 'Þ',
	} {
		m[name] = normalLetter(r)
	}
	for name, r := range map[string]rune{
		"a": 'å', "ae": 'æ', "dh": 'ð', "dj": 'đ', "l": 'ł', "ng": 'ŋ',
		"o": 'ø', "oe": 'œ', "ss": 'ß', "th": 'þ',
	} {
		m[name] = normalLetter(r)
	}
	m["imath"] = letter('ı')
	m["jmath"] = letter('ȷ')
	m["ell"] = letter('ℓ')
	m["hbar"] = letter('ℏ')
	m["hslash"] = letter('ℏ')
	m["partial"] = letter('∂')
	m["varnothing"] = letter('⌀')

	for name, r := range map[string]rune{
		"infty": '∞', "mho": '℧', "Finv": 'Ⅎ', "Re": 'ℜ', "Im": 'ℑ',
		"complement": '∁', "emptyset": '∅', "therefore": '∴', "because": '∵',
		"Diamond": '◊', "Box": '◻', "triangle": '△', "angle": '∠',
		"dagger": '†', "dag": '†', "Dagger": '‡', "ddag": '‡', "And": '&',
		"eth": 'ð', "S": '§', "P": '¶', "%": '%', "_": '_', "&": '&',
		"#": '#', "$": '$', "copyright": '©', "checkmark": '✓',
		"circledR": 'Ⓡ', "maltese": '✠', "colon": ':',
		"bigtriangleup": '△', "sphericalangle": '∢', "square": '□',
		"lozenge": '◊', "diamondsuit": '♢', "heartsuit": '♡',
		"clubsuit": '♣', "spadesuit": '♠', "Game": '⅁', "flat": '♭',
		"natural": '♮', "sharp": '♯', "pounds": '£', "textyen": '¥',
		"euro": '€', "rupee": '₹', "sun": '☼', "mercury": '☿',
		"venus": '♀', "earth": '♁', "mars": '♂', "jupiter": '♃',
		"saturn": '♄', "uranus": '♅', "neptune": '♆', "astrosun": '☉',
		"ascnode": '☊',
	} {
		m[name] = normalLetter(r)
	}

	// Binary operators, relations, set operators, arrows.
	for name, r := range binaryOperators {
		m[name] = op(ops.Op(r))
	}
	m["times"] = op(ops.Times)
	m["nabla"] = op('∇')
	m["in"] = op(ops.ISIN)
	m["ni"] = op(ops.NI)
	m["notin"] = op(ops.NotIn)
	m["lt"] = Token{Kind: OpLessThan}
	m["gt"] = Token{Kind: OpGreaterThan}
	m["forall"] = op(ops.ForAll)
	m["exists"] = op(ops.Exists)

	m["slashed"] = Token{Kind: Slashed}

	return m
}

// binaryOperators collects the large flat set of \command -> single
// operator code point mappings that don't need special Token kinds.
var binaryOperators = map[string]rune{
	"oplus": '⊕', "ominus": '⊖', "otimes": '⊗', "oslash": '⊘',
	"odot": '⊙', "bigcirc": '◯', "amalg": '⨿', "pm": '±', "mp": '∓',
	"cdot": '·', "dots": '…', "cdots": '⋯', "vdots": '⋮', "ldots": '…',
	"ddots": '⋱', "circ": '∘', "bullet": '∙', "star": '⋆', "div": '÷',
	"lnot": '¬', "neg": '¬', "land": '∧', "lor": '∨', "sim": '∼',
	"simeq": '≃', "nsim": '≁', "cong": '≅', "approx": '≈', "ne": '≠',
	"neq": '≠', "equiv": '≡', "nequiv": '≢', "prec": '≺', "succ": '≻',
	"preceq": '⪯', "succeq": '⪰', "dashv": '⊣', "asymp": '≍', "doteq": '≐',
	"propto": '∝', "barwedge": '⊼', "ltimes": '⋉', "rtimes": '⋊',
	"Join": '⋈', "lhd": '⊲', "rhd": '⊳', "unlhd": '⊴', "unrhd": '⊵',
	"vee": '∨', "uplus": '⊎', "wedge": '∧', "boxdot": '⊡', "boxplus": '⊞',
	"boxminus": '⊟', "boxtimes": '⊠', "boxbox": '⧈', "boxslash": '⧄',
	"boxbslash": '⧅', "Cap": '⋒', "Cup": '⋓', "centerdot": '∙',
	"circledast": '⊛', "circledcirc": '⊚', "circleddash": '⊝',
	"curlyvee": '⋎', "curlywedge": '⋏', "dotplus": '∔', "intercal": '⊺',
	"divideontimes": '⋇', "leftthreetimes": '⋋', "rightthreetimes": '⋌',
	"smallsetminus": '﹨', "triangledown": '▽', "triangleleft": '◁',
	"triangleright": '▷', "vartriangle": '△', "veebar": '⊻', "cap": '∩',
	"cup": '∪', "mid": '∣', "nmid": '∤', "parallel": '∥', "perp": '⊥',
	"nexists": '∄', "leq": '≤', "geq": '≥', "le": '≤', "ge": '≥',
	"ll": '≪', "gg": '≫', "lessapprox": '⪅', "lesssim": '≲',
	"eqslantless": '⪕', "leqslant": '⩽', "leqq": '≦', "geqq": '≧',
	"geqslant": '⩾', "eqslantgtr": '⪖', "gtrsim": '≳', "gtrapprox": '⪆',
	"approxeq": '≊', "lessdot": '⋖', "lll": '⋘', "lessgtr": '≶',
	"lesseqgtr": '⋚', "lesseqqgtr": '⪋', "doteqdot": '≑',
	"risingdotseq": '≓', "leftarrow": '←', "gets": '←', "rightarrow": '→',
	"to": '→', "nleftarrow": '↚', "nrightarrow": '↛', "leftrightarrow": '↔',
	"nleftrightarrow": '↮', "longleftarrow": '⟵', "longrightarrow": '⟶',
	"longleftrightarrow": '⟷', "Leftarrow": '⇐', "Rightarrow": '⇒',
	"nLeftarrow": '⇍', "nRightarrow": '⇏', "Leftrightarrow": '⇔',
	"nLeftrightarrow": '⇎', "Longleftarrow": '⟸', "impliedby": '⟸',
	"Longrightarrow": '⟹', "implies": '⟹', "Longleftrightarrow": '⟺',
	"iff": '⟺', "uparrow": '↑', "downarrow": '↓', "updownarrow": '↕',
	"Uparrow": '⇑', "Downarrow": '⇓', "Updownarrow": '⇕', "nearrow": '↗',
	"searrow": '↘', "swarrow": '↙', "nwarrow": '↖', "rightharpoonup": '⇀',
	"rightharpoondown": '⇁', "leftharpoonup": '↼', "leftharpoondown": '↽',
	"upharpoonleft": '↿', "upharpoonright": '↾', "downharpoonleft": '⇃',
	"downharpoonright": '⇂', "rightleftharpoons": '⇌',
	"leftrightharpoons": '⇋', "curvearrowleft": '↶', "circlearrowleft": '↺',
	"Lsh": '↰', "upuparrows": '⇈', "rightrightarrows": '⇉',
	"rightleftarrows": '⇄', "Rrightarrow": '⇛', "rightarrowtail": '↣',
	"looparrowright": '↬', "curvearrowright": '↷', "circlearrowright": '↻',
	"Rsh": '↱', "downdownarrows": '⇊', "leftleftarrows": '⇇',
	"leftrightarrows": '⇆', "Lleftarrow": '⇚', "leftarrowtail": '↢',
	"looparrowleft": '↫', "mapsto": '↦', "longmapsto": '⟼',
	"hookrightarrow": '↪', "hookleftarrow": '↩', "multimap": '⊸',
	"leftrightsquigarrow": '↭', "rightsquigarrow": '⇝', "lightning": '↯',
	"Yleft": '⤙', "Yright": '⤚', "subset": '⊂', "supset": '⊃',
	"subseteq": '⊆', "supseteq": '⊇', "nsubseteq": '⊈',
	"nsupseteq": '⊉', "subsetneq": '⊊', "supsetneq": '⊋',
	"sqsubset": '⊏', "sqsubseteq": '⊑', "sqsupset": '⊐', "sqsupseteq": '⊒',
	"sqcap": '⊓', "sqcup": '⊔', "setminus": '∖', "smile": '⌣',
	"from": '⌢', "wr": '≀', "bot": '⊥', "top": '⊤', "vdash": '⊢',
	"vDash": '⊨', "Vdash": '⊩', "models": '⊨',
}
