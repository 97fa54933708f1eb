// Package attribute holds the small closed enumerations that become
// literal MathML attribute strings: mathvariant, accent, stretchy and
// movablelimits on <mo>, displaystyle/scriptlevel on <mfrac> and
// styled rows, column alignment in tables, and the two spacing widths
// used by colon fusion.
package attribute

// MathVariant is the `mathvariant` attribute on <mi>.
type MathVariant int

const (
	_ MathVariant = iota
	MathVariantNormal
)

// Attr renders the attribute including its leading space, or "" if
// there is nothing to write.
func (v MathVariant) Attr() string {
	if v == MathVariantNormal {
		return ` mathvariant="normal"`
	}
	return ""
}

// Accent is the `accent` attribute on <mover>/<munder>.
type Accent int

const (
	AccentFalse Accent = iota
	AccentTrue
)

func (a Accent) String() string {
	if a == AccentTrue {
		return "true"
	}
	return "false"
}

// OpAttr covers the optional attributes on <mo>.
type OpAttr int

const (
	OpAttrNone OpAttr = iota
	OpAttrStretchyTrue
	OpAttrStretchyFalse
	OpAttrNoMovableLimits
)

func (a OpAttr) Attr() string {
	switch a {
	case OpAttrStretchyTrue:
		return ` stretchy="true"`
	case OpAttrStretchyFalse:
		return ` stretchy="false"`
	case OpAttrNoMovableLimits:
		return ` movablelimits="false"`
	default:
		return ""
	}
}

// DisplayStyle distinguishes \tfrac (false) from \dfrac (true); used
// only to select FracAttr.
type DisplayStyle int

const (
	DisplayStyleFalse DisplayStyle = iota
	DisplayStyleTrue
)

// FracAttr is the displaystyle attribute (or cfrac padding) on <mfrac>.
type FracAttr int

const (
	FracAttrNone FracAttr = iota
	FracAttrDisplayStyleTrue
	FracAttrDisplayStyleFalse
	FracAttrCFracStyle
)

func (a FracAttr) Attr() string {
	switch a {
	case FracAttrDisplayStyleTrue:
		return ` displaystyle="true"`
	case FracAttrDisplayStyleFalse:
		return ` displaystyle="false"`
	case FracAttrCFracStyle:
		return ` displaystyle="true" scriptlevel="0" style="padding-top: 0.1667em"`
	default:
		return ""
	}
}

// FracAttrFromDisplayStyle maps \tfrac/\dfrac's optional display style
// onto the attribute the emitter writes.
func FracAttrFromDisplayStyle(ds *DisplayStyle) *FracAttr {
	if ds == nil {
		return nil
	}
	var a FracAttr
	if *ds == DisplayStyleTrue {
		a = FracAttrDisplayStyleTrue
	} else {
		a = FracAttrDisplayStyleFalse
	}
	return &a
}

// Style is the displaystyle+scriptlevel pair written on a styled Row,
// produced by \displaystyle, \textstyle, \scriptstyle, \scriptscriptstyle.
type Style int

const (
	StyleNone Style = iota
	DisplayStyleStyle
	TextStyleStyle
	ScriptStyleStyle
	ScriptScriptStyleStyle
)

func (s Style) Attr() string {
	switch s {
	case DisplayStyleStyle:
		return ` displaystyle="true" scriptlevel="0"`
	case TextStyleStyle:
		return ` displaystyle="false" scriptlevel="0"`
	case ScriptStyleStyle:
		return ` displaystyle="false" scriptlevel="1"`
	case ScriptScriptStyleStyle:
		return ` displaystyle="false" scriptlevel="2"`
	default:
		return ""
	}
}

// Align selects how a Table's columns are aligned.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignAlternating
)

// MathSpacing is the lspace/rspace attribute used by colon fusion.
type MathSpacing int

const (
	MathSpacingNone MathSpacing = iota
	MathSpacingZero
	MathSpacingFourMu
)

func (s MathSpacing) String() string {
	switch s {
	case MathSpacingZero:
		return "0em"
	case MathSpacingFourMu:
		return "0.2222em"
	default:
		return ""
	}
}
