package style

// Attr names a single text attribute so it can start a modifier chain the
// same way a Color can. Plain starts a chain that modifies nothing.
type Attr int

const (
	Plain Attr = iota
	Bold
	Dim
	Underline
	Blink
	Reverse
	Secure
)

// pos returns the packed-flag position for the attribute. Plain has none.
func (a Attr) pos() (uint, bool) {
	switch a {
	case Bold:
		return posBold, true
	case Dim:
		return posDim, true
	case Underline:
		return posUnderline, true
	case Blink:
		return posBlink, true
	case Reverse:
		return posReverse, true
	case Secure:
		return posSecure, true
	default:
		return 0, false
	}
}

func (a Attr) String() string {
	switch a {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case Reverse:
		return "reverse"
	case Secure:
		return "secure"
	default:
		return "unknown"
	}
}

// ToStyle returns a style with only this attribute switched on.
func (a Attr) ToStyle() Style {
	var s Style
	if pos, ok := a.pos(); ok {
		s.attrs = s.attrs.with(pos, On)
	}
	return s
}

// Fg sets the foreground (text) color.
func (a Attr) Fg(c Color) Style { return a.ToStyle().Fg(c) }

// Bg sets the background color.
func (a Attr) Bg(c Color) Style { return a.ToStyle().Bg(c) }

// Bold makes the text bold.
func (a Attr) Bold() Style { return a.ToStyle().Bold() }

// Dim enables dim mode.
func (a Attr) Dim() Style { return a.ToStyle().Dim() }

// Underline underlines the text.
func (a Attr) Underline() Style { return a.ToStyle().Underline() }

// NotUnderline switches underlining explicitly off.
func (a Attr) NotUnderline() Style { return a.ToStyle().NotUnderline() }

// Blink makes the text blink.
func (a Attr) Blink() Style { return a.ToStyle().Blink() }

// Reverse swaps foreground and background.
func (a Attr) Reverse() Style { return a.ToStyle().Reverse() }

// Secure enables secure (concealed) mode.
func (a Attr) Secure() Style { return a.ToStyle().Secure() }

// Paint binds obj to this attribute on the default painter.
func (a Attr) Paint(obj any) Painted { return Paint(a, obj) }

// With runs fn with this attribute applied on the default painter.
func (a Attr) With(fn func()) { With(a, fn) }
