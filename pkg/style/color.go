package style

import "fmt"

// Color identifies a terminal palette color. The zero value NotSet is a
// sentinel meaning "leave this color channel as it is" — it is not a reset
// and never overrides anything in a merge.
//
// Named colors carry a validity bit above the palette index so that NotSet
// stays the plain zero value and a zero Style changes nothing.
type Color int32

const colorValid Color = 1 << 24

const (
	NotSet Color = 0

	Black   Color = colorValid | 0
	Red     Color = colorValid | 1
	Green   Color = colorValid | 2
	Yellow  Color = colorValid | 3
	Blue    Color = colorValid | 4
	Magenta Color = colorValid | 5
	Cyan    Color = colorValid | 6
	White   Color = colorValid | 7

	BrightBlack   Color = colorValid | 8
	BrightRed     Color = colorValid | 9
	BrightGreen   Color = colorValid | 10
	BrightYellow  Color = colorValid | 11
	BrightBlue    Color = colorValid | 12
	BrightMagenta Color = colorValid | 13
	BrightCyan    Color = colorValid | 14
	BrightWhite   Color = colorValid | 15
)

// Custom addresses palette index n directly. The index goes to the driver
// unchanged; whether the terminal can display it is the driver's problem,
// not validated here.
func Custom(n uint16) Color {
	return colorValid | Color(n)
}

// termConstant returns the palette index to hand the driver, or false for
// the NotSet sentinel.
func (c Color) termConstant() (uint16, bool) {
	if c&colorValid == 0 {
		return 0, false
	}
	return uint16(c &^ colorValid), true
}

var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (c Color) String() string {
	index, ok := c.termConstant()
	if !ok {
		return "not-set"
	}
	if int(index) < len(colorNames) {
		return colorNames[index]
	}
	return fmt.Sprintf("color(%d)", index)
}

// ToStyle returns a style with c as foreground and everything else untouched.
func (c Color) ToStyle() Style {
	return Style{fg: c}
}

// Fg starts a chain from c and then replaces the foreground with o.
func (c Color) Fg(o Color) Style { return c.ToStyle().Fg(o) }

// Bg sets the background color.
func (c Color) Bg(o Color) Style { return c.ToStyle().Bg(o) }

// Bold makes the text bold.
func (c Color) Bold() Style { return c.ToStyle().Bold() }

// Dim enables dim mode.
func (c Color) Dim() Style { return c.ToStyle().Dim() }

// Underline underlines the text.
func (c Color) Underline() Style { return c.ToStyle().Underline() }

// NotUnderline switches underlining explicitly off.
func (c Color) NotUnderline() Style { return c.ToStyle().NotUnderline() }

// Blink makes the text blink.
func (c Color) Blink() Style { return c.ToStyle().Blink() }

// Reverse swaps foreground and background.
func (c Color) Reverse() Style { return c.ToStyle().Reverse() }

// Secure enables secure (concealed) mode.
func (c Color) Secure() Style { return c.ToStyle().Secure() }

// Paint binds obj to this color on the default painter.
func (c Color) Paint(obj any) Painted { return Paint(c, obj) }

// With runs fn with this color applied on the default painter.
func (c Color) With(fn func()) { With(c, fn) }
