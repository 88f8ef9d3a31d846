package style

import (
	"github.com/arthur-debert/painter/pkg/term"
)

// Style is the complete description of how text should look: a foreground,
// a background and six tri-state attributes. The zero value changes nothing
// when applied.
//
// Styles are values. Every modifier copies its receiver and returns a new
// Style with exactly one field changed, so modifiers for different fields
// commute and repeating a modifier for the same field last-write-wins.
type Style struct {
	fg, bg Color
	attrs  attrSet
}

// ToStyle returns the style itself, making Style its own StyleSource.
func (s Style) ToStyle() Style { return s }

// Foreground returns the foreground color.
func (s Style) Foreground() Color { return s.fg }

// Background returns the background color.
func (s Style) Background() Color { return s.bg }

// Flag returns the tri-state value of the given attribute. Plain is Unset.
func (s Style) Flag(a Attr) Flag {
	pos, ok := a.pos()
	if !ok {
		return Unset
	}
	return s.attrs.get(pos)
}

// WithAttr returns a copy of the style with the given attribute set to v.
// Unlike the named modifiers it can also set Off and Unset; theme loading
// needs that. WithAttr with Plain is a no-op.
func (s Style) WithAttr(a Attr, v Flag) Style {
	if pos, ok := a.pos(); ok {
		s.attrs = s.attrs.with(pos, v)
	}
	return s
}

// Fg returns a copy of the style with the foreground color replaced.
func (s Style) Fg(c Color) Style {
	s.fg = c
	return s
}

// Bg returns a copy of the style with the background color replaced.
func (s Style) Bg(c Color) Style {
	s.bg = c
	return s
}

// Bold makes the text bold.
func (s Style) Bold() Style {
	s.attrs = s.attrs.with(posBold, On)
	return s
}

// Dim enables dim mode.
func (s Style) Dim() Style {
	s.attrs = s.attrs.with(posDim, On)
	return s
}

// Underline underlines the text.
func (s Style) Underline() Style {
	s.attrs = s.attrs.with(posUnderline, On)
	return s
}

// NotUnderline switches underlining explicitly off.
func (s Style) NotUnderline() Style {
	s.attrs = s.attrs.with(posUnderline, Off)
	return s
}

// Blink makes the text blink.
func (s Style) Blink() Style {
	s.attrs = s.attrs.with(posBlink, On)
	return s
}

// Reverse swaps foreground and background.
func (s Style) Reverse() Style {
	s.attrs = s.attrs.with(posReverse, On)
	return s
}

// Secure enables secure (concealed) mode.
func (s Style) Secure() Style {
	s.attrs = s.attrs.with(posSecure, On)
	return s
}

// And merges o over s: o's explicit settings win, while its NotSet colors
// and Unset flags keep s's values. The sentinel is "no opinion", never a
// reset. This is the merge a nested scope applies on entry.
func (s Style) And(o Style) Style {
	merged := Style{fg: s.fg, bg: s.bg, attrs: s.attrs.merge(o.attrs)}
	if o.fg != NotSet {
		merged.fg = o.fg
	}
	if o.bg != NotSet {
		merged.bg = o.bg
	}
	return merged
}

// Apply issues every explicit setting of the style to the driver, colors
// first. Colors go out whenever they are non-sentinel; terminal state cannot
// be read back, so there is no diffing against what the terminal already
// shows. The first failing call aborts the rest, and whatever was already
// issued stays issued.
func (s Style) Apply(d term.Driver) error {
	if index, ok := s.fg.termConstant(); ok {
		if err := d.SetForeground(index); err != nil {
			return err
		}
	}
	if index, ok := s.bg.termConstant(); ok {
		if err := d.SetBackground(index); err != nil {
			return err
		}
	}

	// Underline is the one attribute with an explicit off switch. The rest
	// can only be switched on; clearing them takes a full reset.
	if s.attrs.get(posBold) == On {
		if err := d.SetAttribute(term.Bold); err != nil {
			return err
		}
	}
	if s.attrs.get(posDim) == On {
		if err := d.SetAttribute(term.Dim); err != nil {
			return err
		}
	}
	switch s.attrs.get(posUnderline) {
	case On:
		if err := d.SetAttribute(term.Underline); err != nil {
			return err
		}
	case Off:
		if err := d.SetAttribute(term.NoUnderline); err != nil {
			return err
		}
	}
	if s.attrs.get(posBlink) == On {
		if err := d.SetAttribute(term.Blink); err != nil {
			return err
		}
	}
	if s.attrs.get(posReverse) == On {
		if err := d.SetAttribute(term.Reverse); err != nil {
			return err
		}
	}
	if s.attrs.get(posSecure) == On {
		if err := d.SetAttribute(term.Secure); err != nil {
			return err
		}
	}
	return nil
}

// RevertTo resets the terminal completely and reapplies s. Terminal state
// cannot be read back, so a full reset followed by replay is the only way to
// restore an earlier style.
func (s Style) RevertTo(d term.Driver) error {
	if err := d.Reset(); err != nil {
		return err
	}
	return s.Apply(d)
}

// Paint binds obj to this style on the default painter.
func (s Style) Paint(obj any) Painted { return Paint(s, obj) }

// With runs fn with this style applied on the default painter.
func (s Style) With(fn func()) { With(s, fn) }
