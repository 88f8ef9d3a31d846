// Package term is the terminal capability layer. It knows how to turn a
// palette index or a named attribute into the control sequence the terminal
// understands, and how to reset the terminal to its default state. Nothing
// in here tracks state; that is pkg/style's job.
package term

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/painter/pkg/errors"
)

// Attribute names a text attribute the driver can switch. NoUnderline is the
// one explicit "off" switch terminals support; every other attribute can only
// be cleared by a full Reset.
type Attribute int

const (
	Bold Attribute = iota
	Dim
	Underline
	NoUnderline
	Blink
	Reverse
	Secure
)

// SGR parameters termenv has no constant for
const (
	concealSeq     = "8"
	noUnderlineSeq = "24"
)

// String returns the attribute name as it appears in logs and test output.
func (a Attribute) String() string {
	switch a {
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	case Underline:
		return "underline"
	case NoUnderline:
		return "no-underline"
	case Blink:
		return "blink"
	case Reverse:
		return "reverse"
	case Secure:
		return "secure"
	default:
		return fmt.Sprintf("attribute(%d)", int(a))
	}
}

func (a Attribute) sequence() string {
	switch a {
	case Bold:
		return termenv.BoldSeq
	case Dim:
		return termenv.FaintSeq
	case Underline:
		return termenv.UnderlineSeq
	case NoUnderline:
		return noUnderlineSeq
	case Blink:
		return termenv.BlinkSeq
	case Reverse:
		return termenv.ReverseSeq
	case Secure:
		return concealSeq
	default:
		return ""
	}
}

// Driver issues state changes to a terminal. Every call either takes effect
// or reports failure; none of them can be read back. Implementations are not
// safe for concurrent use — callers coordinate access to the underlying
// terminal themselves.
type Driver interface {
	SetForeground(index uint16) error
	SetBackground(index uint16) error
	SetAttribute(a Attribute) error
	Reset() error
}

// Writer is a Driver that emits SGR sequences to an io.Writer, degrading
// colors through a termenv profile. Palette indexes the profile cannot
// express are silently dropped, matching how unsupported capabilities behave
// on real terminals.
type Writer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewWriter returns a Writer emitting sequences for the given profile.
func NewWriter(out io.Writer, profile termenv.Profile) *Writer {
	return &Writer{out: out, profile: profile}
}

// SetForeground sets the foreground color to the given palette index.
func (w *Writer) SetForeground(index uint16) error {
	return w.writeSeq(w.colorSequence(index, false))
}

// SetBackground sets the background color to the given palette index.
func (w *Writer) SetBackground(index uint16) error {
	return w.writeSeq(w.colorSequence(index, true))
}

// SetAttribute switches the given attribute on (or, for NoUnderline, off).
func (w *Writer) SetAttribute(a Attribute) error {
	if w.profile == termenv.Ascii {
		return nil
	}
	return w.writeSeq(a.sequence())
}

// Reset clears all color and attribute state.
func (w *Writer) Reset() error {
	if w.profile == termenv.Ascii {
		return nil
	}
	return w.writeSeq(termenv.ResetSeq)
}

func (w *Writer) colorSequence(index uint16, bg bool) string {
	var c termenv.Color
	if index < 16 {
		c = termenv.ANSIColor(index)
	} else {
		c = termenv.ANSI256Color(index)
	}
	converted := w.profile.Convert(c)
	if converted == nil {
		return ""
	}
	return converted.Sequence(bg)
}

func (w *Writer) writeSeq(seq string) error {
	if seq == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w.out, "%s%sm", termenv.CSI, seq); err != nil {
		return errors.Wrap(err, errors.ErrTerminalWrite, "failed to write control sequence")
	}
	return nil
}
