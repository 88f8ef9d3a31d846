package term

import (
	"fmt"

	"github.com/arthur-debert/painter/pkg/errors"
)

// Op identifies one kind of driver call in a Recorder trace.
type Op string

const (
	OpForeground Op = "fg"
	OpBackground Op = "bg"
	OpAttribute  Op = "attr"
	OpReset      Op = "reset"
)

// Call is one recorded driver call. Arg holds the palette index for color
// calls and the Attribute for attribute calls.
type Call struct {
	Op  Op
	Arg int
}

func (c Call) String() string {
	switch c.Op {
	case OpReset:
		return string(c.Op)
	case OpAttribute:
		return fmt.Sprintf("%s(%s)", c.Op, Attribute(c.Arg))
	default:
		return fmt.Sprintf("%s(%d)", c.Op, c.Arg)
	}
}

// Recorder is a Driver for tests. It records every call in program order and
// can be made to fail, either unconditionally or from a given call onward.
type Recorder struct {
	Calls []Call

	// FailAfter fails every call once len(Calls) reaches this count.
	// Zero fails immediately; a negative value never fails.
	FailAfter int
}

// NewRecorder returns a Recorder that never fails.
func NewRecorder() *Recorder {
	return &Recorder{FailAfter: -1}
}

func (r *Recorder) record(op Op, arg int) error {
	if r.FailAfter >= 0 && len(r.Calls) >= r.FailAfter {
		return errors.Newf(errors.ErrTerminalWrite, "recorder failing call %d", len(r.Calls))
	}
	r.Calls = append(r.Calls, Call{Op: op, Arg: arg})
	return nil
}

func (r *Recorder) SetForeground(index uint16) error { return r.record(OpForeground, int(index)) }

func (r *Recorder) SetBackground(index uint16) error { return r.record(OpBackground, int(index)) }

func (r *Recorder) SetAttribute(a Attribute) error { return r.record(OpAttribute, int(a)) }

func (r *Recorder) Reset() error { return r.record(OpReset, 0) }

// Trace returns the recorded calls as strings, convenient for comparisons.
func (r *Recorder) Trace() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

// Nop is a Driver that accepts everything and does nothing. It stands in for
// a terminal when only the text output matters.
type Nop struct{}

func (Nop) SetForeground(uint16) error { return nil }

func (Nop) SetBackground(uint16) error { return nil }

func (Nop) SetAttribute(Attribute) error { return nil }

func (Nop) Reset() error { return nil }
