package style

import "fmt"

// Painted is a value bundled with the style to print it in. It formats
// exactly like the value it wraps, for every verb and flag the value
// supports; the style only produces driver side effects around the write,
// never bytes in the formatted text. That means Painted is useless inside
// fmt.Sprintf chains that are stored rather than printed — colors are
// terminal state, not data.
type Painted struct {
	style   Style
	obj     any
	painter *Painter
}

// Format implements fmt.Formatter by replaying the caller's verb, flags and
// width on the wrapped value inside a styled scope.
func (p Painted) Format(f fmt.State, verb rune) {
	painter := p.painter
	if painter == nil {
		painter = Default()
	}
	painter.With(p.style, func() {
		fmt.Fprintf(f, fmt.FormatString(f, verb), p.obj)
	})
}
