package style

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/painter/pkg/errors"
	"github.com/arthur-debert/painter/pkg/logging"
	"github.com/arthur-debert/painter/pkg/term"
)

// Painter tracks what one execution context believes the terminal state is.
// The terminal cannot be queried, so the belief is all there is: every scope
// entry merges onto it and every scope exit restores the previous belief by
// resetting the terminal and replaying.
//
// A Painter is not safe for concurrent use. Give each goroutine that owns a
// terminal its own Painter; two contexts writing to the same physical
// terminal have to coordinate outside this package.
type Painter struct {
	drv    term.Driver
	active Style
	logger zerolog.Logger
}

// New returns a Painter over the given driver with nothing applied yet.
// Passing a nil driver is allowed and produces a painter whose styling is a
// silent no-op, which is exactly what a process without a terminal wants.
func New(d term.Driver) *Painter {
	return &Painter{
		drv:    d,
		logger: logging.GetLogger("style"),
	}
}

var defaultPainter = sync.OnceValue(func() *Painter {
	d, err := term.Stdout()
	if err != nil {
		logger := logging.GetLogger("style")
		logger.Debug().Err(err).Msg("No terminal, output will be unstyled")
		return New(nil)
	}
	return New(d)
})

// Default returns the painter bound to the process standard output. It is
// created on first use and lives for the rest of the process.
func Default() *Painter {
	return defaultPainter()
}

// Active returns the style this painter believes is on the terminal.
// Exposed for tests and diagnostics; user code has no reason to look.
func (p *Painter) Active() Style {
	return p.active
}

func (p *Painter) apply(s Style) error {
	if p.drv == nil {
		return errors.New(errors.ErrNoTerminal, "no terminal attached")
	}
	return s.Apply(p.drv)
}

func (p *Painter) revertTo(s Style) error {
	if p.drv == nil {
		return errors.New(errors.ErrNoTerminal, "no terminal attached")
	}
	return s.RevertTo(p.drv)
}

// With applies src, runs fn, and restores the style that was active before —
// even when fn panics, so an unwinding scope never leaves its style behind.
// Nested calls compose: the inner scope merges onto the outer one and hands
// it back intact on exit.
//
// Driver failures are logged at debug level and otherwise swallowed.
// Styling is cosmetic; the caller's output must never depend on it working.
func (p *Painter) With(src StyleSource, fn func()) {
	next := src.ToStyle()
	before := p.active

	if err := p.apply(next); err != nil {
		p.logger.Debug().Err(err).Msg("Failed to apply style")
	}
	p.active = before.And(next)

	defer func() {
		if err := p.revertTo(before); err != nil {
			p.logger.Debug().Err(err).Msg("Failed to revert style")
		}
		p.active = before
	}()

	fn()
}

// WithResult is With for work that returns a value.
func WithResult[R any](p *Painter, src StyleSource, fn func() R) R {
	var out R
	p.With(src, func() { out = fn() })
	return out
}

// Paint binds obj to src's style for this painter's terminal.
func (p *Painter) Paint(src StyleSource, obj any) Painted {
	return Painted{style: src.ToStyle(), obj: obj, painter: p}
}
