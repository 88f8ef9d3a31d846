package term

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/painter/pkg/errors"
	"github.com/arthur-debert/painter/pkg/logging"
)

var stdoutOnce = sync.OnceValues(detectStdout)

// Stdout returns the driver for the process standard output. The terminal is
// probed exactly once and the result is cached for the lifetime of the
// process: a terminal that was unavailable at first use stays unavailable,
// and the handle is never released.
func Stdout() (Driver, error) {
	return stdoutOnce()
}

// detectStdout decides whether stdout is a terminal worth styling.
// The checks mirror the usual CLI conventions: NO_COLOR wins over
// everything, pipes and redirects get plain output, and a terminal that
// cannot do color at all is treated the same as no terminal.
func detectStdout() (Driver, error) {
	logger := logging.GetLogger("term")

	if os.Getenv("NO_COLOR") != "" {
		logger.Debug().Msg("NO_COLOR set, styling disabled")
		return nil, errors.New(errors.ErrNoTerminal, "styling disabled by NO_COLOR")
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		logger.Debug().Msg("Stdout is not a terminal")
		return nil, errors.New(errors.ErrNoTerminal, "stdout is not a terminal")
	}

	profile := termenv.ColorProfile()
	if profile == termenv.Ascii {
		logger.Debug().Msg("Terminal does not support color")
		return nil, errors.New(errors.ErrNoTerminal, "terminal does not support color")
	}

	logger.Debug().Str("profile", profileName(profile)).Msg("Terminal driver attached to stdout")
	return NewWriter(os.Stdout, profile), nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	case termenv.Ascii:
		return "ascii"
	default:
		return "unknown"
	}
}
