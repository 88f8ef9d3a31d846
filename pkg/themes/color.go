package themes

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/painter/pkg/errors"
	"github.com/arthur-debert/painter/pkg/style"
)

var colorsByName = map[string]style.Color{
	"black":   style.Black,
	"red":     style.Red,
	"green":   style.Green,
	"yellow":  style.Yellow,
	"blue":    style.Blue,
	"magenta": style.Magenta,
	"cyan":    style.Cyan,
	"white":   style.White,

	"bright-black":   style.BrightBlack,
	"bright-red":     style.BrightRed,
	"bright-green":   style.BrightGreen,
	"bright-yellow":  style.BrightYellow,
	"bright-blue":    style.BrightBlue,
	"bright-magenta": style.BrightMagenta,
	"bright-cyan":    style.BrightCyan,
	"bright-white":   style.BrightWhite,
}

// ParseColor turns a color as written in a theme file into a style.Color.
// Recognized: the 8 base names, their "bright-" variants, a bare palette
// index such as "203", and the empty string for no color.
func ParseColor(s string) (style.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return style.NotSet, nil
	}
	if c, ok := colorsByName[name]; ok {
		return c, nil
	}
	if index, err := strconv.ParseUint(name, 10, 16); err == nil {
		return style.Custom(uint16(index)), nil
	}
	return style.NotSet, errors.Newf(errors.ErrInvalidInput, "unknown color %q", s)
}
