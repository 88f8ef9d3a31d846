// Package themes maps names to styles. A registry starts with a small
// built-in set and merges user definitions loaded from TOML or YAML theme
// files under the XDG config directory.
package themes

import (
	"github.com/arthur-debert/painter/pkg/errors"
	"github.com/arthur-debert/painter/pkg/style"
)

// Definition is one named style as it appears in a theme file. An absent
// boolean leaves the attribute unset, false switches it explicitly off —
// theme files get the full tri-state.
type Definition struct {
	Fg        string `toml:"fg" yaml:"fg"`
	Bg        string `toml:"bg" yaml:"bg"`
	Bold      *bool  `toml:"bold" yaml:"bold"`
	Dim       *bool  `toml:"dim" yaml:"dim"`
	Underline *bool  `toml:"underline" yaml:"underline"`
	Blink     *bool  `toml:"blink" yaml:"blink"`
	Reverse   *bool  `toml:"reverse" yaml:"reverse"`
	Secure    *bool  `toml:"secure" yaml:"secure"`
}

// Style converts the definition to a style value.
func (d Definition) Style() (style.Style, error) {
	var s style.Style

	if d.Fg != "" {
		c, err := ParseColor(d.Fg)
		if err != nil {
			return style.Style{}, err
		}
		s = s.Fg(c)
	}
	if d.Bg != "" {
		c, err := ParseColor(d.Bg)
		if err != nil {
			return style.Style{}, err
		}
		s = s.Bg(c)
	}

	for _, f := range []struct {
		attr  style.Attr
		value *bool
	}{
		{style.Bold, d.Bold},
		{style.Dim, d.Dim},
		{style.Underline, d.Underline},
		{style.Blink, d.Blink},
		{style.Reverse, d.Reverse},
		{style.Secure, d.Secure},
	} {
		if f.value == nil {
			continue
		}
		if *f.value {
			s = s.WithAttr(f.attr, style.On)
		} else {
			s = s.WithAttr(f.attr, style.Off)
		}
	}

	return s, nil
}

// builtin styles every registry starts with. User themes override by name.
func builtin() map[string]style.Style {
	return map[string]style.Style{
		"success": style.Green.Bold(),
		"error":   style.Red.Bold(),
		"warning": style.Yellow.Bold(),
		"info":    style.Cyan.ToStyle(),
		"muted":   style.BrightBlack.ToStyle(),
		"heading": style.Plain.Bold().Underline(),
	}
}

func definitionStyle(name string, d Definition) (style.Style, error) {
	s, err := d.Style()
	if err != nil {
		return style.Style{}, errors.Wrapf(err, errors.ErrThemeInvalid,
			"invalid style %q", name).WithDetail("style", name)
	}
	return s, nil
}
