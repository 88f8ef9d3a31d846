package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/painter/pkg/style"
)

func TestModifierOrder(t *testing.T) {
	// The order of modifiers for different fields shouldn't play a role
	assert.Equal(t, style.Plain.Bold().Fg(style.Red), style.Plain.Fg(style.Red).Bold())
	assert.Equal(t, style.Plain.Bold().Bg(style.Red), style.Plain.Bg(style.Red).Bold())
	assert.Equal(t, style.Plain.Underline().Fg(style.Red), style.Plain.Fg(style.Red).Underline())

	// Startpoints have the same effect as the matching modifier
	assert.Equal(t, style.Red.ToStyle(), style.Plain.Fg(style.Red))
	assert.Equal(t, style.Bold.ToStyle(), style.Plain.Bold())
}

func TestModifierOverride(t *testing.T) {
	// The later modifier for the same field wins
	assert.Equal(t, style.Plain.Fg(style.Blue), style.Plain.Fg(style.Red).Fg(style.Blue))
	assert.Equal(t, style.Blue.ToStyle(), style.Plain.Fg(style.Red).Fg(style.Blue))
	assert.Equal(t, style.Plain.Fg(style.Blue), style.Red.Fg(style.Blue))
	assert.Equal(t, style.Blue.ToStyle(), style.Red.Fg(style.Blue))
}

func TestZeroStyleHasNoOpinion(t *testing.T) {
	var s style.Style

	assert.Equal(t, style.NotSet, s.Foreground())
	assert.Equal(t, style.NotSet, s.Background())
	for _, a := range []style.Attr{
		style.Bold, style.Dim, style.Underline,
		style.Blink, style.Reverse, style.Secure,
	} {
		assert.Equal(t, style.Unset, s.Flag(a), "flag %s", a)
	}
}

func TestFlagTriState(t *testing.T) {
	s := style.Plain.Bold().NotUnderline()

	assert.Equal(t, style.On, s.Flag(style.Bold))
	assert.Equal(t, style.Off, s.Flag(style.Underline))
	assert.Equal(t, style.Unset, s.Flag(style.Dim))

	// WithAttr can set any of the three states, including back to Unset
	s = s.WithAttr(style.Underline, style.Unset)
	assert.Equal(t, style.Unset, s.Flag(style.Underline))
	s = s.WithAttr(style.Dim, style.Off)
	assert.Equal(t, style.Off, s.Flag(style.Dim))
}

func TestAndFlagPrecedence(t *testing.T) {
	s1 := style.Plain.Bold().NotUnderline()
	s2 := style.Plain.Underline().ToStyle()
	s3 := style.Plain.Bold().ToStyle()

	withUnderline := style.Plain.Bold().Underline()
	withoutUnderline := style.Plain.Bold().NotUnderline()

	// s1's explicit Off beats s2's On
	assert.Equal(t, withoutUnderline, s2.And(s1))
	// s3 has no opinion on underline, so the Off survives
	assert.Equal(t, withoutUnderline, s2.And(s1).And(s3))
	assert.Equal(t, withUnderline, s2.And(s3))
}

func TestAndColorPrecedence(t *testing.T) {
	a := style.Red.Bold()
	noOpinion := style.Plain.Bold().ToStyle()

	// NotSet never overrides an explicit color
	assert.Equal(t, style.Red, a.And(noOpinion).Foreground())

	// An explicit color always overrides
	assert.Equal(t, style.Blue, a.And(style.Blue.ToStyle()).Foreground())

	// Backgrounds behave the same way
	b := style.Plain.Bg(style.Green)
	assert.Equal(t, style.Green, b.And(noOpinion).Background())
	assert.Equal(t, style.Magenta, b.And(style.Plain.Bg(style.Magenta)).Background())
}

func TestCustomColors(t *testing.T) {
	// Custom indexes below 16 are the same colors as the named constants
	assert.Equal(t, style.Red, style.Custom(1))
	assert.Equal(t, style.BrightWhite, style.Custom(15))

	// Higher indexes are distinct values with no name
	assert.NotEqual(t, style.Custom(203), style.Custom(204))
	assert.Equal(t, "color(203)", style.Custom(203).String())
	assert.Equal(t, "bright-red", style.BrightRed.String())
	assert.Equal(t, "not-set", style.NotSet.String())
}
