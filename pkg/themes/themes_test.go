package themes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/painter/pkg/errors"
	"github.com/arthur-debert/painter/pkg/style"
	"github.com/arthur-debert/painter/pkg/themes"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    style.Color
		wantErr bool
	}{
		{name: "base color", input: "red", want: style.Red},
		{name: "mixed case", input: "Green", want: style.Green},
		{name: "whitespace", input: "  blue ", want: style.Blue},
		{name: "bright variant", input: "bright-magenta", want: style.BrightMagenta},
		{name: "palette index", input: "203", want: style.Custom(203)},
		{name: "index of named color", input: "1", want: style.Red},
		{name: "empty means no color", input: "", want: style.NotSet},
		{name: "unknown name", input: "chartreuse", wantErr: true},
		{name: "out of range index", input: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := themes.ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefinitionTriState(t *testing.T) {
	on := true
	off := false

	def := themes.Definition{
		Fg:        "red",
		Bold:      &on,
		Underline: &off,
		// Dim left absent
	}

	s, err := def.Style()
	require.NoError(t, err)

	assert.Equal(t, style.Red, s.Foreground())
	assert.Equal(t, style.On, s.Flag(style.Bold))
	assert.Equal(t, style.Off, s.Flag(style.Underline))
	assert.Equal(t, style.Unset, s.Flag(style.Dim))
}

func TestRegistryLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[alert]
fg = "bright-red"
bg = "black"
bold = true
blink = true

[quiet]
fg = "bright-black"
underline = false
`), 0o644))

	registry := themes.NewRegistry()
	require.NoError(t, registry.Load(path))

	alert, ok := registry.Lookup("alert")
	require.True(t, ok)
	assert.Equal(t, style.BrightRed.Bg(style.Black).Bold().Blink(), alert)

	quiet, ok := registry.Lookup("quiet")
	require.True(t, ok)
	assert.Equal(t, style.BrightBlack.NotUnderline(), quiet)
}

func TestRegistryLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
banner:
  fg: "15"
  bg: blue
  bold: true
`), 0o644))

	registry := themes.NewRegistry()
	require.NoError(t, registry.Load(path))

	banner, ok := registry.Lookup("banner")
	require.True(t, ok)
	assert.Equal(t, style.Custom(15).Bg(style.Blue).Bold(), banner)
}

func TestRegistryUserOverridesBuiltin(t *testing.T) {
	registry := themes.NewRegistry()

	original, ok := registry.Lookup("error")
	require.True(t, ok)
	assert.Equal(t, style.Red.Bold(), original)

	path := filepath.Join(t.TempDir(), "themes.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[error]
fg = "bright-red"
underline = true
`), 0o644))
	require.NoError(t, registry.Load(path))

	overridden, ok := registry.Lookup("error")
	require.True(t, ok)
	assert.Equal(t, style.BrightRed.Underline(), overridden)
}

func TestRegistryLoadErrors(t *testing.T) {
	registry := themes.NewRegistry()

	t.Run("missing file", func(t *testing.T) {
		err := registry.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "themes.ini")
		require.NoError(t, os.WriteFile(path, []byte("[x]"), 0o644))
		err := registry.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse))
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "themes.toml")
		require.NoError(t, os.WriteFile(path, []byte("not toml ="), 0o644))
		err := registry.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse))
	})

	t.Run("bad color", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "themes.toml")
		require.NoError(t, os.WriteFile(path, []byte("[x]\nfg = \"chartreuse\"\n"), 0o644))
		err := registry.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
	})
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := themes.NewRegistry()
	names := registry.Names()

	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "error")
	assert.Contains(t, names, "success")
}

func TestLoadDefault(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	registry := themes.NewRegistry()

	// No theme file present is fine
	require.NoError(t, registry.LoadDefault())

	dir := filepath.Join(configHome, themes.ConfigDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes.toml"), []byte(`
[mine]
fg = "cyan"
`), 0o644))

	require.NoError(t, registry.LoadDefault())
	mine, ok := registry.Lookup("mine")
	require.True(t, ok)
	assert.Equal(t, style.Cyan.ToStyle(), mine)
}
