package themes

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/painter/pkg/errors"
	"github.com/arthur-debert/painter/pkg/logging"
	"github.com/arthur-debert/painter/pkg/style"
)

// ConfigDirName is the directory under the XDG config home that holds theme
// files.
const ConfigDirName = "painter"

// Registry holds named styles: the built-in set plus whatever theme files
// were merged over it.
type Registry struct {
	styles map[string]style.Style
	logger zerolog.Logger
}

// NewRegistry returns a registry with only the built-in styles.
func NewRegistry() *Registry {
	return &Registry{
		styles: builtin(),
		logger: logging.GetLogger("themes"),
	}
}

// Load reads the theme file at path and merges its definitions over the
// registry, replacing same-named entries. The format follows the file
// extension: .toml, .yaml or .yml.
func (r *Registry) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path)
	}

	var defs map[string]Definition
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(raw, &defs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &defs)
	default:
		return errors.Newf(errors.ErrThemeParse, "unsupported theme format %q", filepath.Ext(path))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrThemeParse, "failed to parse theme file %s", path)
	}

	for name, def := range defs {
		s, err := definitionStyle(name, def)
		if err != nil {
			return err
		}
		r.styles[name] = s
	}

	r.logger.Debug().Str("path", path).Int("styles", len(defs)).Msg("Theme file loaded")
	return nil
}

// LoadDefault merges the user theme file from the XDG config directory, if
// one exists. A missing file is not an error; a broken one is.
func (r *Registry) LoadDefault() error {
	for _, name := range []string{"themes.toml", "themes.yaml", "themes.yml"} {
		path := filepath.Join(xdg.ConfigHome, ConfigDirName, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return r.Load(path)
	}
	return nil
}

// Lookup returns the style registered under name.
func (r *Registry) Lookup(name string) (style.Style, bool) {
	s, ok := r.styles[name]
	return s, ok
}

// Names returns all registered style names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
