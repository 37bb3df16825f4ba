package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/errors"
)

// fileExt is the extension of theme files.
const fileExt = ".toml"

// Theme is a named set of style entries.
type Theme struct {
	Name        string
	Description string
	Extends     string
	Styles      ansi.Theme

	// Path is the file the theme was read from, empty for built-ins.
	Path string

	// Undecoded lists keys present in the file that the loader ignored.
	Undecoded []string
}

// themeFile is the on-disk TOML layout.
type themeFile struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Extends     string         `toml:"extends"`
	Styles      map[string]any `toml:"styles"`
}

// Loader finds themes by name in a list of directories, falling back to the
// built-in themes.
type Loader struct {
	Dirs []string
}

// NewLoader creates a loader searching dirs in order.
func NewLoader(dirs ...string) *Loader {
	return &Loader{Dirs: dirs}
}

// Parse decodes a theme from TOML. Extends may only name a built-in theme.
func Parse(data []byte) (*Theme, error) {
	return NewLoader().parseWith(data, nil)
}

// Load finds a theme with no search directories: a file path or a built-in
// name.
func Load(name string) (*Theme, error) {
	return NewLoader().Load(name)
}

// Load returns the theme called name, or the theme file at name when it
// looks like a path.
func (l *Loader) Load(name string) (*Theme, error) {
	if isPath(name) {
		return l.LoadFile(name)
	}
	return l.find(name, nil)
}

// LoadFile reads and parses the theme file at path.
func (l *Loader) LoadFile(path string) (*Theme, error) {
	return l.loadFile(path, nil)
}

// Names returns the themes available to the loader: files found in its
// directories followed by built-ins not shadowed by a file.
func (l *Loader) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range l.Dirs {
		matches, _ := filepath.Glob(filepath.Join(dir, "*"+fileExt))
		for _, m := range matches {
			name := strings.TrimSuffix(filepath.Base(m), fileExt)
			if !seen[name] && errors.ValidateThemeName(name) == nil {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	for _, name := range BuiltinNames() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

func isPath(name string) bool {
	return strings.HasSuffix(name, fileExt) || strings.ContainsAny(name, `/\`)
}

// chain tracks the themes visited while following extends.
type chain map[string]bool

func (c chain) with(key string) chain {
	out := make(chain, len(c)+1)
	for k := range c {
		out[k] = true
	}
	out[key] = true
	return out
}

func (l *Loader) find(name string, visited chain) (*Theme, error) {
	if err := errors.ValidateThemeName(name); err != nil {
		return nil, err
	}
	for _, dir := range l.Dirs {
		path := filepath.Join(dir, name+fileExt)
		if _, err := os.Stat(path); err == nil {
			return l.loadFile(path, visited)
		}
	}
	if t, ok := Builtin(name); ok {
		return t, nil
	}
	return nil, errors.New(errors.ErrCodeThemeNotFound, "theme %q not found", name)
}

func (l *Loader) loadFile(path string, visited chain) (*Theme, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if visited[abs] {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "theme %s extends itself", path)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading theme %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading theme %s", path)
	}

	t, err := l.parseWith(data, visited.with(abs))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %s", path)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), fileExt)
	}
	t.Path = path
	return t, nil
}

func (l *Loader) parseWith(data []byte, visited chain) (*Theme, error) {
	var f themeFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decoding theme")
	}

	t := &Theme{
		Name:        f.Name,
		Description: f.Description,
		Extends:     f.Extends,
		Styles:      make(ansi.Theme, len(f.Styles)),
	}
	for _, key := range md.Undecoded() {
		t.Undecoded = append(t.Undecoded, key.String())
	}

	for name, value := range f.Styles {
		if err := errors.ValidateStyleName(name); err != nil {
			return nil, err
		}
		entry, err := decodeEntry(name, value)
		if err != nil {
			return nil, err
		}
		t.Styles[name] = entry
	}

	if t.Extends != "" {
		if visited[t.Extends] {
			return nil, errors.New(errors.ErrCodeInvalidTheme, "theme %q extends itself", t.Extends)
		}
		parent, err := l.find(t.Extends, visited.with(t.Extends))
		if err != nil {
			return nil, err
		}
		t.Styles = parent.Styles.Merge(t.Styles)
	}

	if err := t.Styles.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "invalid styles")
	}
	return t, nil
}

// decodeEntry converts one TOML value into a theme entry.
func decodeEntry(name string, value any) (ansi.Node, error) {
	switch v := value.(type) {
	case string:
		if strings.HasPrefix(v, "\x1b") {
			return ansi.Seq(v), nil
		}
		if err := errors.ValidateStyleName(v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "style %q", name)
		}
		return ansi.Style(v), nil
	case []any:
		list := make(ansi.List, 0, len(v))
		for _, item := range v {
			entry, err := decodeEntry(name, item)
			if err != nil {
				return nil, err
			}
			list = append(list, entry)
		}
		return list, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidTheme, "style %q: unsupported value %v (%T)", name, v, v)
	}
}
