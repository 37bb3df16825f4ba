package theme

import (
	"sort"

	"github.com/matzehuels/ansimark/pkg/ansi"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

// builtins holds the themes compiled into the binary. Every built-in defines
// the same semantic names so themes can be swapped without touching markup.
var builtins = map[string]*Theme{
	DefaultName: {
		Name:        DefaultName,
		Description: "semantic names mapped to the 16 basic colors",
		Styles: ansi.Theme{
			"success":   ansi.Green,
			"warning":   ansi.Yellow,
			"error":     ansi.Red,
			"info":      ansi.Cyan,
			"muted":     ansi.Faint,
			"title":     ansi.L(ansi.Bright, ansi.Cyan),
			"highlight": ansi.L(ansi.Yellow, ansi.Reverse),
			"link":      ansi.L(ansi.Blue, ansi.Underline),
			"code":      ansi.LightBlackBackground,
		},
	},
	"mono": {
		Name:        "mono",
		Description: "semantic names mapped to text attributes only",
		Styles: ansi.Theme{
			"success":   ansi.Bright,
			"warning":   ansi.Underline,
			"error":     ansi.L(ansi.Bright, ansi.Underline),
			"info":      ansi.Normal,
			"muted":     ansi.Faint,
			"title":     ansi.Bright,
			"highlight": ansi.Reverse,
			"link":      ansi.Underline,
			"code":      ansi.Reverse,
		},
	},
}

// Builtin returns a copy of the built-in theme called name.
func Builtin(name string) (*Theme, bool) {
	t, ok := builtins[name]
	if !ok {
		return nil, false
	}
	out := *t
	out.Styles = ansi.Theme{}.Merge(t.Styles)
	return &out, true
}

// BuiltinNames returns the names of the built-in themes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
