// Package theme loads ansi themes from TOML files and provides built-in themes.
//
// # File Format
//
// A theme file maps style names to raw sequences, aliases or composites:
//
//	name = "sunset"
//	description = "warm accents"
//	extends = "default"
//
//	[styles]
//	orange    = "\u001b[38;5;208m"   # raw: starts with ESC
//	warning   = "orange"             # alias to another name
//	highlight = ["orange", "reverse"] # composite
//
// Strings starting with ESC become [ansi.Seq]; other strings become
// [ansi.Style] aliases; arrays become [ansi.List] composites and may nest.
//
// # Lookup
//
// [Loader.Load] accepts a theme name or a path. Names are searched as
// <dir>/<name>.toml in the loader's directories, then among the built-ins
// ("default" and "mono"). A theme that sets extends is layered over its
// parent, and the merged result is validated with [ansi.Theme.Validate] so
// unknown names and alias cycles fail at load time rather than at render
// time.
package theme
