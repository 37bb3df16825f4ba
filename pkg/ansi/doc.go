// Package ansi renders theme-aware terminal markup into ANSI escape
// sequences and measures or splits rendered strings by visible position.
//
// # Chardata
//
// Markup is a tree of [Node] values: literal [Text] and [Char], symbolic
// [Style] tokens, raw [Seq] escape sequences and nested [List] groups.
// [L] builds a List from plain Go values:
//
//	data := ansi.L(ansi.Red, "error: ", ansi.Bright, "disk full")
//	s, err := ansi.Format(data)
//	// "\x1b[31merror: \x1b[1mdisk full\x1b[0m"
//
// # Themes
//
// A [Theme] adds or overrides names. An entry can be a raw sequence, an
// alias to another name, or a composite list of styles:
//
//	theme := ansi.Theme{
//	    "orange":    ansi.Seq("\x1b[38;5;208m"),
//	    "warning":   ansi.Style("orange"),
//	    "highlight": ansi.L(ansi.Yellow, ansi.Reverse),
//	}
//	s, err := ansi.Format(ansi.L(ansi.Style("warning"), "careful"), ansi.WithTheme(theme))
//
// Aliases that loop back on themselves fail with [ErrCyclicTheme]; names
// found neither in the theme nor in the built-in table fail with
// [ErrUnknownStyle].
//
// # Reset Policy
//
// By default a single [ResetSequence] is appended when the output contains
// any escape sequence. [WithReset] with [ResetNever] suppresses it, and
// [FormatFragment] is the shorthand for that. [WithEmit](false) drops all
// styling and keeps only literal text.
//
// # Measuring and Splitting
//
// [Length], [SplitAt], [Strip] and [Wrap] operate on rendered strings and
// understand "ESC [ <digits/semicolons> m" and "ESC [ H". Length counts
// codepoints, not terminal cells.
//
//	prefix, suffix := ansi.SplitAt(s, 10)
//	// prefix+suffix == s, ansi.Length(prefix) == min(10, ansi.Length(s))
//
// All functions in this package are pure and safe for concurrent use.
package ansi
