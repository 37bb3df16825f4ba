package ansi

import "sort"

// Theme maps symbolic names to their rendering. An entry is one of:
//   - [Seq] (or [Text]): a raw sequence used verbatim
//   - [Style]: an alias resolved recursively
//   - [List]: a composite rendered as a nested chardata sequence
//
// Theme entries take precedence over built-in style names.
type Theme map[string]Node

// Names returns the theme's entry names in sorted order.
func (t Theme) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new theme holding t's entries overlaid with other's.
// Neither input is modified.
func (t Theme) Merge(other Theme) Theme {
	out := make(Theme, len(t)+len(other))
	for name, entry := range t {
		out[name] = entry
	}
	for name, entry := range other {
		out[name] = entry
	}
	return out
}

// Resolve returns the escape sequence a single token renders to under t.
func (t Theme) Resolve(name Style) (string, error) {
	r := renderer{theme: t, emit: true}
	return r.resolve(name, nil)
}

// Validate resolves every entry once and returns the first failure in name
// order. A theme that validates can never fail a render on its own names.
func (t Theme) Validate() error {
	for _, name := range t.Names() {
		if _, err := t.Resolve(Style(name)); err != nil {
			return err
		}
	}
	return nil
}
