package ansi

import (
	"errors"
	"io"
	"strings"
)

// ResetPolicy controls the trailing reset sequence appended by [Render].
type ResetPolicy int

const (
	// ResetAuto appends ResetSequence when at least one escape sequence was
	// emitted, whether resolved from a token or given as a raw Seq.
	ResetAuto ResetPolicy = iota
	// ResetAlways requests the trailing reset explicitly. It is still only
	// appended once a style was actually emitted.
	ResetAlways
	// ResetNever never appends a reset. Use it for fragments that are
	// concatenated into larger output.
	ResetNever
)

// String returns the flag spelling of the policy.
func (p ResetPolicy) String() string {
	switch p {
	case ResetAlways:
		return "always"
	case ResetNever:
		return "never"
	default:
		return "auto"
	}
}

// Option configures a render call.
type Option func(*options)

type options struct {
	theme Theme
	emit  bool
	reset ResetPolicy
}

func defaultOptions() options {
	return options{emit: true, reset: ResetAuto}
}

// WithTheme resolves tokens through theme before the built-in table.
func WithTheme(theme Theme) Option {
	return func(o *options) { o.theme = theme }
}

// WithEmit controls whether escape sequences are produced at all. With emit
// disabled every Style and Seq node is dropped and no lookups happen.
func WithEmit(emit bool) Option {
	return func(o *options) { o.emit = emit }
}

// WithReset sets the trailing reset policy.
func WithReset(policy ResetPolicy) Option {
	return func(o *options) { o.reset = policy }
}

// Fragments is rendered output: literal text and escape sequences in
// traversal order.
type Fragments []string

// String concatenates the fragments.
func (f Fragments) String() string {
	return strings.Join(f, "")
}

// WriteTo writes every fragment to w in order.
func (f Fragments) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range f {
		n, err := io.WriteString(w, s)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Render flattens chardata into fragments.
//
// Traversal is left-to-right and depth-first. When emitting, Style tokens are
// resolved (theme first, then the built-in table) and Seq nodes are copied
// verbatim; both mark the output as styled for the reset policy. Errors abort
// the call and no partial output is returned.
func Render(data Node, opts ...Option) (Fragments, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := renderer{theme: o.theme, emit: o.emit}
	out, styled, err := r.walk(data, nil)
	if err != nil {
		return nil, err
	}
	if o.emit && styled && o.reset != ResetNever {
		out = append(out, ResetSequence)
	}
	return out, nil
}

// Format renders data and concatenates the result.
func Format(data Node, opts ...Option) (string, error) {
	out, err := Render(data, opts...)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// FormatFragment is Format without a trailing reset, for output that will be
// embedded in a larger string.
func FormatFragment(data Node, opts ...Option) (string, error) {
	return Format(data, append(opts, WithReset(ResetNever))...)
}

// Write renders data and writes it to w, followed by a newline if requested.
// Nothing is written when rendering fails.
func Write(w io.Writer, data Node, newline bool, opts ...Option) error {
	out, err := Render(data, opts...)
	if err != nil {
		return err
	}
	if newline {
		out = append(out, "\n")
	}
	_, err = out.WriteTo(w)
	return err
}

// visited is the set of theme names on one resolution path.
type visited map[string]struct{}

func (v visited) with(name string) visited {
	out := make(visited, len(v)+1)
	for k := range v {
		out[k] = struct{}{}
	}
	out[name] = struct{}{}
	return out
}

type renderer struct {
	theme Theme
	emit  bool
}

// walk traverses data with an explicit stack of remaining siblings, so
// nesting depth never grows the Go call stack. path is the resolution path of
// the composite theme entry being expanded, nil at top level.
func (r *renderer) walk(data Node, path visited) (Fragments, bool, error) {
	var (
		out    Fragments
		styled bool
		stack  = []List{{data}}
	)

	for len(stack) > 0 {
		top := len(stack) - 1
		if len(stack[top]) == 0 {
			stack = stack[:top]
			continue
		}
		node := stack[top][0]
		stack[top] = stack[top][1:]

		switch n := node.(type) {
		case List:
			stack = append(stack, n)
		case Text:
			if n != "" {
				out = append(out, string(n))
			}
		case Char:
			out = append(out, string(rune(n)))
		case Seq:
			if r.emit {
				out = append(out, string(n))
				styled = true
			}
		case Style:
			if !r.emit {
				continue
			}
			seq, err := r.resolve(n, path)
			if err != nil {
				return nil, false, err
			}
			if seq != "" {
				out = append(out, seq)
			}
			styled = true
		}
	}

	return out, styled, nil
}

// resolve maps a token to its sequence. Aliases are followed iteratively;
// every theme name entered is recorded on the path, and entering a name twice
// is a cycle reported against the requested token.
func (r *renderer) resolve(requested Style, path visited) (string, error) {
	name := string(requested)
	for {
		entry, ok := r.theme[name]
		if !ok {
			if seq, ok := Lookup(name); ok {
				return seq, nil
			}
			return "", &StyleError{Name: Style(name), Err: ErrUnknownStyle}
		}

		if _, seen := path[name]; seen {
			return "", &StyleError{Name: requested, Err: ErrCyclicTheme}
		}
		path = path.with(name)

		switch e := entry.(type) {
		case Seq:
			return string(e), nil
		case Text:
			return string(e), nil
		case Char:
			return string(rune(e)), nil
		case Style:
			name = string(e)
		case List:
			nested := renderer{theme: r.theme, emit: true}
			out, _, err := nested.walk(e, path)
			if err != nil {
				if errors.Is(err, ErrCyclicTheme) {
					return "", &StyleError{Name: requested, Err: ErrCyclicTheme}
				}
				return "", err
			}
			return out.String(), nil
		default:
			return "", &StyleError{Name: Style(name), Err: ErrUnknownStyle}
		}
	}
}
