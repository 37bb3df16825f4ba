package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/ansimark/pkg/ansi"
	"github.com/matzehuels/ansimark/pkg/errors"
)

// tokenPrefix marks a command-line argument as a style token.
const tokenPrefix = ":"

// parseTokens converts command-line arguments into chardata.
//
//	:red        style token "red"
//	::literal   literal text ":literal"
//	text        literal text, with \e \n \t \\ and \xHH escapes expanded;
//	            a text that expands to one escape sequence is a raw sequence
func parseTokens(args []string) (ansi.List, error) {
	out := make(ansi.List, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, tokenPrefix+tokenPrefix):
			text, err := unescape(arg[1:])
			if err != nil {
				return nil, err
			}
			out = append(out, ansi.Text(text))
		case strings.HasPrefix(arg, tokenPrefix):
			name := arg[len(tokenPrefix):]
			if err := errors.ValidateStyleName(name); err != nil {
				return nil, err
			}
			out = append(out, ansi.Style(name))
		default:
			text, err := unescape(arg)
			if err != nil {
				return nil, err
			}
			if ansi.IsSequence(text) {
				out = append(out, ansi.Seq(text))
				continue
			}
			out = append(out, ansi.Text(text))
		}
	}
	return out, nil
}

// unescape expands the backslash escapes accepted in literal arguments.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", errors.New(errors.ErrCodeInvalidInput, "trailing backslash in %q", s)
		}
		i++
		switch s[i] {
		case 'e':
			b.WriteByte(0x1b)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case 'x':
			if i+2 >= len(s) {
				return "", errors.New(errors.ErrCodeInvalidInput, "short \\x escape in %q", s)
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "bad \\x escape in %q", s)
			}
			b.WriteByte(byte(v))
			i += 2
		default:
			return "", errors.New(errors.ErrCodeInvalidInput, "unknown escape \\%c in %q", s[i], s)
		}
	}
	return b.String(), nil
}
