package ansi

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// escapePattern matches the sequences the indexer understands: SGR sequences
// "ESC [ <digits/semicolons> m" and cursor home "ESC [ H". Anything else is
// literal text.
var escapePattern = regexp.MustCompile(`\x1b\[(?:[0-9;]*m|H)`)

// segment is a byte range of s that is either one escape sequence or a run of
// literal text (possibly empty) between two sequences.
type segment struct {
	start, end int
	seq        bool
}

// segments splits s on escapePattern keeping the separators, so literal runs
// and sequences alternate in their original order.
func segments(s string) []segment {
	matches := escapePattern.FindAllStringIndex(s, -1)
	segs := make([]segment, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		segs = append(segs, segment{start: pos, end: m[0]})
		segs = append(segs, segment{start: m[0], end: m[1], seq: true})
		pos = m[1]
	}
	return append(segs, segment{start: pos, end: len(s)})
}

// IsSequence reports whether s is exactly one escape sequence the indexer
// understands.
func IsSequence(s string) bool {
	loc := escapePattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return escapePattern.ReplaceAllLiteralString(s, "")
}

// Length returns the visible length of s: the number of codepoints left once
// escape sequences are removed.
func Length(s string) int {
	n := 0
	for _, seg := range segments(s) {
		if !seg.seq {
			n += utf8.RuneCountInString(s[seg.start:seg.end])
		}
	}
	return n
}

// SplitAt splits s after offset visible codepoints.
//
// Escape sequences are never split and never count toward the offset. A
// sequence that precedes the cut point stays in the prefix; a sequence that
// directly follows the last consumed character goes to the suffix. Offsets
// past the visible length are clamped, so prefix+suffix == s always holds.
//
//	SplitAt("\x1b[31mhello\x1b[0m", 2) // "\x1b[31mhe", "llo\x1b[0m"
func SplitAt(s string, offset int) (prefix, suffix string) {
	if offset <= 0 || s == "" {
		return "", s
	}

	budget := offset
	for _, seg := range segments(s) {
		if seg.seq {
			continue
		}
		text := s[seg.start:seg.end]
		n := utf8.RuneCountInString(text)
		switch {
		case n < budget:
			budget -= n
		case n == budget:
			return s[:seg.end], s[seg.end:]
		default:
			cut := seg.start + runeOffset(text, budget)
			return s[:cut], s[cut:]
		}
	}
	return s, ""
}

// runeOffset returns the byte offset of the n-th codepoint of s.
func runeOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// Wrap hard-wraps s into lines of at most width visible codepoints. Existing
// newlines always start a new line, and the chunks cut from one input line
// concatenate back to that line exactly. A width below 1 only splits on
// newlines.
func Wrap(s string, width int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if width < 1 {
			out = append(out, line)
			continue
		}
		for Length(line) > width {
			var head string
			head, line = SplitAt(line, width)
			out = append(out, head)
		}
		out = append(out, line)
	}
	return out
}
