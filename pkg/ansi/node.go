package ansi

// Node is one element of chardata: the nested markup tree given to [Render].
//
// The set of node kinds is closed: [Text], [Char], [Style], [Seq] and [List].
// A nil Node is ignored during traversal.
type Node interface {
	node()
}

// Text is literal text, copied to the output verbatim.
type Text string

// Char is a single literal codepoint.
type Char rune

// Style is a symbolic style token. It resolves through the theme first and
// then through the built-in style table.
type Style string

// Seq is a raw escape sequence already in final form. It is emitted verbatim
// and counts as an emitted style for the automatic reset.
type Seq string

// List groups nodes. Nesting carries no meaning beyond grouping: a nested
// list renders exactly like its flattened equivalent.
type List []Node

func (Text) node()  {}
func (Char) node()  {}
func (Style) node() {}
func (Seq) node()   {}
func (List) node()  {}

// L builds a List from its arguments. A string that is exactly one escape
// sequence (see [IsSequence]) becomes [Seq], any other string becomes [Text],
// and runes become [Char]; Node values are kept as they are.
//
//	ansi.L(ansi.Red, "error: ", ansi.Bright, name)
//
// L panics on any other argument type, as that is a programming error.
func L(items ...any) List {
	out := make(List, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			out = append(out, nil)
		case Node:
			out = append(out, v)
		case string:
			if IsSequence(v) {
				out = append(out, Seq(v))
			} else {
				out = append(out, Text(v))
			}
		case rune:
			out = append(out, Char(v))
		case []Node:
			out = append(out, List(v))
		default:
			panic("ansi.L: unsupported chardata item")
		}
	}
	return out
}
