package ansi

import (
	"sort"
	"strconv"
)

// csi is the Control Sequence Introducer shared by every table entry.
const csi = "\x1b["

// ResetSequence clears all styles. It is the trailing sequence appended by
// the automatic reset.
const ResetSequence = csi + "0m"

// Built-in style names. Every name maps to "ESC [ <code> m" except [Home],
// which maps to "ESC [ H".
const (
	Reset Style = "reset"
	Home  Style = "home"

	Black   Style = "black"
	Red     Style = "red"
	Green   Style = "green"
	Yellow  Style = "yellow"
	Blue    Style = "blue"
	Magenta Style = "magenta"
	Cyan    Style = "cyan"
	White   Style = "white"

	LightBlack   Style = "light_black"
	LightRed     Style = "light_red"
	LightGreen   Style = "light_green"
	LightYellow  Style = "light_yellow"
	LightBlue    Style = "light_blue"
	LightMagenta Style = "light_magenta"
	LightCyan    Style = "light_cyan"
	LightWhite   Style = "light_white"

	BlackBackground   Style = "black_background"
	RedBackground     Style = "red_background"
	GreenBackground   Style = "green_background"
	YellowBackground  Style = "yellow_background"
	BlueBackground    Style = "blue_background"
	MagentaBackground Style = "magenta_background"
	CyanBackground    Style = "cyan_background"
	WhiteBackground   Style = "white_background"

	LightBlackBackground   Style = "light_black_background"
	LightRedBackground     Style = "light_red_background"
	LightGreenBackground   Style = "light_green_background"
	LightYellowBackground  Style = "light_yellow_background"
	LightBlueBackground    Style = "light_blue_background"
	LightMagentaBackground Style = "light_magenta_background"
	LightCyanBackground    Style = "light_cyan_background"
	LightWhiteBackground   Style = "light_white_background"

	DefaultColor      Style = "default_color"
	DefaultBackground Style = "default_background"

	PrimaryFont Style = "primary_font"
	Font1       Style = "font_1"
	Font2       Style = "font_2"
	Font3       Style = "font_3"
	Font4       Style = "font_4"
	Font5       Style = "font_5"
	Font6       Style = "font_6"
	Font7       Style = "font_7"
	Font8       Style = "font_8"
	Font9       Style = "font_9"

	Bright             Style = "bright"
	Bold               Style = "bold"
	Faint              Style = "faint"
	Italic             Style = "italic"
	Underline          Style = "underline"
	BlinkSlow          Style = "blink_slow"
	BlinkRapid         Style = "blink_rapid"
	Reverse            Style = "reverse"
	Inverse            Style = "inverse"
	Conceal            Style = "conceal"
	CrossedOut         Style = "crossed_out"
	Strikethrough      Style = "strikethrough"
	Fraktur            Style = "fraktur"
	DoubleUnderline    Style = "double_underline"
	Normal             Style = "normal"
	NotItalic          Style = "not_italic"
	NoUnderline        Style = "no_underline"
	BlinkOff           Style = "blink_off"
	ReverseOff         Style = "reverse_off"
	InverseOff         Style = "inverse_off"
	Reveal             Style = "reveal"
	NotCrossedOut      Style = "not_crossed_out"
	Framed             Style = "framed"
	Encircled          Style = "encircled"
	Overlined          Style = "overlined"
	NotFramedEncircled Style = "not_framed_encircled"
	NotOverlined       Style = "not_overlined"
)

// styleCodes holds the numeric SGR parameter of every "m"-terminated entry.
var styleCodes = map[Style]int{
	Reset: 0,

	Black:   30,
	Red:     31,
	Green:   32,
	Yellow:  33,
	Blue:    34,
	Magenta: 35,
	Cyan:    36,
	White:   37,

	LightBlack:   90,
	LightRed:     91,
	LightGreen:   92,
	LightYellow:  93,
	LightBlue:    94,
	LightMagenta: 95,
	LightCyan:    96,
	LightWhite:   97,

	BlackBackground:   40,
	RedBackground:     41,
	GreenBackground:   42,
	YellowBackground:  43,
	BlueBackground:    44,
	MagentaBackground: 45,
	CyanBackground:    46,
	WhiteBackground:   47,

	LightBlackBackground:   100,
	LightRedBackground:     101,
	LightGreenBackground:   102,
	LightYellowBackground:  103,
	LightBlueBackground:    104,
	LightMagentaBackground: 105,
	LightCyanBackground:    106,
	LightWhiteBackground:   107,

	DefaultColor:      39,
	DefaultBackground: 49,

	PrimaryFont: 10,
	Font1:       11,
	Font2:       12,
	Font3:       13,
	Font4:       14,
	Font5:       15,
	Font6:       16,
	Font7:       17,
	Font8:       18,
	Font9:       19,

	Bright:             1,
	Bold:               1,
	Faint:              2,
	Italic:             3,
	Underline:          4,
	BlinkSlow:          5,
	BlinkRapid:         6,
	Reverse:            7,
	Inverse:            7,
	Conceal:            8,
	CrossedOut:         9,
	Strikethrough:      9,
	Fraktur:            20,
	DoubleUnderline:    21,
	Normal:             22,
	NotItalic:          23,
	NoUnderline:        24,
	BlinkOff:           25,
	ReverseOff:         27,
	InverseOff:         27,
	Reveal:             28,
	NotCrossedOut:      29,
	Framed:             51,
	Encircled:          52,
	Overlined:          53,
	NotFramedEncircled: 54,
	NotOverlined:       55,
}

// styleTable is the immutable name -> sequence lookup, built once at init.
var styleTable = buildStyleTable()

// styleNames is the sorted list of table keys.
var styleNames = sortedNames(styleTable)

func buildStyleTable() map[string]string {
	table := make(map[string]string, len(styleCodes)+1)
	for name, code := range styleCodes {
		table[string(name)] = sgr(code)
	}
	table[string(Home)] = csi + "H"
	return table
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sgr formats a Select Graphic Rendition sequence for a single code.
func sgr(code int) string {
	return csi + strconv.Itoa(code) + "m"
}

// Lookup returns the escape sequence of a built-in style name.
func Lookup(name string) (string, bool) {
	seq, ok := styleTable[name]
	return seq, ok
}

// Names returns every built-in style name in sorted order.
// The returned slice is a copy and may be modified by the caller.
func Names() []string {
	return append([]string(nil), styleNames...)
}
