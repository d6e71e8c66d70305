package styles

import (
	"strconv"
	"strings"
)

// Sequence is a complete terminal control sequence, ready to be written to
// an output stream. The zero value is the empty sequence, which renders
// nothing.
type Sequence string

// Attr is a single SGR (Select Graphic Rendition) parameter.
type Attr uint8

// Standard SGR attributes.
const (
	Clear     Attr = 0
	Bold      Attr = 1
	Faint     Attr = 2
	Italic    Attr = 3
	Underline Attr = 4
	Blink     Attr = 5
	Inverse   Attr = 7
	Invisible Attr = 8
	Strike    Attr = 9
)

// Foreground colors.
const (
	Black   Attr = 30
	Red     Attr = 31
	Green   Attr = 32
	Yellow  Attr = 33
	Blue    Attr = 34
	Magenta Attr = 35
	Cyan    Attr = 36
	White   Attr = 37
	Default Attr = 39
)

// Background colors.
const (
	BgBlack   Attr = 40
	BgRed     Attr = 41
	BgGreen   Attr = 42
	BgYellow  Attr = 43
	BgBlue    Attr = 44
	BgMagenta Attr = 45
	BgCyan    Attr = 46
	BgWhite   Attr = 47
	BgDefault Attr = 49
)

// Style is an ordered list of SGR attributes. Styles are ordinary data;
// combining two styles is a plain append.
type Style []Attr

// Of builds a style from the given attributes.
func Of(attrs ...Attr) Style { return Style(attrs) }

// Sequence renders the style as a single SGR escape sequence. An empty
// style renders as the empty sequence, not as a reset.
func (s Style) Sequence() Sequence {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\x1b[")
	for i, a := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(a)))
	}
	b.WriteByte('m')
	return Sequence(b.String())
}

// Reset is the sequence that clears all SGR attributes.
var Reset = Style{Clear}.Sequence()

func csi(n int, final byte) Sequence {
	return Sequence("\x1b[" + strconv.Itoa(n) + string(final))
}

// MoveUp moves the cursor up n lines.
func MoveUp(n int) Sequence { return csi(n, 'A') }

// MoveDown moves the cursor down n lines.
func MoveDown(n int) Sequence { return csi(n, 'B') }

// MoveForward moves the cursor right n columns.
func MoveForward(n int) Sequence { return csi(n, 'C') }

// MoveBack moves the cursor left n columns.
func MoveBack(n int) Sequence { return csi(n, 'D') }

// Column moves the cursor to the given 1-based column on the current line.
func Column(n int) Sequence { return csi(n, 'G') }

// EraseLine clears the current line from the cursor to the end.
func EraseLine() Sequence { return "\x1b[0K" }

// EraseDisplay clears the screen from the cursor to the end.
func EraseDisplay() Sequence { return "\x1b[0J" }

// Strip removes every escape sequence from text, leaving only printable
// characters. It recognizes CSI and two-byte ESC sequences, which is all
// the layout engine ever emits.
func Strip(text string) string {
	if !strings.ContainsRune(text, 0x1b) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != 0x1b {
			b.WriteByte(text[i])
			i++
			continue
		}
		i++
		if i < len(text) && text[i] == '[' {
			i++
			for i < len(text) && (text[i] < 0x40 || text[i] > 0x7e) {
				i++
			}
		}
		if i < len(text) {
			i++ // final byte
		}
	}
	return b.String()
}
