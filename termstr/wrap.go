package termstr

import (
	"strings"

	"github.com/trulysimple/tsargp/styles"
)

// Wrap renders the buffer into out, starting at the given cursor column
// and wrapping at width. A width of zero disables wrapping but still
// applies indentation: with styles a cursor-column sequence, otherwise
// literal spaces. Zero-width segments are emitted only when withStyles is
// set and never affect column accounting. It returns the cursor column
// after the last emitted character.
//
// A word is kept on the current line when column + separator + width fits
// the target width exactly; only a word that overflows forces a break.
func (s *String) Wrap(out *strings.Builder, column, width int, withStyles bool) int {
	indent := s.indent
	if width > 0 && indent >= width {
		// An indent past the wrap boundary would leave no room for any
		// word; fall back to the line start.
		indent = 0
	}

	needSpace := false
	lineStart := true // no visible output on the current line yet

	startLine := func(i int) {
		target := indent
		if s.right && width > 0 {
			if pad := width - s.lineWidth(i); pad > target {
				target = pad
			}
		}
		if column < target {
			if width == 0 && withStyles {
				out.WriteString(string(styles.Column(target + 1)))
			} else {
				out.WriteString(strings.Repeat(" ", target-column))
			}
			column = target
		}
	}

	for i, seg := range s.segs {
		switch seg.kind {
		case segBreak:
			out.WriteString(seg.text)
			column = 0
			needSpace = false
			lineStart = true
		case segSeq:
			if withStyles {
				out.WriteString(seg.text)
			}
		case segWord:
			sep := 0
			if needSpace {
				sep = 1
			}
			if width > 0 && column > indent && column+sep+seg.width > width {
				out.WriteByte('\n')
				column = 0
				needSpace = false
				lineStart = true
			}
			if lineStart {
				startLine(i)
				lineStart = false
			}
			if needSpace {
				out.WriteByte(' ')
				column++
			}
			text := seg.text
			if !withStyles {
				text = styles.Strip(text)
			}
			out.WriteString(text)
			column += seg.width
			needSpace = true
		}
	}
	return column
}

// WrapString renders the buffer into a fresh string starting at column 0.
func (s *String) WrapString(width int, withStyles bool) string {
	var b strings.Builder
	s.Wrap(&b, 0, width, withStyles)
	return b.String()
}
