package termstr

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/trulysimple/tsargp/styles"
)

type segKind uint8

const (
	segWord  segKind = iota // visible text, possibly with embedded sequences
	segSeq                  // a pure control sequence, zero visible width
	segBreak                // one or more explicit line breaks
)

// segment is the atomic wrapping unit. A word segment is never broken
// across lines; merged appends grow the previous segment instead of
// creating a new one.
type segment struct {
	kind  segKind
	text  string
	width int
}

// String is a terminal string under construction. The zero value is an
// empty string at indentation column 0.
type String struct {
	segs   []segment
	indent int
	right  bool
	merge  bool
}

// New returns an empty terminal string whose wrapped lines start at the
// given column.
func New(indent int) *String {
	if indent < 0 {
		indent = 0
	}
	return &String{indent: indent}
}

// Indent reports the starting column of wrapped lines.
func (s *String) Indent() int { return s.indent }

// AlignRight makes wrapping pad each line so its last word ends at the
// target width. It has no effect when wrapping without a width.
func (s *String) AlignRight() *String {
	s.right = true
	return s
}

// Count reports the number of segments in the buffer.
func (s *String) Count() int { return len(s.segs) }

// Len reports the visible width of the content up to the first explicit
// line break, counting one space between adjacent word segments.
func (s *String) Len() int {
	return s.lineWidth(0)
}

// lineWidth measures the visible width of the line starting at segment i.
func (s *String) lineWidth(i int) int {
	width := 0
	for ; i < len(s.segs); i++ {
		seg := s.segs[i]
		if seg.kind == segBreak {
			break
		}
		if seg.width == 0 {
			continue
		}
		if width > 0 {
			width++
		}
		width += seg.width
	}
	return width
}

// Merge makes the next appended segment join the previous one with no
// intervening space. Used for delimiters and bracket wrapping.
func (s *String) Merge() *String {
	s.merge = true
	return s
}

// Word appends a literal word. Its visible width is its display width;
// words are never broken across lines.
func (s *String) Word(w string) *String {
	if w == "" {
		return s
	}
	return s.push(segWord, w, runewidth.StringWidth(w))
}

// Styled appends a word wrapped in the given style and a trailing reset.
// The sequences travel with the word as one segment, so a line break can
// never separate them.
func (s *String) Styled(st styles.Style, w string) *String {
	if w == "" {
		return s
	}
	seq := st.Sequence()
	if seq == "" {
		return s.Word(w)
	}
	return s.push(segWord, string(seq)+w+string(styles.Reset), runewidth.StringWidth(w))
}

// Seq appends a control sequence. It occupies no columns and is emitted
// only when styles are requested at wrap time.
func (s *String) Seq(q styles.Sequence) *String {
	if q == "" {
		return s
	}
	return s.push(segSeq, string(q), 0)
}

// Open appends a word and merges the next append into it, so that an
// opening delimiter hugs whatever follows.
func (s *String) Open(w string) *String {
	return s.Word(w).Merge()
}

// Close merges a closing delimiter onto the previous word.
func (s *String) Close(w string) *String {
	if w == "" {
		return s
	}
	return s.Merge().Word(w)
}

// Break appends n explicit line breaks. Consecutive breaks accumulate
// into a single segment.
func (s *String) Break(n int) *String {
	if n <= 0 {
		return s
	}
	s.merge = false
	if last := len(s.segs) - 1; last >= 0 && s.segs[last].kind == segBreak {
		s.segs[last].text += strings.Repeat("\n", n)
		return s
	}
	s.segs = append(s.segs, segment{kind: segBreak, text: strings.Repeat("\n", n)})
	return s
}

// Append copies the segments of other into s, honoring any pending merge
// on s for other's first segment and carrying over other's own pending
// merge state.
func (s *String) Append(other *String) *String {
	if other == nil || len(other.segs) == 0 {
		if other != nil {
			s.merge = s.merge || other.merge
		}
		return s
	}
	for _, seg := range other.segs {
		switch seg.kind {
		case segBreak:
			s.merge = false
			s.segs = append(s.segs, seg)
		default:
			s.push(seg.kind, seg.text, seg.width)
		}
	}
	s.merge = other.merge
	return s
}

// push appends one segment, collapsing it into the previous segment when
// a merge is pending. Merging a word into a sequence promotes the result
// to a word segment so the pair wraps as a unit.
func (s *String) push(kind segKind, text string, width int) *String {
	if s.merge {
		s.merge = false
		if last := len(s.segs) - 1; last >= 0 && s.segs[last].kind != segBreak {
			s.segs[last].text += text
			s.segs[last].width += width
			if kind == segWord {
				s.segs[last].kind = segWord
			}
			return s
		}
	}
	s.segs = append(s.segs, segment{kind: kind, text: text, width: width})
	return s
}
