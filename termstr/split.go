package termstr

import (
	"regexp"
	"strings"
)

// SplitFunc expands a single-letter format specifier by appending segments
// to dst. The first segment it appends merges with any text that preceded
// the specifier inside the same word.
type SplitFunc func(dst *String, spec byte)

var (
	paragraphRE = regexp.MustCompile(`\n[ \t]*\n[ \t\n]*`)
	listItemRE  = regexp.MustCompile(`^(-|\*|\d+\.) `)
)

// Split appends free-form text to the buffer: paragraphs separated by
// blank lines become double line breaks, list items (lines starting with
// "-", "*" or "N.") become single line breaks, and everything else is
// split on whitespace into words. When format is non-nil, each "%x"
// specifier inside a word (a letter immediately after '%') is expanded
// through it; any other input is treated as literal words, so splitting
// never fails.
func (s *String) Split(text string, format SplitFunc) *String {
	paragraphs := paragraphRE.Split(strings.TrimSpace(text), -1)
	for p, para := range paragraphs {
		if para == "" {
			continue
		}
		if p > 0 {
			s.Break(2)
		}
		s.splitParagraph(para, format)
	}
	return s
}

func (s *String) splitParagraph(para string, format SplitFunc) {
	lines := strings.Split(para, "\n")
	first := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !first && listItemRE.MatchString(line) {
			s.Break(1)
		}
		for _, word := range strings.Fields(line) {
			s.splitWord(word, format)
		}
		first = false
	}
}

// splitWord appends one whitespace-delimited word, expanding embedded
// format specifiers. Pieces of the same word merge so the word remains a
// single wrapping unit.
func (s *String) splitWord(word string, format SplitFunc) {
	emitted := false
	for word != "" {
		i := specIndex(word)
		if format == nil || i < 0 {
			s.piece(word, emitted)
			return
		}
		if i > 0 {
			s.piece(word[:i], emitted)
			emitted = true
		}
		if emitted {
			s.Merge()
		}
		format(s, word[i+1])
		emitted = true
		word = word[i+2:]
	}
}

func (s *String) piece(text string, merge bool) {
	if merge {
		s.Merge()
	}
	s.Word(text)
}

// specIndex finds the first '%' immediately followed by an ASCII letter.
// A lone '%' is an ordinary character.
func specIndex(word string) int {
	for i := 0; i+1 < len(word); i++ {
		if word[i] != '%' {
			continue
		}
		c := word[i+1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return i
		}
	}
	return -1
}
